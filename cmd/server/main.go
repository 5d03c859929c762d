package main

import (
	"brasildados/internal/api"
	"brasildados/internal/engine"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var Cmd = &cobra.Command{
	Use:          "brasildados",
	Long:         "Serve the Brazilian indicators dashboard API from the merged dados_brasil.json",
	RunE:         run,
	SilenceUsage: true,
}

var args struct {
	dataPath string
	addr     string
	reload   string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	Cmd.Flags().StringVar(&args.dataPath, "data", envOr("BRASILDADOS_DATA", "dados_brasil.json"), "path to the merged indicators document")
	Cmd.Flags().StringVar(&args.addr, "addr", envOr("BRASILDADOS_ADDR", ":8080"), "listen address")
	Cmd.Flags().StringVar(&args.reload, "reload", envOr("BRASILDADOS_RELOAD", ""), "cron spec for reloading the document, e.g. \"@every 1h\" (disabled when empty)")
}

func main() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, argv []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Initialize Echo (starts instantly)
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// 2. Handler starts empty and answers 503 until the store is loaded
	h := api.NewHandler(nil)
	h.RegisterRoutes(e)

	g, ctx := errgroup.WithContext(ctx)

	// 3. Load in background; a broken document stops the server
	g.Go(func() error {
		log.Infof("Loading %s in background...", args.dataPath)
		t0 := time.Now()
		store, err := engine.Load(args.dataPath)
		if err != nil {
			return err
		}
		h.SetStore(store)
		log.Infof("Load complete in %v. API is fully ready.", time.Since(t0))
		return nil
	})

	// 4. Optional periodic reload. A failed reload keeps serving the old store.
	if args.reload != "" {
		c := cron.New()
		_, err := c.AddFunc(args.reload, func() {
			store, err := engine.Load(args.dataPath)
			if err != nil {
				log.Errorf("Scheduled reload failed: %v", err)
				return
			}
			h.SetStore(store)
		})
		if err != nil {
			return fmt.Errorf("invalid reload schedule %q: %w", args.reload, err)
		}
		c.Start()
		defer c.Stop()
		log.Infof("Reload scheduled: %s", args.reload)
	}

	// 5. Serve until interrupted
	g.Go(func() error {
		log.Infof("Server ready on %s (data loading in background...)", args.addr)
		if err := e.Start(args.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

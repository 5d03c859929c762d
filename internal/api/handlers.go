package api

import (
	"brasildados/internal/engine"
	"brasildados/internal/export"
	"brasildados/internal/models"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	store atomic.Pointer[engine.Store]
}

// NewHandler accepts a nil store; every route answers 503 until SetStore is
// called.
func NewHandler(store *engine.Store) *Handler {
	h := &Handler{}
	if store != nil {
		h.store.Store(store)
	}
	return h
}

// SetStore publishes a fully loaded store. Requests already in flight keep
// the store they started with.
func (h *Handler) SetStore(store *engine.Store) {
	h.store.Store(store)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", h.requireStore)
	api.GET("/meta", h.GetMeta)
	api.GET("/years", h.GetYears)
	api.GET("/series", h.GetSeries)
	api.GET("/series.csv", h.GetSeriesCSV)
	api.GET("/periods", h.GetPeriods)
	api.GET("/periods.csv", h.GetPeriodsCSV)
	api.GET("/indicators/:key", h.GetIndicator)
	api.GET("/sources", h.GetSources)
	api.GET("/government/:year", h.GetGovernment)
}

const storeKey = "store"

func (h *Handler) requireStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := h.store.Load()
		if s == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "data is still loading")
		}
		c.Set(storeKey, s)
		return next(c)
	}
}

func storeFrom(c echo.Context) *engine.Store {
	return c.Get(storeKey).(*engine.Store)
}

// --- QUERY PARAMS ---

// getKeys accepts ?keys=a,b and repeated ?key=a&key=b.
func getKeys(c echo.Context) []string {
	var keys []string
	for _, raw := range c.QueryParams()["keys"] {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}
	for _, k := range c.QueryParams()["key"] {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// getRange returns nil when neither start nor end is given. A missing bound
// defaults to the store's own bound.
func getRange(c echo.Context, s *engine.Store) (*models.YearRange, error) {
	startParam, endParam := c.QueryParam("start"), c.QueryParam("end")
	if startParam == "" && endParam == "" {
		return nil, nil
	}
	r, _ := s.Range()
	if startParam != "" {
		v, err := strconv.Atoi(startParam)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid start year %q", startParam))
		}
		r.StartYear = v
	}
	if endParam != "" {
		v, err := strconv.Atoi(endParam)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid end year %q", endParam))
		}
		r.EndYear = v
	}
	return &r, nil
}

func queryError(err error) error {
	if errors.Is(err, engine.ErrInvalidRange) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

// --- HANDLERS ---

func (h *Handler) GetMeta(c echo.Context) error {
	return c.JSON(http.StatusOK, storeFrom(c).Summary())
}

func (h *Handler) GetYears(c echo.Context) error {
	return c.JSON(http.StatusOK, storeFrom(c).AvailableYears())
}

func (h *Handler) series(c echo.Context) ([]models.SeriesPoint, error) {
	s := storeFrom(c)
	rng, err := getRange(c, s)
	if err != nil {
		return nil, err
	}
	points, err := s.Series(getKeys(c), rng)
	if err != nil {
		return nil, queryError(err)
	}
	return points, nil
}

func (h *Handler) GetSeries(c echo.Context) error {
	points, err := h.series(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) GetSeriesCSV(c echo.Context) error {
	points, err := h.series(c)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="series.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteSeries(c.Response(), points)
}

func (h *Handler) periods(c echo.Context) ([]models.PresidencyPeriod, error) {
	s := storeFrom(c)
	rng, err := getRange(c, s)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return s.PresidencyPeriods(), nil
	}
	periods, err := s.PeriodsInRange(rng)
	if err != nil {
		return nil, queryError(err)
	}
	return periods, nil
}

func (h *Handler) GetPeriods(c echo.Context) error {
	periods, err := h.periods(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, periods)
}

func (h *Handler) GetPeriodsCSV(c echo.Context) error {
	periods, err := h.periods(c)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="periods.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return export.WritePeriods(c.Response(), periods)
}

func (h *Handler) GetIndicator(c echo.Context) error {
	return c.JSON(http.StatusOK, storeFrom(c).Indicator(c.Param("key")))
}

func (h *Handler) GetSources(c echo.Context) error {
	return c.JSON(http.StatusOK, storeFrom(c).Sources())
}

func (h *Handler) GetGovernment(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid year %q", c.Param("year")))
	}
	gov, ok := storeFrom(c).Government(year)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no government info for %d", year))
	}
	return c.JSON(http.StatusOK, gov)
}

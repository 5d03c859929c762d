package engine

import (
	"brasildados/internal/models"
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/gommon/log"
)

// ErrInvalidDocument is returned when the input does not have the
// {"meta": ..., "years": {"YYYY": {...}}} shape.
var ErrInvalidDocument = errors.New("invalid indicator document")

// Load reads and parses the document at path.
func Load(path string) (*Store, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	store, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	log.Infof("Load complete. Years: %d. Time: %v", len(store.years), time.Since(start))
	return store, nil
}

// Parse builds a Store from raw JSON. It either returns a fully built store or
// an error; no partial store ever escapes.
func Parse(content []byte) (*Store, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrInvalidDocument)
	}
	if _, ok := top["years"]; !ok {
		return nil, fmt.Errorf("%w: missing \"years\"", ErrInvalidDocument)
	}

	var doc models.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Years == nil {
		return nil, fmt.Errorf("%w: \"years\" is not an object", ErrInvalidDocument)
	}

	store := &Store{
		years:   make([]int, 0, len(doc.Years)),
		entries: make([]models.YearEntry, 0, len(doc.Years)),
		index:   make(map[int]int, len(doc.Years)),
		meta:    doc.Meta,
	}

	// A. Parse year keys (numeric, not lexicographic)
	keyOf := make(map[int]string, len(doc.Years))
	for key := range doc.Years {
		year, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: year key %q is not an integer", ErrInvalidDocument, key)
		}
		if prev, dup := keyOf[year]; dup {
			return nil, fmt.Errorf("%w: year keys %q and %q are the same year", ErrInvalidDocument, prev, key)
		}
		keyOf[year] = key
		store.years = append(store.years, year)
	}
	slices.Sort(store.years)

	// B. Decode entries in year order
	for i, year := range store.years {
		raw := bytes.TrimSpace(doc.Years[keyOf[year]])
		if len(raw) == 0 || raw[0] != '{' {
			return nil, fmt.Errorf("%w: year %d is not an object", ErrInvalidDocument, year)
		}
		var entry models.YearEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("%w: year %d: %v", ErrInvalidDocument, year, err)
		}
		if entry.Data == nil {
			entry.Data = map[string]models.IndicatorRecord{}
		}
		store.entries = append(store.entries, entry)
		store.index[year] = i
	}

	return store, nil
}

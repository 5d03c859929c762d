package engine

import (
	"brasildados/internal/models"
	"slices"
)

// Store holds the loaded document in year order. It is never mutated after
// Parse returns, so a *Store can be shared freely between goroutines.
type Store struct {
	// Sorted, unique years; entries[i] belongs to years[i]
	years   []int
	entries []models.YearEntry

	// Lookup year -> position in years/entries
	index map[int]int

	meta map[string]models.MetaRecord
}

// AvailableYears returns every year in the document in ascending order.
func (s *Store) AvailableYears() []int {
	return slices.Clone(s.years)
}

// Range returns the first and last available years.
func (s *Store) Range() (models.YearRange, bool) {
	if len(s.years) == 0 {
		return models.YearRange{}, false
	}
	return models.YearRange{StartYear: s.years[0], EndYear: s.years[len(s.years)-1]}, true
}

func (s *Store) entry(year int) (*models.YearEntry, bool) {
	i, ok := s.index[year]
	if !ok {
		return nil, false
	}
	return &s.entries[i], true
}

// Government returns the government info recorded for year.
func (s *Store) Government(year int) (models.Government, bool) {
	e, ok := s.entry(year)
	if !ok || !e.Government.Known() {
		return models.Government{}, false
	}
	return *e.Government, true
}

// Title returns the title of the first year (ascending) that defines one for
// key, or key itself.
func (s *Store) Title(key string) string {
	for i := range s.entries {
		if rec, ok := s.entries[i].Data[key]; ok && rec.Title != "" {
			return rec.Title
		}
	}
	return key
}

func (s *Store) HasGlobalAverage(key string) bool {
	for i := range s.entries {
		if rec, ok := s.entries[i].Data[key]; ok {
			if _, ok := rec.GlobalAverage.Float(); ok {
				return true
			}
		}
	}
	return false
}

const defaultCountry = "Brasil"

// MainTitle is the dashboard heading, built from meta.country.
func (s *Store) MainTitle() string {
	country := defaultCountry
	if rec, ok := s.meta["country"]; ok {
		if v, ok := rec.Value.(string); ok && v != "" {
			country = v
		}
	}
	return "Dados do " + country
}

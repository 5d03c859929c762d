package engine

import (
	"brasildados/internal/models"
	"errors"
	"fmt"
)

// ErrInvalidRange is returned for a year range whose start is after its end.
var ErrInvalidRange = errors.New("invalid year range")

// resolveRange validates rng and defaults a nil range to the full store.
func (s *Store) resolveRange(rng *models.YearRange) (models.YearRange, error) {
	if rng == nil {
		full, _ := s.Range()
		return full, nil
	}
	if rng.StartYear > rng.EndYear {
		return models.YearRange{}, fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, rng.StartYear, rng.EndYear)
	}
	return *rng, nil
}

// Series returns one point per available year inside rng (nil means every
// year), ascending. Indicators without a numeric value for a year are left
// out of that year's point rather than zero-filled, so charts draw a gap.
// When a record carries a world average it is emitted as <key>_global.
func (s *Store) Series(keys []string, rng *models.YearRange) ([]models.SeriesPoint, error) {
	r, err := s.resolveRange(rng)
	if err != nil {
		return nil, err
	}

	points := make([]models.SeriesPoint, 0, len(s.years))
	for i, year := range s.years {
		if !r.Contains(year) {
			continue
		}
		p := models.SeriesPoint{Year: year, Values: make(map[string]float64, len(keys))}
		data := s.entries[i].Data
		for _, key := range keys {
			rec, ok := data[key]
			if !ok {
				continue
			}
			if v, ok := rec.Value.Float(); ok {
				p.Values[key] = v
			}
			if g, ok := rec.GlobalAverage.Float(); ok {
				p.Values[models.GlobalKey(key)] = g
			}
		}
		points = append(points, p)
	}
	return points, nil
}

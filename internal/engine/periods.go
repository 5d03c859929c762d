package engine

import (
	"brasildados/internal/models"
)

// PresidencyPeriods segments the available years into maximal runs sharing
// the same (president, party) pair, in ascending order.
//
// Years without government info are skipped: they neither open nor close a
// period. A period ends at the last year that actually carried its pair, so a
// gap between two different governments belongs to neither.
func (s *Store) PresidencyPeriods() []models.PresidencyPeriod {
	periods := make([]models.PresidencyPeriod, 0)
	var open *models.PresidencyPeriod

	for i, year := range s.years {
		gov := s.entries[i].Government
		if !gov.Known() {
			continue
		}
		if open != nil && open.President == gov.President && open.Party == gov.Party {
			open.EndYear = year
			continue
		}
		if open != nil {
			periods = append(periods, *open)
		}
		open = &models.PresidencyPeriod{
			President:     gov.President,
			PresidentNick: Nickname(gov.President),
			Party:         gov.Party,
			StartYear:     year,
			EndYear:       year,
			Color:         PartyColor(gov.Party),
		}
	}
	if open != nil {
		periods = append(periods, *open)
	}
	return periods
}

// PeriodsInRange returns the periods overlapping rng. Periods are not clipped
// to the range; the timeline dims the part outside the selection.
func (s *Store) PeriodsInRange(rng *models.YearRange) ([]models.PresidencyPeriod, error) {
	r, err := s.resolveRange(rng)
	if err != nil {
		return nil, err
	}
	all := s.PresidencyPeriods()
	out := make([]models.PresidencyPeriod, 0, len(all))
	for _, p := range all {
		if p.EndYear >= r.StartYear && p.StartYear <= r.EndYear {
			out = append(out, p)
		}
	}
	return out, nil
}

package engine

import (
	"brasildados/internal/models"
)

// Summary describes the store as a whole for the dashboard header.
func (s *Store) Summary() models.DashboardMeta {
	meta := models.DashboardMeta{
		Title:     s.MainTitle(),
		YearCount: len(s.years),
	}
	if r, ok := s.Range(); ok {
		meta.Range = &r
	}
	return meta
}

// Indicator reports the display title of key and whether it has a world
// average to overlay.
func (s *Store) Indicator(key string) models.IndicatorInfo {
	return models.IndicatorInfo{
		Key:              key,
		Title:            s.Title(key),
		HasGlobalAverage: s.HasGlobalAverage(key),
	}
}

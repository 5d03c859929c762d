// Package export renders query results as CSV downloads.
package export

import (
	"brasildados/internal/models"
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
)

// SeriesRows flattens chart points into long format, one row per
// (year, indicator) observation. Years with no observations produce no rows.
func SeriesRows(points []models.SeriesPoint) []models.SeriesRow {
	rows := make([]models.SeriesRow, 0, len(points))
	for _, p := range points {
		keys := make([]string, 0, len(p.Values))
		for k := range p.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, models.SeriesRow{Year: p.Year, Indicator: k, Value: p.Values[k]})
		}
	}
	return rows
}

func PeriodRows(periods []models.PresidencyPeriod) []models.PeriodRow {
	rows := make([]models.PeriodRow, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, models.PeriodRow{
			StartYear:     p.StartYear,
			EndYear:       p.EndYear,
			President:     p.President,
			PresidentNick: p.PresidentNick,
			Party:         p.Party,
			Color:         p.Color,
		})
	}
	return rows
}

// WriteSeries writes points as CSV with a header row.
func WriteSeries(w io.Writer, points []models.SeriesPoint) error {
	rows := SeriesRows(points)
	return write(w, &rows)
}

// WritePeriods writes periods as CSV with a header row.
func WritePeriods(w io.Writer, periods []models.PresidencyPeriod) error {
	rows := PeriodRows(periods)
	return write(w, &rows)
}

func write(w io.Writer, in interface{}) error {
	csvWriter := csv.NewWriter(w)
	if err := gocsv.MarshalCSV(in, csvWriter); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

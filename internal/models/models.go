package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Document is the merged dados_brasil.json produced by the fetch scripts.
type Document struct {
	Meta  map[string]MetaRecord      `json:"meta"`
	Years map[string]json.RawMessage `json:"years"`
}

// MetaRecord describes the document itself (country, iso code, ...). Its
// value is free-form.
type MetaRecord struct {
	Value  any    `json:"value"`
	Title  string `json:"title"`
	Source string `json:"source"`
}

type YearEntry struct {
	Data       map[string]IndicatorRecord `json:"data"`
	Government *Government                `json:"government"`
}

type Government struct {
	President string `json:"president"`
	Party     string `json:"party"`
}

// Known reports whether the entry carries usable government info.
func (g *Government) Known() bool {
	return g != nil && (g.President != "" || g.Party != "")
}

type IndicatorRecord struct {
	Value         Value  `json:"value"`
	Title         string `json:"title"`
	Source        string `json:"source"`
	GlobalAverage Value  `json:"global_average_value"`
}

// Value is a numeric observation that may be absent. The source data mixes
// numbers, numeric strings, empty strings and nulls; all of them are resolved
// here, once, at decode time.
type Value struct {
	f  float64
	ok bool
}

func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{f: f, ok: true}
}

// Float returns the number and whether it is present.
func (v Value) Float() (float64, bool) { return v.f, v.ok }

func (v *Value) UnmarshalJSON(b []byte) error {
	*v = Value{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*v = ParseValue(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(b), 64)
		if err == nil {
			*v = Number(f)
		}
	}
	// null, booleans, objects and arrays stay absent
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.f, 'g', -1, 64), nil
}

// ParseValue coerces a string observation. Anything that is not a finite
// decimal number is absent.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}
	}
	return Number(f)
}

type PresidencyPeriod struct {
	President     string `json:"president"`
	PresidentNick string `json:"presidentNick"`
	Party         string `json:"party"`
	StartYear     int    `json:"startYear"`
	EndYear       int    `json:"endYear"`
	Color         string `json:"color"`
}

type YearRange struct {
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`
}

// Contains reports whether year falls inside the inclusive range.
func (r YearRange) Contains(year int) bool {
	return year >= r.StartYear && year <= r.EndYear
}

// SeriesPoint is one chart row. Values holds only the indicators that had a
// numeric observation for Year.
type SeriesPoint struct {
	Year   int
	Values map[string]float64
}

// MarshalJSON flattens the point to {"year": 2001, "<key>": v, ...}.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Values)+1)
	for k, v := range p.Values {
		flat[k] = v
	}
	flat["year"] = p.Year
	return json.Marshal(flat)
}

// GlobalKey names the companion field that carries an indicator's world average.
func GlobalKey(key string) string { return key + "_global" }

type IndicatorInfo struct {
	Key              string `json:"key"`
	Title            string `json:"title"`
	HasGlobalAverage bool   `json:"has_global_average"`
}

type DashboardMeta struct {
	Title     string     `json:"title"`
	Range     *YearRange `json:"range,omitempty"`
	YearCount int        `json:"year_count"`
}

// SeriesRow is the long-format CSV row for a series export.
type SeriesRow struct {
	Year      int     `csv:"year"`
	Indicator string  `csv:"indicator"`
	Value     float64 `csv:"value"`
}

// PeriodRow is the CSV row for a presidency period export.
type PeriodRow struct {
	StartYear     int    `csv:"start_year"`
	EndYear       int    `csv:"end_year"`
	President     string `csv:"president"`
	PresidentNick string `csv:"president_nick"`
	Party         string `csv:"party"`
	Color         string `csv:"color"`
}

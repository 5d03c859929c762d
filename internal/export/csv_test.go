package export

import (
	"brasildados/internal/models"
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeries(t *testing.T) {
	points := []models.SeriesPoint{
		{Year: 2000, Values: map[string]float64{"inflation": 7.5, "gdp_growth": 4.25}},
		{Year: 2001, Values: map[string]float64{}},
		{Year: 2002, Values: map[string]float64{"gdp_growth": 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, points))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "year,indicator,value", lines[0])

	var rows []models.SeriesRow
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &rows))
	assert.Equal(t, []models.SeriesRow{
		{Year: 2000, Indicator: "gdp_growth", Value: 4.25},
		{Year: 2000, Indicator: "inflation", Value: 7.5},
		{Year: 2002, Indicator: "gdp_growth", Value: 3},
	}, rows)
}

func TestWritePeriods(t *testing.T) {
	periods := []models.PresidencyPeriod{
		{President: "Itamar Franco", PresidentNick: "Itamar", Party: "PMDB", StartYear: 1993, EndYear: 1994, Color: "#FFDE21"},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePeriods(&buf, periods))
	assert.Equal(t,
		"start_year,end_year,president,president_nick,party,color\n1993,1994,Itamar Franco,Itamar,PMDB,#FFDE21\n",
		buf.String())
}

func TestWritePeriodsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePeriods(&buf, nil))
	assert.Equal(t, "start_year,end_year,president,president_nick,party,color\n", buf.String())
}

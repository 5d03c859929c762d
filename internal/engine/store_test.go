package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	store := mustParse(t, sampleDoc)

	// 1990 has an empty title, 1991 is the first year with one
	assert.Equal(t, "Crescimento anual", store.Title("gdp_growth"))
	assert.Equal(t, "IDH", store.Title("hdi"))
	assert.Equal(t, "unknown_key", store.Title("unknown_key"))
}

func TestTitleFirstOccurrenceIgnoresKeyOrder(t *testing.T) {
	// Serialized out of order; ascending year order must decide
	store := mustParse(t, `{"years": {
		"2005": {"data": {"k": {"value": 1, "title": "later"}}},
		"2001": {"data": {"k": {"value": 1, "title": "earliest"}}},
		"2003": {"data": {"k": {"value": 1, "title": "middle"}}}
	}}`)
	for i := 0; i < 10; i++ {
		assert.Equal(t, "earliest", store.Title("k"))
	}
}

func TestSources(t *testing.T) {
	store := mustParse(t, sampleDoc)
	assert.Equal(t, []string{
		"UNDP HDR",
		"https://api.worldbank.org (World Bank)",
	}, store.Sources())
}

func TestNormalizeSource(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://api.worldbank.org/v2/... (World Bank)", "https://api.worldbank.org (World Bank)"},
		{"https://api.worldbank.org/v3/foo (World Bank)", "https://api.worldbank.org (World Bank)"},
		{"http://api.bcb.gov.br/dados/serie/bcdata.sgs.433 (Banco Central)", "https://api.bcb.gov.br (Banco Central)"},
		{"https://ourworldindata.org", "https://ourworldindata.org"},
		{"INPE - Programa Queimadas", "INPE - Programa Queimadas"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeSource(tc.in), tc.in)
	}
}

func TestGovernment(t *testing.T) {
	store := mustParse(t, sampleDoc)

	gov, ok := store.Government(1993)
	assert.True(t, ok)
	assert.Equal(t, "Itamar Franco", gov.President)
	assert.Equal(t, "PMDB", gov.Party)

	_, ok = store.Government(2050)
	assert.False(t, ok)
}

func TestHasGlobalAverage(t *testing.T) {
	store := mustParse(t, sampleDoc)
	assert.True(t, store.HasGlobalAverage("gdp_growth"))
	assert.False(t, store.HasGlobalAverage("hdi"))
	assert.False(t, store.HasGlobalAverage("nope"))
}

func TestMainTitle(t *testing.T) {
	assert.Equal(t, "Dados do Brasil", mustParse(t, sampleDoc).MainTitle())
	assert.Equal(t, "Dados do Brasil", mustParse(t, `{"years": {}}`).MainTitle())
	assert.Equal(t, "Dados do Portugal", mustParse(t, `{"meta": {"country": {"value": "Portugal"}}, "years": {}}`).MainTitle())
}

func TestSummary(t *testing.T) {
	meta := mustParse(t, sampleDoc).Summary()
	assert.Equal(t, "Dados do Brasil", meta.Title)
	assert.Equal(t, 4, meta.YearCount)
	if assert.NotNil(t, meta.Range) {
		assert.Equal(t, 1990, meta.Range.StartYear)
		assert.Equal(t, 1993, meta.Range.EndYear)
	}

	assert.Nil(t, mustParse(t, `{"years": {}}`).Summary().Range)
}

func TestIndicator(t *testing.T) {
	info := mustParse(t, sampleDoc).Indicator("gdp_growth")
	assert.Equal(t, "gdp_growth", info.Key)
	assert.Equal(t, "Crescimento anual", info.Title)
	assert.True(t, info.HasGlobalAverage)
}

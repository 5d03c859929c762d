package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPartyColor is used for parties missing from partyColors.
const DefaultPartyColor = "#4CAF50"

var partyColors = map[string]string{
	"PRN":       "#68BA7F",
	"PMDB":      "#FFDE21",
	"MDB":       "#FFDE21",
	"PSDB":      "#FFEA99",
	"PT":        "#43A047",
	"PT - PMDB": "#82A903",
	"PSL/PL":    "#E0BC00",
	"PL":        "#E0BC00",
}

// Keys are folded with foldName. The fetch scripts and the front end disagree
// on some spellings ("Luis"/"Luiz", "Rouseff"/"Rousseff"), so both appear.
var presidentNicks = map[string]string{
	foldName("Fernando Collor de Mello"):      "Collor",
	foldName("Itamar Franco"):                 "Itamar",
	foldName("Fernando Henrique Cardoso"):     "FHC",
	foldName("Luiz Inácio Lula da Silva"):     "Lula",
	foldName("Luis Inácio Lula da Silva"):     "Lula",
	foldName("Dilma Rousseff"):                "Dilma",
	foldName("Dilma Rouseff"):                 "Dilma",
	foldName("Dilma Rousseff - Michel Temer"): "D-T",
	foldName("Dilma Rouseff - Michel Temer"):  "D-T",
	foldName("Michel Temer"):                  "Temer",
	foldName("Jair Messias Bolsonaro"):        "Bolsonaro",
}

// foldName strips accents, lowercases and collapses whitespace.
func foldName(name string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(unicode.ToLower))
	result, _, err := transform.String(t, name)
	if err != nil {
		result = strings.ToLower(name)
	}
	return strings.Join(strings.Fields(result), " ")
}

// PartyColor returns the chart color for a party code.
func PartyColor(party string) string {
	if c, ok := partyColors[strings.TrimSpace(party)]; ok {
		return c
	}
	return DefaultPartyColor
}

// Nickname returns the short display name for a president. Unknown names fall
// back to their last word, normally the surname.
func Nickname(president string) string {
	if n, ok := presidentNicks[foldName(president)]; ok {
		return n
	}
	fields := strings.Fields(president)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

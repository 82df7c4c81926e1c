package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mdforge/mdforge/pkg/types"
)

// numericLineRegex matches "label separator number [unit]" lines, with
// an optional leading bullet/quote prefix. Separators are : = - – —.
// The lazy label keeps the earliest separator that still leaves a
// parseable number, so hyphenated labels survive.
var numericLineRegex = regexp.MustCompile(
	`^\s*(?:[-*+>]\s+)?(.+?)\s*[:=\x{2013}\x{2014}-]\s*\$?(-?\d[\d,]*(?:\.\d+)?)\s*(%|percent|pct|count|items?|units?|usd|eur|dollars?)?\s*$`)

// ExtractNumericalData scans text for single-line label/value pairs.
// Labels must be 1-49 characters after trimming; thousands separators
// are removed before parsing; lines whose numeric portion fails to
// parse are skipped rather than reported.
func ExtractNumericalData(text string) []types.NumericDatum {
	var data []types.NumericDatum

	for _, line := range strings.Split(text, "\n") {
		m := numericLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		label := strings.TrimSpace(m[1])
		if n := utf8.RuneCountInString(label); n < 1 || n > 49 {
			continue
		}

		raw := strings.ReplaceAll(m[2], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) {
			continue
		}

		data = append(data, types.NumericDatum{Label: label, Value: value})
	}

	return data
}

package invoice

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Search is a free-text query together with the typed values it parses to.
// A nil field means the query does not parse as that type and the matching
// predicate must be left out.
type Search struct {
	Text string

	// Number follows numeric-literal rules: the whole trimmed query must be a
	// number and the empty query counts as zero.
	Number *float64

	// Leading is the numeric prefix of the query, if any ("12abc" -> 12).
	Leading *float64

	Date *time.Time
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01",
	"2006",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

func ParseSearch(query string) Search {
	s := Search{Text: query}

	if n, ok := parseNumber(query); ok {
		s.Number = new(n)
	}

	if n, ok := parseLeading(query); ok {
		s.Leading = new(n)
	}

	if d, ok := parseDate(query); ok {
		s.Date = new(d)
	}

	return s
}

func parseNumber(query string) (float64, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, true
	}

	if strings.ContainsAny(q, "_") || isInfinityWord(q) {
		return 0, false
	}

	n, err := strconv.ParseFloat(q, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}

	return n, true
}

func parseLeading(query string) (float64, bool) {
	q := strings.TrimLeft(query, " \t\n\r\f\v")

	end := 0
	seenDigit, seenDot, seenExp := false, false, false

	for i := 0; i < len(q); i++ {
		c := q[i]

		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case (c == '+' || c == '-') && (i == 0 || q[i-1] == 'e' || q[i-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
			if seenDigit {
				end = i + 1
			}
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			i = len(q)
		}
	}

	if !seenDigit {
		return 0, false
	}

	n, err := strconv.ParseFloat(q[:end], 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}

func parseDate(query string) (time.Time, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, q); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func isInfinityWord(q string) bool {
	q = strings.TrimLeft(strings.ToLower(q), "+-")
	return q == "inf" || q == "infinity"
}

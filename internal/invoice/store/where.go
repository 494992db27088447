package store

import (
	"fmt"
	"math"
	"strings"

	"github.com/MrJamesThe3rd/invoicedash/internal/database"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

// where collects predicate terms and their positional arguments.
type where struct {
	terms  []string
	args   []any
	argIdx int
}

func newWhere() *where {
	return &where{argIdx: 1}
}

// add appends a term; each %s in format is replaced by the next placeholder.
func (w *where) add(format string, args ...any) {
	placeholders := make([]any, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", w.argIdx)
		w.argIdx++
	}

	w.terms = append(w.terms, fmt.Sprintf(format, placeholders...))
	w.args = append(w.args, args...)
}

// next returns the placeholder for an argument appended after the predicate.
func (w *where) next(arg any) string {
	p := fmt.Sprintf("$%d", w.argIdx)
	w.argIdx++
	w.args = append(w.args, arg)

	return p
}

func (w *where) or() string {
	if len(w.terms) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(w.terms, " OR ")
}

// matching builds the open-ended predicate used for result pages: amount and
// date match at or above the parsed value.
func matching(s invoice.Search) *where {
	w := newWhere()
	pattern := database.ContainsPattern(s.Text)

	w.add(`c.name ILIKE %s`, pattern)
	w.add(`c.email ILIKE %s`, pattern)

	if s.Number != nil {
		w.add(`i.amount >= %s::float8`, *s.Number)
	}

	if s.Date != nil {
		w.add(`i.date >= %s`, *s.Date)
	}

	w.add(`i.status ILIKE %s`, pattern)

	return w
}

// exact builds the predicate used to count pages: amount is compared in cents
// and date must fall on the parsed day.
func exact(s invoice.Search) *where {
	w := newWhere()
	pattern := database.ContainsPattern(s.Text)

	w.add(`c.name ILIKE %s`, pattern)
	w.add(`c.email ILIKE %s`, pattern)

	if s.Leading != nil {
		// Values outside the column's range cannot match any row.
		if cents := math.Round(*s.Leading * 100); math.Abs(cents) <= math.MaxInt32 {
			w.add(`i.amount = %s`, int64(cents))
		}
	}

	if s.Date != nil {
		w.add(`i.date = %s`, *s.Date)
	}

	w.add(`i.status ILIKE %s`, pattern)

	return w
}


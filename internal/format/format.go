package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount in cents as US dollars, e.g. 123456 -> "$1,234.56".
func Currency(cents int64) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = -abs
	}

	return sign + "$" + printer.Sprintf("%d", abs/100) + fmt.Sprintf(".%02d", abs%100)
}

// Date renders t as "Jan 2, 2006".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Amount converts cents to decimal units.
func Amount(cents int64) float64 {
	return float64(cents) / 100
}

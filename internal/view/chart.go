package view

import (
	"fmt"
	"math"

	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
)

const chartHeight = 350

type Bar struct {
	Month  string
	Height int // pixels
	Label  string
}

type RevenueChart struct {
	YAxis []string
	Bars  []Bar
}

// Chart scales revenue to bars; the axis tops out at the highest month rounded
// up to the next thousand.
func Chart(revenue []dashboard.Revenue) RevenueChart {
	var highest int64
	for _, r := range revenue {
		highest = max(highest, r.Revenue)
	}

	top := int64(math.Ceil(float64(highest)/1000)) * 1000

	var chart RevenueChart

	for i := top; i >= 0; i -= 1000 {
		chart.YAxis = append(chart.YAxis, fmt.Sprintf("$%dK", i/1000))
	}

	for _, r := range revenue {
		height := 0
		if top > 0 {
			height = int(float64(chartHeight) * float64(r.Revenue) / float64(top))
		}

		chart.Bars = append(chart.Bars, Bar{Month: r.Month, Height: height, Label: fmt.Sprintf("$%d", r.Revenue)})
	}

	return chart
}

package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"oh-server/hours"
	"oh-server/models/venue"
)

// RenderOpeningTimeline renders a venue's 24h open/closed profile as an
// HTML bar chart. Overnight windows show up as two open segments, one
// at each end of the day.
func RenderOpeningTimeline(w io.Writer, v venue.Venue) error {
	spec, err := hours.ParseHours(v.OpeningHours)
	if err != nil {
		return err
	}

	hourLabels := make([]string, 0, 24)
	values := make([]opts.BarData, 0, 24)
	for h := 0; h < 24; h++ {
		hourLabels = append(hourLabels, hours.ToTimeString(h*60))

		open := 0
		m := h * 60
		if spec.CloseM < spec.OpenM {
			if m < spec.CloseM || m >= spec.OpenM {
				open = 1
			}
		} else if spec.OpenM <= m && m < spec.CloseM {
			open = 1
		}
		values = append(values, opts.BarData{Value: open})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Opening Hours Timeline",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    v.VenueName,
			Subtitle: v.OpeningHours,
		}),
	)

	bar.SetXAxis(hourLabels)
	bar.AddSeries("Open", values)

	return bar.Render(w)
}

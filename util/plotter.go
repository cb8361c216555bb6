package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"euston-server/models"
)

// RenderDayAnalysisChart writes an HTML chart of a day's hourly demand
// bars with the staff coverage line overlaid.
func RenderDayAnalysisChart(w io.Writer, analysis *models.DayAnalysis) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("%s Demand vs Coverage", analysis.Day),
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: %d customers", analysis.Day, analysis.TotalCustomers),
			Subtitle: "Hourly demand against rostered staff coverage",
		}),
	)

	demandItems := make([]opts.BarData, 0, len(analysis.Hours))
	coverageItems := make([]opts.LineData, 0, len(analysis.Hours))
	for _, hour := range analysis.Hours {
		demandItems = append(demandItems, opts.BarData{Value: analysis.Demand[hour]})
		coverageItems = append(coverageItems, opts.LineData{Value: analysis.Coverage[hour]})
	}

	bar.SetXAxis(analysis.Hours).AddSeries("Demand", demandItems)

	line := charts.NewLine()
	line.SetXAxis(analysis.Hours).AddSeries("Coverage", coverageItems)
	bar.Overlap(line)

	return bar.Render(w)
}

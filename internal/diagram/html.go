package diagram

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ExportInteractionHTML renders the interaction diagram as a standalone
// HTML page with an interactive go-echarts line chart
func ExportInteractionHTML(data InteractionData, filename string) error {
	title := "Column Interaction Diagram"
	if data.Name != "" {
		title = fmt.Sprintf("Column Interaction Diagram - %s", data.Name)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("Po = %.1f t, Mo ≈ %.1f t-m (nominal)", data.Po, data.MoApprox),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Mn (t-m)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Pn (t)", NameLocation: "middle", NameGap: 45}),
	)

	points := make([]opts.LineData, len(data.Moments))
	for i := range data.Moments {
		points[i] = opts.LineData{Value: []interface{}{data.Moments[i], data.Forces[i]}}
	}

	line.AddSeries("Nominal capacity", points,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}

// Interactive 3D visualization of trajectories and conflicts using go-echarts.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"drone-deconflict/internal/airspace"
)

// trajectoryChartSamples is the per-trajectory sample count used when
// drawing flight paths.
const trajectoryChartSamples = 100

var severityChartColors = map[airspace.Severity]string{
	airspace.SeverityHigh:   "#d62728",
	airspace.SeverityMedium: "#ff7f0e",
	airspace.SeverityLow:    "#ffd700",
}

// RenderChart writes an HTML page with a 3D view of the sampled
// trajectories and a scatter of conflict positions, one series per
// severity.
func RenderChart(w io.Writer, trajectories []*airspace.Trajectory, conflicts []airspace.Conflict) error {
	page := components.NewPage()
	page.PageTitle = "Drone Deconfliction"
	page.AddCharts(trajectoryChart(trajectories), conflictChart(conflicts))
	return page.Render(w)
}

// WriteChartFile renders the chart page to an HTML file.
func WriteChartFile(path string, trajectories []*airspace.Trajectory, conflicts []airspace.Conflict) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderChart(f, trajectories, conflicts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func trajectoryChart(trajectories []*airspace.Trajectory) *charts.Line3D {
	line := charts.NewLine3D()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Flight Paths",
			Subtitle: fmt.Sprintf("%d trajectories, %d samples each", len(trajectories), trajectoryChartSamples),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X (m)", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y (m)", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z (m)", Type: "value"}),
	)

	for _, traj := range trajectories {
		samples := traj.Sample(trajectoryChartSamples)
		data := make([]opts.Chart3DData, 0, len(samples))
		for _, wp := range samples {
			data = append(data, opts.Chart3DData{Value: []interface{}{wp.X, wp.Y, wp.Z}})
		}
		line.AddSeries(traj.DroneID(), data)
	}
	return line
}

func conflictChart(conflicts []airspace.Conflict) *charts.Scatter3D {
	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Conflict Positions",
			Subtitle: fmt.Sprintf("%d conflicts", len(conflicts)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X (m)", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y (m)", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z (m)", Type: "value"}),
	)

	bySeverity := make(map[airspace.Severity][]opts.Chart3DData)
	for _, c := range conflicts {
		name := fmt.Sprintf("%s/%s t=%.1f %s", c.Drone1ID, c.Drone2ID, c.Timestamp, c.Type)
		bySeverity[c.Severity] = append(bySeverity[c.Severity],
			opts.Chart3DData{Name: name, Value: []interface{}{c.Position1.X, c.Position1.Y, c.Position1.Z}},
			opts.Chart3DData{Name: name, Value: []interface{}{c.Position2.X, c.Position2.Y, c.Position2.Z}},
		)
	}

	for _, sev := range []airspace.Severity{airspace.SeverityHigh, airspace.SeverityMedium, airspace.SeverityLow} {
		data, ok := bySeverity[sev]
		if !ok {
			continue
		}
		scatter.AddSeries(sev.String(), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: severityChartColors[sev]}))
	}
	return scatter
}

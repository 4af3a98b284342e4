package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/cordex-org/cordex/engine"
)

const (
	chartHeight     = 12
	sparklineWidth  = 40
	sparklineHeight = 3
	maxLegendLabel  = 48
)

// renderBarChart draws one vertical bar per group, colored from the
// palette in rank order.
func renderBarChart(groups []engine.Group, width, height int) string {
	if len(groups) == 0 {
		return dimStyle.Render("no data in the selected range")
	}

	data := make([]barchart.BarData, 0, len(groups))
	for i, g := range groups {
		style := lipgloss.NewStyle().Foreground(barPalette[i%len(barPalette)])
		data = append(data, barchart.BarData{
			Label: g.Label,
			Values: []barchart.BarValue{
				{Name: g.Label, Value: g.Value, Style: style},
			},
		})
	}

	bc := barchart.New(width, height)
	bc.PushAll(data)
	bc.Draw()
	return bc.View()
}

// renderLegend lists groups as "label  count" lines in palette order.
// Bar labels truncate on narrow terminals; the legend keeps journal
// names and words readable.
func renderLegend(groups []engine.Group) string {
	var b strings.Builder
	for i, g := range groups {
		swatch := lipgloss.NewStyle().Foreground(barPalette[i%len(barPalette)]).Render("■")
		label := g.Label
		if len(label) > maxLegendLabel {
			label = label[:maxLegendLabel-1] + "…"
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			swatch,
			labelStyle.Render(label),
			valueStyle.Render(engine.FormatInt(g.Count)),
		))
	}
	return b.String()
}

// renderSparkline draws group values as a sparkline, one point per group.
func renderSparkline(groups []engine.Group) string {
	if len(groups) == 0 {
		return dimStyle.Render(fmt.Sprintf("%*s", sparklineWidth, "no data"))
	}

	spark := sparkline.New(sparklineWidth, sparklineHeight)
	for _, g := range groups {
		spark.Push(g.Value)
	}
	spark.Draw()
	return sparklineStyle.Render(spark.View())
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type Row struct {
	Entry `yaml:",inline"`
	Fuel  int64   `yaml:"fuel"`
	Total int64   `yaml:"total"`
	Chain []int64 `yaml:"chain,flow"`
}

type Report struct {
	Mode  string `yaml:"mode"`
	Rows  []Row  `yaml:"rows"`
	Total int64  `yaml:"total"`
}

func buildReport(entries []Entry, mode Mode) Report {
	report := Report{
		Mode: mode.String(),
		Rows: make([]Row, 0, len(entries)),
	}

	for _, e := range entries {
		row := Row{
			Entry: e,
			Fuel:  Fuel(e.Mass),
			Total: TotalFuel(e.Mass),
			Chain: Chain(e.Mass),
		}

		report.Rows = append(report.Rows, row)
		report.Total += mode.Of(e.Mass)
	}

	return report
}

type renderFunc func(io.Writer, Report) error

var renderers = map[string]renderFunc{
	"table": renderTable,
	"yaml":  renderYAML,
}

func renderTable(w io.Writer, r Report) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Position", "Mass", "Fuel", "Total", "Chain"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoWrapText(false)

	for _, row := range r.Rows {
		table.Append([]string{
			row.Pos(),
			humanize.Comma(row.Mass),
			humanize.Comma(row.Fuel),
			humanize.Comma(row.Total),
			formatChain(row.Chain),
		})
	}

	table.SetFooter([]string{"", "", "", r.Mode, humanize.Comma(r.Total)})
	table.Render()

	return nil
}

func renderYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func formatChain(chain []int64) string {
	if len(chain) == 0 {
		return "-"
	}

	parts := make([]string, len(chain))
	for i, v := range chain {
		parts[i] = humanize.Comma(v)
	}

	return strings.Join(parts, " + ")
}

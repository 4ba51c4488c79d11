package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/reallyasi9/nflstats/internal/ranking"
	"gopkg.in/yaml.v3"
)

// Format is an output format for reports.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json, or yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("ParseFormat: unknown format '%s'", s)
}

// Tabular reports can render themselves as a console table.
type Tabular interface {
	WriteTable(w io.Writer)
}

// Write renders v in the given format.
func Write(w io.Writer, f Format, v Tabular) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("Write: encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("Write: encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		v.WriteTable(w)
	}
	return nil
}

func badgeStyle(c ranking.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
}

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Badge renders a grade letter in its color. A nil grade renders a dash.
func Badge(g *ranking.Grade) string {
	if g == nil {
		return dimStyle.Render("-")
	}
	return badgeStyle(g.Color).Render(g.Letter())
}

func compositeBadge(c ranking.Composite) string {
	if c.Scored == 0 {
		return dimStyle.Render("-")
	}
	g := c.Grade
	return fmt.Sprintf("%s %d", Badge(&g), c.Score)
}

// FormatValue prints whole numbers without decimals and everything else to one decimal place.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func cellString(c Cell) string {
	if c.Value == nil {
		return dimStyle.Render("-")
	}
	return fmt.Sprintf("%s %s (%d)", FormatValue(*c.Value), Badge(c.Grade), c.Percentile)
}

// WriteTable implements Tabular.
func (b TeamBoard) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{"#", "Team", "Record", "Division", "Overall", "Off", "Def"}
	for _, m := range b.Metrics {
		header = append(header, m.Label)
	}
	t.AppendHeader(header)
	for i, r := range b.Rows {
		row := table.Row{i + 1, r.Abbreviation, r.Record.String(), string(r.Division), compositeBadge(r.Overall), compositeBadge(r.Offense), compositeBadge(r.Defense)}
		for _, c := range r.Cells {
			row = append(row, cellString(c))
		}
		t.AppendRow(row)
	}
	t.SetTitle(fmt.Sprintf("%d teams", b.Season))
	t.SetStyle(table.StyleLight)
	t.Render()
}

// WriteTable implements Tabular.
func (b PlayerBoard) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{"Player", "Pos", "Team", "Grade"}
	for _, m := range b.Metrics {
		header = append(header, m.Label)
	}
	t.AppendHeader(header)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, AutoMerge: true},
	})
	for _, r := range b.Rows {
		grade := dimStyle.Render("-")
		if r.Graded {
			grade = compositeBadge(r.Overall)
		}
		row := table.Row{r.Name, r.Position, r.Team, grade}
		for _, c := range r.Cells {
			row = append(row, cellString(c))
		}
		t.AppendRow(row)
	}
	title := fmt.Sprintf("%d players", b.Season)
	if b.Group != "" {
		title = fmt.Sprintf("%d %s", b.Season, b.Group.Name())
	}
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	t.Render()
}

// WriteTable implements Tabular.
func (c Comparison) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{"Metric"}
	for _, s := range c.Subjects {
		header = append(header, s.ID)
	}
	header = append(header, "League")
	t.AppendHeader(header)

	grades := table.Row{"Grade"}
	for _, s := range c.Subjects {
		grades = append(grades, compositeBadge(s.Grade))
	}
	t.AppendRow(append(grades, ""))
	t.AppendSeparator()

	for _, r := range c.Radar {
		row := table.Row{r.Metric.Label}
		for _, v := range r.Values {
			row = append(row, fmt.Sprintf("%.0f", v))
		}
		t.AppendRow(append(row, fmt.Sprintf("%.0f", r.Average)))
	}
	t.SetTitle(fmt.Sprintf("%d comparison (0-100 scale)", c.Season))
	t.SetStyle(table.StyleLight)
	t.Render()

	if len(c.HeadToHead) > 0 {
		h := table.NewWriter()
		h.SetOutputMirror(w)
		a, b := c.Subjects[0].ID, c.Subjects[1].ID
		h.AppendHeader(table.Row{"Metric", a, b, "Diff", "Edge"})
		for _, d := range c.HeadToHead {
			edge := "even"
			switch d.Leader {
			case ranking.SideA:
				edge = fmt.Sprintf("%s +%.0f%%", a, d.PercentDiff)
			case ranking.SideB:
				edge = fmt.Sprintf("%s +%.0f%%", b, d.PercentDiff)
			}
			h.AppendRow(table.Row{d.Metric.Label, FormatValue(d.A), FormatValue(d.B), FormatValue(d.Diff), edge})
		}
		if c.Tally != nil {
			h.AppendFooter(table.Row{"Leads", c.Tally.A, c.Tally.B, "", fmt.Sprintf("%d even", c.Tally.Even)})
		}
		h.SetStyle(table.StyleLight)
		h.Render()
	}

	for _, q := range c.Quadrants {
		qt := table.NewWriter()
		qt.SetOutputMirror(w)
		qt.AppendHeader(table.Row{"", q.X.Label, q.Y.Label, "Profile"})
		for _, p := range q.Points {
			qt.AppendRow(table.Row{p.ID, FormatValue(p.X), FormatValue(p.Y), p.Label})
		}
		if sameGroup(q.Points) {
			qt.AppendFooter(table.Row{"avg", FormatValue(q.Points[0].XAverage), FormatValue(q.Points[0].YAverage), ""})
		}
		qt.SetTitle(fmt.Sprintf("%s profile", q.Family))
		qt.SetStyle(table.StyleLight)
		qt.Render()
	}
}

func sameGroup(pts []ranking.Point) bool {
	if len(pts) == 0 {
		return false
	}
	for _, p := range pts[1:] {
		if p.Group != pts[0].Group {
			return false
		}
	}
	return true
}

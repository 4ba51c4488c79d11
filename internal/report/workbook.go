package report

import (
	"fmt"

	"github.com/reallyasi9/nflstats/internal/ranking"
	excelize "github.com/xuri/excelize/v2"
)

// Sheet names of an exported workbook.
const (
	TeamsSheet   = "Teams"
	PlayersSheet = "Players"
)

// Workbook builds an Excel workbook with one sheet per board.
// Every metric gets a value column and a percentile column; percentile cells are filled with the grade color.
func Workbook(teams TeamBoard, players PlayerBoard) (*excelize.File, error) {
	xl := excelize.NewFile()
	first := xl.GetSheetName(xl.GetActiveSheetIndex())
	if err := xl.SetSheetName(first, TeamsSheet); err != nil {
		return nil, fmt.Errorf("Workbook: %w", err)
	}
	if _, err := xl.NewSheet(PlayersSheet); err != nil {
		return nil, fmt.Errorf("Workbook: %w", err)
	}
	styles, err := gradeStyles(xl)
	if err != nil {
		return nil, fmt.Errorf("Workbook: %w", err)
	}

	header := []interface{}{"Team", "Name", "Conference", "Division", "W", "L", "T", "Win%", "Overall", "Overall Grade"}
	for _, m := range teams.Metrics {
		header = append(header, m.Label, m.Label+" Pctl")
	}
	if err := setRow(xl, TeamsSheet, 1, header); err != nil {
		return nil, fmt.Errorf("Workbook: %w", err)
	}
	for i, r := range teams.Rows {
		row := []interface{}{r.Abbreviation, r.Name, string(r.Conference), string(r.Division), r.Record.Wins, r.Record.Losses, r.Record.Ties, r.WinPct, r.Overall.Score, r.Overall.Letter()}
		if err := writeCells(xl, TeamsSheet, i+2, row, r.Cells, styles); err != nil {
			return nil, fmt.Errorf("Workbook: %w", err)
		}
	}

	header = []interface{}{"ID", "Name", "Position", "Group", "Team", "Overall", "Overall Grade"}
	for _, m := range players.Metrics {
		header = append(header, m.Label, m.Label+" Pctl")
	}
	if err := setRow(xl, PlayersSheet, 1, header); err != nil {
		return nil, fmt.Errorf("Workbook: %w", err)
	}
	for i, r := range players.Rows {
		var score, letter interface{}
		if r.Graded {
			score, letter = r.Overall.Score, r.Overall.Letter()
		}
		row := []interface{}{r.ID, r.Name, r.Position, string(r.Group), r.Team, score, letter}
		if err := writeCells(xl, PlayersSheet, i+2, row, r.Cells, styles); err != nil {
			return nil, fmt.Errorf("Workbook: %w", err)
		}
	}
	return xl, nil
}

func gradeStyles(xl *excelize.File) (map[ranking.Color]int, error) {
	out := make(map[ranking.Color]int)
	for _, c := range []ranking.Color{ranking.Emerald, ranking.Green, ranking.Yellow, ranking.Orange, ranking.Red} {
		id, err := xl.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c.Hex()}},
		})
		if err != nil {
			return nil, err
		}
		out[c] = id
	}
	return out, nil
}

func setRow(xl *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return xl.SetSheetRow(sheet, cell, &values)
}

func writeCells(xl *excelize.File, sheet string, row int, lead []interface{}, cells []Cell, styles map[ranking.Color]int) error {
	values := append([]interface{}{}, lead...)
	for _, c := range cells {
		if c.Value == nil {
			values = append(values, nil, nil)
			continue
		}
		values = append(values, *c.Value, c.Percentile)
	}
	if err := setRow(xl, sheet, row, values); err != nil {
		return err
	}
	for i, c := range cells {
		if c.Grade == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(len(lead)+2*i+2, row)
		if err != nil {
			return err
		}
		if err := xl.SetCellStyle(sheet, cell, cell, styles[c.Grade.Color]); err != nil {
			return err
		}
	}
	return nil
}

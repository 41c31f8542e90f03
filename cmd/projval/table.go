package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/validation"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderSummaryTable(report validation.Report) string {
	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		rows = append(rows, []string{res.Name, resultLabel(res), summarizeItems(res.Items)})
	}
	return renderTable(
		[]string{"Check", "Result", "Items"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
}

func resultLabel(res validation.Result) string {
	if res.Passed {
		return "PASS"
	}
	if res.Kind != "" {
		return fmt.Sprintf("FAIL (%s)", res.Kind)
	}
	return "FAIL"
}

func summarizeItems(items []validation.Item) string {
	var ok, fail, warn int
	for _, item := range items {
		switch item.Status {
		case validation.ItemFail:
			fail++
		case validation.ItemWarn:
			warn++
		default:
			ok++
		}
	}
	summary := fmt.Sprintf("%d ok", ok)
	if fail > 0 {
		summary = fmt.Sprintf("%s, %d failed", summary, fail)
	}
	if warn > 0 {
		summary = fmt.Sprintf("%s, %d warned", summary, warn)
	}
	return summary
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

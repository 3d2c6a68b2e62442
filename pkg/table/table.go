// Package table 渲染ASCII表格
package table

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render 渲染带表头的ASCII表格,所有列居中
//
//	+------+-------+
//	|  ID  | Title |
//	+------+-------+
//	| 3001 |  ...  |
//	+------+-------+
func Render(headers []string, rows [][]interface{}) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, h := range headers {
		header[i] = h
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignCenter,
			AlignHeader: text.AlignCenter,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		tw.AppendRow(table.Row(row))
	}

	return tw.Render()
}

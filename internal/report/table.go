package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// SourceRow describes one tracked source for the list table.
type SourceRow struct {
	Path        string
	Module      bool
	Declaration bool
}

// NameRow pairs an exported name with its scoped identifier.
type NameRow struct {
	Name   string
	Scoped string
}

// RenderSources writes the table of tracked sources.
func RenderSources(w io.Writer, rows []SourceRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Source", "Module", "Declaration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	declared := 0
	for _, row := range rows {
		if row.Declaration {
			declared++
		}
		table.Append([]string{row.Path, yesNo(row.Module), yesNo(row.Declaration)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(rows)), "", fmt.Sprintf("%d", declared)})
	table.Render()
}

// RenderNames writes the table of names extracted from one source.
func RenderNames(w io.Writer, rows []NameRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Scoped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append([]string{row.Name, row.Scoped})
	}

	table.Render()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"artlink/internal/ledger"
	"artlink/internal/report"
)

func newTableWriter(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	return tw
}

// renderCandidateTable renders flattened candidate rows with the score
// column right-aligned.
func renderCandidateTable(rows []report.Row) string {
	tw := newTableWriter(table.Row{"Record", "Creator", "Title", "Asset", "Filename", "Score", "Reasons"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.RecordID, row.Creator, row.Title, row.AssetID, row.Filename, row.Score, row.Reasons})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderUnmatchedTable renders records that produced no candidate, with
// the eliminating reason.
func renderUnmatchedTable(rows []report.Row) string {
	tw := newTableWriter(table.Row{"Record", "Creator", "Title", "Reason"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.RecordID, row.Creator, row.Title, row.Reasons})
	}
	return tw.Render()
}

// renderLinkTable renders applied ledger links.
func renderLinkTable(links []ledger.Link) string {
	tw := newTableWriter(table.Row{"Record", "Asset", "Run", "Applied"})
	for _, link := range links {
		tw.AppendRow(table.Row{
			link.RecordID,
			link.AssetID,
			link.RunID,
			link.AppliedAt.UTC().Format(time.RFC3339),
		})
	}
	return tw.Render()
}

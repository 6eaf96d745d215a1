package tui

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/projection"
)

// WritePreview renders the review table: one section per step, every field
// with its display value. Partially filled records show placeholders.
func WritePreview(w io.Writer, b brief.Brief, locale i18n.Locale) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(i18n.T(locale, "summaryTitle"))
	tw.AppendHeader(table.Row{"", i18n.T(locale, "appTitle"), ""})

	for _, section := range projection.Summarize(b, locale) {
		for i, field := range section.Fields {
			title := ""
			if i == 0 {
				title = section.Title
			}
			tw.AppendRow(table.Row{section.Step, title, field.Label + ": " + field.Value})
		}
		tw.AppendSeparator()
	}
	tw.Render()
}

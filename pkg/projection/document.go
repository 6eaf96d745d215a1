package projection

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
)

//go:embed templates/document.html.tmpl templates/document.txt.tmpl
var templateFS embed.FS

var (
	htmlDocument = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/document.html.tmpl"))
	textDocument = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/document.txt.tmpl"))

	// Free-text values are user input. StrictPolicy strips any markup before
	// the value is trusted inside the HTML rendering.
	sanitizer = bluemonday.StrictPolicy()
)

// Document is the rendered projection of a brief in both transports the
// notification sink needs: rich HTML plus a plain-text alternative.
type Document struct {
	HTML string
	Text string
}

type documentField struct {
	Label string
	Value htmltemplate.HTML
}

type documentSection struct {
	Title  string
	Fields []documentField
}

type documentData struct {
	Title       string
	DateLabel   string
	Timestamp   string
	Sections    []documentSection
	FooterTitle string
	FooterNote  string
}

// RenderDocument lays the brief out section by section, mirroring the review
// summary. User-entered text is sanitized before it reaches the HTML body.
func RenderDocument(b brief.Brief, locale i18n.Locale, at time.Time) (Document, error) {
	sections := Summarize(b, locale)

	data := documentData{
		Title:       documentTitle(locale),
		DateLabel:   dateLabel(locale),
		Timestamp:   at.Format(TimestampLayout),
		FooterTitle: "SAINT Agency - Brand Brief Tool",
		FooterNote:  footerNote(locale),
	}
	for _, section := range sections {
		out := documentSection{Title: section.Title}
		for _, field := range section.Fields {
			out.Fields = append(out.Fields, documentField{
				Label: field.Label,
				Value: htmltemplate.HTML(sanitizer.Sanitize(field.Value)),
			})
		}
		data.Sections = append(data.Sections, out)
	}

	var html bytes.Buffer
	if err := htmlDocument.Execute(&html, data); err != nil {
		return Document{}, fmt.Errorf("projection: render html document: %w", err)
	}

	textData := struct {
		Title       string
		DateLabel   string
		Timestamp   string
		Sections    []SummarySection
		FooterTitle string
		FooterNote  string
	}{
		Title:       data.Title,
		DateLabel:   data.DateLabel,
		Timestamp:   data.Timestamp,
		Sections:    sections,
		FooterTitle: data.FooterTitle,
		FooterNote:  data.FooterNote,
	}
	var text bytes.Buffer
	if err := textDocument.Execute(&text, textData); err != nil {
		return Document{}, fmt.Errorf("projection: render text document: %w", err)
	}

	return Document{HTML: html.String(), Text: text.String()}, nil
}

// NotificationSubject derives the notification subject line from the
// professional's name and specialty, with generic fallbacks for a record
// missing either.
func NotificationSubject(b brief.Brief) string {
	name := b.Step1.FullName
	if name == "" {
		name = "Cliente"
	}
	specialty := b.Step1.Specialty
	if specialty == "" {
		specialty = "Especialidad"
	}
	return fmt.Sprintf("🎉 Nuevo Brand Brief - %s (%s)", name, specialty)
}

func documentTitle(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return "NEW BRAND BRIEF COMPLETED"
	}
	return "NUEVO BRAND BRIEF COMPLETADO"
}

func dateLabel(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return "Date"
	}
	return "Fecha"
}

func footerNote(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return "This document was generated automatically when a new brand brief was completed."
	}
	return "Este documento fue generado automáticamente cuando se completó un nuevo brand brief."
}

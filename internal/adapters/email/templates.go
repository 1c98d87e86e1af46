package email

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	texttemplate "text/template"

	"lampceremony/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// renderSummary renders the ceremony summary email from the embedded
// templates and returns subject, html, and text bodies.
func renderSummary(data *domain.CeremonySummaryEmailData) (subject, htmlBody, textBody string, err error) {
	subject, err = renderText("templates/ceremony_summary_subject.txt", data)
	if err != nil {
		return "", "", "", err
	}
	htmlBody, err = renderHTML("templates/ceremony_summary.html", data)
	if err != nil {
		return "", "", "", err
	}
	textBody, err = renderText("templates/ceremony_summary.txt", data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func renderHTML(name string, data any) (string, error) {
	t, err := template.ParseFS(templateFS, name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(name string, data any) (string, error) {
	t, err := texttemplate.ParseFS(templateFS, name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/mvolk/eqsift"
)

// BuildMarkdown renders records as a GFM table report.
func BuildMarkdown(records []eqsift.Record) string {
	var b strings.Builder
	b.WriteString("# Extracted equations\n\n")
	b.WriteString(fmt.Sprintf("%d equation(s).\n\n", len(records)))
	b.WriteString("| ID | Page | Equation | Context |\n")
	b.WriteString("|---:|---:|---|---|\n")
	for _, rec := range records {
		b.WriteString(fmt.Sprintf("| %d | %d | %s | %s |\n",
			rec.ID, rec.Page, cellEscape(rec.Text), cellEscape(rec.Context)))
	}
	return b.String()
}

// WriteHTML converts the markdown report to a standalone HTML file.
func WriteHTML(records []eqsift.Record, path string) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(BuildMarkdown(records)), &body); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Extracted equations</title></head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// cellEscape keeps record text from breaking the table syntax.
func cellEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

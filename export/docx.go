package export

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"

	"github.com/mvolk/eqsift"
)

// WriteReport writes records to a Word document: a title, then one entry
// per record with its equation text, context, and snapshot inline.
func WriteReport(title string, records []eqsift.Record, path string) error {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(title).Size("32")

	for _, rec := range records {
		w.AddParagraph().AddText(fmt.Sprintf("%d. Page %d", rec.ID, rec.Page)).Size("28")
		w.AddParagraph().AddText(rec.Text)
		if rec.Context != "" {
			w.AddParagraph().AddText(rec.Context).Color("808080")
		}
		if rec.ImagePath != "" {
			// Best effort: an unreadable snapshot keeps the textual entry.
			_, _ = w.AddParagraph().AddInlineDrawingFrom(rec.ImagePath)
		}
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()
	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

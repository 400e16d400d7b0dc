package export

import (
	"archive/zip"
	"path/filepath"
	"testing"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report", "equations.docx")
	if err := WriteReport("Extracted equations", sampleRecords(), path); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	// A .docx is a zip container; the document body must be present.
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening report container: %v", err)
	}
	defer zr.Close()

	found := false
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			found = true
			break
		}
	}
	if !found {
		t.Error("word/document.xml missing from report")
	}
}

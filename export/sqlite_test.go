package export

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCatalogSaveAndRecords(t *testing.T) {
	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	defer cat.Close()

	ctx := context.Background()
	records := sampleRecords()
	if err := cat.Save(ctx, "/docs/ds.pdf", records); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := cat.Records(ctx, "/docs/ds.pdf")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, records)
	}
}

func TestCatalogSaveReplacesPreviousRun(t *testing.T) {
	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	defer cat.Close()

	ctx := context.Background()
	if err := cat.Save(ctx, "/docs/ds.pdf", sampleRecords()); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := sampleRecords()[:1]
	second[0].Text = "D = Vout / Vin"
	if err := cat.Save(ctx, "/docs/ds.pdf", second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := cat.Records(ctx, "/docs/ds.pdf")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(records) = %d, want 1 after replacement", len(got))
	}
	if got[0].Text != "D = Vout / Vin" {
		t.Errorf("Text = %q, want the replacement run's text", got[0].Text)
	}
}

func TestCatalogUnknownDocument(t *testing.T) {
	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	defer cat.Close()

	got, err := cat.Records(context.Background(), "/docs/never-saved.pdf")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("records for unknown document = %+v, want none", got)
	}
}

// Command eqsift scans a paginated PDF for equation-like text regions and
// exports the deduplicated results with cropped snapshots.
//
// Usage:
//
//	go run ./cmd/eqsift \
//	  --pdf ./datasheet.pdf \
//	  --out equations.xlsx \
//	  --images-dir equation_images \
//	  --zoom 3.0
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mvolk/eqsift"
	"github.com/mvolk/eqsift/export"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)
)

func main() {
	_ = godotenv.Load()

	var (
		pdfPath    = flag.String("pdf", "", "Path to the input PDF")
		outPath    = flag.String("out", "equations.xlsx", "Output workbook path")
		imagesDir  = flag.String("images-dir", "equation_images", "Directory for snapshot images (empty disables snapshots)")
		zoom       = flag.Float64("zoom", 3.0, "Render zoom factor (higher = sharper snapshots)")
		minLen     = flag.Int("min-len", 6, "Minimum extracted text length to consider as equation")
		relational = flag.Bool("require-relational", true, "Only keep candidates containing '=', '≤', '≥', '≈', or '≠'")
		dbPath     = flag.String("db", "", "Optional SQLite catalog path to persist the run")
		htmlPath   = flag.String("html", "", "Optional HTML report path")
		docxPath   = flag.String("docx", "", "Optional Word report path")
	)
	flag.Parse()

	// Structured JSON logging.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if v := os.Getenv("EQSIFT_DB"); v != "" && *dbPath == "" {
		*dbPath = v
	}

	if *pdfPath == "" {
		slog.Error("missing required flag --pdf")
		os.Exit(1)
	}

	cfg := eqsift.DefaultConfig()
	cfg.MinLen = *minLen
	cfg.RequireRelational = *relational
	cfg.SnapshotDir = *imagesDir
	cfg.Zoom = *zoom

	engine, err := eqsift.New(cfg)
	if err != nil {
		slog.Error("creating engine", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	records, err := engine.Discover(ctx, *pdfPath)
	if err != nil {
		slog.Error("extraction failed", "pdf", *pdfPath, "error", err)
		os.Exit(1)
	}

	if err := export.WriteWorkbook(records, *outPath); err != nil {
		slog.Error("writing workbook", "path", *outPath, "error", err)
		os.Exit(1)
	}

	outputs := []string{fmt.Sprintf("%s %s", dimStyle.Render("Workbook:"), *outPath)}

	if *htmlPath != "" {
		if err := export.WriteHTML(records, *htmlPath); err != nil {
			slog.Error("writing HTML report", "path", *htmlPath, "error", err)
			os.Exit(1)
		}
		outputs = append(outputs, fmt.Sprintf("%s %s", dimStyle.Render("HTML:"), *htmlPath))
	}
	if *docxPath != "" {
		if err := export.WriteReport("Extracted equations", records, *docxPath); err != nil {
			slog.Error("writing Word report", "path", *docxPath, "error", err)
			os.Exit(1)
		}
		outputs = append(outputs, fmt.Sprintf("%s %s", dimStyle.Render("Word:"), *docxPath))
	}
	if *dbPath != "" {
		catalog, err := export.OpenCatalog(*dbPath)
		if err != nil {
			slog.Error("opening catalog", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		if err := catalog.Save(ctx, *pdfPath, records); err != nil {
			catalog.Close()
			slog.Error("saving to catalog", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		catalog.Close()
		outputs = append(outputs, fmt.Sprintf("%s %s", dimStyle.Render("Catalog:"), *dbPath))
	}

	summary := successStyle.Render(fmt.Sprintf("%d equation(s) extracted", len(records)))
	for _, line := range outputs {
		summary += "\n" + line
	}
	fmt.Println(boxStyle.Render(summary))
}

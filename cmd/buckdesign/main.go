// Command buckdesign evaluates the closed-form buck converter design
// procedure for one operating point and exports an xlsx summary. With
// --pdf it also resolves the procedure's equation-number labels in the
// datasheet and embeds cropped snapshots on the Equations sheet.
//
// Usage:
//
//	go run ./cmd/buckdesign --vout 5 --iout 8 --fsw 2.1e6 \
//	  --pdf ./datasheet.pdf --pages 36-39 --out buck_design.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mvolk/eqsift"
	"github.com/mvolk/eqsift/design"
	"github.com/mvolk/eqsift/export"
)

func main() {
	_ = godotenv.Load()

	def := design.DefaultInputs()
	var (
		vinNom     = flag.Float64("vin-nom", def.VinNom, "Nominal input voltage (V)")
		vinMax     = flag.Float64("vin-max", def.VinMax, "Maximum input voltage (V)")
		vout       = flag.Float64("vout", def.Vout, "Output voltage (V)")
		iout       = flag.Float64("iout", def.Iout, "Load current (A)")
		fsw        = flag.Float64("fsw", def.Fsw, "Switching frequency (Hz)")
		rippleFrac = flag.Float64("ripple-frac", def.RippleFrac, "Inductor ripple target as fraction of Iout")
		lUsed      = flag.Float64("l-used", def.LUsed, "Chosen inductance (H); 0 uses the computed requirement")
		overshoot  = flag.Float64("vout-overshoot", def.VoutOvershoot, "Allowed load-off overshoot (V)")
		vinRipple  = flag.Float64("vin-ripple", def.VinRipplePP, "Input ripple spec (Vpp)")
		routESR    = flag.Float64("rout-esr", def.RoutESR, "Output capacitor ESR (Ω)")
		rinESR     = flag.Float64("rin-esr", def.RinESR, "Input capacitor ESR (Ω)")
		vcsTh      = flag.Float64("vcs-th", def.VcsTh, "Current-limit threshold voltage (V)")
		peakMargin = flag.Float64("peak-margin", def.PeakMargin, "Current-limit margin over IL peak")
		tDelay     = flag.Float64("t-delay", def.TDelay, "Current-sense comparator delay (s)")
		vref       = flag.Float64("vref", def.Vref, "Feedback reference voltage (V)")
		rfbBottom  = flag.Float64("rfb-bottom", def.RfbBottom, "Feedback bottom resistor (Ω)")
		fc         = flag.Float64("fc", def.Fc, "Loop crossover frequency (Hz)")
		rcomp      = flag.Float64("rcomp", def.Rcomp, "Compensation resistor (Ω)")
		fesr       = flag.Float64("fesr", def.FesrZero, "ESR-zero frequency (Hz)")
		cbw        = flag.Float64("cbw", def.Cbw, "Error-amp bandwidth capacitor (F)")

		pdfPath   = flag.String("pdf", "", "Optional datasheet PDF for equation snapshots")
		pages     = flag.String("pages", "36-39", "1-based inclusive page range to search for equation labels")
		outPath   = flag.String("out", "buck_design.xlsx", "Output workbook path")
		imagesDir = flag.String("images-dir", "equation_images", "Directory for snapshot images")
		zoom      = flag.Float64("zoom", 3.0, "Render zoom factor for snapshots")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	in := design.Inputs{
		VinNom:        *vinNom,
		VinMax:        *vinMax,
		Vout:          *vout,
		Iout:          *iout,
		Fsw:           *fsw,
		RippleFrac:    *rippleFrac,
		LUsed:         *lUsed,
		VoutOvershoot: *overshoot,
		RoutESR:       *routESR,
		RinESR:        *rinESR,
		VinRipplePP:   *vinRipple,
		VcsTh:         *vcsTh,
		PeakMargin:    *peakMargin,
		TDelay:        *tDelay,
		Vref:          *vref,
		RfbBottom:     *rfbBottom,
		Fc:            *fc,
		Rcomp:         *rcomp,
		FesrZero:      *fesr,
		Cbw:           *cbw,
	}
	res := design.Run(in)

	var labelRecords []eqsift.Record
	if *pdfPath != "" {
		pageRange, err := parsePages(*pages)
		if err != nil {
			slog.Error("parsing --pages", "value", *pages, "error", err)
			os.Exit(1)
		}

		cfg := eqsift.DefaultConfig()
		cfg.SnapshotDir = *imagesDir
		cfg.Zoom = *zoom
		engine, err := eqsift.New(cfg)
		if err != nil {
			slog.Error("creating engine", "error", err)
			os.Exit(1)
		}

		labelRecords, err = engine.Lookup(context.Background(), *pdfPath, design.Labels(), pageRange)
		if err != nil {
			slog.Error("label lookup failed", "pdf", *pdfPath, "error", err)
			os.Exit(1)
		}
		slog.Info("resolved equation labels", "found", len(labelRecords), "total", len(design.Labels()))
	}

	if err := export.WriteDesignWorkbook(in, res, labelRecords, *outPath); err != nil {
		slog.Error("writing design workbook", "path", *outPath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (L=%.3g H, Rsense=%.3g Ω, Rt=%.3g Ω)\n",
		*outPath, res.LRequired, res.Rsense, res.Rt)
}

// parsePages parses "a-b" or a single "a" into a 1-based inclusive range.
func parsePages(s string) (eqsift.PageRange, error) {
	first, last, found := strings.Cut(s, "-")
	if !found {
		last = first
	}
	f, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return eqsift.PageRange{}, fmt.Errorf("invalid page %q", first)
	}
	l, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return eqsift.PageRange{}, fmt.Errorf("invalid page %q", last)
	}
	if f < 1 || l < f {
		return eqsift.PageRange{}, fmt.Errorf("invalid range %q", s)
	}
	return eqsift.PageRange{First: f, Last: l}, nil
}

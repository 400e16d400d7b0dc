package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/mvolk/eqsift"
	"github.com/mvolk/eqsift/design"
)

// WriteDesignWorkbook writes a converter design summary: an Inputs sheet,
// a Results sheet, and an Equations sheet embedding the label-lookup
// snapshots when any were resolved.
func WriteDesignWorkbook(in design.Inputs, res design.Results, labelRecords []eqsift.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Inputs"); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for _, sheet := range []string{"Results", "Equations"} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("adding sheet %s: %w", sheet, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	plainFmt := "0.0000"
	sciFmt := "0.00E+00"
	plain, err := f.NewStyle(&excelize.Style{CustomNumFmt: &plainFmt})
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}
	sci, err := f.NewStyle(&excelize.Style{CustomNumFmt: &sciFmt})
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}

	if err := writeInputs(f, in, header, plain, sci); err != nil {
		return err
	}
	if err := writeResults(f, in, res, header, plain, sci); err != nil {
		return err
	}
	if err := writeEquations(f, labelRecords, header); err != nil {
		return err
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving design workbook: %w", err)
	}
	return nil
}

func writeInputs(f *excelize.File, in design.Inputs, header, plain, sci int) error {
	const sheet = "Inputs"
	rows := []struct {
		name  string
		value float64
		units string
	}{
		{"Vin nominal", in.VinNom, "V"},
		{"Vin maximum", in.VinMax, "V"},
		{"Vout", in.Vout, "V"},
		{"Iout", in.Iout, "A"},
		{"Switching frequency", in.Fsw, "Hz"},
		{"Ripple fraction", in.RippleFrac, ""},
		{"Inductance used", in.LUsed, "H"},
		{"Vout overshoot allowed", in.VoutOvershoot, "V"},
		{"Output capacitor ESR", in.RoutESR, "Ω"},
		{"Input capacitor ESR", in.RinESR, "Ω"},
		{"Vin ripple spec", in.VinRipplePP, "Vpp"},
		{"Current-limit threshold", in.VcsTh, "V"},
		{"Peak current margin", in.PeakMargin, ""},
		{"Sense comparator delay", in.TDelay, "s"},
		{"Reference voltage", in.Vref, "V"},
		{"Feedback bottom resistor", in.RfbBottom, "Ω"},
		{"Crossover frequency", in.Fc, "Hz"},
		{"Compensation resistor", in.Rcomp, "Ω"},
		{"ESR-zero frequency", in.FesrZero, "Hz"},
		{"Bandwidth capacitor", in.Cbw, "F"},
	}

	head := []any{"Parameter", "Value", "Units"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("writing inputs header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", header); err != nil {
		return fmt.Errorf("styling inputs header: %w", err)
	}
	for i, row := range rows {
		values := []any{row.name, row.value, row.units}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing input %q: %w", row.name, err)
		}
		vcell := fmt.Sprintf("B%d", i+2)
		if err := f.SetCellStyle(sheet, vcell, vcell, numberStyle(row.value, plain, sci)); err != nil {
			return fmt.Errorf("styling input %q: %w", row.name, err)
		}
	}
	return sizeColumns(f, sheet, map[string]float64{"A": 26, "B": 18, "C": 10})
}

func writeResults(f *excelize.File, in design.Inputs, res design.Results, header, plain, sci int) error {
	const sheet = "Results"
	rows := []struct {
		name  string
		value float64
		units string
		notes string
	}{
		{"Inductor ripple target", res.RippleNom, "A", "RippleFrac × Iout at Vin nominal"},
		{"Inductance required", res.LRequired, "H", "meets the ripple target"},
		{"Inductor ripple at Vin max", res.RippleVinMax, "A", "with the inductance used"},
		{"Peak inductor current", res.PeakVinMax, "A", "at Vin max"},
		{"Sense resistor", res.Rsense, "Ω", "current limit with margin over peak"},
		{"Short-circuit peak current", res.PeakShort, "A", "includes comparator delay"},
		{"Output capacitance minimum", res.CoutLoadOff, "F", "holds load-off overshoot"},
		{"Output ripple estimate", res.VoutRipplePP, "Vpp", "RSS of capacitive and ESR terms"},
		{"Output capacitor RMS current", res.OutCapRMS, "A", "triangular ripple"},
		{"Duty cycle", res.DutyNom, "", "Vout / Vin nominal"},
		{"Input capacitor RMS current", res.InCapRMS, "A", "worst case, D = 0.5"},
		{"Input capacitance required", res.CinRequired, "F", "meets the input ripple spec"},
		{"Timing resistor", res.Rt, "Ω", "sets the switching frequency"},
		{"Feedback top resistor", res.RfbTop, "Ω", "standard divider, given bottom"},
		{"Compensation resistor", in.Rcomp, "Ω", "procedure starting value"},
		{"Compensation capacitor", res.Ccomp, "F", "zero a decade below crossover"},
		{"High-frequency capacitor", res.Chf, "F", "pole at the ESR zero, minus Cbw"},
	}

	head := []any{"Item", "Value", "Units", "Notes"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", header); err != nil {
		return fmt.Errorf("styling results header: %w", err)
	}
	for i, row := range rows {
		values := []any{row.name, row.value, row.units, row.notes}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing result %q: %w", row.name, err)
		}
		vcell := fmt.Sprintf("B%d", i+2)
		if err := f.SetCellStyle(sheet, vcell, vcell, numberStyle(row.value, plain, sci)); err != nil {
			return fmt.Errorf("styling result %q: %w", row.name, err)
		}
	}
	return sizeColumns(f, sheet, map[string]float64{"A": 28, "B": 18, "C": 10, "D": 45})
}

func writeEquations(f *excelize.File, records []eqsift.Record, header int) error {
	const sheet = "Equations"
	head := []any{"Equation", "Caption", "Snapshot"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("writing equations header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", header); err != nil {
		return fmt.Errorf("styling equations header: %w", err)
	}

	// Snapshots are tall; give each one a block of rows.
	row := 2
	for _, rec := range records {
		values := []any{rec.Text, rec.Context}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("writing equation %q: %w", rec.Text, err)
		}
		if rec.ImagePath != "" {
			_ = f.AddPicture(sheet, fmt.Sprintf("C%d", row), rec.ImagePath,
				&excelize.GraphicOptions{ScaleX: 0.6, ScaleY: 0.6})
		}
		row += 8
	}
	return sizeColumns(f, sheet, map[string]float64{"A": 10, "B": 45, "C": 60})
}

// numberStyle picks scientific notation for values outside a comfortable
// plain-decimal range.
func numberStyle(v float64, plain, sci int) int {
	if math.IsInf(v, 0) || v == 0 {
		return plain
	}
	if abs := math.Abs(v); abs < 1e-3 || abs >= 1e4 {
		return sci
	}
	return plain
}

func sizeColumns(f *excelize.File, sheet string, widths map[string]float64) error {
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}
	return nil
}

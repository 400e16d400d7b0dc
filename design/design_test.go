package design

import (
	"math"
	"testing"
)

// approx reports whether got is within rel of want.
func approx(got, want, rel float64) bool {
	if want == 0 {
		return math.Abs(got) < rel
	}
	return math.Abs(got-want)/math.Abs(want) < rel
}

func TestRequiredInductance(t *testing.T) {
	// 12 V in, 5 V out, 2.1 MHz, 2.4 App ripple:
	// 5·7/(12·2.1e6·2.4) = 578.7 nH.
	got := RequiredInductance(12, 5, 2.1e6, 2.4)
	if !approx(got, 578.7e-9, 1e-3) {
		t.Errorf("RequiredInductance = %.4g, want about 578.7 nH", got)
	}
}

func TestInductorRippleRoundTrip(t *testing.T) {
	// The inductance sized for a ripple target must reproduce that ripple.
	l := RequiredInductance(12, 5, 2.1e6, 2.4)
	if got := InductorRipple(12, 5, 2.1e6, l); !approx(got, 2.4, 1e-9) {
		t.Errorf("InductorRipple = %.6g, want 2.4", got)
	}
}

func TestPeakInductorCurrent(t *testing.T) {
	ripple, peak := PeakInductorCurrent(18, 5, 2.1e6, 0.56e-6, 8)
	// 5·13/(18·0.56e-6·2.1e6) = 3.070 App.
	if !approx(ripple, 3.070, 1e-3) {
		t.Errorf("ripple = %.4g, want about 3.070", ripple)
	}
	if !approx(peak, 8+ripple/2, 1e-12) {
		t.Errorf("peak = %.4g, want Iout + ripple/2", peak)
	}
}

func TestSenseResistor(t *testing.T) {
	// 75 mV threshold, 10 A peak, 1.25 margin: 6 mΩ.
	if got := SenseResistor(0.075, 10, 1.25); !approx(got, 0.006, 1e-9) {
		t.Errorf("SenseResistor = %.4g, want 6 mΩ", got)
	}
}

func TestShortCircuitPeak(t *testing.T) {
	// Vcs/Rs = 12.5 A, plus 18·45e-9/0.56e-6 = 1.446 A of delay overshoot.
	got := ShortCircuitPeak(18, 45e-9, 0.075, 0.006, 0.56e-6)
	if !approx(got, 12.5+1.446, 1e-3) {
		t.Errorf("ShortCircuitPeak = %.4g, want about 13.95", got)
	}
}

func TestLoadOffCapacitance(t *testing.T) {
	// ½·L·I² = ½·C·((Vout+ΔV)²−Vout²):
	// 0.56e-6·64/(2·5·0.30 + 0.09) = 11.60 µF.
	got := LoadOffCapacitance(0.56e-6, 8, 5, 0.30)
	if !approx(got, 11.60e-6, 1e-3) {
		t.Errorf("LoadOffCapacitance = %.4g, want about 11.60 µF", got)
	}
}

func TestOutputCapRMS(t *testing.T) {
	if got := OutputCapRMS(2.4); !approx(got, 2.4/math.Sqrt(12), 1e-12) {
		t.Errorf("OutputCapRMS = %.4g, want ΔIL/√12", got)
	}
}

func TestInputCapRMS(t *testing.T) {
	// Worst case D = 0.5 gives Iout/2.
	if got := InputCapRMS(8, 0.5); !approx(got, 4, 1e-12) {
		t.Errorf("InputCapRMS = %.4g, want 4", got)
	}
	if got := InputCapRMS(8, 0); got != 0 {
		t.Errorf("InputCapRMS at D=0 = %.4g, want 0", got)
	}
}

func TestRequiredInputCapacitanceESRDominated(t *testing.T) {
	// 4 A RMS through 50 mΩ is 0.2 Vpp of ESR ripple alone, over the
	// 0.12 Vpp spec: no capacitance can meet it.
	got := RequiredInputCapacitance(8, 2.1e6, 0.5, 0.120, 0.050)
	if !math.IsInf(got, 1) {
		t.Errorf("RequiredInputCapacitance = %.4g, want +Inf", got)
	}
}

func TestRequiredInputCapacitance(t *testing.T) {
	// With 2 mΩ ESR: dvESR = 8 mVpp, allowed cap ripple √(0.120²−0.008²)
	// = 0.11973 Vpp, Cin = 8·0.25/(2.1e6·0.11973) = 7.955 µF.
	got := RequiredInputCapacitance(8, 2.1e6, 0.5, 0.120, 0.002)
	if !approx(got, 7.955e-6, 1e-3) {
		t.Errorf("RequiredInputCapacitance = %.4g, want about 7.955 µF", got)
	}
}

func TestTimingResistor(t *testing.T) {
	// 2.1 MHz: Rt = ((1e6/2100 − 53)/45) kΩ = 9.4042 kΩ.
	got := TimingResistor(2.1e6)
	if !approx(got, 9404.2, 1e-4) {
		t.Errorf("TimingResistor = %.6g, want about 9404.2 Ω", got)
	}
}

func TestFeedbackTop(t *testing.T) {
	// 5 V output, 0.8 V reference, 10 kΩ bottom: 52.5 kΩ.
	if got := FeedbackTop(5, 0.8, 10_000); !approx(got, 52_500, 1e-9) {
		t.Errorf("FeedbackTop = %.6g, want 52500", got)
	}
	if got := FeedbackTop(0.8, 0.8, 10_000); got != 0 {
		t.Errorf("FeedbackTop at Vout=Vref = %.4g, want 0", got)
	}
}

func TestCompensationCap(t *testing.T) {
	// 10/(2π·60 kHz·10 kΩ) = 2.653 nF.
	got := CompensationCap(60e3, 10e3)
	if !approx(got, 2.6526e-9, 1e-3) {
		t.Errorf("CompensationCap = %.4g, want about 2.653 nF", got)
	}
}

func TestHighFreqCap(t *testing.T) {
	// 1/(2π·500 kHz·10 kΩ) − 0.8 pF = 31.83 pF − 0.8 pF.
	got := HighFreqCap(500e3, 10e3, 0.8e-12)
	if !approx(got, 31.031e-12, 1e-3) {
		t.Errorf("HighFreqCap = %.4g, want about 31.03 pF", got)
	}
}

func TestRunDefaults(t *testing.T) {
	in := DefaultInputs()
	res := Run(in)

	if !approx(res.RippleNom, 2.4, 1e-12) {
		t.Errorf("RippleNom = %.4g, want 2.4", res.RippleNom)
	}
	if !approx(res.DutyNom, 5.0/12.0, 1e-12) {
		t.Errorf("DutyNom = %.4g, want 5/12", res.DutyNom)
	}
	if res.LRequired <= 0 {
		t.Errorf("LRequired = %.4g, want positive", res.LRequired)
	}
	// Ripple at Vin max exceeds the nominal target: larger volt-seconds.
	if res.RippleVinMax <= res.RippleNom {
		t.Errorf("RippleVinMax = %.4g, want above the nominal %.4g",
			res.RippleVinMax, res.RippleNom)
	}
	if res.PeakVinMax <= 8 {
		t.Errorf("PeakVinMax = %.4g, want above Iout", res.PeakVinMax)
	}
	// The sense threshold with margin lands above the worst-case peak.
	if limit := in.VcsTh / res.Rsense; limit <= res.PeakVinMax {
		t.Errorf("current limit %.4g not above peak %.4g", limit, res.PeakVinMax)
	}
	if res.PeakShort <= res.PeakVinMax {
		t.Errorf("PeakShort = %.4g, want above the operating peak", res.PeakShort)
	}
	if !approx(res.Rt, 9404.2, 1e-4) {
		t.Errorf("Rt = %.6g, want about 9404.2", res.Rt)
	}
	if !approx(res.RfbTop, 52_500, 1e-9) {
		t.Errorf("RfbTop = %.6g, want 52500", res.RfbTop)
	}
}

func TestRunFallsBackToRequiredInductance(t *testing.T) {
	in := DefaultInputs()
	in.LUsed = 0
	res := Run(in)

	// With no chosen inductor the required value is used, so the nominal
	// ripple is reproduced exactly at Vin nominal.
	ripple := InductorRipple(in.VinNom, in.Vout, in.Fsw, res.LRequired)
	if !approx(ripple, res.RippleNom, 1e-9) {
		t.Errorf("ripple with LRequired = %.4g, want %.4g", ripple, res.RippleNom)
	}
}

func TestRunClampsDuty(t *testing.T) {
	in := DefaultInputs()
	in.VinNom = 4 // below Vout: raw duty would exceed 1
	res := Run(in)
	if res.DutyNom != 0.95 {
		t.Errorf("DutyNom = %.4g, want clamped to 0.95", res.DutyNom)
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	if len(labels) != 14 {
		t.Fatalf("len(Labels()) = %d, want 14", len(labels))
	}
	seen := make(map[string]bool)
	for _, l := range labels {
		if l.Token == "" || l.Caption == "" {
			t.Errorf("label %+v has an empty field", l)
		}
		if seen[l.Token] {
			t.Errorf("duplicate token %q", l.Token)
		}
		seen[l.Token] = true
	}
	if seen["(42)"] {
		t.Error("token (42) should not be listed")
	}
	if !seen["(31)"] || !seen["(45)"] {
		t.Error("endpoints (31) and (45) missing")
	}
}

func TestDefaultPages(t *testing.T) {
	pr := DefaultPages()
	if pr.First != 36 || pr.Last != 39 {
		t.Errorf("DefaultPages = %+v, want pages 36-39", pr)
	}
}

package design

import "math"

// RequiredInductance returns the buck inductance that hits the ripple
// target at the nominal input: L = Vout·(Vin−Vout)/(Vin·Fsw·ΔIL).
func RequiredInductance(vinNom, vout, fsw, rippleA float64) float64 {
	return vout * (vinNom - vout) / (vinNom * fsw * rippleA)
}

// InductorRipple returns the peak-to-peak inductor ripple current for a
// given inductance: ΔIL = Vout·(Vin−Vout)/(Vin·L·Fsw).
func InductorRipple(vin, vout, fsw, l float64) float64 {
	return vout * (vin - vout) / (vin * l * fsw)
}

// PeakInductorCurrent returns the ripple and the resulting peak inductor
// current at the maximum input voltage, where ripple is largest.
func PeakInductorCurrent(vinMax, vout, fsw, l, iout float64) (ripple, peak float64) {
	ripple = InductorRipple(vinMax, vout, fsw, l)
	return ripple, iout + ripple/2
}

// SenseResistor sizes the current-sense resistor from the current-limit
// threshold, with margin over the worst-case peak.
func SenseResistor(vcsTh, peakA, margin float64) float64 {
	return vcsTh / (margin * peakA)
}

// ShortCircuitPeak returns the peak inductor current into a short,
// accounting for the comparator delay: Vcs/Rs + VinMax·tDelay/L.
func ShortCircuitPeak(vinMax, tDelay, vcsTh, rsense, l float64) float64 {
	return vcsTh/rsense + vinMax*tDelay/l
}

// LoadOffCapacitance returns the minimum output capacitance holding the
// overshoot on full load release, from the inductor energy transfer:
// ½·L·I² = ½·C·((Vout+ΔV)² − Vout²).
func LoadOffCapacitance(l, iout, vout, overshoot float64) float64 {
	return l * iout * iout / (2*vout*overshoot + overshoot*overshoot)
}

// OutputRipplePP estimates the peak-to-peak output ripple as the RSS of
// the capacitive and ESR contributions.
func OutputRipplePP(rippleA, fsw, cout, esr float64) float64 {
	vc := rippleA / (8 * fsw * cout)
	vesr := rippleA * esr
	return math.Sqrt(vc*vc + vesr*vesr)
}

// OutputCapRMS returns the output capacitor RMS ripple current for a
// triangular inductor ripple: ΔIL/√12.
func OutputCapRMS(rippleA float64) float64 {
	return rippleA / math.Sqrt(12)
}

// InputCapRMS returns the input capacitor RMS ripple current:
// Iout·√(D·(1−D)), worst at D = 0.5.
func InputCapRMS(iout, duty float64) float64 {
	return iout * math.Sqrt(duty*(1-duty))
}

// RequiredInputCapacitance sizes the input capacitance so the combined
// capacitive and ESR ripple stays within the spec (RSS combination, with
// ΔVcap ≈ Iout·D·(1−D)/(Fsw·Cin) for the triangular capacitor current).
// Returns +Inf when the ESR ripple alone already exceeds the spec, since
// no amount of capacitance can fix that.
func RequiredInputCapacitance(iout, fsw, duty, vinRipplePP, esr float64) float64 {
	dvESR := InputCapRMS(iout, duty) * esr
	if dvESR >= vinRipplePP {
		return math.Inf(1)
	}
	dvCapAllowed := math.Sqrt(vinRipplePP*vinRipplePP - dvESR*dvESR)
	if dvCapAllowed <= 0 {
		return math.Inf(1)
	}
	return iout * duty * (1 - duty) / (fsw * dvCapAllowed)
}

// TimingResistor inverts the oscillator relation
// Fsw(kHz) = 10⁶/(45·Rt(kΩ) + 53) to the resistor in ohms.
func TimingResistor(fsw float64) float64 {
	fswKHz := fsw / 1_000.0
	rtKOhm := (1_000_000.0/fswKHz - 53.0) / 45.0
	return rtKOhm * 1_000.0
}

// FeedbackTop returns the upper feedback divider resistor for the standard
// divider Vout = Vref·(1 + Rtop/Rbottom). Zero when Vout does not exceed
// the reference.
func FeedbackTop(vout, vref, rBottom float64) float64 {
	if vout <= vref {
		return 0
	}
	return rBottom * (vout/vref - 1)
}

// CompensationCap places the compensation zero a decade below crossover:
// Ccomp = 10/(2π·fc·Rcomp).
func CompensationCap(fc, rcomp float64) float64 {
	return 10 / (2 * math.Pi * fc * rcomp)
}

// HighFreqCap places the high-frequency pole at the output capacitor ESR
// zero, net of the error amplifier's own bandwidth capacitance:
// Chf = 1/(2π·fESR·Rcomp) − Cbw.
func HighFreqCap(fesr, rcomp, cbw float64) float64 {
	return 1/(2*math.Pi*fesr*rcomp) - cbw
}

// Run evaluates the whole procedure for one operating point.
func Run(in Inputs) Results {
	duty := clamp(in.Vout/in.VinNom, 0, 0.95)

	rippleNom := in.RippleFrac * in.Iout
	lRequired := RequiredInductance(in.VinNom, in.Vout, in.Fsw, rippleNom)

	l := in.LUsed
	if l == 0 {
		l = lRequired
	}
	rippleMax, peakMax := PeakInductorCurrent(in.VinMax, in.Vout, in.Fsw, l, in.Iout)

	rsense := SenseResistor(in.VcsTh, peakMax, in.PeakMargin)
	peakShort := ShortCircuitPeak(in.VinMax, in.TDelay, in.VcsTh, rsense, l)

	coutLoadOff := LoadOffCapacitance(l, in.Iout, in.Vout, in.VoutOvershoot)

	// With no effective output capacitance supplied, the load-off minimum
	// serves as the baseline for the ripple estimate.
	voutRipple := OutputRipplePP(rippleNom, in.Fsw, coutLoadOff, in.RoutESR)

	// Input-side figures use the worst-case duty of 0.5.
	const worstDuty = 0.5
	return Results{
		RippleNom:    rippleNom,
		LRequired:    lRequired,
		RippleVinMax: rippleMax,
		PeakVinMax:   peakMax,
		Rsense:       rsense,
		PeakShort:    peakShort,
		CoutLoadOff:  coutLoadOff,
		VoutRipplePP: voutRipple,
		OutCapRMS:    OutputCapRMS(rippleNom),
		DutyNom:      duty,
		InCapRMS:     InputCapRMS(in.Iout, worstDuty),
		CinRequired:  RequiredInputCapacitance(in.Iout, in.Fsw, worstDuty, in.VinRipplePP, in.RinESR),
		Rt:           TimingResistor(in.Fsw),
		RfbTop:       FeedbackTop(in.Vout, in.Vref, in.RfbBottom),
		Ccomp:        CompensationCap(in.Fc, in.Rcomp),
		Chf:          HighFreqCap(in.FesrZero, in.Rcomp, in.Cbw),
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Package design implements the closed-form design procedure for a
// peak-current-mode synchronous buck converter: inductor selection,
// current sensing, input/output capacitance, switching-frequency setting,
// feedback divider, and error-amplifier compensation. All functions are
// pure; the package is a domain-lookup layer consumed by the exporters.
package design

// Inputs is the electrical operating point and the component assumptions
// the procedure starts from. All values are SI units (V, A, Hz, H, F, Ω, s).
type Inputs struct {
	VinNom float64 `json:"vin_nom"` // nominal input voltage
	VinMax float64 `json:"vin_max"` // maximum input voltage
	Vout   float64 `json:"vout"`    // regulated output voltage
	Iout   float64 `json:"iout"`    // full load current
	Fsw    float64 `json:"fsw"`     // switching frequency

	// RippleFrac is the inductor ripple-current target as a fraction of
	// Iout; datasheet procedures typically use about 30%.
	RippleFrac float64 `json:"ripple_frac"`

	// LUsed is the chosen standard inductance. Zero means "use the
	// computed required inductance" for the downstream checks.
	LUsed float64 `json:"l_used"`

	// VoutOvershoot is the allowed output overshoot on full load release.
	VoutOvershoot float64 `json:"vout_overshoot"`

	RoutESR     float64 `json:"rout_esr"`      // output capacitor ESR
	RinESR      float64 `json:"rin_esr"`       // input capacitor ESR
	VinRipplePP float64 `json:"vin_ripple_pp"` // input ripple spec, peak to peak

	VcsTh      float64 `json:"vcs_th"`      // current-limit threshold voltage
	PeakMargin float64 `json:"peak_margin"` // current-limit margin over IL peak
	TDelay     float64 `json:"t_delay"`     // current-sense comparator delay

	Vref      float64 `json:"vref"`       // feedback reference voltage
	RfbBottom float64 `json:"rfb_bottom"` // lower feedback divider resistor

	Fc       float64 `json:"fc"`        // target loop crossover frequency
	Rcomp    float64 `json:"rcomp"`     // compensation resistor starting value
	FesrZero float64 `json:"fesr_zero"` // output capacitor ESR-zero frequency
	Cbw      float64 `json:"cbw"`       // error-amp bandwidth-limiting capacitance
}

// DefaultInputs returns the 12 V to 5 V, 8 A, 2.1 MHz reference design
// point used throughout the procedure's worked example.
func DefaultInputs() Inputs {
	return Inputs{
		VinNom:        12.0,
		VinMax:        18.0,
		Vout:          5.0,
		Iout:          8.0,
		Fsw:           2.1e6,
		RippleFrac:    0.30,
		LUsed:         0.56e-6,
		VoutOvershoot: 0.075,
		RoutESR:       1e-3,
		RinESR:        2e-3,
		VinRipplePP:   0.120,
		VcsTh:         0.060,
		PeakMargin:    1.25,
		TDelay:        45e-9,
		Vref:          0.8,
		RfbBottom:     10_000.0,
		Fc:            60_000.0,
		Rcomp:         10_000.0,
		FesrZero:      500_000.0,
		Cbw:           0.8e-12,
	}
}

// Results collects every quantity the procedure computes.
type Results struct {
	RippleNom    float64 `json:"ripple_nom"`     // inductor ripple target at VinNom
	LRequired    float64 `json:"l_required"`     // inductance meeting the ripple target
	RippleVinMax float64 `json:"ripple_vin_max"` // ripple at VinMax with the chosen L
	PeakVinMax   float64 `json:"peak_vin_max"`   // peak inductor current at VinMax
	Rsense       float64 `json:"rsense"`         // current-sense resistor
	PeakShort    float64 `json:"peak_short"`     // short-circuit peak inductor current
	CoutLoadOff  float64 `json:"cout_load_off"`  // output capacitance for load-off overshoot
	VoutRipplePP float64 `json:"vout_ripple_pp"` // estimated output ripple, peak to peak
	OutCapRMS    float64 `json:"out_cap_rms"`    // output capacitor RMS ripple current
	DutyNom      float64 `json:"duty_nom"`       // duty cycle at VinNom
	InCapRMS     float64 `json:"in_cap_rms"`     // input capacitor RMS ripple current
	CinRequired  float64 `json:"cin_required"`   // input capacitance meeting the ripple spec
	Rt           float64 `json:"rt"`             // frequency-set resistor
	RfbTop       float64 `json:"rfb_top"`        // upper feedback divider resistor
	Ccomp        float64 `json:"ccomp"`          // compensation zero capacitor
	Chf          float64 `json:"chf"`            // high-frequency pole capacitor
}

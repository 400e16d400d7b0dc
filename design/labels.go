package design

import "github.com/mvolk/eqsift"

// Labels returns the datasheet equation-number tokens backing the design
// procedure, in page order, for symbolic snapshot lookup. Token "(42)" is
// omitted: that equation is drawn as a figure in the source document and
// cannot be found by text search.
func Labels() []eqsift.Label {
	return []eqsift.Label{
		{Token: "(31)", Caption: "Buck inductance"},
		{Token: "(32)", Caption: "Peak inductor current"},
		{Token: "(33)", Caption: "Slope compensation cross-check"},
		{Token: "(34)", Caption: "Current-sense resistor"},
		{Token: "(35)", Caption: "Short-circuit peak inductor current"},
		{Token: "(36)", Caption: "Output capacitance for load-off overshoot"},
		{Token: "(37)", Caption: "Output ripple (capacitive + ESR)"},
		{Token: "(38)", Caption: "Output capacitor RMS ripple current"},
		{Token: "(39)", Caption: "Input capacitor RMS ripple current"},
		{Token: "(40)", Caption: "Input capacitance"},
		{Token: "(41)", Caption: "Frequency set resistor"},
		{Token: "(43)", Caption: "Compensation resistor"},
		{Token: "(44)", Caption: "Compensation zero placement"},
		{Token: "(45)", Caption: "High-frequency pole at ESR zero"},
	}
}

// DefaultPages is the page range the design equations appear on in the
// reference datasheet.
func DefaultPages() eqsift.PageRange {
	return eqsift.PageRange{First: 36, Last: 39}
}

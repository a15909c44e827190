package entities

// MeasurementUnit identifies a purchase/measurement unit.
//
// Units are partitioned into two disjoint categories: mass (mg, g, kg, ton) and
// volume (ml, l, m³). Conversion is only defined within one category; the unit
// strings are fixed and case-sensitive.

type MeasurementUnit string

const (
	UnitMilligram  MeasurementUnit = "mg"
	UnitGram       MeasurementUnit = "g"
	UnitKilogram   MeasurementUnit = "kg"
	UnitTon        MeasurementUnit = "ton"
	UnitMilliliter MeasurementUnit = "ml"
	UnitLiter      MeasurementUnit = "l"
	UnitCubicMeter MeasurementUnit = "m³"
)

package pricing

import "strconv"

// Settings keys overriding the machine depreciation defaults. The prefix is
// shared so the settings store can be queried in one pass.
const (
	DepreciationKeyPrefix = "depreciacion_"

	keyInitialCost      = DepreciationKeyPrefix + "costo_inicial"
	keyResidualFraction = DepreciationKeyPrefix + "valor_residual"
	keyUsefulLifeYears  = DepreciationKeyPrefix + "vida_util"
	keyMonthlyHours     = DepreciationKeyPrefix + "horas_mes"
)

// DepreciationParams holds the straight-line depreciation parameters of the
// printer. The resolved struct is immutable; callers get their own copy.
type DepreciationParams struct {
	InitialCost      float64
	ResidualFraction float64
	UsefulLifeYears  float64
	MonthlyHours     float64
}

func DefaultDepreciationParams() DepreciationParams {
	return DepreciationParams{
		InitialCost:      1_400_000,
		ResidualFraction: 0.1,
		UsefulLifeYears:  3,
		MonthlyHours:     210,
	}
}

// ResolveDepreciationParams overlays persisted overrides on the defaults.
// Persisted values always win; absent keys keep their default. Unknown keys
// and values that do not parse as floats are ignored, so a corrupt setting
// degrades to the default instead of failing the quotation.
func ResolveDepreciationParams(overrides map[string]string) DepreciationParams {
	p := DefaultDepreciationParams()
	for key, raw := range overrides {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		switch key {
		case keyInitialCost:
			p.InitialCost = v
		case keyResidualFraction:
			p.ResidualFraction = v
		case keyUsefulLifeYears:
			p.UsefulLifeYears = v
		case keyMonthlyHours:
			p.MonthlyHours = v
		}
	}
	return p
}

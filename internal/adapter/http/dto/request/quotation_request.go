package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cotizador3d/internal/domain/entities"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// optionalFloatDefaults enumerates every optional numeric field of the
// quotation payload and its documented default. Omitting a field is
// equivalent to sending the listed value.
var optionalFloatDefaults = map[string]float64{
	"cantidadPiezas":                1,
	"piezasPorLote":                 1,
	"factorSeguridad":               1,
	"usoElectricidad":               0,
	"horasDiseno":                   0,
	"costoHoraDiseno":               0,
	"gif":                           0,
	"aiu":                           0,
	"porcentajeMarcaAgua":           0,
	"margenMinorista":               0,
	"margenMayorista":               0,
	"costoCarrete":                  0,
	"pesoCarrete":                   0,
	"costo_mano_obra_postprocesado": 0,
}

// NormalizeQuotation validates and coerces a raw quotation payload into an
// immutable, fully defaulted input. It is a pure transform: required fields
// are nombrePieza, pesoPieza and tiempoImpresion; every other field falls
// back to its default. Numeric fields accept JSON numbers and numeric
// strings; anything else fails with a *ValidationError.
func NormalizeQuotation(raw map[string]any) (entities.QuotationInput, error) {
	n := &normalizer{raw: raw}

	in := entities.QuotationInput{
		PieceName:    strings.TrimSpace(n.str("nombrePieza")),
		WeightGrams:  n.requiredFloat("pesoPieza"),
		PrintMinutes: n.requiredFloat("tiempoImpresion"),

		Quantity:       n.intFloorOne("cantidadPiezas"),
		PiecesPerBatch: n.intFloorOne("piezasPorLote"),

		SafetyFactor:    n.optFloat("factorSeguridad"),
		ElectricityRate: n.optFloat("usoElectricidad"),
		DesignHours:     n.optFloat("horasDiseno"),
		DesignRate:      n.optFloat("costoHoraDiseno"),

		GIFPercent: n.optFloat("gif"),
		AIUPercent: n.optFloat("aiu"),

		WatermarkEnabled: n.boolean("incluirMarcaAgua"),
		WatermarkPercent: n.optFloat("porcentajeMarcaAgua"),

		RetailMarginPercent:    n.optFloat("margenMinorista"),
		WholesaleMarginPercent: n.optFloat("margenMayorista"),

		FilamentProfileID: strings.TrimSpace(n.str("perfilFilamentoId")),
		SpoolCost:         n.optFloat("costoCarrete"),
		SpoolWeightKg:     n.optFloat("pesoCarrete"),

		MachineID: strings.TrimSpace(n.str("maquinaId")),

		PostprocessingEnabled:   n.boolean("incluir_postprocesado"),
		PostprocessingLevel:     strings.TrimSpace(n.str("nivel_dificultad_postprocesado")),
		PostprocessingLaborCost: n.optFloat("costo_mano_obra_postprocesado"),
		Supplies:                n.supplies("insumos_postprocesado"),
	}

	if in.PieceName == "" && n.err == nil {
		n.fail("nombrePieza", "is required")
	}
	if n.err != nil {
		return entities.QuotationInput{}, n.err
	}
	return in, nil
}

// normalizer walks the raw payload, keeping the first validation failure.
type normalizer struct {
	raw map[string]any
	err error
}

func (n *normalizer) fail(field, reason string) {
	if n.err == nil {
		n.err = &ValidationError{Field: field, Reason: reason}
	}
}

func (n *normalizer) requiredFloat(key string) float64 {
	v, ok := n.raw[key]
	if !ok || v == nil {
		n.fail(key, "is required")
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		n.fail(key, "must be numeric")
		return 0
	}
	return f
}

func (n *normalizer) optFloat(key string) float64 {
	def := optionalFloatDefaults[key]
	v, ok := n.raw[key]
	if !ok || v == nil {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		n.fail(key, "must be numeric")
		return def
	}
	return f
}

func (n *normalizer) intFloorOne(key string) int {
	i := int(n.optFloat(key))
	if i < 1 {
		i = 1
	}
	return i
}

func (n *normalizer) boolean(key string) bool {
	v, ok := n.raw[key]
	if !ok || v == nil {
		return false
	}
	return toBool(v)
}

func (n *normalizer) str(key string) string {
	v, ok := n.raw[key]
	if !ok || v == nil {
		return ""
	}
	return toString(v)
}

func (n *normalizer) supplies(key string) []entities.SupplyLine {
	v, ok := n.raw[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		n.fail(key, "must be a list")
		return nil
	}

	lines := make([]entities.SupplyLine, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			n.fail(fmt.Sprintf("%s[%d]", key, i), "must be an object")
			return nil
		}
		item := &normalizer{raw: m}
		line := entities.SupplyLine{
			UnitCost: item.optFloat("costo"),
			Quantity: item.optFloat("cantidad"),
		}
		if item.err != nil {
			n.fail(fmt.Sprintf("%s[%d]", key, i), item.err.Error())
			return nil
		}
		lines = append(lines, line)
	}
	return lines
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

func toBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		if s == "true" {
			return true
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f != 0
	}
	return false
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	}
	return ""
}

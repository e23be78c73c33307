package request

import (
	"errors"
	"reflect"
	"testing"
)

func validPayload() map[string]any {
	return map[string]any{
		"nombrePieza":     "engranaje",
		"pesoPieza":       float64(50),
		"tiempoImpresion": float64(120),
	}
}

func TestNormalizeQuotation_RequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		field string
		mut   func(map[string]any)
	}{
		{"missing name", "nombrePieza", func(m map[string]any) { delete(m, "nombrePieza") }},
		{"blank name", "nombrePieza", func(m map[string]any) { m["nombrePieza"] = "   " }},
		{"missing weight", "pesoPieza", func(m map[string]any) { delete(m, "pesoPieza") }},
		{"missing print time", "tiempoImpresion", func(m map[string]any) { delete(m, "tiempoImpresion") }},
		{"non numeric weight", "pesoPieza", func(m map[string]any) { m["pesoPieza"] = "cincuenta gramos" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			tc.mut(payload)

			_, err := NormalizeQuotation(payload)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestNormalizeQuotation_Defaults(t *testing.T) {
	in, err := NormalizeQuotation(validPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.Quantity != 1 || in.PiecesPerBatch != 1 {
		t.Fatalf("expected quantity and batch size to default to 1, got %d/%d",
			in.Quantity, in.PiecesPerBatch)
	}
	if in.SafetyFactor != 1 {
		t.Fatalf("expected safety factor 1, got %v", in.SafetyFactor)
	}
	if in.ElectricityRate != 0 || in.DesignHours != 0 || in.DesignRate != 0 ||
		in.GIFPercent != 0 || in.AIUPercent != 0 ||
		in.RetailMarginPercent != 0 || in.WholesaleMarginPercent != 0 {
		t.Fatalf("expected zero defaults, got %+v", in)
	}
	if in.WatermarkEnabled || in.WatermarkPercent != 0 {
		t.Fatalf("expected watermark off by default")
	}
	if in.PostprocessingEnabled || in.Supplies != nil {
		t.Fatalf("expected postprocessing off by default")
	}
}

func TestNormalizeQuotation_ExplicitDefaultsAreEquivalent(t *testing.T) {
	explicit := validPayload()
	explicit["cantidadPiezas"] = float64(1)
	explicit["piezasPorLote"] = float64(1)
	explicit["factorSeguridad"] = float64(1)
	explicit["gif"] = float64(0)
	explicit["aiu"] = float64(0)
	explicit["incluirMarcaAgua"] = false
	explicit["porcentajeMarcaAgua"] = float64(0)

	omitted, err := NormalizeQuotation(validPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	supplied, err := NormalizeQuotation(explicit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(omitted, supplied) {
		t.Fatalf("omitted defaults differ from explicit defaults:\n%+v\n%+v", omitted, supplied)
	}
}

func TestNormalizeQuotation_Coercion(t *testing.T) {
	t.Run("numeric strings", func(t *testing.T) {
		payload := validPayload()
		payload["pesoPieza"] = "50.5"
		payload["cantidadPiezas"] = "3"

		in, err := NormalizeQuotation(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.WeightGrams != 50.5 || in.Quantity != 3 {
			t.Fatalf("unexpected coercion: weight=%v quantity=%d", in.WeightGrams, in.Quantity)
		}
	})

	t.Run("boolean flags accept numbers", func(t *testing.T) {
		payload := validPayload()
		payload["incluirMarcaAgua"] = float64(1)
		payload["incluir_postprocesado"] = "true"

		in, err := NormalizeQuotation(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !in.WatermarkEnabled || !in.PostprocessingEnabled {
			t.Fatalf("expected both flags on, got %+v", in)
		}
	})

	t.Run("batch size floors at one", func(t *testing.T) {
		payload := validPayload()
		payload["piezasPorLote"] = float64(0)
		payload["cantidadPiezas"] = float64(-4)

		in, err := NormalizeQuotation(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.PiecesPerBatch != 1 || in.Quantity != 1 {
			t.Fatalf("expected floors of 1, got batch=%d quantity=%d",
				in.PiecesPerBatch, in.Quantity)
		}
	})

	t.Run("non numeric optional field", func(t *testing.T) {
		payload := validPayload()
		payload["gif"] = []any{}

		_, err := NormalizeQuotation(payload)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "gif" {
			t.Fatalf("expected ValidationError on gif, got %v", err)
		}
	})
}

func TestNormalizeQuotation_Supplies(t *testing.T) {
	t.Run("parses line items", func(t *testing.T) {
		payload := validPayload()
		payload["incluir_postprocesado"] = true
		payload["costo_mano_obra_postprocesado"] = float64(1500)
		payload["insumos_postprocesado"] = []any{
			map[string]any{"costo": float64(200), "cantidad": float64(2)},
			map[string]any{"costo": "50", "cantidad": float64(3)},
		}

		in, err := NormalizeQuotation(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(in.Supplies) != 2 {
			t.Fatalf("expected 2 supply lines, got %d", len(in.Supplies))
		}
		if in.Supplies[0].UnitCost != 200 || in.Supplies[0].Quantity != 2 {
			t.Fatalf("unexpected first line: %+v", in.Supplies[0])
		}
		if in.Supplies[1].UnitCost != 50 {
			t.Fatalf("expected coerced unit cost 50, got %v", in.Supplies[1].UnitCost)
		}
		if in.PostprocessingLaborCost != 1500 {
			t.Fatalf("expected labor cost 1500, got %v", in.PostprocessingLaborCost)
		}
	})

	t.Run("rejects non list", func(t *testing.T) {
		payload := validPayload()
		payload["insumos_postprocesado"] = "lija"

		_, err := NormalizeQuotation(payload)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "insumos_postprocesado" {
			t.Fatalf("expected ValidationError on insumos_postprocesado, got %v", err)
		}
	})

	t.Run("rejects non numeric line", func(t *testing.T) {
		payload := validPayload()
		payload["insumos_postprocesado"] = []any{
			map[string]any{"costo": []any{}, "cantidad": float64(1)},
		}

		_, err := NormalizeQuotation(payload)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestNormalizeQuotation_FilamentProfilePreference(t *testing.T) {
	payload := validPayload()
	payload["perfilFilamentoId"] = "pla-rojo"
	payload["costoCarrete"] = float64(90000)
	payload["pesoCarrete"] = float64(1)

	in, err := NormalizeQuotation(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.FilamentProfileID != "pla-rojo" {
		t.Fatalf("expected profile reference, got %q", in.FilamentProfileID)
	}
	// Explicit spool values survive normalization; the use case overwrites
	// them when the profile resolves.
	if in.SpoolCost != 90000 || in.SpoolWeightKg != 1 {
		t.Fatalf("unexpected spool values: %+v", in)
	}
}

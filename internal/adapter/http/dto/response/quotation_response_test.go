package response

import (
	"testing"
	"time"

	"cotizador3d/internal/domain/entities"
)

func TestFromQuotation(t *testing.T) {
	created := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)
	q := entities.Quotation{
		ID:                "q-1",
		PieceName:         "engranaje",
		WeightGrams:       50,
		PrintMinutes:      120,
		Quantity:          4,
		PiecesPerBatch:    2,
		MachineID:         "ender-3",
		FilamentProfileID: "pla-rojo",
		CreatedAt:         created,
	}
	b := entities.CostBreakdown{
		QuotationID:        "q-1",
		FabricationCost:    4400,
		Subtotal:           64053.33,
		GIFCost:            9608,
		AIUCost:            18415.33,
		FinalUnitPrice:     92076.67,
		RetailUnitPrice:    119699.67,
		WholesaleUnitPrice: 110492,
		BatchCount:         2,
		TotalOrderCost:     368306.67,
	}

	got := FromQuotation(q, b)

	if got.ID != "q-1" || got.NombrePieza != "engranaje" {
		t.Fatalf("unexpected header mapping: %+v", got)
	}
	if got.PesoPieza != 50 || got.TiempoImpresion != 120 {
		t.Fatalf("unexpected input mapping: %+v", got)
	}
	if got.MaquinaID != "ender-3" || got.PerfilFilamentoID != "pla-rojo" {
		t.Fatalf("unexpected reference mapping: %+v", got)
	}
	if got.Subtotal != 64053.33 || got.CostoGif != 9608 || got.CostoAiu != 18415.33 {
		t.Fatalf("unexpected cost mapping: %+v", got)
	}
	if got.PrecioUnitarioFinal != 92076.67 || got.PrecioUnitarioMinorista != 119699.67 {
		t.Fatalf("unexpected price mapping: %+v", got)
	}
	if got.NumeroLotes != 2 || got.CostoTotalPedido != 368306.67 {
		t.Fatalf("unexpected order mapping: %+v", got)
	}
	if !got.CreadoEn.Equal(created) {
		t.Fatalf("unexpected timestamp: %v", got.CreadoEn)
	}
}

func TestFromSummaries(t *testing.T) {
	items := []entities.QuotationSummary{
		{ID: "q-2", PieceName: "base", Quantity: 1, FinalUnitPrice: 1200.50, TotalOrderCost: 1200.50},
		{ID: "q-1", PieceName: "tapa", Quantity: 3, FinalUnitPrice: 800, TotalOrderCost: 2400},
	}

	got := FromSummaries(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "q-2" || got[0].PrecioUnitarioFinal != 1200.50 {
		t.Fatalf("unexpected first item: %+v", got[0])
	}
	if got[1].NombrePieza != "tapa" || got[1].CostoTotalPedido != 2400 {
		t.Fatalf("unexpected second item: %+v", got[1])
	}

	if empty := FromSummaries(nil); len(empty) != 0 || empty == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestOK(t *testing.T) {
	env := OK(map[string]string{"k": "v"}, "listo")
	if !env.Success || env.Message != "listo" || env.Data == nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

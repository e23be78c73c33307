package pricing

import (
	"math"
	"testing"

	"cotizador3d/internal/domain/entities"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func baseInput() entities.QuotationInput {
	return entities.QuotationInput{
		PieceName:              "soporte",
		WeightGrams:            50,
		PrintMinutes:           120,
		Quantity:               1,
		PiecesPerBatch:         1,
		SafetyFactor:           1.1,
		ElectricityRate:        600,
		DesignHours:            2,
		DesignRate:             25000,
		SpoolCost:              80000,
		SpoolWeightKg:          1,
		GIFPercent:             15,
		AIUPercent:             25,
		RetailMarginPercent:    30,
		WholesaleMarginPercent: 20,
	}
}

func TestCalculate(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		got := Calculate(baseInput(), DefaultDepreciationParams(), PostprocessingResult{})

		checks := []struct {
			name string
			got  float64
			want float64
		}{
			{"material unit cost", got.MaterialUnitCost, 80},
			{"fabrication", got.FabricationCost, 4400.00},
			{"elapsed hours", got.ElapsedHours, 2},
			{"energy", got.EnergyCost, 1320.00},
			{"design", got.DesignCost, 50000.00},
			{"depreciation", got.DepreciationCost, 8333.33},
			{"subtotal", got.Subtotal, 64053.33},
			{"gif", got.GIFCost, 9608.00},
			{"aiu", got.AIUCost, 18415.33},
			{"watermark", got.WatermarkCost, 0},
			{"final unit price", got.FinalUnitPrice, 92076.67},
			{"retail unit price", got.RetailUnitPrice, 119699.67},
			{"wholesale unit price", got.WholesaleUnitPrice, 110492.00},
			{"cost per batch", got.CostPerBatch, 92076.67},
			{"total order cost", got.TotalOrderCost, 92076.67},
			{"total minutes", got.TotalMinutes, 120},
			{"total hours", got.TotalHours, 2},
			{"total filament grams", got.TotalFilamentGrams, 50},
			{"total electricity", got.TotalElectricityCost, 1200.00},
			{"total order retail", got.TotalOrderRetailCost, 119699.67},
			{"total order wholesale", got.TotalOrderWholesaleCost, 110492.00},
		}
		for _, c := range checks {
			if round2(c.got) != c.want {
				t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
			}
		}
		if got.BatchCount != 1 {
			t.Errorf("batch count: expected 1, got %d", got.BatchCount)
		}
	})

	t.Run("watermark scenario", func(t *testing.T) {
		in := baseInput()
		in.WatermarkEnabled = true
		in.WatermarkPercent = 10

		got := Calculate(in, DefaultDepreciationParams(), PostprocessingResult{})
		if round2(got.WatermarkCost) != 9207.67 {
			t.Errorf("watermark: expected 9207.67, got %v", got.WatermarkCost)
		}
		if round2(got.FinalUnitPrice) != 101284.33 {
			t.Errorf("final unit price: expected 101284.33, got %v", got.FinalUnitPrice)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		in := baseInput()
		dep := DefaultDepreciationParams()
		first := Calculate(in, dep, PostprocessingResult{})
		for i := 0; i < 5; i++ {
			if Calculate(in, dep, PostprocessingResult{}) != first {
				t.Fatalf("calculation is not deterministic")
			}
		}
	})

	t.Run("zero spool cost", func(t *testing.T) {
		in := baseInput()
		in.SpoolCost = 0

		got := Calculate(in, DefaultDepreciationParams(), PostprocessingResult{})
		if got.MaterialUnitCost != 0 || got.FabricationCost != 0 {
			t.Fatalf("expected zero material cost, got unit=%v fabrication=%v",
				got.MaterialUnitCost, got.FabricationCost)
		}
	})

	t.Run("zero spool weight", func(t *testing.T) {
		in := baseInput()
		in.SpoolWeightKg = 0

		got := Calculate(in, DefaultDepreciationParams(), PostprocessingResult{})
		if got.MaterialUnitCost != 0 {
			t.Fatalf("expected zero material unit cost, got %v", got.MaterialUnitCost)
		}
	})

	t.Run("postprocessing feeds final price", func(t *testing.T) {
		in := baseInput()
		post := PostprocessingResult{LaborCost: 500, SuppliesCost: 250, TotalCost: 750}

		with := Calculate(in, DefaultDepreciationParams(), post)
		without := Calculate(in, DefaultDepreciationParams(), PostprocessingResult{})
		if round2(with.FinalUnitPrice-without.FinalUnitPrice) != 750.00 {
			t.Fatalf("expected final price to grow by 750, got %v",
				with.FinalUnitPrice-without.FinalUnitPrice)
		}
		if with.PostprocessingTotalCost != 750 {
			t.Fatalf("expected postprocessing total 750, got %v", with.PostprocessingTotalCost)
		}
	})
}

func TestCalculate_BatchArithmetic(t *testing.T) {
	cases := []struct {
		name        string
		quantity    int
		batchSize   int
		wantBatches int
	}{
		{"exact fit", 10, 5, 2},
		{"remainder opens a batch", 11, 5, 3},
		{"single batch", 3, 10, 1},
		{"one by one", 7, 1, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			in.Quantity = tc.quantity
			in.PiecesPerBatch = tc.batchSize

			got := Calculate(in, DefaultDepreciationParams(), PostprocessingResult{})
			if got.BatchCount != tc.wantBatches {
				t.Fatalf("expected %d batches, got %d", tc.wantBatches, got.BatchCount)
			}
			if got.TotalOrderCost != got.FinalUnitPrice*float64(tc.quantity) {
				t.Fatalf("total order cost must be final price times quantity exactly")
			}
			if got.TotalMinutes != float64(tc.wantBatches)*in.PrintMinutes {
				t.Fatalf("total minutes must scale with batch count")
			}
			wantGrams := in.WeightGrams / float64(tc.batchSize) * float64(tc.quantity)
			if got.TotalFilamentGrams != wantGrams {
				t.Fatalf("expected %v filament grams, got %v", wantGrams, got.TotalFilamentGrams)
			}
		})
	}
}

func TestCalculatePostprocessing(t *testing.T) {
	t.Run("sums supply lines", func(t *testing.T) {
		got := CalculatePostprocessing(1000, []entities.SupplyLine{
			{UnitCost: 200, Quantity: 2},
			{UnitCost: 50, Quantity: 3},
		})
		if got.LaborCost != 1000 || got.SuppliesCost != 550 || got.TotalCost != 1550 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("empty supplies", func(t *testing.T) {
		got := CalculatePostprocessing(800, nil)
		if got.SuppliesCost != 0 || got.TotalCost != 800 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("negative quantities propagate", func(t *testing.T) {
		got := CalculatePostprocessing(100, []entities.SupplyLine{{UnitCost: 50, Quantity: -2}})
		if got.SuppliesCost != -100 || got.TotalCost != 0 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

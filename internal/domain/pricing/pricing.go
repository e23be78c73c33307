package pricing

import (
	"math"

	"cotizador3d/internal/domain/entities"
)

// Breakdown contains every intermediate and roll-up value of the quotation
// calculation, at full float64 precision. Rounding to money happens at the
// persistence/response boundary, never here.
type Breakdown struct {
	MaterialUnitCost float64
	FabricationCost  float64
	ElapsedHours     float64
	EnergyCost       float64
	DesignCost       float64
	DepreciationCost float64
	Subtotal         float64
	GIFCost          float64
	AIUCost          float64
	WatermarkCost    float64

	PostprocessingLaborCost    float64
	PostprocessingSuppliesCost float64
	PostprocessingTotalCost    float64

	FinalUnitPrice     float64
	RetailUnitPrice    float64
	WholesaleUnitPrice float64

	BatchCount   int
	CostPerBatch float64

	TotalOrderCost          float64
	TotalMinutes            float64
	TotalHours              float64
	TotalFilamentGrams      float64
	TotalElectricityCost    float64
	TotalOrderRetailCost    float64
	TotalOrderWholesaleCost float64
}

// PostprocessingResult is the output of CalculatePostprocessing.
type PostprocessingResult struct {
	LaborCost    float64
	SuppliesCost float64
	TotalCost    float64
}

// CalculatePostprocessing sums the post-processing labor cost and the supply
// line totals (unit cost times quantity). Negative values propagate; keeping
// inputs sane is the caller's responsibility.
func CalculatePostprocessing(laborCost float64, supplies []entities.SupplyLine) PostprocessingResult {
	var suppliesCost float64
	for _, s := range supplies {
		suppliesCost += s.UnitCost * s.Quantity
	}
	return PostprocessingResult{
		LaborCost:    laborCost,
		SuppliesCost: suppliesCost,
		TotalCost:    laborCost + suppliesCost,
	}
}

// Calculate runs the quotation cost pipeline. It is a pure function: fixed
// inputs always produce bit-identical output.
//
// The step order is load-bearing: later steps consume earlier results.
// Percent inputs are whole-number percents (15 means 15%). Depreciation is
// allocated per gram of piece weight. The input must be normalized
// (Quantity and PiecesPerBatch >= 1).
func Calculate(in entities.QuotationInput, dep DepreciationParams, post PostprocessingResult) Breakdown {
	// Material unit cost per gram. A zero spool cost (or weight) quotes the
	// material at zero; it is not an error.
	var materialUnitCost float64
	if spoolGrams := in.SpoolWeightKg * 1000; spoolGrams > 0 {
		materialUnitCost = in.SpoolCost / spoolGrams
	}

	fabricationCost := in.SafetyFactor * materialUnitCost * in.WeightGrams

	elapsedHours := in.PrintMinutes / 60
	energyCost := in.SafetyFactor * in.ElectricityRate * elapsedHours

	designCost := in.DesignRate * in.DesignHours / float64(in.Quantity)

	depreciationPerGram := dep.InitialCost * (1 - dep.ResidualFraction) /
		(dep.UsefulLifeYears * 12 * dep.MonthlyHours)
	depreciationCost := depreciationPerGram * in.WeightGrams

	subtotal := fabricationCost + energyCost + designCost + depreciationCost
	gifCost := subtotal * in.GIFPercent / 100
	aiuCost := (subtotal + gifCost) * in.AIUPercent / 100

	var watermarkCost float64
	if in.WatermarkEnabled {
		watermarkCost = (subtotal + gifCost + aiuCost) * in.WatermarkPercent / 100
	}

	finalUnitPrice := (subtotal + gifCost + aiuCost + watermarkCost + post.TotalCost) /
		float64(in.PiecesPerBatch)
	retailUnitPrice := finalUnitPrice * (1 + in.RetailMarginPercent/100)
	wholesaleUnitPrice := finalUnitPrice * (1 + in.WholesaleMarginPercent/100)

	batchCount := int(math.Ceil(float64(in.Quantity) / float64(in.PiecesPerBatch)))
	costPerBatch := finalUnitPrice * float64(in.PiecesPerBatch)
	totalOrderCost := finalUnitPrice * float64(in.Quantity)

	// Print time is per batch, so the order time scales with the batch count.
	totalMinutes := float64(batchCount) * in.PrintMinutes
	totalHours := totalMinutes / 60
	totalFilamentGrams := in.WeightGrams / float64(in.PiecesPerBatch) * float64(in.Quantity)
	totalElectricityCost := in.ElectricityRate * totalHours

	// Order-level retail/wholesale are derived from the total order cost, not
	// from the margined unit prices. The two can diverge by rounding.
	totalOrderRetailCost := totalOrderCost * (1 + in.RetailMarginPercent/100)
	totalOrderWholesaleCost := totalOrderCost * (1 + in.WholesaleMarginPercent/100)

	return Breakdown{
		MaterialUnitCost: materialUnitCost,
		FabricationCost:  fabricationCost,
		ElapsedHours:     elapsedHours,
		EnergyCost:       energyCost,
		DesignCost:       designCost,
		DepreciationCost: depreciationCost,
		Subtotal:         subtotal,
		GIFCost:          gifCost,
		AIUCost:          aiuCost,
		WatermarkCost:    watermarkCost,

		PostprocessingLaborCost:    post.LaborCost,
		PostprocessingSuppliesCost: post.SuppliesCost,
		PostprocessingTotalCost:    post.TotalCost,

		FinalUnitPrice:     finalUnitPrice,
		RetailUnitPrice:    retailUnitPrice,
		WholesaleUnitPrice: wholesaleUnitPrice,

		BatchCount:   batchCount,
		CostPerBatch: costPerBatch,

		TotalOrderCost:          totalOrderCost,
		TotalMinutes:            totalMinutes,
		TotalHours:              totalHours,
		TotalFilamentGrams:      totalFilamentGrams,
		TotalElectricityCost:    totalElectricityCost,
		TotalOrderRetailCost:    totalOrderRetailCost,
		TotalOrderWholesaleCost: totalOrderWholesaleCost,
	}
}

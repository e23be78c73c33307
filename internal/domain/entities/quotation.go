package entities

import "time"

// SupplyLine is one post-processing supply item (sanding paper, paint,
// solvent, ...) priced as unit cost times quantity.
type SupplyLine struct {
	UnitCost float64 `json:"costo"`
	Quantity float64 `json:"cantidad"`
}

// QuotationInput is the normalized, fully defaulted quotation request.
//
// It is produced once by the request normalizer and never mutated afterwards,
// except for the spool fields which the use case overwrites when a filament
// profile is referenced. Quantity and PiecesPerBatch are guaranteed >= 1.
type QuotationInput struct {
	PieceName    string
	WeightGrams  float64
	PrintMinutes float64

	Quantity       int
	PiecesPerBatch int

	SafetyFactor    float64
	ElectricityRate float64
	DesignHours     float64
	DesignRate      float64

	GIFPercent float64
	AIUPercent float64

	WatermarkEnabled bool
	WatermarkPercent float64

	RetailMarginPercent    float64
	WholesaleMarginPercent float64

	// Either a filament profile reference or an explicit spool cost/weight
	// pair. A non-empty FilamentProfileID takes precedence.
	FilamentProfileID string
	SpoolCost         float64
	SpoolWeightKg     float64

	MachineID string

	PostprocessingEnabled   bool
	PostprocessingLevel     string
	PostprocessingLaborCost float64
	Supplies                []SupplyLine
}

// Quotation is the quotation header persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (UUIDv7, time-ordered)
//
// A quotation is created exactly once, together with its CostBreakdown, and
// is never updated in place.
type Quotation struct {
	ID                      string       `json:"id"`
	PieceName               string       `json:"piece_name"`
	WeightGrams             float64      `json:"weight_grams"`
	PrintMinutes            float64      `json:"print_minutes"`
	Quantity                int          `json:"quantity"`
	PiecesPerBatch          int          `json:"pieces_per_batch"`
	SafetyFactor            float64      `json:"safety_factor"`
	ElectricityRate         float64      `json:"electricity_rate"`
	DesignHours             float64      `json:"design_hours"`
	DesignRate              float64      `json:"design_rate"`
	GIFPercent              float64      `json:"gif_percent"`
	AIUPercent              float64      `json:"aiu_percent"`
	WatermarkEnabled        bool         `json:"watermark_enabled"`
	WatermarkPercent        float64      `json:"watermark_percent"`
	RetailMarginPercent     float64      `json:"retail_margin_percent"`
	WholesaleMarginPercent  float64      `json:"wholesale_margin_percent"`
	FilamentProfileID       string       `json:"filament_profile_id,omitempty"`
	SpoolCost               float64      `json:"spool_cost"`
	SpoolWeightKg           float64      `json:"spool_weight_kg"`
	MachineID               string       `json:"machine_id,omitempty"`
	PostprocessingEnabled   bool         `json:"postprocessing_enabled"`
	PostprocessingLevel     string       `json:"postprocessing_level,omitempty"`
	PostprocessingLaborCost float64      `json:"postprocessing_labor_cost"`
	Supplies                []SupplyLine `json:"supplies,omitempty"`
	CreatedAt               time.Time    `json:"created_at"`
}

// CostBreakdown is the computed cost/price breakdown, one-to-one with a
// Quotation.
//
// Storage model (DynamoDB):
//   - PK: quotation_id (FK to the quotation header)
//
// Both rows are written in the same TransactWriteItems call; neither exists
// without the other. Monetary fields are rounded to 2 decimals when the
// entity is built, never mid-computation.
type CostBreakdown struct {
	QuotationID string `json:"quotation_id"`

	FabricationCost  float64 `json:"fabrication_cost"`
	EnergyCost       float64 `json:"energy_cost"`
	DesignCost       float64 `json:"design_cost"`
	DepreciationCost float64 `json:"depreciation_cost"`
	Subtotal         float64 `json:"subtotal"`
	GIFCost          float64 `json:"gif_cost"`
	AIUCost          float64 `json:"aiu_cost"`
	WatermarkCost    float64 `json:"watermark_cost"`

	PostprocessingLaborCost    float64 `json:"postprocessing_labor_cost"`
	PostprocessingSuppliesCost float64 `json:"postprocessing_supplies_cost"`
	PostprocessingTotalCost    float64 `json:"postprocessing_total_cost"`

	FinalUnitPrice     float64 `json:"final_unit_price"`
	RetailUnitPrice    float64 `json:"retail_unit_price"`
	WholesaleUnitPrice float64 `json:"wholesale_unit_price"`

	BatchCount   int     `json:"batch_count"`
	CostPerBatch float64 `json:"cost_per_batch"`

	TotalOrderCost          float64 `json:"total_order_cost"`
	TotalMinutes            float64 `json:"total_minutes"`
	TotalHours              float64 `json:"total_hours"`
	TotalFilamentGrams      float64 `json:"total_filament_grams"`
	TotalElectricityCost    float64 `json:"total_electricity_cost"`
	TotalOrderRetailCost    float64 `json:"total_order_retail_cost"`
	TotalOrderWholesaleCost float64 `json:"total_order_wholesale_cost"`
}

// QuotationSummary is the list projection of a quotation.
type QuotationSummary struct {
	ID             string    `json:"id"`
	PieceName      string    `json:"piece_name"`
	Quantity       int       `json:"quantity"`
	FinalUnitPrice float64   `json:"final_unit_price"`
	TotalOrderCost float64   `json:"total_order_cost"`
	CreatedAt      time.Time `json:"created_at"`
}

package entities

// FilamentProfile describes a catalogued filament spool. The quotation flow
// only reads cost and weight to derive the per-gram material cost; catalog
// maintenance lives outside this service.
//
// Storage model (DynamoDB):
//   - PK: id (string)
type FilamentProfile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SpoolCost     float64 `json:"spool_cost"`
	SpoolWeightKg float64 `json:"spool_weight_kg"`
}

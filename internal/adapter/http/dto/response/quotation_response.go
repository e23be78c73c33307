package response

import (
	"time"

	"cotizador3d/internal/domain/entities"
)

// Envelope is the success envelope returned to callers. Failures use
// pkg.HTTPError instead.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// QuotationResponse is the caller-facing quotation shape. The wire names
// match the legacy API consumed by the shop front-end, hence the Spanish
// camelCase keys.
type QuotationResponse struct {
	ID                string  `json:"id"`
	NombrePieza       string  `json:"nombrePieza"`
	PesoPieza         float64 `json:"pesoPieza"`
	TiempoImpresion   float64 `json:"tiempoImpresion"`
	CantidadPiezas    int     `json:"cantidadPiezas"`
	PiezasPorLote     int     `json:"piezasPorLote"`
	MaquinaID         string  `json:"maquinaId,omitempty"`
	PerfilFilamentoID string  `json:"perfilFilamentoId,omitempty"`

	CostoFabricacion  float64 `json:"costoFabricacion"`
	CostoEnergia      float64 `json:"costoEnergia"`
	CostoDiseno       float64 `json:"costoDiseno"`
	CostoDepreciacion float64 `json:"costoDepreciacion"`
	Subtotal          float64 `json:"subtotal"`
	CostoGif          float64 `json:"costoGif"`
	CostoAiu          float64 `json:"costoAiu"`
	CostoMarcaAgua    float64 `json:"costoMarcaAgua"`

	CostoManoObraPostprocesado float64 `json:"costoManoObraPostprocesado"`
	CostoInsumosPostprocesado  float64 `json:"costoInsumosPostprocesado"`
	CostoTotalPostprocesado    float64 `json:"costoTotalPostprocesado"`

	PrecioUnitarioFinal     float64 `json:"precioUnitarioFinal"`
	PrecioUnitarioMinorista float64 `json:"precioUnitarioMinorista"`
	PrecioUnitarioMayorista float64 `json:"precioUnitarioMayorista"`

	NumeroLotes  int     `json:"numeroLotes"`
	CostoPorLote float64 `json:"costoPorLote"`

	CostoTotalPedido          float64 `json:"costoTotalPedido"`
	TiempoTotalMinutos        float64 `json:"tiempoTotalMinutos"`
	TiempoTotalHoras          float64 `json:"tiempoTotalHoras"`
	FilamentoTotalGramos      float64 `json:"filamentoTotalGramos"`
	CostoTotalElectricidad    float64 `json:"costoTotalElectricidad"`
	CostoTotalPedidoMinorista float64 `json:"costoTotalPedidoMinorista"`
	CostoTotalPedidoMayorista float64 `json:"costoTotalPedidoMayorista"`

	CreadoEn time.Time `json:"creadoEn"`
}

func FromQuotation(q entities.Quotation, b entities.CostBreakdown) QuotationResponse {
	return QuotationResponse{
		ID:                q.ID,
		NombrePieza:       q.PieceName,
		PesoPieza:         q.WeightGrams,
		TiempoImpresion:   q.PrintMinutes,
		CantidadPiezas:    q.Quantity,
		PiezasPorLote:     q.PiecesPerBatch,
		MaquinaID:         q.MachineID,
		PerfilFilamentoID: q.FilamentProfileID,

		CostoFabricacion:  b.FabricationCost,
		CostoEnergia:      b.EnergyCost,
		CostoDiseno:       b.DesignCost,
		CostoDepreciacion: b.DepreciationCost,
		Subtotal:          b.Subtotal,
		CostoGif:          b.GIFCost,
		CostoAiu:          b.AIUCost,
		CostoMarcaAgua:    b.WatermarkCost,

		CostoManoObraPostprocesado: b.PostprocessingLaborCost,
		CostoInsumosPostprocesado:  b.PostprocessingSuppliesCost,
		CostoTotalPostprocesado:    b.PostprocessingTotalCost,

		PrecioUnitarioFinal:     b.FinalUnitPrice,
		PrecioUnitarioMinorista: b.RetailUnitPrice,
		PrecioUnitarioMayorista: b.WholesaleUnitPrice,

		NumeroLotes:  b.BatchCount,
		CostoPorLote: b.CostPerBatch,

		CostoTotalPedido:          b.TotalOrderCost,
		TiempoTotalMinutos:        b.TotalMinutes,
		TiempoTotalHoras:          b.TotalHours,
		FilamentoTotalGramos:      b.TotalFilamentGrams,
		CostoTotalElectricidad:    b.TotalElectricityCost,
		CostoTotalPedidoMinorista: b.TotalOrderRetailCost,
		CostoTotalPedidoMayorista: b.TotalOrderWholesaleCost,

		CreadoEn: q.CreatedAt,
	}
}

// QuotationSummaryResponse is the list projection.
type QuotationSummaryResponse struct {
	ID                  string    `json:"id"`
	NombrePieza         string    `json:"nombrePieza"`
	CantidadPiezas      int       `json:"cantidadPiezas"`
	PrecioUnitarioFinal float64   `json:"precioUnitarioFinal"`
	CostoTotalPedido    float64   `json:"costoTotalPedido"`
	CreadoEn            time.Time `json:"creadoEn"`
}

func FromSummaries(items []entities.QuotationSummary) []QuotationSummaryResponse {
	out := make([]QuotationSummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, QuotationSummaryResponse{
			ID:                  s.ID,
			NombrePieza:         s.PieceName,
			CantidadPiezas:      s.Quantity,
			PrecioUnitarioFinal: s.FinalUnitPrice,
			CostoTotalPedido:    s.TotalOrderCost,
			CreadoEn:            s.CreatedAt,
		})
	}
	return out
}

package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"cotizador3d/internal/domain/entities"
	"cotizador3d/internal/domain/pricing"
	"cotizador3d/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrQuotationNotFound       = errors.New("quotation not found")
	ErrInvalidQuotationID      = errors.New("invalid quotation id")
	ErrFilamentProfileNotFound = errors.New("filament profile not found")
)

// QuotationResult pairs a persisted quotation header with its breakdown.
type QuotationResult struct {
	Quotation entities.Quotation
	Breakdown entities.CostBreakdown
}

// IQuotationUseCase exposes the quotation operations of the action surface:
// create (the full cost pipeline plus the atomic two-row write), get, list
// and delete. Quotations are never updated; a recalculation is a new create.
type IQuotationUseCase interface {
	Create(ctx context.Context, in entities.QuotationInput) (QuotationResult, error)
	GetByID(ctx context.Context, id string) (QuotationResult, error)
	List(ctx context.Context) ([]entities.QuotationSummary, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	settings interfaces.ISettingsRepository
	profiles interfaces.IFilamentProfileRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	settings interfaces.ISettingsRepository,
	profiles interfaces.IFilamentProfileRepository,
) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, settings: settings, profiles: profiles}
}

func (u *QuotationUseCase) Create(ctx context.Context, in entities.QuotationInput) (QuotationResult, error) {
	if in.FilamentProfileID != "" {
		profile, err := u.profiles.GetByID(ctx, in.FilamentProfileID)
		if err != nil {
			return QuotationResult{}, err
		}
		if profile.ID == "" {
			return QuotationResult{}, ErrFilamentProfileNotFound
		}
		in.SpoolCost = profile.SpoolCost
		in.SpoolWeightKg = profile.SpoolWeightKg
	}

	overrides, err := u.settings.GetByPrefix(ctx, pricing.DepreciationKeyPrefix)
	if err != nil {
		// Depreciation settings are best effort: an unreadable store must not
		// block the quotation.
		log.Warnf("[quotation][usecase] reading depreciation settings failed, using defaults: %v", err)
		overrides = nil
	}
	dep := pricing.ResolveDepreciationParams(overrides)

	var post pricing.PostprocessingResult
	if in.PostprocessingEnabled {
		post = pricing.CalculatePostprocessing(in.PostprocessingLaborCost, in.Supplies)
	}

	breakdown := pricing.Calculate(in, dep, post)

	id, err := uuid.NewV7()
	if err != nil {
		return QuotationResult{}, err
	}

	q := buildQuotation(id.String(), in, time.Now().UTC())
	b := buildBreakdown(id.String(), breakdown)

	if err := u.repo.Create(ctx, q, b); err != nil {
		return QuotationResult{}, err
	}
	log.Infof("[quotation][usecase] created quotation id=%s piece=%q", q.ID, q.PieceName)
	return QuotationResult{Quotation: q, Breakdown: b}, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (QuotationResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return QuotationResult{}, ErrInvalidQuotationID
	}

	q, b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return QuotationResult{}, err
	}
	if q.ID == "" {
		return QuotationResult{}, ErrQuotationNotFound
	}
	return QuotationResult{Quotation: q, Breakdown: b}, nil
}

func (u *QuotationUseCase) List(ctx context.Context) ([]entities.QuotationSummary, error) {
	return u.repo.List(ctx)
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}

	q, _, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuotationNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Infof("[quotation][usecase] deleted quotation id=%s", id)
	return nil
}

func buildQuotation(id string, in entities.QuotationInput, now time.Time) entities.Quotation {
	return entities.Quotation{
		ID:                      id,
		PieceName:               in.PieceName,
		WeightGrams:             in.WeightGrams,
		PrintMinutes:            in.PrintMinutes,
		Quantity:                in.Quantity,
		PiecesPerBatch:          in.PiecesPerBatch,
		SafetyFactor:            in.SafetyFactor,
		ElectricityRate:         in.ElectricityRate,
		DesignHours:             in.DesignHours,
		DesignRate:              in.DesignRate,
		GIFPercent:              in.GIFPercent,
		AIUPercent:              in.AIUPercent,
		WatermarkEnabled:        in.WatermarkEnabled,
		WatermarkPercent:        in.WatermarkPercent,
		RetailMarginPercent:     in.RetailMarginPercent,
		WholesaleMarginPercent:  in.WholesaleMarginPercent,
		FilamentProfileID:       in.FilamentProfileID,
		SpoolCost:               in.SpoolCost,
		SpoolWeightKg:           in.SpoolWeightKg,
		MachineID:               in.MachineID,
		PostprocessingEnabled:   in.PostprocessingEnabled,
		PostprocessingLevel:     in.PostprocessingLevel,
		PostprocessingLaborCost: in.PostprocessingLaborCost,
		Supplies:                in.Supplies,
		CreatedAt:               now,
	}
}

// buildBreakdown rounds monetary values to 2 decimals. This is the only
// rounding step in the whole flow; the pipeline itself runs at full
// precision.
func buildBreakdown(quotationID string, b pricing.Breakdown) entities.CostBreakdown {
	return entities.CostBreakdown{
		QuotationID: quotationID,

		FabricationCost:  round2(b.FabricationCost),
		EnergyCost:       round2(b.EnergyCost),
		DesignCost:       round2(b.DesignCost),
		DepreciationCost: round2(b.DepreciationCost),
		Subtotal:         round2(b.Subtotal),
		GIFCost:          round2(b.GIFCost),
		AIUCost:          round2(b.AIUCost),
		WatermarkCost:    round2(b.WatermarkCost),

		PostprocessingLaborCost:    round2(b.PostprocessingLaborCost),
		PostprocessingSuppliesCost: round2(b.PostprocessingSuppliesCost),
		PostprocessingTotalCost:    round2(b.PostprocessingTotalCost),

		FinalUnitPrice:     round2(b.FinalUnitPrice),
		RetailUnitPrice:    round2(b.RetailUnitPrice),
		WholesaleUnitPrice: round2(b.WholesaleUnitPrice),

		BatchCount:   b.BatchCount,
		CostPerBatch: round2(b.CostPerBatch),

		TotalOrderCost:          round2(b.TotalOrderCost),
		TotalMinutes:            b.TotalMinutes,
		TotalHours:              b.TotalHours,
		TotalFilamentGrams:      b.TotalFilamentGrams,
		TotalElectricityCost:    round2(b.TotalElectricityCost),
		TotalOrderRetailCost:    round2(b.TotalOrderRetailCost),
		TotalOrderWholesaleCost: round2(b.TotalOrderWholesaleCost),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

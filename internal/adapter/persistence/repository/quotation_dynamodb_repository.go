package repository

import (
	"context"
	"sort"
	"time"

	"cotizador3d/internal/domain/entities"
	"cotizador3d/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	defaultBreakdownsTableName = "cost_breakdowns"
)

type supplyLineItem struct {
	UnitCost float64 `dynamodbav:"costo"`
	Quantity float64 `dynamodbav:"cantidad"`
}

type quotationItem struct {
	ID                      string           `dynamodbav:"id"`
	PieceName               string           `dynamodbav:"piece_name"`
	WeightGrams             float64          `dynamodbav:"weight_grams"`
	PrintMinutes            float64          `dynamodbav:"print_minutes"`
	Quantity                int              `dynamodbav:"quantity"`
	PiecesPerBatch          int              `dynamodbav:"pieces_per_batch"`
	SafetyFactor            float64          `dynamodbav:"safety_factor"`
	ElectricityRate         float64          `dynamodbav:"electricity_rate"`
	DesignHours             float64          `dynamodbav:"design_hours"`
	DesignRate              float64          `dynamodbav:"design_rate"`
	GIFPercent              float64          `dynamodbav:"gif_percent"`
	AIUPercent              float64          `dynamodbav:"aiu_percent"`
	WatermarkEnabled        bool             `dynamodbav:"watermark_enabled"`
	WatermarkPercent        float64          `dynamodbav:"watermark_percent"`
	RetailMarginPercent     float64          `dynamodbav:"retail_margin_percent"`
	WholesaleMarginPercent  float64          `dynamodbav:"wholesale_margin_percent"`
	FilamentProfileID       string           `dynamodbav:"filament_profile_id,omitempty"`
	SpoolCost               float64          `dynamodbav:"spool_cost"`
	SpoolWeightKg           float64          `dynamodbav:"spool_weight_kg"`
	MachineID               string           `dynamodbav:"machine_id,omitempty"`
	PostprocessingEnabled   bool             `dynamodbav:"postprocessing_enabled"`
	PostprocessingLevel     string           `dynamodbav:"postprocessing_level,omitempty"`
	PostprocessingLaborCost float64          `dynamodbav:"postprocessing_labor_cost"`
	Supplies                []supplyLineItem `dynamodbav:"supplies,omitempty"`
	CreatedAt               string           `dynamodbav:"created_at"`

	// Denormalized from the breakdown so listings never read the second table.
	FinalUnitPrice float64 `dynamodbav:"final_unit_price"`
	TotalOrderCost float64 `dynamodbav:"total_order_cost"`
}

type breakdownItem struct {
	QuotationID string `dynamodbav:"quotation_id"`

	FabricationCost  float64 `dynamodbav:"fabrication_cost"`
	EnergyCost       float64 `dynamodbav:"energy_cost"`
	DesignCost       float64 `dynamodbav:"design_cost"`
	DepreciationCost float64 `dynamodbav:"depreciation_cost"`
	Subtotal         float64 `dynamodbav:"subtotal"`
	GIFCost          float64 `dynamodbav:"gif_cost"`
	AIUCost          float64 `dynamodbav:"aiu_cost"`
	WatermarkCost    float64 `dynamodbav:"watermark_cost"`

	PostprocessingLaborCost    float64 `dynamodbav:"postprocessing_labor_cost"`
	PostprocessingSuppliesCost float64 `dynamodbav:"postprocessing_supplies_cost"`
	PostprocessingTotalCost    float64 `dynamodbav:"postprocessing_total_cost"`

	FinalUnitPrice     float64 `dynamodbav:"final_unit_price"`
	RetailUnitPrice    float64 `dynamodbav:"retail_unit_price"`
	WholesaleUnitPrice float64 `dynamodbav:"wholesale_unit_price"`

	BatchCount   int     `dynamodbav:"batch_count"`
	CostPerBatch float64 `dynamodbav:"cost_per_batch"`

	TotalOrderCost          float64 `dynamodbav:"total_order_cost"`
	TotalMinutes            float64 `dynamodbav:"total_minutes"`
	TotalHours              float64 `dynamodbav:"total_hours"`
	TotalFilamentGrams      float64 `dynamodbav:"total_filament_grams"`
	TotalElectricityCost    float64 `dynamodbav:"total_electricity_cost"`
	TotalOrderRetailCost    float64 `dynamodbav:"total_order_retail_cost"`
	TotalOrderWholesaleCost float64 `dynamodbav:"total_order_wholesale_cost"`
}

// QuotationDynamoRepository persists Quotation headers and their
// CostBreakdown rows in DynamoDB.
//
// Table requirements:
//   - quotations:      PK id (string)
//   - cost_breakdowns: PK quotation_id (string)
//
// Header and breakdown are always written and deleted in the same
// TransactWriteItems call; neither row ever exists without the other.

type QuotationDynamoRepository struct {
	ddb           *dynamodb.Client
	quotationsTbl string
	breakdownsTbl string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:           ddb,
		quotationsTbl: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		breakdownsTbl: getenvDefault("BREAKDOWNS_TABLE", defaultBreakdownsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation, b entities.CostBreakdown) error {
	qav, err := attributevalue.MarshalMap(toQuotationItem(q, b))
	if err != nil {
		return err
	}
	bav, err := attributevalue.MarshalMap(toBreakdownItem(b))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.quotationsTbl),
					Item:                qav,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.breakdownsTbl),
					Item:                bav,
					ConditionExpression: aws.String("attribute_not_exists(#qid)"),
					ExpressionAttributeNames: map[string]string{
						"#qid": "quotation_id",
					},
				},
			},
		},
	})
	return err
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, entities.CostBreakdown, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.quotationsTbl),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, entities.CostBreakdown{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, entities.CostBreakdown{}, nil
	}

	var qit quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &qit); err != nil {
		return entities.Quotation{}, entities.CostBreakdown{}, err
	}

	bout, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.breakdownsTbl),
		Key: map[string]types.AttributeValue{
			"quotation_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, entities.CostBreakdown{}, err
	}

	var bit breakdownItem
	if len(bout.Item) > 0 {
		if err := attributevalue.UnmarshalMap(bout.Item, &bit); err != nil {
			return entities.Quotation{}, entities.CostBreakdown{}, err
		}
	}
	return fromQuotationItem(qit), fromBreakdownItem(bit), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.QuotationSummary, error) {
	summaries := make([]entities.QuotationSummary, 0)

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.quotationsTbl),
			ProjectionExpression: aws.String("#id, piece_name, quantity, final_unit_price, total_order_cost, created_at"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			summaries = append(summaries, entities.QuotationSummary{
				ID:             it.ID,
				PieceName:      it.PieceName,
				Quantity:       it.Quantity,
				FinalUnitPrice: it.FinalUnitPrice,
				TotalOrderCost: it.TotalOrderCost,
				CreatedAt:      createdAt,
			})
		}

		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.breakdownsTbl),
					Key: map[string]types.AttributeValue{
						"quotation_id": &types.AttributeValueMemberS{Value: id},
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.quotationsTbl),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
				},
			},
		},
	})
	return err
}

func toQuotationItem(q entities.Quotation, b entities.CostBreakdown) quotationItem {
	supplies := make([]supplyLineItem, 0, len(q.Supplies))
	for _, s := range q.Supplies {
		supplies = append(supplies, supplyLineItem{UnitCost: s.UnitCost, Quantity: s.Quantity})
	}
	if len(supplies) == 0 {
		supplies = nil
	}
	return quotationItem{
		ID:                      q.ID,
		PieceName:               q.PieceName,
		WeightGrams:             q.WeightGrams,
		PrintMinutes:            q.PrintMinutes,
		Quantity:                q.Quantity,
		PiecesPerBatch:          q.PiecesPerBatch,
		SafetyFactor:            q.SafetyFactor,
		ElectricityRate:         q.ElectricityRate,
		DesignHours:             q.DesignHours,
		DesignRate:              q.DesignRate,
		GIFPercent:              q.GIFPercent,
		AIUPercent:              q.AIUPercent,
		WatermarkEnabled:        q.WatermarkEnabled,
		WatermarkPercent:        q.WatermarkPercent,
		RetailMarginPercent:     q.RetailMarginPercent,
		WholesaleMarginPercent:  q.WholesaleMarginPercent,
		FilamentProfileID:       q.FilamentProfileID,
		SpoolCost:               q.SpoolCost,
		SpoolWeightKg:           q.SpoolWeightKg,
		MachineID:               q.MachineID,
		PostprocessingEnabled:   q.PostprocessingEnabled,
		PostprocessingLevel:     q.PostprocessingLevel,
		PostprocessingLaborCost: q.PostprocessingLaborCost,
		Supplies:                supplies,
		CreatedAt:               q.CreatedAt.UTC().Format(time.RFC3339Nano),
		FinalUnitPrice:          b.FinalUnitPrice,
		TotalOrderCost:          b.TotalOrderCost,
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	supplies := make([]entities.SupplyLine, 0, len(it.Supplies))
	for _, s := range it.Supplies {
		supplies = append(supplies, entities.SupplyLine{UnitCost: s.UnitCost, Quantity: s.Quantity})
	}
	if len(supplies) == 0 {
		supplies = nil
	}
	return entities.Quotation{
		ID:                      it.ID,
		PieceName:               it.PieceName,
		WeightGrams:             it.WeightGrams,
		PrintMinutes:            it.PrintMinutes,
		Quantity:                it.Quantity,
		PiecesPerBatch:          it.PiecesPerBatch,
		SafetyFactor:            it.SafetyFactor,
		ElectricityRate:         it.ElectricityRate,
		DesignHours:             it.DesignHours,
		DesignRate:              it.DesignRate,
		GIFPercent:              it.GIFPercent,
		AIUPercent:              it.AIUPercent,
		WatermarkEnabled:        it.WatermarkEnabled,
		WatermarkPercent:        it.WatermarkPercent,
		RetailMarginPercent:     it.RetailMarginPercent,
		WholesaleMarginPercent:  it.WholesaleMarginPercent,
		FilamentProfileID:       it.FilamentProfileID,
		SpoolCost:               it.SpoolCost,
		SpoolWeightKg:           it.SpoolWeightKg,
		MachineID:               it.MachineID,
		PostprocessingEnabled:   it.PostprocessingEnabled,
		PostprocessingLevel:     it.PostprocessingLevel,
		PostprocessingLaborCost: it.PostprocessingLaborCost,
		Supplies:                supplies,
		CreatedAt:               createdAt,
	}
}

func toBreakdownItem(b entities.CostBreakdown) breakdownItem {
	return breakdownItem{
		QuotationID:                b.QuotationID,
		FabricationCost:            b.FabricationCost,
		EnergyCost:                 b.EnergyCost,
		DesignCost:                 b.DesignCost,
		DepreciationCost:           b.DepreciationCost,
		Subtotal:                   b.Subtotal,
		GIFCost:                    b.GIFCost,
		AIUCost:                    b.AIUCost,
		WatermarkCost:              b.WatermarkCost,
		PostprocessingLaborCost:    b.PostprocessingLaborCost,
		PostprocessingSuppliesCost: b.PostprocessingSuppliesCost,
		PostprocessingTotalCost:    b.PostprocessingTotalCost,
		FinalUnitPrice:             b.FinalUnitPrice,
		RetailUnitPrice:            b.RetailUnitPrice,
		WholesaleUnitPrice:         b.WholesaleUnitPrice,
		BatchCount:                 b.BatchCount,
		CostPerBatch:               b.CostPerBatch,
		TotalOrderCost:             b.TotalOrderCost,
		TotalMinutes:               b.TotalMinutes,
		TotalHours:                 b.TotalHours,
		TotalFilamentGrams:         b.TotalFilamentGrams,
		TotalElectricityCost:       b.TotalElectricityCost,
		TotalOrderRetailCost:       b.TotalOrderRetailCost,
		TotalOrderWholesaleCost:    b.TotalOrderWholesaleCost,
	}
}

func fromBreakdownItem(it breakdownItem) entities.CostBreakdown {
	return entities.CostBreakdown{
		QuotationID:                it.QuotationID,
		FabricationCost:            it.FabricationCost,
		EnergyCost:                 it.EnergyCost,
		DesignCost:                 it.DesignCost,
		DepreciationCost:           it.DepreciationCost,
		Subtotal:                   it.Subtotal,
		GIFCost:                    it.GIFCost,
		AIUCost:                    it.AIUCost,
		WatermarkCost:              it.WatermarkCost,
		PostprocessingLaborCost:    it.PostprocessingLaborCost,
		PostprocessingSuppliesCost: it.PostprocessingSuppliesCost,
		PostprocessingTotalCost:    it.PostprocessingTotalCost,
		FinalUnitPrice:             it.FinalUnitPrice,
		RetailUnitPrice:            it.RetailUnitPrice,
		WholesaleUnitPrice:         it.WholesaleUnitPrice,
		BatchCount:                 it.BatchCount,
		CostPerBatch:               it.CostPerBatch,
		TotalOrderCost:             it.TotalOrderCost,
		TotalMinutes:               it.TotalMinutes,
		TotalHours:                 it.TotalHours,
		TotalFilamentGrams:         it.TotalFilamentGrams,
		TotalElectricityCost:       it.TotalElectricityCost,
		TotalOrderRetailCost:       it.TotalOrderRetailCost,
		TotalOrderWholesaleCost:    it.TotalOrderWholesaleCost,
	}
}

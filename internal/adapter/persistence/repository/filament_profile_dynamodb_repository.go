package repository

import (
	"context"

	"cotizador3d/internal/domain/entities"
	"cotizador3d/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFilamentProfilesTableName = "filament_profiles"

type filamentProfileItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	SpoolCost     float64 `dynamodbav:"spool_cost"`
	SpoolWeightKg float64 `dynamodbav:"spool_weight_kg"`
}

// FilamentProfileDynamoRepository resolves filament profiles from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type FilamentProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFilamentProfileRepository = (*FilamentProfileDynamoRepository)(nil)

func NewFilamentProfileDynamoRepository(ddb *dynamodb.Client) *FilamentProfileDynamoRepository {
	return &FilamentProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FILAMENT_PROFILES_TABLE", defaultFilamentProfilesTableName),
	}
}

func (r *FilamentProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.FilamentProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FilamentProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.FilamentProfile{}, nil
	}

	var it filamentProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FilamentProfile{}, err
	}
	return entities.FilamentProfile{
		ID:            it.ID,
		Name:          it.Name,
		SpoolCost:     it.SpoolCost,
		SpoolWeightKg: it.SpoolWeightKg,
	}, nil
}

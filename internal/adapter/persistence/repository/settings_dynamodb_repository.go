package repository

import (
	"context"

	"cotizador3d/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

type settingItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SettingsDynamoRepository reads configuration overrides from DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Values are stored as strings and parsed by the caller; an override the
// caller cannot parse is its problem, not ours.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetByPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	settings := make(map[string]string)

	var lastKey map[string]types.AttributeValue
	for {
		// "key" and "value" are reserved words in DynamoDB expressions.
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("begins_with(#k, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#k": "key",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it settingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			settings[it.Key] = it.Value
		}

		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}
	return settings, nil
}

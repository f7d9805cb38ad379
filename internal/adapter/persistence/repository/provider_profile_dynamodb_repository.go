package repository

import (
	"context"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type providerProfileItem struct {
	UserID  string `dynamodbav:"user_id"`
	ProTier string `dynamodbav:"pro_tier,omitempty"`
}

// ProviderProfileDynamoRepository reads professional profiles.
//
// Table requirements:
//   - PK: user_id (string)
type ProviderProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProviderProfileRepository = (*ProviderProfileDynamoRepository)(nil)

func NewProviderProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProviderProfileDynamoRepository {
	return &ProviderProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProviderProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.ProviderProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.ProviderProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProviderProfile{}, nil
	}

	var it providerProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProviderProfile{}, err
	}
	return entities.ProviderProfile{
		UserID:  it.UserID,
		ProTier: entities.ProviderTier(it.ProTier),
	}, nil
}

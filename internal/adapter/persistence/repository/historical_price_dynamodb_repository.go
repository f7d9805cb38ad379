package repository

import (
	"context"

	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// globalZoneKey is the sort-key sentinel for the discipline-wide aggregate.
// DynamoDB forbids empty string keys, so an empty zone maps to this value.
const globalZoneKey = "_global"

type historicalPriceItem struct {
	Discipline string `dynamodbav:"discipline"`
	Zone       string `dynamodbav:"zone"`
	SampleSize int    `dynamodbav:"sample_size"`
	AvgPrice   string `dynamodbav:"avg_price"`
	StdDev     string `dynamodbav:"std_dev"`
	MinPrice   string `dynamodbav:"min_price"`
	MaxPrice   string `dynamodbav:"max_price"`
}

// HistoricalPriceDynamoRepository reads aggregate price statistics.
//
// Table requirements:
//   - PK: discipline (string)
//   - SK: zone (string; "_global" for the discipline-wide row)
//
// Rows are written by an external aggregation job; this service never writes.
type HistoricalPriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoricalPriceRepository = (*HistoricalPriceDynamoRepository)(nil)

func NewHistoricalPriceDynamoRepository(ddb *dynamodb.Client, tableName string) *HistoricalPriceDynamoRepository {
	return &HistoricalPriceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HistoricalPriceDynamoRepository) Lookup(ctx context.Context, discipline, zone string) (*entities.HistoricalPriceStat, error) {
	zoneKey := zone
	if zoneKey == "" {
		zoneKey = globalZoneKey
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"discipline": &types.AttributeValueMemberS{Value: discipline},
			"zone":       &types.AttributeValueMemberS{Value: zoneKey},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it historicalPriceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromHistoricalPriceItem(it, zone), nil
}

func fromHistoricalPriceItem(it historicalPriceItem, zone string) *entities.HistoricalPriceStat {
	avg, _ := decimal.NewFromString(it.AvgPrice)
	std, _ := decimal.NewFromString(it.StdDev)
	min, _ := decimal.NewFromString(it.MinPrice)
	max, _ := decimal.NewFromString(it.MaxPrice)
	return &entities.HistoricalPriceStat{
		Discipline: it.Discipline,
		Zone:       zone,
		SampleSize: it.SampleSize,
		AvgPrice:   avg,
		StdDev:     std,
		MinPrice:   min,
		MaxPrice:   max,
	}
}

package repository

import (
	"context"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFoodsTableName = "foods"

type foodItem struct {
	ID               string            `dynamodbav:"id"`
	Name             string            `dynamodbav:"name"`
	Category         string            `dynamodbav:"category"`
	Unit             string            `dynamodbav:"unit"`
	CorrectionFactor string            `dynamodbav:"correction_factor"`
	CookingFactor    string            `dynamodbav:"cooking_factor"`
	PerCapita        map[string]string `dynamodbav:"per_capita"`
}

// FoodDynamoRepository persists raw food records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Numeric fields are stored as text on purpose: the catalog keeps whatever the
// nutrition team typed, and parsing happens at catalog build time.

type FoodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFoodRepository = (*FoodDynamoRepository)(nil)

func NewFoodDynamoRepository(ddb *dynamodb.Client) *FoodDynamoRepository {
	return &FoodDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FOODS_TABLE", defaultFoodsTableName),
	}
}

func (r *FoodDynamoRepository) Create(ctx context.Context, f entities.RawFood) (entities.RawFood, error) {
	av, err := attributevalue.MarshalMap(toFoodItem(f))
	if err != nil {
		return entities.RawFood{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RawFood{}, err
	}
	return f, nil
}

func (r *FoodDynamoRepository) GetByID(ctx context.Context, id string) (entities.RawFood, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RawFood{}, err
	}
	if len(out.Item) == 0 {
		return entities.RawFood{}, nil
	}

	var it foodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RawFood{}, err
	}
	return fromFoodItem(it), nil
}

func (r *FoodDynamoRepository) List(ctx context.Context) ([]entities.RawFood, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var foods []entities.RawFood
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []foodItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			foods = append(foods, fromFoodItem(it))
		}
	}
	return foods, nil
}

func toFoodItem(f entities.RawFood) foodItem {
	perCapita := make(map[string]string, len(f.PerCapita))
	for stage, value := range f.PerCapita {
		perCapita[string(stage)] = value
	}
	return foodItem{
		ID:               f.ID,
		Name:             f.Name,
		Category:         f.Category,
		Unit:             string(f.Unit),
		CorrectionFactor: f.CorrectionFactor,
		CookingFactor:    f.CookingFactor,
		PerCapita:        perCapita,
	}
}

func fromFoodItem(it foodItem) entities.RawFood {
	perCapita := make(map[entities.Stage]string, len(it.PerCapita))
	for stage, value := range it.PerCapita {
		perCapita[entities.Stage(stage)] = value
	}
	return entities.RawFood{
		ID:               it.ID,
		Name:             it.Name,
		Category:         it.Category,
		Unit:             entities.MeasurementUnit(it.Unit),
		CorrectionFactor: it.CorrectionFactor,
		CookingFactor:    it.CookingFactor,
		PerCapita:        perCapita,
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGuidesTableName = "supply_guides"

type dailyMenuItem struct {
	Date   string `dynamodbav:"date"`
	MenuID string `dynamodbav:"menu_id"`
}

type distributionItem struct {
	FoodID        string  `dynamodbav:"food_id"`
	FoodName      string  `dynamodbav:"food_name"`
	TotalQuantity float64 `dynamodbav:"total_quantity"`
	Unit          string  `dynamodbav:"unit"`
}

type guideItem struct {
	ID            string             `dynamodbav:"id"`
	InstitutionID string             `dynamodbav:"institution_id"`
	DateStart     string             `dynamodbav:"date_start"`
	DateEnd       string             `dynamodbav:"date_end"`
	DailyMenus    []dailyMenuItem    `dynamodbav:"daily_menus"`
	Distribution  []distributionItem `dynamodbav:"distribution"`
	Notes         string             `dynamodbav:"notes"`
	Version       int                `dynamodbav:"version"`
	GeneratedAt   string             `dynamodbav:"generated_at"`
	GeneratedBy   string             `dynamodbav:"generated_by"`
	Status        string             `dynamodbav:"status"`
}

// GuideDynamoRepository persists supply guides in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Guides are few per institution per month; the calendar and report queries
// read the full set and filter in memory, so List scans the table.

type GuideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGuideRepository = (*GuideDynamoRepository)(nil)

func NewGuideDynamoRepository(ddb *dynamodb.Client) *GuideDynamoRepository {
	return &GuideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GUIDES_TABLE", defaultGuidesTableName),
	}
}

func (r *GuideDynamoRepository) Create(ctx context.Context, g entities.SupplyGuide) (entities.SupplyGuide, error) {
	av, err := attributevalue.MarshalMap(toGuideItem(g))
	if err != nil {
		return entities.SupplyGuide{}, err
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
		return entities.SupplyGuide{}, err
	}
	return g, nil
}

func (r *GuideDynamoRepository) GetByID(ctx context.Context, id string) (entities.SupplyGuide, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	if len(out.Item) == 0 {
		return entities.SupplyGuide{}, nil
	}

	var it guideItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SupplyGuide{}, err
	}
	return fromGuideItem(it), nil
}

func (r *GuideDynamoRepository) List(ctx context.Context) ([]entities.SupplyGuide, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var guides []entities.SupplyGuide
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []guideItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			guides = append(guides, fromGuideItem(it))
		}
	}
	return guides, nil
}

func (r *GuideDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.GuideStatus) (entities.SupplyGuide, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SupplyGuide{}, nil
		}
		return entities.SupplyGuide{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SupplyGuide{}, nil
	}
	var it guideItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SupplyGuide{}, err
	}
	return fromGuideItem(it), nil
}

func toGuideItem(g entities.SupplyGuide) guideItem {
	dailyMenus := make([]dailyMenuItem, 0, len(g.DailyMenus))
	for _, dm := range g.DailyMenus {
		dailyMenus = append(dailyMenus, dailyMenuItem{
			Date:   dm.Date.UTC().Format(time.RFC3339Nano),
			MenuID: dm.MenuID,
		})
	}
	distribution := make([]distributionItem, 0, len(g.Distribution))
	for _, dc := range g.Distribution {
		distribution = append(distribution, distributionItem{
			FoodID:        dc.FoodID,
			FoodName:      dc.FoodName,
			TotalQuantity: dc.TotalQuantity,
			Unit:          string(dc.Unit),
		})
	}
	return guideItem{
		ID:            g.ID,
		InstitutionID: g.InstitutionID,
		DateStart:     g.DateStart.UTC().Format(time.RFC3339Nano),
		DateEnd:       g.DateEnd.UTC().Format(time.RFC3339Nano),
		DailyMenus:    dailyMenus,
		Distribution:  distribution,
		Notes:         g.Notes,
		Version:       g.Version,
		GeneratedAt:   g.GeneratedAt.UTC().Format(time.RFC3339Nano),
		GeneratedBy:   g.GeneratedBy,
		Status:        string(g.Status),
	}
}

func fromGuideItem(it guideItem) entities.SupplyGuide {
	dateStart, _ := time.Parse(time.RFC3339Nano, it.DateStart)
	dateEnd, _ := time.Parse(time.RFC3339Nano, it.DateEnd)
	generatedAt, _ := time.Parse(time.RFC3339Nano, it.GeneratedAt)

	dailyMenus := make([]entities.DailyMenu, 0, len(it.DailyMenus))
	for _, dm := range it.DailyMenus {
		date, _ := time.Parse(time.RFC3339Nano, dm.Date)
		dailyMenus = append(dailyMenus, entities.DailyMenu{Date: date, MenuID: dm.MenuID})
	}
	distribution := make([]entities.DistributionCalculation, 0, len(it.Distribution))
	for _, dc := range it.Distribution {
		distribution = append(distribution, entities.DistributionCalculation{
			FoodID:        dc.FoodID,
			FoodName:      dc.FoodName,
			TotalQuantity: dc.TotalQuantity,
			Unit:          entities.MeasurementUnit(dc.Unit),
		})
	}
	return entities.SupplyGuide{
		ID:            it.ID,
		InstitutionID: it.InstitutionID,
		DateStart:     dateStart,
		DateEnd:       dateEnd,
		DailyMenus:    dailyMenus,
		Distribution:  distribution,
		Notes:         it.Notes,
		Version:       it.Version,
		GeneratedAt:   generatedAt,
		GeneratedBy:   it.GeneratedBy,
		Status:        entities.GuideStatus(it.Status),
	}
}

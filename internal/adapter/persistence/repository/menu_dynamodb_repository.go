package repository

import (
	"context"
	"time"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMenusTableName = "menus"

type menuItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// MenuDynamoRepository persists menus in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MenuDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMenuRepository = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb *dynamodb.Client) *MenuDynamoRepository {
	return &MenuDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MENUS_TABLE", defaultMenusTableName),
	}
}

func (r *MenuDynamoRepository) Create(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	av, err := attributevalue.MarshalMap(toMenuItem(m))
	if err != nil {
		return entities.Menu{}, err
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
		return entities.Menu{}, err
	}
	return m, nil
}

func (r *MenuDynamoRepository) GetByID(ctx context.Context, id string) (entities.Menu, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Menu{}, err
	}
	if len(out.Item) == 0 {
		return entities.Menu{}, nil
	}

	var it menuItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Menu{}, err
	}
	return fromMenuItem(it), nil
}

func (r *MenuDynamoRepository) List(ctx context.Context) ([]entities.Menu, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var menus []entities.Menu
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []menuItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			menus = append(menus, fromMenuItem(it))
		}
	}
	return menus, nil
}

func toMenuItem(m entities.Menu) menuItem {
	return menuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMenuItem(it menuItem) entities.Menu {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Menu{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}

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

const defaultInstitutionsTableName = "institutions"

type institutionItem struct {
	ID              string         `dynamodbav:"id"`
	Name            string         `dynamodbav:"name"`
	City            string         `dynamodbav:"city"`
	StudentsByStage map[string]int `dynamodbav:"students_by_stage"`
	CreatedAt       string         `dynamodbav:"created_at"`
}

// InstitutionDynamoRepository persists institutions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type InstitutionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstitutionRepository = (*InstitutionDynamoRepository)(nil)

func NewInstitutionDynamoRepository(ddb *dynamodb.Client) *InstitutionDynamoRepository {
	return &InstitutionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTITUTIONS_TABLE", defaultInstitutionsTableName),
	}
}

func (r *InstitutionDynamoRepository) Create(ctx context.Context, i entities.Institution) (entities.Institution, error) {
	av, err := attributevalue.MarshalMap(toInstitutionItem(i))
	if err != nil {
		return entities.Institution{}, err
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
		return entities.Institution{}, err
	}
	return i, nil
}

func (r *InstitutionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Institution, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Institution{}, err
	}
	if len(out.Item) == 0 {
		return entities.Institution{}, nil
	}

	var it institutionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Institution{}, err
	}
	return fromInstitutionItem(it), nil
}

func (r *InstitutionDynamoRepository) List(ctx context.Context) ([]entities.Institution, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var institutions []entities.Institution
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []institutionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			institutions = append(institutions, fromInstitutionItem(it))
		}
	}
	return institutions, nil
}

func toInstitutionItem(i entities.Institution) institutionItem {
	students := make(map[string]int, len(i.StudentsByStage))
	for stage, count := range i.StudentsByStage {
		students[string(stage)] = count
	}
	return institutionItem{
		ID:              i.ID,
		Name:            i.Name,
		City:            i.City,
		StudentsByStage: students,
		CreatedAt:       i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInstitutionItem(it institutionItem) entities.Institution {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	students := make(map[entities.Stage]int, len(it.StudentsByStage))
	for stage, count := range it.StudentsByStage {
		students[entities.Stage(stage)] = count
	}
	return entities.Institution{
		ID:              it.ID,
		Name:            it.Name,
		City:            it.City,
		StudentsByStage: students,
		CreatedAt:       createdAt,
	}
}

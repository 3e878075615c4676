package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces"
)

const defaultLOAsTableName = "loas"

type loaItem struct {
	ID              string              `dynamodbav:"id"`
	LOANumber       string              `dynamodbav:"loa_number"`
	VendorID        string              `dynamodbav:"vendor_id"`
	WorkDescription string              `dynamodbav:"work_description,omitempty"`
	Amount          string              `dynamodbav:"amount"`
	Status          string              `dynamodbav:"status"`
	History         []statusHistoryItem `dynamodbav:"history"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// LOADynamoRepository persists LOA entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LOADynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILOARepository = (*LOADynamoRepository)(nil)

func NewLOADynamoRepository(ddb *dynamodb.Client) *LOADynamoRepository {
	return &LOADynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOAS_TABLE", defaultLOAsTableName),
	}
}

func (r *LOADynamoRepository) Create(ctx context.Context, l entities.LOA) (entities.LOA, error) {
	av, err := attributevalue.MarshalMap(toLOAItem(l))
	if err != nil {
		return entities.LOA{}, err
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
		return entities.LOA{}, err
	}
	return l, nil
}

func (r *LOADynamoRepository) GetByID(ctx context.Context, id string) (entities.LOA, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LOA{}, err
	}
	if len(out.Item) == 0 {
		return entities.LOA{}, nil
	}

	var it loaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LOA{}, err
	}
	return fromLOAItem(it), nil
}

func (r *LOADynamoRepository) List(ctx context.Context, filter entities.LOAFilter) ([]entities.LOA, error) {
	items, err := scanAll(ctx, r.ddb, loaScanInput(r.tableName, filter))
	if err != nil {
		return nil, err
	}

	loas := make([]entities.LOA, 0, len(items))
	for _, item := range items {
		var it loaItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		loas = append(loas, fromLOAItem(it))
	}
	return loas, nil
}

func (r *LOADynamoRepository) Count(ctx context.Context, filter entities.LOAFilter) (int, error) {
	return scanCount(ctx, r.ddb, loaScanInput(r.tableName, filter))
}

func (r *LOADynamoRepository) ApplyTransition(ctx context.Context, id string, from, to entities.LOAStatus, entry entities.StatusHistoryEntry) (entities.LOA, error) {
	attrs, err := applyTransition(ctx, r.ddb, r.tableName, id, string(from), string(to), toHistoryItem(entry))
	if err != nil {
		return entities.LOA{}, err
	}
	if len(attrs) == 0 {
		return entities.LOA{}, nil
	}

	var it loaItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.LOA{}, err
	}
	return fromLOAItem(it), nil
}

func loaScanInput(tableName string, filter entities.LOAFilter) *dynamodb.ScanInput {
	expr := newScanExpr()
	if filter.Status != "" {
		expr.equals("status", "status", string(filter.Status))
	}
	if filter.VendorID != "" {
		expr.equals("vendor_id", "vendor_id", filter.VendorID)
	}
	var from, to string
	if !filter.CreatedFrom.IsZero() {
		from = formatTime(filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		to = formatTime(filter.CreatedTo)
	}
	expr.between("created_at", "created_at", from, to)
	if filter.Search != "" {
		expr.contains("search", filter.Search, "loa_number", "work_description")
	}
	return expr.input(tableName)
}

func toLOAItem(l entities.LOA) loaItem {
	return loaItem{
		ID:              l.ID,
		LOANumber:       l.LOANumber,
		VendorID:        l.VendorID,
		WorkDescription: l.WorkDescription,
		Amount:          floatToString(l.Amount),
		Status:          string(l.Status),
		History:         toHistoryItems(l.History),
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
	}
}

func fromLOAItem(it loaItem) entities.LOA {
	return entities.LOA{
		ID:              it.ID,
		LOANumber:       it.LOANumber,
		VendorID:        it.VendorID,
		WorkDescription: it.WorkDescription,
		Amount:          parseFloat(it.Amount),
		Status:          entities.LOAStatus(it.Status),
		History:         fromHistoryItems(it.History),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces"
)

const defaultItemsTableName = "items"

type itemItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	UnitPrice   string `dynamodbav:"unit_price"`
	UOM         string `dynamodbav:"uom,omitempty"`
	HSNCode     string `dynamodbav:"hsn_code,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ItemDynamoRepository persists Item master data in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, i entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(i))
	if err != nil {
		return entities.Item{}, err
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
		return entities.Item{}, err
	}
	return i, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var it itemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Item{}, err
	}
	return fromItemItem(it), nil
}

func (r *ItemDynamoRepository) List(ctx context.Context, search string) ([]entities.Item, error) {
	expr := newScanExpr()
	if search != "" {
		expr.contains("search", search, "name", "hsn_code")
	}

	items, err := scanAll(ctx, r.ddb, expr.input(r.tableName))
	if err != nil {
		return nil, err
	}

	result := make([]entities.Item, 0, len(items))
	for _, item := range items {
		var it itemItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		result = append(result, fromItemItem(it))
	}
	return result, nil
}

func (r *ItemDynamoRepository) Update(ctx context.Context, i entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemItem(i))
	if err != nil {
		return entities.Item{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Item{}, nil
		}
		return entities.Item{}, err
	}
	return i, nil
}

func toItemItem(i entities.Item) itemItem {
	return itemItem{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		UnitPrice:   floatToString(i.UnitPrice),
		UOM:         i.UOM,
		HSNCode:     i.HSNCode,
		CreatedAt:   formatTime(i.CreatedAt),
		UpdatedAt:   formatTime(i.UpdatedAt),
	}
}

func fromItemItem(it itemItem) entities.Item {
	return entities.Item{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		UnitPrice:   parseFloat(it.UnitPrice),
		UOM:         it.UOM,
		HSNCode:     it.HSNCode,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

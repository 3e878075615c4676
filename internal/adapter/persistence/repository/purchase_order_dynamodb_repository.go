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

const defaultPurchaseOrdersTableName = "purchase_orders"

type purchaseOrderItem struct {
	ID        string              `dynamodbav:"id"`
	PONumber  string              `dynamodbav:"po_number"`
	LOAID     string              `dynamodbav:"loa_id"`
	VendorID  string              `dynamodbav:"vendor_id"`
	Amount    string              `dynamodbav:"amount"`
	Status    string              `dynamodbav:"status"`
	History   []statusHistoryItem `dynamodbav:"history"`
	CreatedAt string              `dynamodbav:"created_at"`
	UpdatedAt string              `dynamodbav:"updated_at"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PurchaseOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb *dynamodb.Client) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASE_ORDERS_TABLE", defaultPurchaseOrdersTableName),
	}
}

func (r *PurchaseOrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	av, err := attributevalue.MarshalMap(toPurchaseOrderItem(po))
	if err != nil {
		return entities.PurchaseOrder{}, err
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
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func (r *PurchaseOrderDynamoRepository) List(ctx context.Context, filter entities.POFilter) ([]entities.PurchaseOrder, error) {
	items, err := scanAll(ctx, r.ddb, purchaseOrderScanInput(r.tableName, filter))
	if err != nil {
		return nil, err
	}

	orders := make([]entities.PurchaseOrder, 0, len(items))
	for _, item := range items {
		var it purchaseOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromPurchaseOrderItem(it))
	}
	return orders, nil
}

func (r *PurchaseOrderDynamoRepository) Count(ctx context.Context, filter entities.POFilter) (int, error) {
	return scanCount(ctx, r.ddb, purchaseOrderScanInput(r.tableName, filter))
}

func (r *PurchaseOrderDynamoRepository) ApplyTransition(ctx context.Context, id string, from, to entities.POStatus, entry entities.StatusHistoryEntry) (entities.PurchaseOrder, error) {
	attrs, err := applyTransition(ctx, r.ddb, r.tableName, id, string(from), string(to), toHistoryItem(entry))
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(attrs) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func purchaseOrderScanInput(tableName string, filter entities.POFilter) *dynamodb.ScanInput {
	expr := newScanExpr()
	if filter.Status != "" {
		expr.equals("status", "status", string(filter.Status))
	}
	if filter.LOAID != "" {
		expr.equals("loa_id", "loa_id", filter.LOAID)
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
		expr.contains("search", filter.Search, "po_number")
	}
	return expr.input(tableName)
}

func toPurchaseOrderItem(po entities.PurchaseOrder) purchaseOrderItem {
	return purchaseOrderItem{
		ID:        po.ID,
		PONumber:  po.PONumber,
		LOAID:     po.LOAID,
		VendorID:  po.VendorID,
		Amount:    floatToString(po.Amount),
		Status:    string(po.Status),
		History:   toHistoryItems(po.History),
		CreatedAt: formatTime(po.CreatedAt),
		UpdatedAt: formatTime(po.UpdatedAt),
	}
}

func fromPurchaseOrderItem(it purchaseOrderItem) entities.PurchaseOrder {
	return entities.PurchaseOrder{
		ID:        it.ID,
		PONumber:  it.PONumber,
		LOAID:     it.LOAID,
		VendorID:  it.VendorID,
		Amount:    parseFloat(it.Amount),
		Status:    entities.POStatus(it.Status),
		History:   fromHistoryItems(it.History),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

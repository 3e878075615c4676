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

const defaultVendorsTableName = "vendors"

type vendorItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Mobile    string `dynamodbav:"mobile,omitempty"`
	GSTNumber string `dynamodbav:"gst_number,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// VendorDynamoRepository persists Vendor master data in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type VendorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client) *VendorDynamoRepository {
	return &VendorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENDORS_TABLE", defaultVendorsTableName),
	}
}

func (r *VendorDynamoRepository) Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	av, err := attributevalue.MarshalMap(toVendorItem(v))
	if err != nil {
		return entities.Vendor{}, err
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
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vendor{}, nil
	}

	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) List(ctx context.Context, search string) ([]entities.Vendor, error) {
	expr := newScanExpr()
	if search != "" {
		expr.contains("search", search, "name", "gst_number")
	}

	items, err := scanAll(ctx, r.ddb, expr.input(r.tableName))
	if err != nil {
		return nil, err
	}

	vendors := make([]entities.Vendor, 0, len(items))
	for _, item := range items {
		var it vendorItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		vendors = append(vendors, fromVendorItem(it))
	}
	return vendors, nil
}

func (r *VendorDynamoRepository) Update(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	av, err := attributevalue.MarshalMap(toVendorItem(v))
	if err != nil {
		return entities.Vendor{}, err
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
			return entities.Vendor{}, nil
		}
		return entities.Vendor{}, err
	}
	return v, nil
}

func toVendorItem(v entities.Vendor) vendorItem {
	return vendorItem{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Mobile:    v.Mobile,
		GSTNumber: v.GSTNumber,
		Address:   v.Address,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Mobile:    it.Mobile,
		GSTNumber: it.GSTNumber,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

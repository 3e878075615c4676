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

const defaultEMDsTableName = "emds"

type emdItem struct {
	ID           string              `dynamodbav:"id"`
	OfferID      string              `dynamodbav:"offer_id"`
	FDRNumber    string              `dynamodbav:"fdr_number"`
	BankName     string              `dynamodbav:"bank_name"`
	Amount       string              `dynamodbav:"amount"`
	Status       string              `dynamodbav:"status"`
	IssueDate    string              `dynamodbav:"issue_date"`
	MaturityDate string              `dynamodbav:"maturity_date"`
	History      []statusHistoryItem `dynamodbav:"history"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
}

// EMDDynamoRepository persists EMD entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EMDDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEMDRepository = (*EMDDynamoRepository)(nil)

func NewEMDDynamoRepository(ddb *dynamodb.Client) *EMDDynamoRepository {
	return &EMDDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMDS_TABLE", defaultEMDsTableName),
	}
}

func (r *EMDDynamoRepository) Create(ctx context.Context, e entities.EMD) (entities.EMD, error) {
	av, err := attributevalue.MarshalMap(toEMDItem(e))
	if err != nil {
		return entities.EMD{}, err
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
		return entities.EMD{}, err
	}
	return e, nil
}

func (r *EMDDynamoRepository) GetByID(ctx context.Context, id string) (entities.EMD, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EMD{}, err
	}
	if len(out.Item) == 0 {
		return entities.EMD{}, nil
	}

	var it emdItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EMD{}, err
	}
	return fromEMDItem(it), nil
}

func (r *EMDDynamoRepository) List(ctx context.Context, filter entities.EMDFilter) ([]entities.EMD, error) {
	items, err := scanAll(ctx, r.ddb, emdScanInput(r.tableName, filter))
	if err != nil {
		return nil, err
	}

	emds := make([]entities.EMD, 0, len(items))
	for _, item := range items {
		var it emdItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		emds = append(emds, fromEMDItem(it))
	}
	return emds, nil
}

func (r *EMDDynamoRepository) Count(ctx context.Context, filter entities.EMDFilter) (int, error) {
	return scanCount(ctx, r.ddb, emdScanInput(r.tableName, filter))
}

func (r *EMDDynamoRepository) ApplyTransition(ctx context.Context, id string, from, to entities.EMDStatus, entry entities.StatusHistoryEntry) (entities.EMD, error) {
	attrs, err := applyTransition(ctx, r.ddb, r.tableName, id, string(from), string(to), toHistoryItem(entry))
	if err != nil {
		return entities.EMD{}, err
	}
	if len(attrs) == 0 {
		return entities.EMD{}, nil
	}

	var it emdItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.EMD{}, err
	}
	return fromEMDItem(it), nil
}

func emdScanInput(tableName string, filter entities.EMDFilter) *dynamodb.ScanInput {
	expr := newScanExpr()
	if filter.Status != "" {
		expr.equals("status", "status", string(filter.Status))
	}
	if filter.OfferID != "" {
		expr.equals("offer_id", "offer_id", filter.OfferID)
	}
	var from, to string
	if !filter.MaturedFrom.IsZero() {
		from = formatTime(filter.MaturedFrom)
	}
	if !filter.MaturedTo.IsZero() {
		to = formatTime(filter.MaturedTo)
	}
	expr.between("maturity_date", "maturity_date", from, to)
	if filter.Search != "" {
		expr.contains("search", filter.Search, "fdr_number", "bank_name")
	}
	return expr.input(tableName)
}

func toEMDItem(e entities.EMD) emdItem {
	return emdItem{
		ID:           e.ID,
		OfferID:      e.OfferID,
		FDRNumber:    e.FDRNumber,
		BankName:     e.BankName,
		Amount:       floatToString(e.Amount),
		Status:       string(e.Status),
		IssueDate:    formatTime(e.IssueDate),
		MaturityDate: formatTime(e.MaturityDate),
		History:      toHistoryItems(e.History),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}

func fromEMDItem(it emdItem) entities.EMD {
	return entities.EMD{
		ID:           it.ID,
		OfferID:      it.OfferID,
		FDRNumber:    it.FDRNumber,
		BankName:     it.BankName,
		Amount:       parseFloat(it.Amount),
		Status:       entities.EMDStatus(it.Status),
		IssueDate:    parseTime(it.IssueDate),
		MaturityDate: parseTime(it.MaturityDate),
		History:      fromHistoryItems(it.History),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

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

const defaultOffersTableName = "budgetary_offers"

type offerItem struct {
	ID              string              `dynamodbav:"id"`
	Subject         string              `dynamodbav:"subject"`
	ToAuthority     string              `dynamodbav:"to_authority"`
	WorkDescription string              `dynamodbav:"work_description,omitempty"`
	Amount          string              `dynamodbav:"amount"`
	Status          string              `dynamodbav:"status"`
	History         []statusHistoryItem `dynamodbav:"history"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// OfferDynamoRepository persists BudgetaryOffer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OfferDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb *dynamodb.Client) *OfferDynamoRepository {
	return &OfferDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFERS_TABLE", defaultOffersTableName),
	}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, o entities.BudgetaryOffer) (entities.BudgetaryOffer, error) {
	av, err := attributevalue.MarshalMap(toOfferItem(o))
	if err != nil {
		return entities.BudgetaryOffer{}, err
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
		return entities.BudgetaryOffer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetaryOffer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetaryOffer{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetaryOffer{}, nil
	}

	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BudgetaryOffer{}, err
	}
	return fromOfferItem(it), nil
}

func (r *OfferDynamoRepository) List(ctx context.Context, filter entities.OfferFilter) ([]entities.BudgetaryOffer, error) {
	items, err := scanAll(ctx, r.ddb, offerScanInput(r.tableName, filter))
	if err != nil {
		return nil, err
	}

	offers := make([]entities.BudgetaryOffer, 0, len(items))
	for _, item := range items {
		var it offerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		offers = append(offers, fromOfferItem(it))
	}
	return offers, nil
}

func (r *OfferDynamoRepository) Count(ctx context.Context, filter entities.OfferFilter) (int, error) {
	return scanCount(ctx, r.ddb, offerScanInput(r.tableName, filter))
}

func (r *OfferDynamoRepository) ApplyTransition(ctx context.Context, id string, from, to entities.OfferStatus, entry entities.StatusHistoryEntry) (entities.BudgetaryOffer, error) {
	attrs, err := applyTransition(ctx, r.ddb, r.tableName, id, string(from), string(to), toHistoryItem(entry))
	if err != nil {
		return entities.BudgetaryOffer{}, err
	}
	if len(attrs) == 0 {
		return entities.BudgetaryOffer{}, nil
	}

	var it offerItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.BudgetaryOffer{}, err
	}
	return fromOfferItem(it), nil
}

func offerScanInput(tableName string, filter entities.OfferFilter) *dynamodb.ScanInput {
	expr := newScanExpr()
	if filter.Status != "" {
		expr.equals("status", "status", string(filter.Status))
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
		expr.contains("search", filter.Search, "subject", "to_authority")
	}
	return expr.input(tableName)
}

func toOfferItem(o entities.BudgetaryOffer) offerItem {
	return offerItem{
		ID:              o.ID,
		Subject:         o.Subject,
		ToAuthority:     o.ToAuthority,
		WorkDescription: o.WorkDescription,
		Amount:          floatToString(o.Amount),
		Status:          string(o.Status),
		History:         toHistoryItems(o.History),
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromOfferItem(it offerItem) entities.BudgetaryOffer {
	return entities.BudgetaryOffer{
		ID:              it.ID,
		Subject:         it.Subject,
		ToAuthority:     it.ToAuthority,
		WorkDescription: it.WorkDescription,
		Amount:          parseFloat(it.Amount),
		Status:          entities.OfferStatus(it.Status),
		History:         fromHistoryItems(it.History),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

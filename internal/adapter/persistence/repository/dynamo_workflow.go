package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// applyTransition performs the single conditional write every workflow
// repository uses for status changes: set the new status, refresh
// updated_at and append the history record, guarded on the row still being
// in the expected current status. A failed guard (missing row or stale
// status) returns nil attributes and a nil error; the use case decides how
// to report it. Either everything in the expression applies or nothing does.
func applyTransition(ctx context.Context, ddb *dynamodb.Client, tableName, id, from, to string, entry statusHistoryItem) (map[string]types.AttributeValue, error) {
	entryAV, err := attributevalue.Marshal(entry)
	if err != nil {
		return nil, err
	}

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at, #history = list_append(if_not_exists(#history, :empty), :entry)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#history":    "history",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: from},
			":to":         &types.AttributeValueMemberS{Value: to},
			":updated_at": &types.AttributeValueMemberS{Value: entry.Timestamp},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry":      &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

// scanExpr accumulates the pieces of a Scan FilterExpression built from a
// typed filter struct.
type scanExpr struct {
	conds  []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func newScanExpr() *scanExpr {
	return &scanExpr{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (e *scanExpr) equals(attr, placeholder, value string) {
	e.conds = append(e.conds, "#"+placeholder+" = :"+placeholder)
	e.names["#"+placeholder] = attr
	e.values[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
}

func (e *scanExpr) between(attr, placeholder, fromValue, toValue string) {
	if fromValue != "" {
		e.conds = append(e.conds, "#"+placeholder+" >= :"+placeholder+"_from")
		e.values[":"+placeholder+"_from"] = &types.AttributeValueMemberS{Value: fromValue}
	}
	if toValue != "" {
		e.conds = append(e.conds, "#"+placeholder+" <= :"+placeholder+"_to")
		e.values[":"+placeholder+"_to"] = &types.AttributeValueMemberS{Value: toValue}
	}
	if fromValue != "" || toValue != "" {
		e.names["#"+placeholder] = attr
	}
}

func (e *scanExpr) contains(placeholder, value string, attrs ...string) {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		name := "#search_" + attr
		e.names[name] = attr
		parts = append(parts, "contains("+name+", :"+placeholder+")")
	}
	e.conds = append(e.conds, "("+strings.Join(parts, " OR ")+")")
	e.values[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
}

func (e *scanExpr) input(tableName string) *dynamodb.ScanInput {
	in := &dynamodb.ScanInput{TableName: aws.String(tableName)}
	if len(e.conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(e.conds, " AND "))
		in.ExpressionAttributeNames = e.names
		in.ExpressionAttributeValues = e.values
	}
	return in
}

// scanAll drains every page of a filtered scan.
func scanAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func scanCount(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput) (int, error) {
	in.Select = types.SelectCount
	total := 0
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

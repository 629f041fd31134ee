package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// decimalAttr stores a decimal as a DynamoDB number so ADD updates stay exact.
type decimalAttr decimal.Decimal

func (d decimalAttr) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: decimal.Decimal(d).String()}, nil
}

func (d *decimalAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*d = decimalAttr(decimal.Zero)
		return nil
	default:
		return fmt.Errorf("unsupported attribute type %T for decimal", av)
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	*d = decimalAttr(parsed)
	return nil
}

func stringKey(attr, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attr: &types.AttributeValueMemberS{Value: value},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// putIfAbsent writes item unless an item with the same key attribute exists.
// It reports false, nil when the condition failed.
func putIfAbsent(ctx context.Context, ddb DynamoAPI, table, keyAttr string, item map[string]types.AttributeValue) (bool, error) {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": keyAttr,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// getItem reads one item by string key into out. It reports whether the item exists.
func getItem(ctx context.Context, ddb DynamoAPI, table, keyAttr, key string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(keyAttr, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// getOrCreate returns the stored item for key, creating it from item when
// missing. A concurrent creator wins; the loser re-reads the stored row.
func getOrCreate(ctx context.Context, ddb DynamoAPI, table, keyAttr, key string, item any, out any) error {
	found, err := getItem(ctx, ddb, table, keyAttr, key, out)
	if err != nil || found {
		return err
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	created, err := putIfAbsent(ctx, ddb, table, keyAttr, av)
	if err != nil {
		return err
	}
	if created {
		return attributevalue.UnmarshalMap(av, out)
	}

	found, err = getItem(ctx, ddb, table, keyAttr, key, out)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s %q vanished after conditional put", table, key)
	}
	return nil
}

// queryAll drains every page of a query.
func queryAll(ctx context.Context, ddb DynamoAPI, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

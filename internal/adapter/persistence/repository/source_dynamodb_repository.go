package repository

import (
	"context"
	"errors"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultSourcesTableName = "payment_sources"
	sourcesOrderNumberIndex = "order_number-index"
	sourcesTypeRefIndex     = "type_reference-index"
)

var ErrSourceNotFound = errors.New("source not found")

type sourceItem struct {
	ID             string                  `dynamodbav:"id"`
	OrderNumber    string                  `dynamodbav:"order_number"`
	SourceTypeCode string                  `dynamodbav:"source_type_code"`
	Reference      string                  `dynamodbav:"reference"`
	TypeReference  string                  `dynamodbav:"type_reference"`
	Currency       string                  `dynamodbav:"currency"`
	AmountDebited  decimalAttr             `dynamodbav:"amount_debited"`
	Transactions   []sourceTransactionItem `dynamodbav:"transactions,omitempty"`
}

type sourceTransactionItem struct {
	Type      string      `dynamodbav:"type"`
	Amount    decimalAttr `dynamodbav:"amount"`
	Reference string      `dynamodbav:"reference"`
	Status    string      `dynamodbav:"status"`
	CreatedAt string      `dynamodbav:"created_at"`
}

// SourceDynamoRepository persists payment sources in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_number-index (PK: order_number)
//   - GSI: type_reference-index (PK: type_reference)

type SourceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISourceRepository = (*SourceDynamoRepository)(nil)

func NewSourceDynamoRepository(ddb DynamoAPI, tableName string) *SourceDynamoRepository {
	return &SourceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSourcesTableName),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *SourceDynamoRepository) Create(ctx context.Context, s entities.Source) (entities.Source, error) {
	av, err := attributevalue.MarshalMap(toSourceItem(s))
	if err != nil {
		return entities.Source{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Source{}, err
	}
	return s, nil
}

func (r *SourceDynamoRepository) ListByTypeAndReference(ctx context.Context, sourceTypeCode, reference string) ([]entities.Source, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sourcesTypeRefIndex),
		KeyConditionExpression: aws.String("type_reference = :tr"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tr": &types.AttributeValueMemberS{Value: typeReference(sourceTypeCode, reference)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromSourceItems(raw)
}

func (r *SourceDynamoRepository) GetForOrder(ctx context.Context, orderNumber, sourceTypeCode, reference string) (entities.Source, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sourcesOrderNumberIndex),
		KeyConditionExpression: aws.String("order_number = :n"),
		FilterExpression:       aws.String("type_reference = :tr"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n":  &types.AttributeValueMemberS{Value: orderNumber},
			":tr": &types.AttributeValueMemberS{Value: typeReference(sourceTypeCode, reference)},
		},
	})
	if err != nil {
		return entities.Source{}, err
	}
	sources, err := fromSourceItems(raw)
	if err != nil || len(sources) == 0 {
		return entities.Source{}, err
	}
	return sources[0], nil
}

// Debit adds amount to amount_debited and appends a debit transaction in one
// atomic update. Repeated debits for the same reference are not rejected.
func (r *SourceDynamoRepository) Debit(ctx context.Context, sourceID string, amount decimal.Decimal, reference, status string) (entities.Source, error) {
	txn, err := attributevalue.Marshal([]sourceTransactionItem{{
		Type:      entities.TransactionTypeDebit,
		Amount:    decimalAttr(amount),
		Reference: reference,
		Status:    status,
		CreatedAt: formatTime(r.now()),
	}})
	if err != nil {
		return entities.Source{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", sourceID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #transactions = list_append(if_not_exists(#transactions, :empty), :txn) ADD #amount_debited :amount"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":txn":    txn,
			":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":amount": &types.AttributeValueMemberN{Value: amount.String()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#transactions":   "transactions",
			"#amount_debited": "amount_debited",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Source{}, ErrSourceNotFound
		}
		return entities.Source{}, err
	}

	var it sourceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Source{}, err
	}
	return fromSourceItem(it), nil
}

func typeReference(sourceTypeCode, reference string) string {
	return sourceTypeCode + "#" + reference
}

func toSourceItem(s entities.Source) sourceItem {
	it := sourceItem{
		ID:             s.ID,
		OrderNumber:    s.OrderNumber,
		SourceTypeCode: s.SourceTypeCode,
		Reference:      s.Reference,
		TypeReference:  typeReference(s.SourceTypeCode, s.Reference),
		Currency:       s.Currency,
		AmountDebited:  decimalAttr(s.AmountDebited),
	}
	for _, t := range s.Transactions {
		it.Transactions = append(it.Transactions, sourceTransactionItem{
			Type:      t.Type,
			Amount:    decimalAttr(t.Amount),
			Reference: t.Reference,
			Status:    t.Status,
			CreatedAt: formatTime(t.CreatedAt),
		})
	}
	return it
}

func fromSourceItem(it sourceItem) entities.Source {
	s := entities.Source{
		ID:             it.ID,
		OrderNumber:    it.OrderNumber,
		SourceTypeCode: it.SourceTypeCode,
		Reference:      it.Reference,
		Currency:       it.Currency,
		AmountDebited:  decimal.Decimal(it.AmountDebited),
	}
	for _, t := range it.Transactions {
		s.Transactions = append(s.Transactions, entities.SourceTransaction{
			Type:      t.Type,
			Amount:    decimal.Decimal(t.Amount),
			Reference: t.Reference,
			Status:    t.Status,
			CreatedAt: parseTime(t.CreatedAt),
		})
	}
	return s
}

func fromSourceItems(raw []map[string]types.AttributeValue) ([]entities.Source, error) {
	sources := make([]entities.Source, 0, len(raw))
	for _, av := range raw {
		var it sourceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		sources = append(sources, fromSourceItem(it))
	}
	return sources, nil
}

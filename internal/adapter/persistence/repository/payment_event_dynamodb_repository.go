package repository

import (
	"context"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentEventTypesTableName      = "payment_event_types"
	defaultPaymentEventsTableName          = "payment_events"
	defaultPaymentEventQuantitiesTableName = "payment_event_quantities"
	paymentEventsReferenceIndex            = "reference-index"
)

type paymentEventTypeItem struct {
	Name string `dynamodbav:"name"`
}

type paymentEventItem struct {
	ID          string      `dynamodbav:"id"`
	EventType   string      `dynamodbav:"event_type"`
	Amount      decimalAttr `dynamodbav:"amount"`
	Reference   string      `dynamodbav:"reference"`
	OrderNumber string      `dynamodbav:"order_number"`
	CreatedAt   string      `dynamodbav:"created_at"`
}

type paymentEventQuantityItem struct {
	ID       string `dynamodbav:"id"`
	EventID  string `dynamodbav:"event_id"`
	LineID   string `dynamodbav:"line_id"`
	Quantity int    `dynamodbav:"quantity"`
}

// PaymentEventTables names the three tables backing the payment event log.
type PaymentEventTables struct {
	EventTypes string
	Events     string
	Quantities string
}

// PaymentEventDynamoRepository persists payment events in DynamoDB.
//
// Table requirements:
//   - event types PK: name (string)
//   - events PK: id (string), GSI: reference-index (PK: reference)
//   - quantities PK: id (string)

type PaymentEventDynamoRepository struct {
	ddb    DynamoAPI
	tables PaymentEventTables
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb DynamoAPI, tables PaymentEventTables) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb: ddb,
		tables: PaymentEventTables{
			EventTypes: tableOrDefault(tables.EventTypes, defaultPaymentEventTypesTableName),
			Events:     tableOrDefault(tables.Events, defaultPaymentEventsTableName),
			Quantities: tableOrDefault(tables.Quantities, defaultPaymentEventQuantitiesTableName),
		},
	}
}

func (r *PaymentEventDynamoRepository) GetOrCreateEventType(ctx context.Context, name string) (entities.PaymentEventType, error) {
	var it paymentEventTypeItem
	if err := getOrCreate(ctx, r.ddb, r.tables.EventTypes, "name", name, paymentEventTypeItem{Name: name}, &it); err != nil {
		return entities.PaymentEventType{}, err
	}
	return entities.PaymentEventType{Name: it.Name}, nil
}

func (r *PaymentEventDynamoRepository) CreateEvent(ctx context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) {
	av, err := attributevalue.MarshalMap(paymentEventItem{
		ID:          e.ID,
		EventType:   e.EventType,
		Amount:      decimalAttr(e.Amount),
		Reference:   e.Reference,
		OrderNumber: e.OrderNumber,
		CreatedAt:   formatTime(e.CreatedAt),
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tables.Events),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	return e, nil
}

func (r *PaymentEventDynamoRepository) CreateEventQuantity(ctx context.Context, q entities.PaymentEventQuantity) (entities.PaymentEventQuantity, error) {
	av, err := attributevalue.MarshalMap(paymentEventQuantityItem{
		ID:       q.ID,
		EventID:  q.EventID,
		LineID:   q.LineID,
		Quantity: q.Quantity,
	})
	if err != nil {
		return entities.PaymentEventQuantity{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tables.Quantities),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentEventQuantity{}, err
	}
	return q, nil
}

func (r *PaymentEventDynamoRepository) ExistsForReference(ctx context.Context, reference, eventType string) (bool, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Events),
		IndexName:              aws.String(paymentEventsReferenceIndex),
		KeyConditionExpression: aws.String("#reference = :ref"),
		FilterExpression:       aws.String("#event_type = :et"),
		ExpressionAttributeNames: map[string]string{
			"#reference":  "reference",
			"#event_type": "event_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: reference},
			":et":  &types.AttributeValueMemberS{Value: eventType},
		},
	})
	if err != nil {
		return false, err
	}
	return len(raw) > 0, nil
}

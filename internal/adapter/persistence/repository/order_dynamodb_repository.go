package repository

import (
	"context"
	"errors"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

var ErrOrderAlreadyExists = errors.New("order already exists")

type orderItem struct {
	Number    string          `dynamodbav:"number"`
	Status    string          `dynamodbav:"status"`
	Currency  string          `dynamodbav:"currency"`
	Lines     []orderLineItem `dynamodbav:"lines"`
	Notes     []orderNoteItem `dynamodbav:"notes,omitempty"`
	CreatedAt string          `dynamodbav:"created_at"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

type orderLineItem struct {
	ID       string `dynamodbav:"id"`
	Title    string `dynamodbav:"title"`
	Quantity int    `dynamodbav:"quantity"`
}

type orderNoteItem struct {
	Type      string `dynamodbav:"type"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: number (string)

type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	created, err := putIfAbsent(ctx, r.ddb, r.tableName, "number", av)
	if err != nil {
		return entities.Order{}, err
	}
	if !created {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Order, error) {
	var it orderItem
	found, err := getItem(ctx, r.ddb, r.tableName, "number", number, &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus sets the status and appends note in a single write. A missing
// order yields a zero Order and no error.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, number string, status string, note entities.OrderNote) (entities.Order, error) {
	noteAV, err := attributevalue.Marshal([]orderNoteItem{toOrderNoteItem(note)})
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("number", number),
		ConditionExpression: aws.String("attribute_exists(#number)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at, #notes = list_append(if_not_exists(#notes, :empty), :note)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: status},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(note.CreatedAt)},
			":note":       noteAV,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		ExpressionAttributeNames: map[string]string{
			"#number":     "number",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#notes":      "notes",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		Number:    o.Number,
		Status:    o.Status,
		Currency:  o.Currency,
		Lines:     make([]orderLineItem, 0, len(o.Lines)),
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
	for _, l := range o.Lines {
		it.Lines = append(it.Lines, orderLineItem{ID: l.ID, Title: l.Title, Quantity: l.Quantity})
	}
	for _, n := range o.Notes {
		it.Notes = append(it.Notes, toOrderNoteItem(n))
	}
	return it
}

func toOrderNoteItem(n entities.OrderNote) orderNoteItem {
	return orderNoteItem{Type: n.Type, Message: n.Message, CreatedAt: formatTime(n.CreatedAt)}
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		Number:    it.Number,
		Status:    it.Status,
		Currency:  it.Currency,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for _, l := range it.Lines {
		o.Lines = append(o.Lines, entities.OrderLine{ID: l.ID, Title: l.Title, Quantity: l.Quantity})
	}
	for _, n := range it.Notes {
		o.Notes = append(o.Notes, entities.OrderNote{Type: n.Type, Message: n.Message, CreatedAt: parseTime(n.CreatedAt)})
	}
	return o
}

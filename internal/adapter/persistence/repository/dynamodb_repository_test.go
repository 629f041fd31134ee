package repository

import (
	"context"
	"errors"
	"mollie_checkout/internal/domain/entities"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func mustMarshalMap(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestSourceTypeDynamoRepository_GetOrCreate(t *testing.T) {
	t.Run("creates missing type", func(t *testing.T) {
		var put *dynamodb.PutItemInput
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
			putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				put = in
				return &dynamodb.PutItemOutput{}, nil
			},
		}
		repo := NewSourceTypeDynamoRepository(ddb, "")

		st, err := repo.GetOrCreate(context.Background(), "mollie[ideal]", "Mollie[ideal]")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Code != "mollie[ideal]" || st.Name != "Mollie[ideal]" {
			t.Fatalf("unexpected source type: %+v", st)
		}
		if put == nil || *put.TableName != defaultSourceTypesTableName {
			t.Fatalf("expected put into %s, got %+v", defaultSourceTypesTableName, put)
		}
		if *put.ConditionExpression != "attribute_not_exists(#pk)" || put.ExpressionAttributeNames["#pk"] != "code" {
			t.Fatalf("put must be conditional on code: %+v", put)
		}
	})

	t.Run("existing type keeps its name", func(t *testing.T) {
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: mustMarshalMap(t, sourceTypeItem{Code: "mollie", Name: "Mollie payments"})}, nil
			},
			putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				t.Fatalf("no put expected")
				return nil, nil
			},
		}
		repo := NewSourceTypeDynamoRepository(ddb, "types")

		st, err := repo.GetOrCreate(context.Background(), "mollie", "Mollie")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Name != "Mollie payments" {
			t.Fatalf("name must not be overwritten: %+v", st)
		}
	})

	t.Run("lost race re-reads the winner", func(t *testing.T) {
		gets := 0
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				gets++
				if gets == 1 {
					return &dynamodb.GetItemOutput{}, nil
				}
				return &dynamodb.GetItemOutput{Item: mustMarshalMap(t, sourceTypeItem{Code: "mollie", Name: "Winner"})}, nil
			},
			putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewSourceTypeDynamoRepository(ddb, "")

		st, err := repo.GetOrCreate(context.Background(), "mollie", "Mollie")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gets != 2 || st.Name != "Winner" {
			t.Fatalf("expected winner after re-read, got %+v (gets=%d)", st, gets)
		}
	})
}

func TestSourceDynamoRepository_Debit(t *testing.T) {
	t.Run("adds amount and appends transaction", func(t *testing.T) {
		var update *dynamodb.UpdateItemInput
		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				update = in
				return &dynamodb.UpdateItemOutput{Attributes: mustMarshalMap(t, sourceItem{
					ID:            "src-1",
					OrderNumber:   "100023",
					AmountDebited: decimalAttr(decimal.RequireFromString("35.50")),
					Transactions: []sourceTransactionItem{{
						Type:      entities.TransactionTypeDebit,
						Amount:    decimalAttr(decimal.RequireFromString("10.25")),
						Reference: "tr_1",
						Status:    "Paid",
					}},
				})}, nil
			},
		}
		repo := NewSourceDynamoRepository(ddb, "")
		repo.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

		src, err := repo.Debit(context.Background(), "src-1", decimal.RequireFromString("10.25"), "tr_1", "Paid")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(*update.UpdateExpression, "ADD #amount_debited :amount") {
			t.Fatalf("unexpected update expression: %s", *update.UpdateExpression)
		}
		amount, ok := update.ExpressionAttributeValues[":amount"].(*types.AttributeValueMemberN)
		if !ok || amount.Value != "10.25" {
			t.Fatalf("amount must be sent as an exact number: %+v", update.ExpressionAttributeValues[":amount"])
		}
		if !src.AmountDebited.Equal(decimal.RequireFromString("35.50")) || len(src.Transactions) != 1 {
			t.Fatalf("unexpected source: %+v", src)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewSourceDynamoRepository(ddb, "")

		_, err := repo.Debit(context.Background(), "src-x", decimal.NewFromInt(1), "tr_1", "Paid")
		if !errors.Is(err, ErrSourceNotFound) {
			t.Fatalf("expected ErrSourceNotFound, got %v", err)
		}
	})
}

func TestSourceDynamoRepository_ListByTypeAndReference(t *testing.T) {
	calls := 0
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if *in.IndexName != sourcesTypeRefIndex {
				t.Fatalf("unexpected index: %s", *in.IndexName)
			}
			tr := in.ExpressionAttributeValues[":tr"].(*types.AttributeValueMemberS)
			if tr.Value != "mollie[ideal]#tr_1" {
				t.Fatalf("unexpected type_reference: %s", tr.Value)
			}
			if calls == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{mustMarshalMap(t, sourceItem{ID: "src-1", OrderNumber: "1"})},
					LastEvaluatedKey: stringKey("id", "src-1"),
				}, nil
			}
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{mustMarshalMap(t, sourceItem{ID: "src-2", OrderNumber: "2"})},
			}, nil
		},
	}
	repo := NewSourceDynamoRepository(ddb, "")

	sources, err := repo.ListByTypeAndReference(context.Background(), "mollie[ideal]", "tr_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(sources) != 2 || sources[1].OrderNumber != "2" {
		t.Fatalf("expected both pages, got %+v (calls=%d)", sources, calls)
	}
}

func TestOrderDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewOrderDynamoRepository(ddb, "")

		order, err := repo.UpdateStatus(context.Background(), "404", "Pending", entities.OrderNote{Message: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Number != "" {
			t.Fatalf("expected zero order, got %+v", order)
		}
	})

	t.Run("returns updated order", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				if _, ok := in.ExpressionAttributeValues[":note"].(*types.AttributeValueMemberL); !ok {
					t.Fatalf("note must be appended as a list")
				}
				return &dynamodb.UpdateItemOutput{Attributes: mustMarshalMap(t, orderItem{
					Number: "100023",
					Status: "Being processed",
					Lines:  []orderLineItem{{ID: "line-1", Title: "Mug", Quantity: 2}},
					Notes:  []orderNoteItem{{Type: "System", Message: "Mollie payment update"}},
				})}, nil
			},
		}
		repo := NewOrderDynamoRepository(ddb, "")

		order, err := repo.UpdateStatus(context.Background(), "100023", "Being processed", entities.OrderNote{
			Type:    entities.OrderNoteTypeSystem,
			Message: "Mollie payment update",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "Being processed" || len(order.Lines) != 1 || len(order.Notes) != 1 {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}

func TestPaymentEventDynamoRepository_ExistsForReference(t *testing.T) {
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if *in.IndexName != paymentEventsReferenceIndex {
				t.Fatalf("unexpected index: %s", *in.IndexName)
			}
			et := in.ExpressionAttributeValues[":et"].(*types.AttributeValueMemberS)
			if et.Value == "Pending" {
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mustMarshalMap(t, paymentEventItem{ID: "ev-1"})}}, nil
			}
			return &dynamodb.QueryOutput{}, nil
		},
	}
	repo := NewPaymentEventDynamoRepository(ddb, PaymentEventTables{})

	exists, err := repo.ExistsForReference(context.Background(), "tr_1", "Pending")
	if err != nil || !exists {
		t.Fatalf("expected existing event, got %v err=%v", exists, err)
	}
	exists, err = repo.ExistsForReference(context.Background(), "tr_1", "Paid")
	if err != nil || exists {
		t.Fatalf("expected no event, got %v err=%v", exists, err)
	}
}

func TestDecimalAttr(t *testing.T) {
	av := mustMarshalMap(t, paymentEventItem{ID: "ev-1", Amount: decimalAttr(decimal.RequireFromString("0.10"))})
	n, ok := av["amount"].(*types.AttributeValueMemberN)
	if !ok || n.Value != "0.1" {
		t.Fatalf("expected number attribute, got %#v", av["amount"])
	}

	var it paymentEventItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decimal.Decimal(it.Amount).Equal(decimal.RequireFromString("0.1")) {
		t.Fatalf("unexpected amount: %s", decimal.Decimal(it.Amount))
	}
}

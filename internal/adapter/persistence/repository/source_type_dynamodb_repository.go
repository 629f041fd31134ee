package repository

import (
	"context"
	"mollie_checkout/internal/domain/entities"
	"mollie_checkout/internal/usecase/interfaces"
)

const defaultSourceTypesTableName = "payment_source_types"

type sourceTypeItem struct {
	Code string `dynamodbav:"code"`
	Name string `dynamodbav:"name"`
}

// SourceTypeDynamoRepository stores source types keyed by code (PK: code).
type SourceTypeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISourceTypeRepository = (*SourceTypeDynamoRepository)(nil)

func NewSourceTypeDynamoRepository(ddb DynamoAPI, tableName string) *SourceTypeDynamoRepository {
	return &SourceTypeDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSourceTypesTableName),
	}
}

func (r *SourceTypeDynamoRepository) GetOrCreate(ctx context.Context, code, name string) (entities.SourceType, error) {
	var it sourceTypeItem
	if err := getOrCreate(ctx, r.ddb, r.tableName, "code", code, sourceTypeItem{Code: code, Name: name}, &it); err != nil {
		return entities.SourceType{}, err
	}
	return entities.SourceType{Code: it.Code, Name: it.Name}, nil
}

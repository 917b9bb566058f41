package repository

import (
	"context"
	"errors"
	"strconv"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "contractor_quotes"
	quotesIDIndex          = "id-index"
	quotesRequestIDIndex   = "request_id-index"
	quotesContractorIndex  = "contractor_id-index"
)

type contractorQuoteItem struct {
	PairKey      string `dynamodbav:"pair_key"`
	ID           string `dynamodbav:"id"`
	RequestID    string `dynamodbav:"request_id"`
	ContractorID string `dynamodbav:"contractor_id"`
	Price        string `dynamodbav:"price"`
	Description  string `dynamodbav:"description"`
	DocumentRef  string `dynamodbav:"document_ref,omitempty"`
	Status       string `dynamodbav:"status"`
	SubmittedAt  string `dynamodbav:"submitted_at"`
}

// ContractorQuoteDynamoRepository persists ContractorQuote entities in DynamoDB.
//
// Table requirements:
//   - PK: pair_key (request_id + "#" + contractor_id)
//   - GSI: id-index (PK: id)
//   - GSI: request_id-index (PK: request_id)
//   - GSI: contractor_id-index (PK: contractor_id)
//
// attribute_not_exists(pair_key) on Create is the one-bid-per-pair guarantee.

type ContractorQuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractorQuoteRepository = (*ContractorQuoteDynamoRepository)(nil)

func NewContractorQuoteDynamoRepository(ddb *dynamodb.Client) *ContractorQuoteDynamoRepository {
	return &ContractorQuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTOR_QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *ContractorQuoteDynamoRepository) Create(ctx context.Context, q entities.ContractorQuote) (entities.ContractorQuote, error) {
	it := toContractorQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pair_key)"),
		ExpressionAttributeNames: map[string]string{
			"#pair_key": "pair_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContractorQuote{}, nil
		}
		return entities.ContractorQuote{}, err
	}
	return q, nil
}

func (r *ContractorQuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractorQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ContractorQuote{}, err
	}
	if len(out.Items) == 0 {
		return entities.ContractorQuote{}, nil
	}

	var it contractorQuoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ContractorQuote{}, err
	}
	return fromContractorQuoteItem(it), nil
}

func (r *ContractorQuoteDynamoRepository) GetByPair(ctx context.Context, requestID, contractorID string) (entities.ContractorQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pair_key": &types.AttributeValueMemberS{Value: pairKey(requestID, contractorID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractorQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractorQuote{}, nil
	}

	var it contractorQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractorQuote{}, err
	}
	return fromContractorQuoteItem(it), nil
}

func (r *ContractorQuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.ContractorQuote, error) {
	return r.queryIndex(ctx, quotesRequestIDIndex, "request_id", requestID)
}

func (r *ContractorQuoteDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorQuote, error) {
	return r.queryIndex(ctx, quotesContractorIndex, "contractor_id", contractorID)
}

func (r *ContractorQuoteDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.ContractorQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#attr = :value"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.ContractorQuote, 0, len(out.Items))
	for _, item := range out.Items {
		var it contractorQuoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromContractorQuoteItem(it))
	}
	return quotes, nil
}

func (r *ContractorQuoteDynamoRepository) CountByRequestID(ctx context.Context, requestID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesRequestIDIndex),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *ContractorQuoteDynamoRepository) Delete(ctx context.Context, requestID, contractorID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pair_key": &types.AttributeValueMemberS{Value: pairKey(requestID, contractorID)},
		},
	})
	return err
}

func (r *ContractorQuoteDynamoRepository) MarkAccepted(ctx context.Context, requestID, contractorID string) (entities.ContractorQuote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pair_key": &types.AttributeValueMemberS{Value: pairKey(requestID, contractorID)},
		},
		ConditionExpression: aws.String("attribute_exists(#pair_key)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#pair_key": "pair_key",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContractorQuote{}, nil
		}
		return entities.ContractorQuote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ContractorQuote{}, nil
	}
	var it contractorQuoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContractorQuote{}, err
	}
	return fromContractorQuoteItem(it), nil
}

func toContractorQuoteItem(q entities.ContractorQuote) contractorQuoteItem {
	return contractorQuoteItem{
		PairKey:      pairKey(q.RequestID, q.ContractorID),
		ID:           q.ID,
		RequestID:    q.RequestID,
		ContractorID: q.ContractorID,
		Price:        floatToString(q.Price),
		Description:  q.Description,
		DocumentRef:  q.DocumentRef,
		Status:       string(q.Status),
		SubmittedAt:  formatTime(q.SubmittedAt),
	}
}

func fromContractorQuoteItem(it contractorQuoteItem) entities.ContractorQuote {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.ContractorQuote{
		ID:           it.ID,
		RequestID:    it.RequestID,
		ContractorID: it.ContractorID,
		Price:        price,
		Description:  it.Description,
		DocumentRef:  it.DocumentRef,
		Status:       entities.QuoteStatus(it.Status),
		SubmittedAt:  parseTime(it.SubmittedAt),
	}
}

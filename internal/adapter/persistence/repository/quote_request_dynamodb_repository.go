package repository

import (
	"context"
	"errors"
	"time"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuoteRequestsTableName = "quote_requests"
	quoteRequestsCustomerIDIndex  = "customer_id-index"
)

type quoteRequestItem struct {
	ID           string   `dynamodbav:"id"`
	CustomerID   string   `dynamodbav:"customer_id"`
	SpaceType    string   `dynamodbav:"space_type"`
	BudgetBand   string   `dynamodbav:"budget_band"`
	TimelineBand string   `dynamodbav:"timeline_band"`
	Address      string   `dynamodbav:"address"`
	Description  string   `dynamodbav:"description"`
	VisitDates   []string `dynamodbav:"visit_dates"`
	Status       string   `dynamodbav:"status"`

	SelectedContractorID string `dynamodbav:"selected_contractor_id,omitempty"`
	SelectedQuoteID      string `dynamodbav:"selected_quote_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// The selected_contractor_id attribute is absent until the selection update
// writes it, so attribute_not_exists doubles as the write-once guard.

type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_REQUESTS_TABLE", defaultQuoteRequestsTableName),
	}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it := toQuoteRequestItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func (r *QuoteRequestDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteRequestsCustomerIDIndex),
		KeyConditionExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	requests := make([]entities.QuoteRequest, 0, len(out.Items))
	for _, item := range out.Items {
		var it quoteRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromQuoteRequestItem(it))
	}
	return requests, nil
}

// UpdateStatus is a compare-and-swap: the write only lands while the stored
// status still equals from. A lost condition returns a zero value.
func (r *QuoteRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.RequestStatus) (entities.QuoteRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	return unmarshalQuoteRequestAttributes(out.Attributes)
}

// FinalizeSelection is the one write-once update in the system: it sets the
// winner only while selected_contractor_id is still absent, and only while
// the stored status still accepts a selection, moving to completed in the
// same atomic write. A lost condition (someone selected first, or the request
// was cancelled in between) returns a zero value, never an overwrite.
func (r *QuoteRequestDynamoRepository) FinalizeSelection(ctx context.Context, requestID, contractorID, quoteID string) (entities.QuoteRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#selected_contractor_id) AND #status IN (:bidding, :bidding_closed)"),
		UpdateExpression:    aws.String("SET #selected_contractor_id = :contractor_id, #selected_quote_id = :quote_id, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                     "id",
			"#selected_contractor_id": "selected_contractor_id",
			"#selected_quote_id":      "selected_quote_id",
			"#status":                 "status",
			"#updated_at":             "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contractor_id":  &types.AttributeValueMemberS{Value: contractorID},
			":quote_id":       &types.AttributeValueMemberS{Value: quoteID},
			":status":         &types.AttributeValueMemberS{Value: string(entities.RequestStatusCompleted)},
			":bidding":        &types.AttributeValueMemberS{Value: string(entities.RequestStatusBidding)},
			":bidding_closed": &types.AttributeValueMemberS{Value: string(entities.RequestStatusBiddingClosed)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	return unmarshalQuoteRequestAttributes(out.Attributes)
}

func unmarshalQuoteRequestAttributes(attrs map[string]types.AttributeValue) (entities.QuoteRequest, error) {
	if len(attrs) == 0 {
		return entities.QuoteRequest{}, nil
	}
	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	dates := make([]string, 0, len(q.VisitDates))
	for _, d := range q.VisitDates {
		dates = append(dates, formatTime(d))
	}
	return quoteRequestItem{
		ID:                   q.ID,
		CustomerID:           q.CustomerID,
		SpaceType:            q.SpaceType,
		BudgetBand:           q.BudgetBand,
		TimelineBand:         q.TimelineBand,
		Address:              q.Address,
		Description:          q.Description,
		VisitDates:           dates,
		Status:               string(q.Status),
		SelectedContractorID: q.SelectedContractorID,
		SelectedQuoteID:      q.SelectedQuoteID,
		CreatedAt:            formatTime(q.CreatedAt),
		UpdatedAt:            formatTime(q.UpdatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	dates := make([]time.Time, 0, len(it.VisitDates))
	for _, d := range it.VisitDates {
		dates = append(dates, parseTime(d))
	}
	return entities.QuoteRequest{
		ID:                   it.ID,
		CustomerID:           it.CustomerID,
		SpaceType:            it.SpaceType,
		BudgetBand:           it.BudgetBand,
		TimelineBand:         it.TimelineBand,
		Address:              it.Address,
		Description:          it.Description,
		VisitDates:           dates,
		Status:               entities.RequestStatus(it.Status),
		SelectedContractorID: it.SelectedContractorID,
		SelectedQuoteID:      it.SelectedQuoteID,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}

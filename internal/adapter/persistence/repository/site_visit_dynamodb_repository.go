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
	defaultSiteVisitsTableName = "site_visit_applications"
	siteVisitsIDIndex          = "id-index"
	siteVisitsRequestIDIndex   = "request_id-index"
	siteVisitsContractorIndex  = "contractor_id-index"
)

type siteVisitItem struct {
	PairKey      string `dynamodbav:"pair_key"`
	ID           string `dynamodbav:"id"`
	RequestID    string `dynamodbav:"request_id"`
	ContractorID string `dynamodbav:"contractor_id"`
	Status       string `dynamodbav:"status"`
	AppliedAt    string `dynamodbav:"applied_at"`
	Cancelled    bool   `dynamodbav:"cancelled"`
	CancelledAt  string `dynamodbav:"cancelled_at,omitempty"`
	CancelledBy  string `dynamodbav:"cancelled_by,omitempty"`
}

// SiteVisitDynamoRepository persists SiteVisitApplication entities in DynamoDB.
//
// Table requirements:
//   - PK: pair_key (request_id + "#" + contractor_id)
//   - GSI: id-index (PK: id)
//   - GSI: request_id-index (PK: request_id)
//   - GSI: contractor_id-index (PK: contractor_id)
//
// One row per pair. Cancellation mutates the row in place (audit fields
// retained); a re-application after cancellation replaces the row through the
// same conditional put that refuses duplicates of an active application.

type SiteVisitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteVisitRepository = (*SiteVisitDynamoRepository)(nil)

func NewSiteVisitDynamoRepository(ddb *dynamodb.Client) *SiteVisitDynamoRepository {
	return &SiteVisitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITE_VISITS_TABLE", defaultSiteVisitsTableName),
	}
}

func (r *SiteVisitDynamoRepository) Create(ctx context.Context, a entities.SiteVisitApplication) (entities.SiteVisitApplication, error) {
	it := toSiteVisitItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pair_key) OR #cancelled = :true"),
		ExpressionAttributeNames: map[string]string{
			"#pair_key":  "pair_key",
			"#cancelled": "cancelled",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SiteVisitApplication{}, nil
		}
		return entities.SiteVisitApplication{}, err
	}
	return a, nil
}

func (r *SiteVisitDynamoRepository) GetByID(ctx context.Context, id string) (entities.SiteVisitApplication, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(siteVisitsIDIndex),
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
		return entities.SiteVisitApplication{}, err
	}
	if len(out.Items) == 0 {
		return entities.SiteVisitApplication{}, nil
	}

	var it siteVisitItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.SiteVisitApplication{}, err
	}
	return fromSiteVisitItem(it), nil
}

func (r *SiteVisitDynamoRepository) GetByPair(ctx context.Context, requestID, contractorID string) (entities.SiteVisitApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pair_key": &types.AttributeValueMemberS{Value: pairKey(requestID, contractorID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.SiteVisitApplication{}, nil
	}

	var it siteVisitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SiteVisitApplication{}, err
	}
	return fromSiteVisitItem(it), nil
}

func (r *SiteVisitDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.SiteVisitApplication, error) {
	return r.queryIndex(ctx, siteVisitsRequestIDIndex, "request_id", requestID)
}

func (r *SiteVisitDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.SiteVisitApplication, error) {
	return r.queryIndex(ctx, siteVisitsContractorIndex, "contractor_id", contractorID)
}

func (r *SiteVisitDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.SiteVisitApplication, error) {
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

	apps := make([]entities.SiteVisitApplication, 0, len(out.Items))
	for _, item := range out.Items {
		var it siteVisitItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		apps = append(apps, fromSiteVisitItem(it))
	}
	return apps, nil
}

// Cancel flips the cancellation flag, keeping the row for the audit trail.
// The condition refuses rows that are already cancelled.
func (r *SiteVisitDynamoRepository) Cancel(ctx context.Context, requestID, contractorID, actorID string) (entities.SiteVisitApplication, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pair_key": &types.AttributeValueMemberS{Value: pairKey(requestID, contractorID)},
		},
		ConditionExpression: aws.String("attribute_exists(#pair_key) AND #cancelled = :false"),
		UpdateExpression:    aws.String("SET #cancelled = :true, #cancelled_at = :cancelled_at, #cancelled_by = :cancelled_by"),
		ExpressionAttributeNames: map[string]string{
			"#pair_key":     "pair_key",
			"#cancelled":    "cancelled",
			"#cancelled_at": "cancelled_at",
			"#cancelled_by": "cancelled_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":true":         &types.AttributeValueMemberBOOL{Value: true},
			":cancelled_at": &types.AttributeValueMemberS{Value: now},
			":cancelled_by": &types.AttributeValueMemberS{Value: actorID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SiteVisitApplication{}, nil
		}
		return entities.SiteVisitApplication{}, err
	}
	return unmarshalSiteVisitAttributes(out.Attributes)
}

func (r *SiteVisitDynamoRepository) MarkCompleted(ctx context.Context, requestID, contractorID string) (entities.SiteVisitApplication, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pair_key": &types.AttributeValueMemberS{Value: pairKey(requestID, contractorID)},
		},
		ConditionExpression: aws.String("attribute_exists(#pair_key) AND #cancelled = :false"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#pair_key":  "pair_key",
			"#cancelled": "cancelled",
			"#status":    "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":  &types.AttributeValueMemberBOOL{Value: false},
			":status": &types.AttributeValueMemberS{Value: string(entities.VisitStatusCompleted)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SiteVisitApplication{}, nil
		}
		return entities.SiteVisitApplication{}, err
	}
	return unmarshalSiteVisitAttributes(out.Attributes)
}

func unmarshalSiteVisitAttributes(attrs map[string]types.AttributeValue) (entities.SiteVisitApplication, error) {
	if len(attrs) == 0 {
		return entities.SiteVisitApplication{}, nil
	}
	var it siteVisitItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.SiteVisitApplication{}, err
	}
	return fromSiteVisitItem(it), nil
}

func toSiteVisitItem(a entities.SiteVisitApplication) siteVisitItem {
	return siteVisitItem{
		PairKey:      pairKey(a.RequestID, a.ContractorID),
		ID:           a.ID,
		RequestID:    a.RequestID,
		ContractorID: a.ContractorID,
		Status:       string(a.Status),
		AppliedAt:    formatTime(a.AppliedAt),
		Cancelled:    a.Cancelled,
		CancelledAt:  formatTime(a.CancelledAt),
		CancelledBy:  a.CancelledBy,
	}
}

func fromSiteVisitItem(it siteVisitItem) entities.SiteVisitApplication {
	return entities.SiteVisitApplication{
		ID:           it.ID,
		RequestID:    it.RequestID,
		ContractorID: it.ContractorID,
		Status:       entities.VisitStatus(it.Status),
		AppliedAt:    parseTime(it.AppliedAt),
		Cancelled:    it.Cancelled,
		CancelledAt:  parseTime(it.CancelledAt),
		CancelledBy:  it.CancelledBy,
	}
}

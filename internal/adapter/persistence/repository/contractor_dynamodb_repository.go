package repository

import (
	"context"
	"errors"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractorsTableName = "contractors"

type contractorItem struct {
	ID           string `dynamodbav:"id"`
	BusinessName string `dynamodbav:"business_name"`
	Email        string `dynamodbav:"email"`
	PushToken    string `dynamodbav:"push_token,omitempty"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ContractorDynamoRepository persists Contractor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ContractorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractorRepository = (*ContractorDynamoRepository)(nil)

func NewContractorDynamoRepository(ddb *dynamodb.Client) *ContractorDynamoRepository {
	return &ContractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTORS_TABLE", defaultContractorsTableName),
	}
}

func (r *ContractorDynamoRepository) Create(ctx context.Context, c entities.Contractor) (entities.Contractor, error) {
	it := contractorItem{
		ID:           c.ID,
		BusinessName: c.BusinessName,
		Email:        c.Email,
		PushToken:    c.PushToken,
		Active:       c.Active,
		CreatedAt:    formatTime(c.CreatedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contractor{}, err
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
		return entities.Contractor{}, err
	}
	return c, nil
}

func (r *ContractorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contractor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contractor{}, nil
	}

	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func (r *ContractorDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Contractor, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: active},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contractor{}, nil
		}
		return entities.Contractor{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contractor{}, nil
	}
	var it contractorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contractor{}, err
	}
	return fromContractorItem(it), nil
}

func fromContractorItem(it contractorItem) entities.Contractor {
	return entities.Contractor{
		ID:           it.ID,
		BusinessName: it.BusinessName,
		Email:        it.Email,
		PushToken:    it.PushToken,
		Active:       it.Active,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}

package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_cobranca/internal/domain/entities"
	"gestao_cobranca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClientsTableName = "clients"
	clientsEmailIndex       = "email-index"
)

type clientItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email,omitempty"`
	Phone           string `dynamodbav:"phone,omitempty"`
	IsActive        bool   `dynamodbav:"is_active"`
	FinancialStatus string `dynamodbav:"financial_status"`
	CanceledAt      string `dynamodbav:"canceled_at,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email). The index is sparse: only items with an
//     email project into it, which is what makes the optional-but-unique
//     email lookup work.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Client, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Items) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientItem(it))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, id string, patch interfaces.ClientPatch) (entities.Client, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}

		if patch.Name != nil {
			sets = append(sets, "#name = :name")
			vals[":name"] = &types.AttributeValueMemberS{Value: *patch.Name}
			names["#name"] = "name"
		}
		if patch.Email != nil {
			sets = append(sets, "#email = :email")
			vals[":email"] = &types.AttributeValueMemberS{Value: *patch.Email}
			names["#email"] = "email"
		}
		if patch.Phone != nil {
			sets = append(sets, "#phone = :phone")
			vals[":phone"] = &types.AttributeValueMemberS{Value: *patch.Phone}
			names["#phone"] = "phone"
		}

		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *ClientDynamoRepository) UpdateActive(ctx context.Context, id string, isActive bool, canceledAt *time.Time) (entities.Client, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":is_active":  &types.AttributeValueMemberBOOL{Value: isActive},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_active":   "is_active",
			"#canceled_at": "canceled_at",
			"#updated_at":  "updated_at",
		}

		expr := "SET #is_active = :is_active, #updated_at = :updated_at"
		if canceledAt != nil {
			expr += ", #canceled_at = :canceled_at"
			vals[":canceled_at"] = &types.AttributeValueMemberS{Value: canceledAt.UTC().Format(time.RFC3339Nano)}
		} else {
			expr += " REMOVE #canceled_at"
		}
		return expr, vals, names
	})
}

func (r *ClientDynamoRepository) UpdateFinancialStatus(ctx context.Context, id string, status entities.FinancialStatus) (entities.Client, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #financial_status = :financial_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":financial_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#financial_status": "financial_status",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ClientDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Client, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(c entities.Client) clientItem {
	it := clientItem{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		IsActive:        c.IsActive,
		FinancialStatus: string(c.FinancialStatus),
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.CanceledAt != nil {
		it.CanceledAt = c.CanceledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	c := entities.Client{
		ID:              it.ID,
		Name:            it.Name,
		Email:           it.Email,
		Phone:           it.Phone,
		IsActive:        it.IsActive,
		FinancialStatus: entities.FinancialStatus(it.FinancialStatus),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.CanceledAt != "" {
		if canceledAt, err := time.Parse(time.RFC3339Nano, it.CanceledAt); err == nil {
			c.CanceledAt = &canceledAt
		}
	}
	return c
}

package repository

import (
	"context"
	"errors"
	"strconv"
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
	defaultOrdersTableName = "orders"
	ordersClientIDIndex    = "client_id-index"
)

type orderItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Value       string `dynamodbav:"value"`
	StartDate   string `dynamodbav:"start_date"`
	EndDate     string `dynamodbav:"end_date"`
	IsPaid      bool   `dynamodbav:"is_paid"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	IsActive    bool   `dynamodbav:"is_active"`
	ClientID    string `dynamodbav:"client_id"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id), serving both the per-client
//     listing endpoint and the financial reconciliation read.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrderItems(out.Items)
}

func (r *OrderDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalOrderItems(out.Items)
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, patch interfaces.OrderPatch) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		sets := []string{"#updated_at = :updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}

		if patch.Description != nil {
			sets = append(sets, "#description = :description")
			vals[":description"] = &types.AttributeValueMemberS{Value: *patch.Description}
			names["#description"] = "description"
		}
		if patch.Value != nil {
			sets = append(sets, "#value = :value")
			vals[":value"] = &types.AttributeValueMemberS{Value: floatToString(*patch.Value)}
			names["#value"] = "value"
		}
		if patch.StartDate != nil {
			sets = append(sets, "#start_date = :start_date")
			vals[":start_date"] = &types.AttributeValueMemberS{Value: patch.StartDate.UTC().Format(time.RFC3339Nano)}
			names["#start_date"] = "start_date"
		}
		if patch.EndDate != nil {
			sets = append(sets, "#end_date = :end_date")
			vals[":end_date"] = &types.AttributeValueMemberS{Value: patch.EndDate.UTC().Format(time.RFC3339Nano)}
			names["#end_date"] = "end_date"
		}

		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePayment(ctx context.Context, id string, isPaid bool, paidAt *time.Time) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":is_paid":    &types.AttributeValueMemberBOOL{Value: isPaid},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_paid":    "is_paid",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		}

		expr := "SET #is_paid = :is_paid, #updated_at = :updated_at"
		if paidAt != nil {
			expr += ", #paid_at = :paid_at"
			vals[":paid_at"] = &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)}
		} else {
			expr += " REMOVE #paid_at"
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateActive(ctx context.Context, id string, isActive bool) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_active = :is_active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_active":  &types.AttributeValueMemberBOOL{Value: isActive},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
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

func unmarshalOrderItems(raws []map[string]types.AttributeValue) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(raws))
	for _, raw := range raws {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:          o.ID,
		Description: o.Description,
		Value:       floatToString(o.Value),
		StartDate:   o.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:     o.EndDate.UTC().Format(time.RFC3339Nano),
		IsPaid:      o.IsPaid,
		IsActive:    o.IsActive,
		ClientID:    o.ClientID,
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.PaidAt != nil {
		it.PaidAt = o.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	value, _ := strconv.ParseFloat(it.Value, 64)

	o := entities.Order{
		ID:          it.ID,
		Description: it.Description,
		Value:       value,
		StartDate:   startDate,
		EndDate:     endDate,
		IsPaid:      it.IsPaid,
		IsActive:    it.IsActive,
		ClientID:    it.ClientID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			o.PaidAt = &paidAt
		}
	}
	return o
}

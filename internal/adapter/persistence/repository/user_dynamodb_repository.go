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
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(out.Items))
	for _, raw := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

func (r *UserDynamoRepository) Update(ctx context.Context, id string, patch interfaces.UserPatch) (entities.User, error) {
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
		if patch.PasswordHash != nil {
			sets = append(sets, "#password_hash = :password_hash")
			vals[":password_hash"] = &types.AttributeValueMemberS{Value: *patch.PasswordHash}
			names["#password_hash"] = "password_hash"
		}
		if patch.Role != nil {
			sets = append(sets, "#role = :role")
			vals[":role"] = &types.AttributeValueMemberS{Value: string(*patch.Role)}
			names["#role"] = "role"
		}

		return "SET " + strings.Join(sets, ", "), vals, names
	})
}

func (r *UserDynamoRepository) UpdateActive(ctx context.Context, id string, isActive bool) (entities.User, error) {
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

func (r *UserDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.User, error) {
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
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         entities.Role(it.Role),
		IsActive:     it.IsActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

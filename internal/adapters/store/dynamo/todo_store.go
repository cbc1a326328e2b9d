// Package dynamo implements the todo storage port on DynamoDB: a single
// table keyed by todoId with a secondary index for listing by owner.
//
// Every call runs through a circuit breaker. The breaker never retries; it
// only tracks consecutive failures so the readiness probe can report the
// table as unavailable once the backend is misbehaving.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
	"github.com/AndrewSerra/serverless-todo-api/internal/platform/config"
	"github.com/AndrewSerra/serverless-todo-api/internal/platform/telemetry"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*TodoStore)(nil)
	_ ports.HealthChecker = (*TodoStore)(nil)
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// TodoStore implements ports.TodoStore on a DynamoDB table.
type TodoStore struct {
	client    API
	table     string
	userIndex string
	breaker   *gobreaker.CircuitBreaker[any]
	logger    *slog.Logger
	metrics   *telemetry.Metrics
}

// NewTodoStore creates a DynamoDB-backed todo store. The metrics parameter
// may be nil, in which case storage metrics are not recorded.
func NewTodoStore(client API, cfg config.StorageConfig, logger *slog.Logger, metrics *telemetry.Metrics) *TodoStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	settings := gobreaker.Settings{
		Name:        "dynamo-todo-store",
		MaxRequests: uint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.CircuitBreaker.MaxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &TodoStore{
		client:    client,
		table:     cfg.Table,
		userIndex: cfg.UserIndex,
		breaker:   gobreaker.NewCircuitBreaker[any](settings),
		logger:    logger,
		metrics:   metrics,
	}
}

// Name implements ports.HealthChecker.
func (s *TodoStore) Name() string {
	return "todo-store"
}

// HealthCheck implements ports.HealthChecker. The store is unhealthy while
// the circuit breaker is open.
func (s *TodoStore) HealthCheck(_ context.Context) error {
	if s.breaker.State() == gobreaker.StateOpen {
		return errors.New("circuit breaker open")
	}
	return nil
}

// ListByOwner queries the owner index for all of the user's items.
func (s *TodoStore) ListByOwner(ctx context.Context, userID string) ([]todo.Item, error) {
	out, err := s.execute(ctx, "Query", func() (any, error) {
		return s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.table),
			IndexName:              aws.String(s.userIndex),
			KeyConditionExpression: aws.String("userId = :userId"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":userId": &types.AttributeValueMemberS{Value: userID},
			},
		})
	})
	if err != nil {
		return nil, err
	}

	result := out.(*dynamodb.QueryOutput)
	items := make([]todo.Item, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("unmarshalling items: %w", err)
	}
	return items, nil
}

// Get fetches a single item by its todo ID.
func (s *TodoStore) Get(ctx context.Context, todoID string) (*todo.Item, error) {
	out, err := s.execute(ctx, "GetItem", func() (any, error) {
		return s.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(s.table),
			Key:       itemKey(todoID),
		})
	})
	if err != nil {
		return nil, err
	}

	result := out.(*dynamodb.GetItemOutput)
	if len(result.Item) == 0 {
		return nil, fmt.Errorf("todo %s: %w", todoID, domain.ErrNotFound)
	}

	var item todo.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshalling item: %w", err)
	}
	return &item, nil
}

// Create inserts a new item.
func (s *TodoStore) Create(ctx context.Context, item *todo.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshalling item: %w", err)
	}

	_, err = s.execute(ctx, "PutItem", func() (any, error) {
		return s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.table),
			Item:      av,
		})
	})
	return err
}

// Update unconditionally overwrites the item's mutable fields. The name
// attribute collides with a DynamoDB reserved word, hence the alias.
func (s *TodoStore) Update(ctx context.Context, todoID string, upd todo.Update) error {
	_, err := s.execute(ctx, "UpdateItem", func() (any, error) {
		return s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:        aws.String(s.table),
			Key:              itemKey(todoID),
			UpdateExpression: aws.String("set #name = :name, dueDate = :dueDate, done = :done"),
			ExpressionAttributeNames: map[string]string{
				"#name": "name",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":name":    &types.AttributeValueMemberS{Value: upd.Name},
				":dueDate": &types.AttributeValueMemberS{Value: upd.DueDate},
				":done":    &types.AttributeValueMemberBOOL{Value: upd.Done},
			},
		})
	})
	return err
}

// Delete removes the item. Deleting an absent ID is not an error.
func (s *TodoStore) Delete(ctx context.Context, todoID string) error {
	_, err := s.execute(ctx, "DeleteItem", func() (any, error) {
		return s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.table),
			Key:       itemKey(todoID),
		})
	})
	return err
}

// SetAttachmentURL unconditionally sets the item's attachment URL.
func (s *TodoStore) SetAttachmentURL(ctx context.Context, todoID, url string) error {
	_, err := s.execute(ctx, "UpdateItem", func() (any, error) {
		return s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:        aws.String(s.table),
			Key:              itemKey(todoID),
			UpdateExpression: aws.String("set attachmentUrl = :attachmentUrl"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":attachmentUrl": &types.AttributeValueMemberS{Value: url},
			},
		})
	})
	return err
}

// execute runs a DynamoDB call through the circuit breaker and records
// storage metrics. Backend failures are logged and mapped to
// domain.ErrUnavailable.
func (s *TodoStore) execute(ctx context.Context, operation string, call func() (any, error)) (any, error) {
	start := time.Now()

	out, err := s.breaker.Execute(call)

	s.recordMetrics(ctx, operation, start, err)

	if err != nil {
		s.logger.ErrorContext(ctx, "dynamodb call failed",
			slog.String("operation", operation),
			slog.String("table", s.table),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("dynamodb %s: %w: %w", operation, err, domain.ErrUnavailable)
	}
	return out, nil
}

func (s *TodoStore) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStorageOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StorageRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StorageRequestTotal.Add(ctx, 1, attrs)
}

func itemKey(todoID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"todoId": &types.AttributeValueMemberS{Value: todoID},
	}
}

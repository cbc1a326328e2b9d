package dynamo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/store/dynamo"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain/todo"
	"github.com/AndrewSerra/serverless-todo-api/internal/platform/config"
)

// fakeAPI implements the dynamo.API interface with overridable functions.
type fakeAPI struct {
	putItem    func(ctx context.Context, params *awsdynamodb.PutItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.PutItemOutput, error)
	getItem    func(ctx context.Context, params *awsdynamodb.GetItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error)
	query      func(ctx context.Context, params *awsdynamodb.QueryInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.QueryOutput, error)
	updateItem func(ctx context.Context, params *awsdynamodb.UpdateItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.UpdateItemOutput, error)
	deleteItem func(ctx context.Context, params *awsdynamodb.DeleteItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.DeleteItemOutput, error)
}

func (f *fakeAPI) PutItem(ctx context.Context, params *awsdynamodb.PutItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.PutItemOutput, error) {
	return f.putItem(ctx, params, optFns...)
}

func (f *fakeAPI) GetItem(ctx context.Context, params *awsdynamodb.GetItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error) {
	return f.getItem(ctx, params, optFns...)
}

func (f *fakeAPI) Query(ctx context.Context, params *awsdynamodb.QueryInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.QueryOutput, error) {
	return f.query(ctx, params, optFns...)
}

func (f *fakeAPI) UpdateItem(ctx context.Context, params *awsdynamodb.UpdateItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.UpdateItemOutput, error) {
	return f.updateItem(ctx, params, optFns...)
}

func (f *fakeAPI) DeleteItem(ctx context.Context, params *awsdynamodb.DeleteItemInput, optFns ...func(*awsdynamodb.Options)) (*awsdynamodb.DeleteItemOutput, error) {
	return f.deleteItem(ctx, params, optFns...)
}

func storageConfig() config.StorageConfig {
	return config.StorageConfig{
		Driver:    "dynamodb",
		Table:     "todos",
		UserIndex: "byUser",
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func marshalItem(t *testing.T, item todo.Item) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		t.Fatalf("marshalling item: %v", err)
	}
	return av
}

func TestGet_Found(t *testing.T) {
	t.Parallel()

	want := todo.Item{TodoID: "todo-1", UserID: "user-1", Name: "Buy groceries", CreatedAt: "2026-08-28T15:04:05Z"}
	api := &fakeAPI{
		getItem: func(_ context.Context, params *awsdynamodb.GetItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error) {
			if aws.ToString(params.TableName) != "todos" {
				t.Errorf("TableName = %q, want todos", aws.ToString(params.TableName))
			}
			return &awsdynamodb.GetItemOutput{Item: marshalItem(t, want)}, nil
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	got, err := store.Get(context.Background(), "todo-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.TodoID != want.TodoID || got.Name != want.Name {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		getItem: func(_ context.Context, _ *awsdynamodb.GetItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error) {
			return &awsdynamodb.GetItemOutput{}, nil
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListByOwner_QueriesUserIndex(t *testing.T) {
	t.Parallel()

	items := []todo.Item{
		{TodoID: "todo-1", UserID: "user-1", Name: "One", CreatedAt: "2026-08-28T15:04:05Z"},
		{TodoID: "todo-2", UserID: "user-1", Name: "Two", CreatedAt: "2026-08-28T15:04:06Z"},
	}

	api := &fakeAPI{
		query: func(_ context.Context, params *awsdynamodb.QueryInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.QueryOutput, error) {
			if aws.ToString(params.IndexName) != "byUser" {
				t.Errorf("IndexName = %q, want byUser", aws.ToString(params.IndexName))
			}
			if aws.ToString(params.KeyConditionExpression) != "userId = :userId" {
				t.Errorf("KeyConditionExpression = %q", aws.ToString(params.KeyConditionExpression))
			}
			out := make([]map[string]types.AttributeValue, 0, len(items))
			for _, it := range items {
				out = append(out, marshalItem(t, it))
			}
			return &awsdynamodb.QueryOutput{Items: out}, nil
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	got, err := store.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestListByOwner_EmptyResult(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		query: func(_ context.Context, _ *awsdynamodb.QueryInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.QueryOutput, error) {
			return &awsdynamodb.QueryOutput{}, nil
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	got, err := store.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil {
		t.Error("ListByOwner returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestUpdate_AliasesReservedName(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		updateItem: func(_ context.Context, params *awsdynamodb.UpdateItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.UpdateItemOutput, error) {
			expr := aws.ToString(params.UpdateExpression)
			if expr != "set #name = :name, dueDate = :dueDate, done = :done" {
				t.Errorf("UpdateExpression = %q", expr)
			}
			if params.ExpressionAttributeNames["#name"] != "name" {
				t.Errorf("ExpressionAttributeNames = %v, want #name aliased", params.ExpressionAttributeNames)
			}
			return &awsdynamodb.UpdateItemOutput{}, nil
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	err := store.Update(context.Background(), "todo-1", todo.Update{Name: "Updated", DueDate: "2026-09-15", Done: true})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestBackendFailure_MapsToUnavailable(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		deleteItem: func(_ context.Context, _ *awsdynamodb.DeleteItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.DeleteItemOutput, error) {
			return nil, errors.New("throttled")
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	err := store.Delete(context.Background(), "todo-1")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestHealthCheck_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		getItem: func(_ context.Context, _ *awsdynamodb.GetItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error) {
			return nil, errors.New("connection refused")
		},
	}

	store := dynamo.NewTodoStore(api, storageConfig(), nil, nil)

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck before failures: %v", err)
	}

	for range 3 {
		_, _ = store.Get(context.Background(), "todo-1")
	}

	if err := store.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck = nil after breaker tripped, want error")
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	store := dynamo.NewTodoStore(&fakeAPI{}, storageConfig(), nil, nil)
	if store.Name() != "todo-store" {
		t.Errorf("Name() = %q, want todo-store", store.Name())
	}
}

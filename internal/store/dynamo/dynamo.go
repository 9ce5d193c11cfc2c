package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"videoapi/internal/core"
)

// Store implements core.Store using a DynamoDB table keyed by a numeric "id".
// Inserts, updates and deletes are conditional writes, so existence checks
// and mutations happen atomically on the server.
type Store struct {
	client    *dynamodb.Client
	tableName string
}

// videoItem is the DynamoDB item layout.
type videoItem struct {
	ID    int64  `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Views int64  `dynamodbav:"views"`
	Likes int64  `dynamodbav:"likes"`
}

// Open loads the default AWS configuration and returns a store for tableName.
// A non-empty endpoint overrides the service endpoint (e.g. DynamoDB Local).
func Open(ctx context.Context, tableName, endpoint string) (*Store, error) {
	if tableName == "" {
		return nil, fmt.Errorf("DynamoDB table name cannot be empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &Store{client: client, tableName: tableName}, nil
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (s *Store) Close() error { return nil }

func (s *Store) Get(ctx context.Context, id int64) (*core.Video, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            keyFor(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if result.Item == nil {
		return nil, core.ErrNotFound
	}

	var item videoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	v := item.toVideo()
	return &v, nil
}

// List scans the whole table and sorts by id; Scan order is unspecified.
func (s *Store) List(ctx context.Context) ([]core.Video, error) {
	videos := []core.Video{}

	p := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:      aws.String(s.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		var items []videoItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		for _, item := range items {
			videos = append(videos, item.toVideo())
		}
	}

	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}

func (s *Store) Insert(ctx context.Context, v *core.Video) error {
	return s.put(ctx, v, "attribute_not_exists(id)", core.ErrConflict)
}

func (s *Store) Update(ctx context.Context, v *core.Video) error {
	return s.put(ctx, v, "attribute_exists(id)", core.ErrNotFound)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 keyFor(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if isConditionFailed(err) {
			return core.ErrNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// put writes v guarded by cond; a failed condition is reported as onFail.
func (s *Store) put(ctx context.Context, v *core.Video, cond string, onFail error) error {
	av, err := attributevalue.MarshalMap(itemFrom(v))
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String(cond),
	})
	if err != nil {
		if isConditionFailed(err) {
			return onFail
		}
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

func keyFor(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func itemFrom(v *core.Video) videoItem {
	return videoItem{ID: v.ID, Name: v.Name, Views: v.Views, Likes: v.Likes}
}

func (i videoItem) toVideo() core.Video {
	return core.Video{ID: i.ID, Name: i.Name, Views: i.Views, Likes: i.Likes}
}

var _ core.Store = (*Store)(nil)

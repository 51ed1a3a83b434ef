package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sien_official/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultKVTableName = "sien_kv"

	elementSeparator = "#"
	batchGetLimit    = 100
	batchWriteLimit  = 25
	maxBatchAttempts = 5
	batchBackoff     = 50 * time.Millisecond
)

var errUnprocessed = errors.New("dynamodb left batch requests unprocessed")

type kvItem struct {
	Key   string   `dynamodbav:"key"`
	Value string   `dynamodbav:"value,omitempty"`
	Refs  []string `dynamodbav:"refs,omitempty"`
}

// DynamoAPI is the subset of the DynamoDB client used by the record store.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// DynamoRecordStore implements the record store on a single DynamoDB table.
//
// Table layout (PK: key, string):
//   - scalar: item <key> with attribute "value" (JSON text)
//   - list head: item <key> with attribute "refs", the element refs in list order
//   - list element: item <key>#<ref> with attribute "value" (JSON text)
//
// Elements are written before the head references them and deleted after it stops
// referencing them, so every head write is a single-item write. The head holds
// ~40 bytes per element, which keeps a list under the 400 KB item limit up to
// roughly ten thousand elements.
type DynamoRecordStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRecordStore = (*DynamoRecordStore)(nil)

func NewDynamoRecordStore(ddb DynamoAPI, tableName string) *DynamoRecordStore {
	if tableName == "" {
		tableName = DefaultKVTableName
	}
	return &DynamoRecordStore{ddb: ddb, tableName: tableName}
}

// EnsureTable creates the table when it does not exist yet (local DynamoDB).
func (r *DynamoRecordStore) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return fmt.Errorf("describing table %s: %w", r.tableName, err)
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(r.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
		},
	})
	if err != nil {
		return fmt.Errorf("creating table %s: %w", r.tableName, err)
	}

	if client, ok := r.ddb.(*dynamodb.Client); ok {
		waiter := dynamodb.NewTableExistsWaiter(client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)}, time.Minute); err != nil {
			return fmt.Errorf("waiting for table %s: %w", r.tableName, err)
		}
	}
	return nil
}

func (r *DynamoRecordStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	it, err := r.load(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if it.Key == "" || it.Value == "" {
		return nil, false, nil
	}
	return json.RawMessage(it.Value), true, nil
}

func (r *DynamoRecordStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	av, err := attributevalue.MarshalMap(kvItem{Key: key, Value: string(value)})
	if err != nil {
		return err
	}
	out, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:    aws.String(r.tableName),
		Item:         av,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("putting %s: %w", key, err)
	}
	r.dropReplaced(ctx, key, out.Attributes)
	return nil
}

func (r *DynamoRecordStore) ListRange(ctx context.Context, key string, start, stop int) ([]json.RawMessage, error) {
	head, err := r.load(ctx, key)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := listBounds(len(head.Refs), start, stop)
	if !ok {
		return []json.RawMessage{}, nil
	}
	return r.fetchElements(ctx, key, head.Refs[lo:hi+1])
}

// ListSet overwrites one element item. The head is not touched.
func (r *DynamoRecordStore) ListSet(ctx context.Context, key string, index int, value json.RawMessage) error {
	head, err := r.load(ctx, key)
	if err != nil {
		return err
	}
	i, ok := listIndex(len(head.Refs), index)
	if !ok {
		return ErrIndexOutOfRange
	}

	av, err := attributevalue.MarshalMap(kvItem{Key: elementKey(key, head.Refs[i]), Value: string(value)})
	if err != nil {
		return err
	}
	// The condition stops a write from resurrecting an element a concurrent replace already dropped.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#key)"),
		ExpressionAttributeNames: map[string]string{"#key": "key"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrIndexOutOfRange
		}
		return fmt.Errorf("setting %s[%d]: %w", key, i, err)
	}
	return nil
}

func (r *DynamoRecordStore) ListPush(ctx context.Context, key string, values ...json.RawMessage) error {
	if len(values) == 0 {
		return nil
	}
	// The last argument ends up at the head.
	ordered := make([]json.RawMessage, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		ordered = append(ordered, values[i])
	}
	refs, err := r.writeElements(ctx, key, ordered)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              keyAttr(key),
		UpdateExpression: aws.String("SET #refs = list_append(:head, if_not_exists(#refs, :empty)) REMOVE #value"),
		ExpressionAttributeNames: map[string]string{
			"#refs":  "refs",
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":head":  refList(refs),
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	if err != nil {
		_ = r.deleteElements(ctx, key, refs)
		return fmt.Errorf("pushing to %s: %w", key, err)
	}
	return nil
}

// ListReplace writes the new elements, then swaps the head in one PutItem.
// If the swap fails the old list is still intact.
func (r *DynamoRecordStore) ListReplace(ctx context.Context, key string, values []json.RawMessage) error {
	if len(values) == 0 {
		return r.Delete(ctx, key)
	}
	refs, err := r.writeElements(ctx, key, values)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(kvItem{Key: key, Refs: refs})
	if err != nil {
		return err
	}
	out, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:    aws.String(r.tableName),
		Item:         av,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		_ = r.deleteElements(ctx, key, refs)
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	r.dropReplaced(ctx, key, out.Attributes)
	return nil
}

func (r *DynamoRecordStore) Delete(ctx context.Context, key string) error {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          keyAttr(key),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	r.dropReplaced(ctx, key, out.Attributes)
	return nil
}

func (r *DynamoRecordStore) load(ctx context.Context, key string) (kvItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return kvItem{}, fmt.Errorf("getting %s: %w", key, err)
	}
	var it kvItem
	if len(out.Item) == 0 {
		return it, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return kvItem{}, fmt.Errorf("decoding %s: %w", key, err)
	}
	return it, nil
}

func (r *DynamoRecordStore) fetchElements(ctx context.Context, key string, refs []string) ([]json.RawMessage, error) {
	values := make(map[string]string, len(refs))
	for start := 0; start < len(refs); start += batchGetLimit {
		end := min(start+batchGetLimit, len(refs))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, ref := range refs[start:end] {
			keys = append(keys, keyAttr(elementKey(key, ref)))
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if err := waitBeforeRetry(ctx, attempt); err != nil {
				return nil, fmt.Errorf("reading %s: %w", key, err)
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", key, err)
			}
			for _, av := range out.Responses[r.tableName] {
				var it kvItem
				if err := attributevalue.UnmarshalMap(av, &it); err != nil {
					return nil, fmt.Errorf("decoding %s: %w", key, err)
				}
				values[it.Key] = it.Value
			}
			request = out.UnprocessedKeys
		}
	}

	out := make([]json.RawMessage, 0, len(refs))
	for _, ref := range refs {
		v, ok := values[elementKey(key, ref)]
		if !ok {
			return nil, fmt.Errorf("reading %s: element %s is missing", key, ref)
		}
		out = append(out, json.RawMessage(v))
	}
	return out, nil
}

// writeElements stores values as new element items and returns their refs in the same order.
func (r *DynamoRecordStore) writeElements(ctx context.Context, key string, values []json.RawMessage) ([]string, error) {
	refs := make([]string, 0, len(values))
	reqs := make([]types.WriteRequest, 0, len(values))
	for _, v := range values {
		ref := uuid.NewString()
		av, err := attributevalue.MarshalMap(kvItem{Key: elementKey(key, ref), Value: string(v)})
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	if err := r.batchWrite(ctx, reqs); err != nil {
		_ = r.deleteElements(ctx, key, refs)
		return nil, fmt.Errorf("writing %s elements: %w", key, err)
	}
	return refs, nil
}

func (r *DynamoRecordStore) deleteElements(ctx context.Context, key string, refs []string) error {
	reqs := make([]types.WriteRequest, 0, len(refs))
	for _, ref := range refs {
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: keyAttr(elementKey(key, ref))}})
	}
	return r.batchWrite(ctx, reqs)
}

// dropReplaced removes the elements of a head that was just overwritten or deleted.
// Nothing references them anymore, so a failed cleanup only leaves unreachable items.
func (r *DynamoRecordStore) dropReplaced(ctx context.Context, key string, old map[string]types.AttributeValue) {
	if len(old) == 0 {
		return
	}
	var it kvItem
	if err := attributevalue.UnmarshalMap(old, &it); err != nil || len(it.Refs) == 0 {
		return
	}
	_ = r.deleteElements(context.WithoutCancel(ctx), key, it.Refs)
}

func (r *DynamoRecordStore) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	for start := 0; start < len(reqs); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(reqs))
		request := map[string][]types.WriteRequest{r.tableName: reqs[start:end]}
		for attempt := 0; len(request) > 0; attempt++ {
			if err := waitBeforeRetry(ctx, attempt); err != nil {
				return err
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: request})
			if err != nil {
				return err
			}
			request = out.UnprocessedItems
		}
	}
	return nil
}

// waitBeforeRetry sleeps with a linear backoff before every retry of a batch call.
func waitBeforeRetry(ctx context.Context, attempt int) error {
	if attempt == 0 {
		return nil
	}
	if attempt >= maxBatchAttempts {
		return errUnprocessed
	}
	t := time.NewTimer(time.Duration(attempt) * batchBackoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func elementKey(key, ref string) string {
	return key + elementSeparator + ref
}

func keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"key": &types.AttributeValueMemberS{Value: key}}
}

func refList(refs []string) *types.AttributeValueMemberL {
	l := make([]types.AttributeValue, 0, len(refs))
	for _, ref := range refs {
		l = append(l, &types.AttributeValueMemberS{Value: ref})
	}
	return &types.AttributeValueMemberL{Value: l}
}

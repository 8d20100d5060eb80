package timeseries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fossouo/YCSB-DynamoDB/internal/backoff"
)

const (
	// maxBatchSize is the BatchWriteItem request ceiling.
	maxBatchSize = 25

	// maxUnprocessedRetries bounds the retry loop for unprocessed items.
	maxUnprocessedRetries = 8

	initialBackoff = 50 * time.Millisecond
	maxBackoff     = 2 * time.Second
)

// API is the subset of the DynamoDB data-plane client the Writer needs.
// *dynamodb.Client satisfies it.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Writer stores records in the TimeSeries table.
type Writer struct {
	client API
	table  string
	logger *slog.Logger
	sleep  func(context.Context, time.Duration) error
}

// NewWriter creates a Writer. An empty table falls back to [TableName],
// a nil logger to slog.Default().
func NewWriter(client API, table string, logger *slog.Logger) *Writer {
	if table == "" {
		table = TableName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		client: client,
		table:  table,
		logger: logger,
		sleep:  backoff.Sleep,
	}
}

// Put stores a single record.
func (w *Writer) Put(ctx context.Context, rec Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = w.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(w.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put record %q: %w", rec.TimeSeriesKey, err)
	}
	return nil
}

// PutBatch stores records in BatchWriteItem pages of up to 25,
// retrying unprocessed items with capped exponential backoff.
func (w *Writer) PutBatch(ctx context.Context, recs []Record) error {
	for start := 0; start < len(recs); start += maxBatchSize {
		end := min(start+maxBatchSize, len(recs))

		writes := make([]types.WriteRequest, 0, end-start)
		for _, rec := range recs[start:end] {
			item, err := attributevalue.MarshalMap(rec)
			if err != nil {
				return fmt.Errorf("marshal record %q: %w", rec.TimeSeriesKey, err)
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		if err := w.writeBatch(ctx, writes); err != nil {
			return err
		}
	}
	return nil
}

// writeBatch sends one page, re-sending whatever the store reports as
// unprocessed until everything lands or the retry budget runs out.
func (w *Writer) writeBatch(ctx context.Context, writes []types.WriteRequest) error {
	b := backoff.New(initialBackoff, maxBackoff)

	for attempt := 0; attempt < maxUnprocessedRetries; attempt++ {
		out, err := w.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{w.table: writes},
		})
		if err != nil {
			return fmt.Errorf("batch write to %q: %w", w.table, err)
		}

		unprocessed := out.UnprocessedItems[w.table]
		if len(unprocessed) == 0 {
			return nil
		}
		writes = unprocessed

		w.logger.Warn("retrying unprocessed items",
			"table", w.table,
			"count", len(writes),
		)
		if err := w.sleep(ctx, b.Next()); err != nil {
			return err
		}
	}

	return fmt.Errorf("batch write to %q: %d items still unprocessed", w.table, len(writes))
}

// Seed writes n copies of one freshly keyed record. The copies share
// the primary key, so they collapse onto a single item; this exercises
// the write path end to end without growing the table.
func (w *Writer) Seed(ctx context.Context, n int) error {
	rec := NewRecord()
	for i := 0; i < n; i++ {
		if err := w.Put(ctx, rec); err != nil {
			return err
		}
		w.logger.Info("record written",
			"table", w.table,
			"key", rec.TimeSeriesKey,
			"validTime", rec.ValidTime,
		)
	}
	return nil
}

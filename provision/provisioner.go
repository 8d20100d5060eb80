package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fossouo/YCSB-DynamoDB/internal/backoff"
)

// API is the subset of the DynamoDB control-plane client the
// Provisioner needs. *dynamodb.Client satisfies it.
type API interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Provisioner creates DynamoDB tables and waits for them to report ACTIVE.
type Provisioner struct {
	client    API
	logger    *slog.Logger
	retryable func(error) bool
	sleep     func(context.Context, time.Duration) error
}

// New creates a Provisioner. A nil logger falls back to slog.Default().
func New(client API, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{
		client:    client,
		logger:    logger,
		retryable: func(error) bool { return true },
		sleep:     backoff.Sleep,
	}
}

// SetRetryable installs a predicate deciding whether a CreateTable
// failure is worth another try. The default treats every failure as
// retryable. Errors the predicate rejects are returned immediately.
func (p *Provisioner) SetRetryable(fn func(error) bool) {
	if fn != nil {
		p.retryable = fn
	}
}

// Provision submits the table and blocks until it is ACTIVE. It is the
// full workflow: [Provisioner.CreateTable] followed by
// [Provisioner.AwaitActive], stopping at the first error.
func (p *Provisioner) Provision(ctx context.Context, spec TableSpec, create, wait RetryPolicy) error {
	if err := p.CreateTable(ctx, spec, create); err != nil {
		return err
	}
	return p.AwaitActive(ctx, spec.Name, wait)
}

// CreateTable submits a CreateTable request built from spec, retrying
// failed submissions per policy. A table that already exists counts as
// success. Exhausting the budget returns an error wrapping both
// [ErrSubmitExhausted] and the last submission failure.
func (p *Provisioner) CreateTable(ctx context.Context, spec TableSpec, policy RetryPolicy) error {
	policy.validate()
	if err := spec.validate(); err != nil {
		return err
	}
	input := spec.Input()

	var lastErr error
	for i := 1; i < policy.Attempts; i++ {
		_, err := p.client.CreateTable(ctx, input)
		if err == nil {
			p.logger.Info("table created", "table", spec.Name)
			return nil
		}

		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			p.logger.Info("table already exists", "table", spec.Name)
			return nil
		}
		if !p.retryable(err) {
			return fmt.Errorf("create table %q: %w", spec.Name, err)
		}

		lastErr = err
		p.logger.Warn("failed to create table",
			"table", spec.Name,
			"attempt", i,
			"maxAttempts", policy.Attempts,
			"error", err,
		)

		if i == policy.Attempts-1 {
			break
		}
		if err := p.sleep(ctx, policy.Delay); err != nil {
			return err
		}
	}

	if lastErr != nil {
		return fmt.Errorf("create table %q: %w: %w", spec.Name, ErrSubmitExhausted, lastErr)
	}
	return fmt.Errorf("create table %q: %w", spec.Name, ErrSubmitExhausted)
}

// AwaitActive polls the table's status until it reports ACTIVE,
// checking at most policy-many times with the policy delay between
// checks. A DescribeTable failure reads as "not yet active". Returns
// an error wrapping [ErrNeverActive] when the budget runs out.
func (p *Provisioner) AwaitActive(ctx context.Context, tableName string, policy RetryPolicy) error {
	policy.validate()
	p.logger.Info("waiting for table to become active", "table", tableName)

	for i := 1; i < policy.Attempts; i++ {
		status, err := p.Status(ctx, tableName)
		if err == nil && status == types.TableStatusActive {
			p.logger.Info("table active", "table", tableName)
			return nil
		}

		observed := string(status)
		if err != nil {
			observed = "UNKNOWN"
		}
		p.logger.Info("table not active yet",
			"table", tableName,
			"status", observed,
			"attempt", i,
			"maxAttempts", policy.Attempts,
		)

		if i == policy.Attempts-1 {
			break
		}
		if err := p.sleep(ctx, policy.Delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("table %q: %w", tableName, ErrNeverActive)
}

// Status fetches the table's current status from the store.
func (p *Provisioner) Status(ctx context.Context, tableName string) (types.TableStatus, error) {
	out, err := p.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		return "", fmt.Errorf("describe table %q: %w", tableName, err)
	}
	if out.Table == nil {
		return "", fmt.Errorf("describe table %q: empty response", tableName)
	}
	return out.Table.TableStatus, nil
}

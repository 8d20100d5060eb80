// Package provision creates DynamoDB tables and waits for them to become usable.
//
// Provisioning is a two-phase workflow: submit a CreateTable request,
// masking transient submission failures with a bounded retry loop, then
// poll DescribeTable until the table reports ACTIVE or the retry budget
// runs out. Both phases share the same [RetryPolicy] shape but take
// separate instances, so the create loop and the poll loop can be
// bounded independently.
//
// # Usage
//
//	client := dynamodb.NewFromConfig(cfg)
//	p := provision.New(client, logger)
//
//	spec := provision.TableSpec{
//	    Name:         "TimeSeries",
//	    PartitionKey: provision.KeyDef{Name: "TimeSeriesKey", Type: types.ScalarAttributeTypeS},
//	}
//	err := p.Provision(ctx, spec, provision.DefaultRetryPolicy(), provision.DefaultRetryPolicy())
//
// # Failure handling
//
//   - A CreateTable rejected with ResourceInUseException counts as
//     success: the table is already there and the poll phase will
//     confirm it is usable.
//   - Every other submission failure is retried by default. Callers
//     that need to distinguish fatal errors can install a predicate
//     with [Provisioner.SetRetryable].
//   - While polling, a DescribeTable failure is treated the same as a
//     non-ACTIVE status: wait and check again.
//
// Exhausting either retry budget returns a tagged error, [ErrSubmitExhausted]
// or [ErrNeverActive], so callers can tell a provisioned table from an
// abandoned one. A policy with Attempts=N yields N-1 tries, and the
// final try is not followed by a wait. Waits between attempts are
// interruptible; cancelling the context ends the loop early with
// ctx.Err().
package provision

// Command seeditems writes sample records into the TimeSeries table.
//
// Usage:
//
//	seeditems [-table NAME] [-endpoint URL] [-count N] [-batch]
//
// By default it writes 4 copies of one freshly keyed record, one put
// at a time. With -batch it writes distinct records through
// BatchWriteItem instead.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/fossouo/YCSB-DynamoDB/timeseries"
)

func main() {
	var (
		tableName = flag.String("table", "", "table name (default: TimeSeries)")
		endpoint  = flag.String("endpoint", "", "DynamoDB endpoint override (e.g. http://localhost:8000)")
		count     = flag.Int("count", 4, "number of records to write")
		batch     = flag.Bool("batch", false, "write records with BatchWriteItem")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	var optFns []func(*dynamodb.Options)
	if *endpoint != "" {
		optFns = append(optFns, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(*endpoint)
		})
	}
	client := dynamodb.NewFromConfig(cfg, optFns...)

	w := timeseries.NewWriter(client, *tableName, logger)

	if *batch {
		recs := make([]timeseries.Record, *count)
		for i := range recs {
			recs[i] = timeseries.NewRecord()
		}
		if err := w.PutBatch(ctx, recs); err != nil {
			logger.Error("batch write failed", "error", err)
			os.Exit(1)
		}
		logger.Info("records written", "count", *count)
		return
	}

	if err := w.Seed(ctx, *count); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

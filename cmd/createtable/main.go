// Command createtable provisions the TimeSeries table and waits for it
// to become active.
//
// Usage:
//
//	createtable [-table NAME] [-schema FILE] [-endpoint URL] [-attempts N] [-delay D]
//
// Without -schema the TimeSeries schema is used. The endpoint flag
// points the client at DynamoDB Local.
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

	"github.com/fossouo/YCSB-DynamoDB/provision"
	"github.com/fossouo/YCSB-DynamoDB/timeseries"
)

func main() {
	var (
		tableName  = flag.String("table", "", "table name (default: TimeSeries)")
		schemaPath = flag.String("schema", "", "optional YAML table schema file")
		endpoint   = flag.String("endpoint", "", "DynamoDB endpoint override (e.g. http://localhost:8000)")
		attempts   = flag.Int("attempts", 0, "retry budget for both phases (default: 10)")
		delay      = flag.Duration("delay", 0, "delay between attempts (default: 10s)")
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

	spec := timeseries.TableSpec()
	if *schemaPath != "" {
		spec, err = loadSchema(*schemaPath)
		if err != nil {
			logger.Error("failed to load schema file", "path", *schemaPath, "error", err)
			os.Exit(1)
		}
	}
	if *tableName != "" {
		spec.Name = *tableName
	}

	policy := provision.DefaultRetryPolicy()
	if *attempts > 0 {
		policy.Attempts = *attempts
	}
	if *delay > 0 {
		policy.Delay = *delay
	}

	p := provision.New(client, logger)
	if err := p.Provision(ctx, spec, policy, policy); err != nil {
		logger.Error("provisioning failed", "table", spec.Name, "error", err)
		os.Exit(1)
	}
	logger.Info("table provisioned", "table", spec.Name)
}

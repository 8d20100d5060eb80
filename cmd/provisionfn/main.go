// Command provisionfn is the Lambda entrypoint for the bootstrap
// handler. Deploy it to provision the TimeSeries table as part of an
// environment rollout.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/fossouo/YCSB-DynamoDB/bootstrap"
	"github.com/fossouo/YCSB-DynamoDB/provision"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	client := dynamodb.NewFromConfig(cfg)
	handler := bootstrap.NewHandler(provision.New(client, logger), logger)

	lambda.Start(handler.Handle)
}

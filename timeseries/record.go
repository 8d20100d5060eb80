// Package timeseries models the TimeSeries table and writes records to it.
package timeseries

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/fossouo/YCSB-DynamoDB/provision"
)

// Attribute names of the TimeSeries table schema.
const (
	TableName = "TimeSeries"

	KeyAttr             = "TimeSeriesKey"
	ValidTimeAttr       = "ValidTime"
	TransactionTimeAttr = "TransactionTime"

	// TransactionIndex is the local secondary index sorted on TransactionTime.
	TransactionIndex = "TransactionTime_index"
)

// DateFormat is the layout used for both time attributes.
const DateFormat = "2006-01-02"

// Record is one entry in the TimeSeries table, keyed by TimeSeriesKey
// with ValidTime as the sort key.
type Record struct {
	TimeSeriesKey   string `dynamodbav:"TimeSeriesKey"`
	ValidTime       string `dynamodbav:"ValidTime"`
	TransactionTime string `dynamodbav:"TransactionTime"`
}

// NewRecord returns a record with a random key and both time
// attributes set to today's date.
func NewRecord() Record {
	today := time.Now().UTC().Format(DateFormat)
	return Record{
		TimeSeriesKey:   uuid.New().String(),
		ValidTime:       today,
		TransactionTime: today,
	}
}

// TableSpec returns the provisioning spec for the TimeSeries table:
// string keys, a TransactionTime local index projecting ALL, and a
// fixed 5000/5000 provisioned throughput.
func TableSpec() provision.TableSpec {
	return provision.TableSpec{
		Name:         TableName,
		PartitionKey: provision.KeyDef{Name: KeyAttr, Type: types.ScalarAttributeTypeS},
		SortKey:      &provision.KeyDef{Name: ValidTimeAttr, Type: types.ScalarAttributeTypeS},
		LocalIndexes: []provision.LocalIndexSpec{
			{
				Name:       TransactionIndex,
				SortKey:    provision.KeyDef{Name: TransactionTimeAttr, Type: types.ScalarAttributeTypeS},
				Projection: types.ProjectionTypeAll,
			},
		},
		Throughput: provision.Throughput{
			ReadCapacityUnits:  5000,
			WriteCapacityUnits: 5000,
		},
	}
}

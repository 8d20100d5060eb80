package provision_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/fossouo/YCSB-DynamoDB/provision"
)

func timeSeriesLikeSpec() provision.TableSpec {
	return provision.TableSpec{
		Name:         "TimeSeries",
		PartitionKey: provision.KeyDef{Name: "TimeSeriesKey", Type: types.ScalarAttributeTypeS},
		SortKey:      &provision.KeyDef{Name: "ValidTime", Type: types.ScalarAttributeTypeS},
		LocalIndexes: []provision.LocalIndexSpec{
			{
				Name:       "TransactionTime_index",
				SortKey:    provision.KeyDef{Name: "TransactionTime", Type: types.ScalarAttributeTypeS},
				Projection: types.ProjectionTypeAll,
			},
		},
		Throughput: provision.Throughput{ReadCapacityUnits: 5000, WriteCapacityUnits: 5000},
	}
}

func TestTableSpecInput_FullSchema(t *testing.T) {
	input := timeSeriesLikeSpec().Input()

	if got := aws.ToString(input.TableName); got != "TimeSeries" {
		t.Errorf("expected table name TimeSeries, got %q", got)
	}

	if len(input.KeySchema) != 2 {
		t.Fatalf("expected 2 key schema elements, got %d", len(input.KeySchema))
	}
	if aws.ToString(input.KeySchema[0].AttributeName) != "TimeSeriesKey" || input.KeySchema[0].KeyType != types.KeyTypeHash {
		t.Errorf("unexpected hash key element: %+v", input.KeySchema[0])
	}
	if aws.ToString(input.KeySchema[1].AttributeName) != "ValidTime" || input.KeySchema[1].KeyType != types.KeyTypeRange {
		t.Errorf("unexpected range key element: %+v", input.KeySchema[1])
	}

	if len(input.AttributeDefinitions) != 3 {
		t.Fatalf("expected 3 attribute definitions, got %d", len(input.AttributeDefinitions))
	}
	for _, def := range input.AttributeDefinitions {
		if def.AttributeType != types.ScalarAttributeTypeS {
			t.Errorf("attribute %q: expected type S, got %v", aws.ToString(def.AttributeName), def.AttributeType)
		}
	}

	if len(input.LocalSecondaryIndexes) != 1 {
		t.Fatalf("expected 1 local index, got %d", len(input.LocalSecondaryIndexes))
	}
	lsi := input.LocalSecondaryIndexes[0]
	if aws.ToString(lsi.IndexName) != "TransactionTime_index" {
		t.Errorf("expected index TransactionTime_index, got %q", aws.ToString(lsi.IndexName))
	}
	if len(lsi.KeySchema) != 2 {
		t.Fatalf("expected 2 index key elements, got %d", len(lsi.KeySchema))
	}
	if aws.ToString(lsi.KeySchema[0].AttributeName) != "TimeSeriesKey" {
		t.Errorf("expected index hash key TimeSeriesKey, got %q", aws.ToString(lsi.KeySchema[0].AttributeName))
	}
	if aws.ToString(lsi.KeySchema[1].AttributeName) != "TransactionTime" {
		t.Errorf("expected index range key TransactionTime, got %q", aws.ToString(lsi.KeySchema[1].AttributeName))
	}
	if lsi.Projection == nil || lsi.Projection.ProjectionType != types.ProjectionTypeAll {
		t.Errorf("expected ALL projection, got %+v", lsi.Projection)
	}

	if input.ProvisionedThroughput == nil {
		t.Fatal("expected provisioned throughput")
	}
	if aws.ToInt64(input.ProvisionedThroughput.ReadCapacityUnits) != 5000 {
		t.Errorf("expected 5000 RCU, got %d", aws.ToInt64(input.ProvisionedThroughput.ReadCapacityUnits))
	}
	if aws.ToInt64(input.ProvisionedThroughput.WriteCapacityUnits) != 5000 {
		t.Errorf("expected 5000 WCU, got %d", aws.ToInt64(input.ProvisionedThroughput.WriteCapacityUnits))
	}
}

func TestTableSpecInput_PartitionOnly(t *testing.T) {
	spec := provision.TableSpec{
		Name:         "counters",
		PartitionKey: provision.KeyDef{Name: "id", Type: types.ScalarAttributeTypeS},
		Throughput:   provision.Throughput{ReadCapacityUnits: 1, WriteCapacityUnits: 1},
	}
	input := spec.Input()

	if len(input.KeySchema) != 1 {
		t.Errorf("expected 1 key schema element, got %d", len(input.KeySchema))
	}
	if len(input.AttributeDefinitions) != 1 {
		t.Errorf("expected 1 attribute definition, got %d", len(input.AttributeDefinitions))
	}
	if len(input.LocalSecondaryIndexes) != 0 {
		t.Errorf("expected no local indexes, got %d", len(input.LocalSecondaryIndexes))
	}
}

func TestTableSpecInput_DeduplicatesAttributes(t *testing.T) {
	// An index sorting on the table's own sort key must not duplicate
	// the attribute definition.
	spec := provision.TableSpec{
		Name:         "events",
		PartitionKey: provision.KeyDef{Name: "pk", Type: types.ScalarAttributeTypeS},
		SortKey:      &provision.KeyDef{Name: "ts", Type: types.ScalarAttributeTypeN},
		LocalIndexes: []provision.LocalIndexSpec{
			{Name: "ts_index", SortKey: provision.KeyDef{Name: "ts", Type: types.ScalarAttributeTypeN}},
		},
	}
	input := spec.Input()

	if len(input.AttributeDefinitions) != 2 {
		t.Errorf("expected 2 attribute definitions, got %d", len(input.AttributeDefinitions))
	}
}

func TestTableSpecInput_DefaultProjection(t *testing.T) {
	spec := provision.TableSpec{
		Name:         "events",
		PartitionKey: provision.KeyDef{Name: "pk", Type: types.ScalarAttributeTypeS},
		LocalIndexes: []provision.LocalIndexSpec{
			{Name: "ts_index", SortKey: provision.KeyDef{Name: "ts", Type: types.ScalarAttributeTypeN}},
		},
	}
	input := spec.Input()

	if got := input.LocalSecondaryIndexes[0].Projection.ProjectionType; got != types.ProjectionTypeAll {
		t.Errorf("expected default ALL projection, got %v", got)
	}
}

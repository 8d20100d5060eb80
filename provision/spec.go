package provision

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KeyDef names a key attribute and its scalar type.
type KeyDef struct {
	Name string
	Type types.ScalarAttributeType
}

// LocalIndexSpec describes a local secondary index. The index shares
// the table's partition key and sorts on its own attribute.
type LocalIndexSpec struct {
	Name       string
	SortKey    KeyDef
	Projection types.ProjectionType
}

// Throughput holds the provisioned capacity for the table.
type Throughput struct {
	ReadCapacityUnits  int64
	WriteCapacityUnits int64
}

// TableSpec describes a table to provision. It is a plain value:
// build it once, pass it to [Provisioner.CreateTable], discard it.
type TableSpec struct {
	// Name is the table name.
	Name string

	// PartitionKey is the table's hash key. Required.
	PartitionKey KeyDef

	// SortKey is the table's range key. Nil for partition-only tables.
	SortKey *KeyDef

	// LocalIndexes are created alongside the table. Each index must
	// name a sort key; its projection defaults to ALL when unset.
	LocalIndexes []LocalIndexSpec

	// Throughput is the provisioned read/write capacity.
	Throughput Throughput
}

// validate ensures the spec can be compiled into a CreateTable request.
func (s TableSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("provision: table spec has no name")
	}
	if s.PartitionKey.Name == "" {
		return fmt.Errorf("provision: table %q has no partition key", s.Name)
	}
	for _, idx := range s.LocalIndexes {
		if idx.Name == "" {
			return fmt.Errorf("provision: table %q has an unnamed local index", s.Name)
		}
		if idx.SortKey.Name == "" {
			return fmt.Errorf("provision: index %q has no sort key", idx.Name)
		}
	}
	return nil
}

// Input compiles the spec into a CreateTableInput. Attribute
// definitions are derived from the key schema and index sort keys,
// deduplicated by attribute name.
func (s TableSpec) Input() *dynamodb.CreateTableInput {
	input := &dynamodb.CreateTableInput{
		TableName: aws.String(s.Name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(s.PartitionKey.Name), KeyType: types.KeyTypeHash},
		},
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(s.Throughput.ReadCapacityUnits),
			WriteCapacityUnits: aws.Int64(s.Throughput.WriteCapacityUnits),
		},
	}

	attrs := newAttrSet()
	attrs.add(s.PartitionKey)

	if s.SortKey != nil {
		input.KeySchema = append(input.KeySchema, types.KeySchemaElement{
			AttributeName: aws.String(s.SortKey.Name),
			KeyType:       types.KeyTypeRange,
		})
		attrs.add(*s.SortKey)
	}

	for _, idx := range s.LocalIndexes {
		projection := idx.Projection
		if projection == "" {
			projection = types.ProjectionTypeAll
		}
		input.LocalSecondaryIndexes = append(input.LocalSecondaryIndexes, types.LocalSecondaryIndex{
			IndexName: aws.String(idx.Name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(s.PartitionKey.Name), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String(idx.SortKey.Name), KeyType: types.KeyTypeRange},
			},
			Projection: &types.Projection{ProjectionType: projection},
		})
		attrs.add(idx.SortKey)
	}

	input.AttributeDefinitions = attrs.definitions()
	return input
}

// attrSet collects attribute definitions in insertion order without duplicates.
type attrSet struct {
	seen  map[string]bool
	attrs []types.AttributeDefinition
}

func newAttrSet() *attrSet {
	return &attrSet{seen: make(map[string]bool)}
}

func (a *attrSet) add(key KeyDef) {
	if a.seen[key.Name] {
		return
	}
	a.seen[key.Name] = true
	a.attrs = append(a.attrs, types.AttributeDefinition{
		AttributeName: aws.String(key.Name),
		AttributeType: key.Type,
	})
}

func (a *attrSet) definitions() []types.AttributeDefinition {
	return a.attrs
}

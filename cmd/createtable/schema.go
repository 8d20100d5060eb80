package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"gopkg.in/yaml.v3"

	"github.com/fossouo/YCSB-DynamoDB/provision"
)

// schemaFile is the YAML shape of a table definition.
//
//	table: TimeSeries
//	partitionKey: {name: TimeSeriesKey, type: S}
//	sortKey: {name: ValidTime, type: S}
//	localIndexes:
//	  - name: TransactionTime_index
//	    sortKey: {name: TransactionTime, type: S}
//	    projection: ALL
//	readCapacityUnits: 5000
//	writeCapacityUnits: 5000
type schemaFile struct {
	Table              string      `yaml:"table"`
	PartitionKey       schemaKey   `yaml:"partitionKey"`
	SortKey            *schemaKey  `yaml:"sortKey"`
	LocalIndexes       []schemaIdx `yaml:"localIndexes"`
	ReadCapacityUnits  int64       `yaml:"readCapacityUnits"`
	WriteCapacityUnits int64       `yaml:"writeCapacityUnits"`
}

type schemaKey struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type schemaIdx struct {
	Name       string    `yaml:"name"`
	SortKey    schemaKey `yaml:"sortKey"`
	Projection string    `yaml:"projection"`
}

// loadSchema reads a YAML table definition into a provisioning spec.
func loadSchema(path string) (provision.TableSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return provision.TableSpec{}, err
	}

	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return provision.TableSpec{}, fmt.Errorf("parse %s: %w", path, err)
	}

	spec := provision.TableSpec{
		Name:         f.Table,
		PartitionKey: f.PartitionKey.keyDef(),
		Throughput: provision.Throughput{
			ReadCapacityUnits:  f.ReadCapacityUnits,
			WriteCapacityUnits: f.WriteCapacityUnits,
		},
	}
	if f.SortKey != nil {
		sk := f.SortKey.keyDef()
		spec.SortKey = &sk
	}
	for _, idx := range f.LocalIndexes {
		spec.LocalIndexes = append(spec.LocalIndexes, provision.LocalIndexSpec{
			Name:       idx.Name,
			SortKey:    idx.SortKey.keyDef(),
			Projection: types.ProjectionType(idx.Projection),
		})
	}
	return spec, nil
}

func (k schemaKey) keyDef() provision.KeyDef {
	return provision.KeyDef{
		Name: k.Name,
		Type: types.ScalarAttributeType(k.Type),
	}
}

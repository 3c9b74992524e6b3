// Package hms defines the Hive metastore's native record types, shaped
// after the metastore thrift API. These are pure data structs with no
// behavior; the hive package converts between them and catalog entities,
// and hmsstore serializes them via the JSON tags.
package hms

// Table is the metastore's table record.
type Table struct {
	TableName     string            `json:"tableName"`
	DbName        string            `json:"dbName"`
	Owner         string            `json:"owner"`
	CreateTime    int32             `json:"createTime"`
	Sd            StorageDescriptor `json:"sd"`
	PartitionKeys []FieldSchema     `json:"partitionKeys"`
	Parameters    map[string]string `json:"parameters"`
	TableType     string            `json:"tableType"`
}

// StorageDescriptor describes a table's physical layout: columns, data
// location, reader/writer formats and row serialization.
type StorageDescriptor struct {
	Cols         []FieldSchema `json:"cols"`
	Location     string        `json:"location"`
	InputFormat  string        `json:"inputFormat"`
	OutputFormat string        `json:"outputFormat"`
	SerdeInfo    SerDeInfo     `json:"serdeInfo"`
}

// FieldSchema is one column in a storage descriptor. Type is the Hive
// type name string (e.g. "int", "array<string>").
type FieldSchema struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Comment string `json:"comment,omitempty"`
}

// SerDeInfo names the serialization library used to read and write rows.
type SerDeInfo struct {
	Name             string            `json:"name"`
	SerializationLib string            `json:"serializationLib"`
	Parameters       map[string]string `json:"parameters,omitempty"`
}

// Database is the metastore's database (schema) record.
type Database struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	LocationURI string            `json:"locationUri,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty"`
}

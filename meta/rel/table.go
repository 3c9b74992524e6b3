// Package rel holds the attributes shared by all relational (table-like)
// catalog entities, independent of any particular storage backend.
package rel

import (
	"github.com/lakecat/lakecat/meta"
	"github.com/lakecat/lakecat/types"
)

// TableCommon is the set of attributes every table entity carries,
// composed by value into backend-specific table types.
type TableCommon struct {
	ID         int64
	SchemaID   int64
	Namespace  meta.Namespace
	Name       string
	Comment    string
	Properties map[string]string
	Audit      meta.AuditInfo
	Columns    []Column
}

// Column is one column of a positional table schema. Slice order is the
// column order.
type Column struct {
	Name    string
	Type    types.Type
	Comment string
}

// NameIdentifier returns the table's fully qualified identifier.
func (t TableCommon) NameIdentifier() meta.NameIdentifier {
	return meta.NewIdentifier(t.Namespace, t.Name)
}

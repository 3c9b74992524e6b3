// Package hive models Hive tables as catalog entities and converts them to
// and from the metastore's native record types.
package hive

import (
	"fmt"

	"github.com/lakecat/lakecat/hive/converter"
	"github.com/lakecat/lakecat/hive/hms"
	"github.com/lakecat/lakecat/meta"
	"github.com/lakecat/lakecat/meta/rel"
)

// TableCommentKey is the reserved parameters key the metastore uses for
// table comments; it has no dedicated comment field.
const TableCommentKey = "comment"

// Table is a Hive table entity. It is built once via TableBuilder and must
// be treated as read-only afterwards; updates replace the entity rather
// than mutating it. A built Table is safe to share across goroutines.
type Table struct {
	rel.TableCommon

	InputFormat  string
	OutputFormat string
	SerLib       string
	TableType    TableType
	Location     string
	CreateTime   int32
}

// TableBuilder accumulates attributes for a Table. Fields are set directly;
// Build validates and produces the entity. A builder is single-owner: it is
// not safe for concurrent use.
type TableBuilder struct {
	rel.TableCommon

	InputFormat  string
	OutputFormat string
	SerLib       string
	TableType    TableType
	Location     string
	CreateTime   int32
}

// Build finalizes the builder into an immutable Table. The table type
// defaults to MANAGED_TABLE when unset, and the comment is mirrored into
// Properties under TableCommentKey, overwriting any caller-supplied value.
// The properties map is taken over as-is (and mutated for the comment
// mirror); callers must not reuse it after Build.
func (b *TableBuilder) Build() (*Table, error) {
	if b.Properties == nil {
		return nil, fmt.Errorf("build hive table %q: properties map is required", b.Name)
	}

	t := &Table{
		TableCommon:  b.TableCommon,
		InputFormat:  b.InputFormat,
		OutputFormat: b.OutputFormat,
		SerLib:       b.SerLib,
		TableType:    b.TableType,
		Location:     b.Location,
		CreateTime:   b.CreateTime,
	}
	if t.TableType == "" {
		t.TableType = ManagedTable
	}

	// The metastore keeps the comment in the parameters map.
	t.Properties[TableCommentKey] = t.Comment

	return t, nil
}

// FromHMSTable translates a metastore table record into a Table, using b
// for the attributes the record does not carry (id, schema id, namespace,
// name, audit info). Column order is preserved. Unsupported table types and
// unmappable column types fail without producing an entity.
func FromHMSTable(ht *hms.Table, b *TableBuilder) (*Table, error) {
	tableType, err := ParseTableType(ht.TableType)
	if err != nil {
		return nil, err
	}

	columns := make([]rel.Column, len(ht.Sd.Cols))
	for i, f := range ht.Sd.Cols {
		colType, err := converter.FromHiveType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Name, err)
		}
		columns[i] = rel.Column{
			Name:    f.Name,
			Type:    colType,
			Comment: f.Comment,
		}
	}

	b.Comment = ht.Parameters[TableCommentKey]
	b.Properties = ht.Parameters
	b.TableType = tableType
	b.Columns = columns
	b.OutputFormat = ht.Sd.OutputFormat
	b.InputFormat = ht.Sd.InputFormat
	b.SerLib = ht.Sd.SerdeInfo.SerializationLib
	b.Location = ht.Sd.Location
	b.CreateTime = ht.CreateTime

	return b.Build()
}

// ToHMSTable produces the metastore record for this table. Partition keys
// are always empty; partitioning is not supported by this catalog.
func (t *Table) ToHMSTable() (*hms.Table, error) {
	sd, err := t.buildStorageDescriptor()
	if err != nil {
		return nil, err
	}

	schemaIdent, err := t.SchemaIdentifier()
	if err != nil {
		return nil, err
	}

	return &hms.Table{
		TableName:     t.Name,
		DbName:        schemaIdent.Name(),
		Owner:         t.Audit.Creator,
		CreateTime:    t.CreateTime,
		Sd:            sd,
		PartitionKeys: []hms.FieldSchema{},
		Parameters:    t.Properties,
		TableType:     t.TableType.String(),
	}, nil
}

func (t *Table) buildStorageDescriptor() (hms.StorageDescriptor, error) {
	cols := make([]hms.FieldSchema, len(t.Columns))
	for i, c := range t.Columns {
		hiveType, err := converter.ToHiveType(c.Type)
		if err != nil {
			return hms.StorageDescriptor{}, fmt.Errorf("column %q: %w", c.Name, err)
		}
		cols[i] = hms.FieldSchema{
			Name:    c.Name,
			Type:    hiveType,
			Comment: c.Comment,
		}
	}

	return hms.StorageDescriptor{
		Cols:         cols,
		Location:     t.Location,
		InputFormat:  t.InputFormat,
		OutputFormat: t.OutputFormat,
		SerdeInfo: hms.SerDeInfo{
			Name:             t.Name,
			SerializationLib: t.SerLib,
		},
	}, nil
}

// SchemaIdentifier derives the identifier of the schema owning this table
// by dropping the table's local name; the schema's name is the last
// namespace level (the HMS database name).
func (t *Table) SchemaIdentifier() (meta.NameIdentifier, error) {
	return t.NameIdentifier().Parent()
}

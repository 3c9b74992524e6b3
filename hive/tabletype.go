package hive

import "fmt"

// TableType is the Hive table type in its metastore string form. The
// catalog supports only managed and external tables; everything else the
// metastore can report (views, materialized views) is rejected on read.
type TableType string

const (
	ManagedTable  TableType = "MANAGED_TABLE"
	ExternalTable TableType = "EXTERNAL_TABLE"
)

// ParseTableType maps a metastore table type string onto the supported
// subset. Unknown or unsupported values fail.
func ParseTableType(s string) (TableType, error) {
	switch TableType(s) {
	case ManagedTable:
		return ManagedTable, nil
	case ExternalTable:
		return ExternalTable, nil
	default:
		return "", fmt.Errorf("unsupported hive table type %q", s)
	}
}

func (t TableType) String() string { return string(t) }

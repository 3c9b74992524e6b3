// Package converter translates between the catalog's internal column types
// and Hive type name strings. Both directions are partial: types outside
// the supported vocabulary fail with an error rather than degrading.
package converter

import (
	"fmt"

	"github.com/lakecat/lakecat/types"
)

// Hive uses (10,0) when a decimal is declared without parameters.
const (
	defaultDecimalPrecision = 10
	defaultDecimalScale     = 0
)

var toHivePrimitive = map[types.Kind]string{
	types.KindBoolean:           "boolean",
	types.KindI8:                "tinyint",
	types.KindI16:               "smallint",
	types.KindI32:               "int",
	types.KindI64:               "bigint",
	types.KindFP32:              "float",
	types.KindFP64:              "double",
	types.KindString:            "string",
	types.KindBinary:            "binary",
	types.KindDate:              "date",
	types.KindTimestamp:         "timestamp",
	types.KindIntervalYearMonth: "interval_year_month",
	types.KindIntervalDayTime:   "interval_day_time",
}

// ToHiveType renders an internal type as its qualified Hive type name,
// including any type parameters.
func ToHiveType(t types.Type) (string, error) {
	if name, ok := toHivePrimitive[t.Kind]; ok {
		return name, nil
	}
	switch t.Kind {
	case types.KindDecimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale), nil
	case types.KindVarChar:
		return fmt.Sprintf("varchar(%d)", t.Length), nil
	case types.KindChar:
		return fmt.Sprintf("char(%d)", t.Length), nil
	case types.KindList:
		elem, err := ToHiveType(*t.Elem)
		if err != nil {
			return "", err
		}
		return "array<" + elem + ">", nil
	case types.KindMap:
		key, err := ToHiveType(*t.Key)
		if err != nil {
			return "", err
		}
		value, err := ToHiveType(*t.Value)
		if err != nil {
			return "", err
		}
		return "map<" + key + "," + value + ">", nil
	case types.KindStruct:
		out := "struct<"
		for i, f := range t.Fields {
			ft, err := ToHiveType(f.Type)
			if err != nil {
				return "", err
			}
			if i > 0 {
				out += ","
			}
			out += f.Name + ":" + ft
		}
		return out + ">", nil
	default:
		return "", fmt.Errorf("no hive representation for type %s", t)
	}
}

// FromHiveType parses a Hive type name string into an internal type.
func FromHiveType(name string) (types.Type, error) {
	p := &typeParser{input: name}
	t, err := p.parseType()
	if err != nil {
		return types.Type{}, fmt.Errorf("parse hive type %q: %w", name, err)
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return types.Type{}, fmt.Errorf("parse hive type %q: unexpected trailing input at offset %d", name, p.pos)
	}
	return t, nil
}

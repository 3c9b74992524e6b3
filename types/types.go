// Package types defines the catalog's internal column type system.
// Types are plain values; external formats translate to and from this
// vocabulary through their own converters.
package types

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindBoolean Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindFP32
	KindFP64
	KindString
	KindBinary
	KindDate
	KindTimestamp
	KindIntervalYearMonth
	KindIntervalDayTime
	KindDecimal
	KindVarChar
	KindChar
	KindList
	KindMap
	KindStruct
)

// Type is an immutable column type value. Parameter fields are only
// meaningful for the kinds that declare them.
type Type struct {
	Kind Kind

	// Decimal parameters.
	Precision int32
	Scale     int32

	// VarChar and Char length.
	Length int32

	// List element type.
	Elem *Type

	// Map key and value types.
	Key   *Type
	Value *Type

	// Struct fields, in declaration order.
	Fields []StructField
}

// StructField is a named member of a struct type.
type StructField struct {
	Name string
	Type Type
}

func Boolean() Type   { return Type{Kind: KindBoolean} }
func I8() Type        { return Type{Kind: KindI8} }
func I16() Type       { return Type{Kind: KindI16} }
func I32() Type       { return Type{Kind: KindI32} }
func I64() Type       { return Type{Kind: KindI64} }
func FP32() Type      { return Type{Kind: KindFP32} }
func FP64() Type      { return Type{Kind: KindFP64} }
func String() Type    { return Type{Kind: KindString} }
func Binary() Type    { return Type{Kind: KindBinary} }
func Date() Type      { return Type{Kind: KindDate} }
func Timestamp() Type { return Type{Kind: KindTimestamp} }

func IntervalYearMonth() Type { return Type{Kind: KindIntervalYearMonth} }
func IntervalDayTime() Type   { return Type{Kind: KindIntervalDayTime} }

func Decimal(precision, scale int32) Type {
	return Type{Kind: KindDecimal, Precision: precision, Scale: scale}
}

func VarChar(length int32) Type {
	return Type{Kind: KindVarChar, Length: length}
}

func Char(length int32) Type {
	return Type{Kind: KindChar, Length: length}
}

func List(elem Type) Type {
	return Type{Kind: KindList, Elem: &elem}
}

func Map(key, value Type) Type {
	return Type{Kind: KindMap, Key: &key, Value: &value}
}

func Struct(fields ...StructField) Type {
	return Type{Kind: KindStruct, Fields: fields}
}

// Equal reports whether two types are structurally identical.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindDecimal:
		return t.Precision == o.Precision && t.Scale == o.Scale
	case KindVarChar, KindChar:
		return t.Length == o.Length
	case KindList:
		return t.Elem.Equal(*o.Elem)
	case KindMap:
		return t.Key.Equal(*o.Key) && t.Value.Equal(*o.Value)
	case KindStruct:
		if len(t.Fields) != len(o.Fields) {
			return false
		}
		for i, f := range t.Fields {
			if f.Name != o.Fields[i].Name || !f.Type.Equal(o.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

var kindNames = map[Kind]string{
	KindBoolean:           "boolean",
	KindI8:                "i8",
	KindI16:               "i16",
	KindI32:               "i32",
	KindI64:               "i64",
	KindFP32:              "fp32",
	KindFP64:              "fp64",
	KindString:            "string",
	KindBinary:            "binary",
	KindDate:              "date",
	KindTimestamp:         "timestamp",
	KindIntervalYearMonth: "interval_year_month",
	KindIntervalDayTime:   "interval_day_time",
}

func (t Type) String() string {
	switch t.Kind {
	case KindDecimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case KindVarChar:
		return fmt.Sprintf("varchar(%d)", t.Length)
	case KindChar:
		return fmt.Sprintf("char(%d)", t.Length)
	case KindList:
		return fmt.Sprintf("list<%s>", t.Elem)
	case KindMap:
		return fmt.Sprintf("map<%s,%s>", t.Key, t.Value)
	case KindStruct:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = fmt.Sprintf("%s:%s", f.Name, f.Type)
		}
		return fmt.Sprintf("struct<%s>", strings.Join(parts, ","))
	default:
		return kindNames[t.Kind]
	}
}

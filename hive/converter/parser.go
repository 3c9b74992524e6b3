package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lakecat/lakecat/types"
)

var fromHivePrimitive = map[string]types.Type{
	"boolean":             types.Boolean(),
	"tinyint":             types.I8(),
	"smallint":            types.I16(),
	"int":                 types.I32(),
	"integer":             types.I32(),
	"bigint":              types.I64(),
	"float":               types.FP32(),
	"double":              types.FP64(),
	"string":              types.String(),
	"binary":              types.Binary(),
	"date":                types.Date(),
	"timestamp":           types.Timestamp(),
	"interval_year_month": types.IntervalYearMonth(),
	"interval_day_time":   types.IntervalDayTime(),
}

// typeParser is a recursive-descent parser over a Hive type name.
// Hive type keywords are case-insensitive; field names keep their case.
type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parseType() (types.Type, error) {
	word := p.readWord()
	if word == "" {
		return types.Type{}, fmt.Errorf("expected a type name at offset %d", p.pos)
	}
	keyword := strings.ToLower(word)

	if t, ok := fromHivePrimitive[keyword]; ok {
		return t, nil
	}

	switch keyword {
	case "decimal":
		if !p.consume('(') {
			return types.Decimal(defaultDecimalPrecision, defaultDecimalScale), nil
		}
		precision, err := p.readInt()
		if err != nil {
			return types.Type{}, err
		}
		if !p.consume(',') {
			return types.Type{}, fmt.Errorf("expected ',' in decimal parameters at offset %d", p.pos)
		}
		scale, err := p.readInt()
		if err != nil {
			return types.Type{}, err
		}
		if !p.consume(')') {
			return types.Type{}, fmt.Errorf("expected ')' after decimal parameters at offset %d", p.pos)
		}
		return types.Decimal(precision, scale), nil

	case "varchar", "char":
		if !p.consume('(') {
			return types.Type{}, fmt.Errorf("%s requires a length parameter", keyword)
		}
		length, err := p.readInt()
		if err != nil {
			return types.Type{}, err
		}
		if !p.consume(')') {
			return types.Type{}, fmt.Errorf("expected ')' after %s length at offset %d", keyword, p.pos)
		}
		if keyword == "char" {
			return types.Char(length), nil
		}
		return types.VarChar(length), nil

	case "array":
		if !p.consume('<') {
			return types.Type{}, fmt.Errorf("array requires an element type")
		}
		elem, err := p.parseType()
		if err != nil {
			return types.Type{}, err
		}
		if !p.consume('>') {
			return types.Type{}, fmt.Errorf("expected '>' after array element at offset %d", p.pos)
		}
		return types.List(elem), nil

	case "map":
		if !p.consume('<') {
			return types.Type{}, fmt.Errorf("map requires key and value types")
		}
		key, err := p.parseType()
		if err != nil {
			return types.Type{}, err
		}
		if !p.consume(',') {
			return types.Type{}, fmt.Errorf("expected ',' between map key and value at offset %d", p.pos)
		}
		value, err := p.parseType()
		if err != nil {
			return types.Type{}, err
		}
		if !p.consume('>') {
			return types.Type{}, fmt.Errorf("expected '>' after map value at offset %d", p.pos)
		}
		return types.Map(key, value), nil

	case "struct":
		if !p.consume('<') {
			return types.Type{}, fmt.Errorf("struct requires a field list")
		}
		var fields []types.StructField
		for {
			name := p.readWord()
			if name == "" {
				return types.Type{}, fmt.Errorf("expected a struct field name at offset %d", p.pos)
			}
			if !p.consume(':') {
				return types.Type{}, fmt.Errorf("expected ':' after struct field %q", name)
			}
			ft, err := p.parseType()
			if err != nil {
				return types.Type{}, err
			}
			fields = append(fields, types.StructField{Name: name, Type: ft})
			if p.consume(',') {
				continue
			}
			break
		}
		if !p.consume('>') {
			return types.Type{}, fmt.Errorf("expected '>' after struct fields at offset %d", p.pos)
		}
		return types.Struct(fields...), nil

	default:
		return types.Type{}, fmt.Errorf("unsupported hive type %q", word)
	}
}

// readWord consumes an identifier: letters, digits and underscores.
func (p *typeParser) readWord() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeParser) readInt() (int32, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected a number at offset %d", start)
	}
	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid type parameter %q: %w", p.input[start:p.pos], err)
	}
	return int32(n), nil
}

// consume advances past c if it is the next non-space character.
func (p *typeParser) consume(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

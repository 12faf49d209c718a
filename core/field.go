package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field is a typed key-value pair. A set of fields becomes the Context
// of a log call.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// Value returns the value a field contributes to a Context. Error fields
// yield the original error so its trace can be attached to the message.
func (f Field) Value() interface{} {
	switch f.Type {
	case ErrorType:
		if f.Any != nil {
			return f.Any
		}
		return f.Str
	case AnyType:
		return f.Any
	default:
		return f.StringValue()
	}
}

// Context maps placeholder names to values for a single log call
type Context map[string]interface{}

// ContextOf builds a Context from fields. Later fields win on duplicate keys.
func ContextOf(fields ...Field) Context {
	if len(fields) == 0 {
		return nil
	}
	ctx := make(Context, len(fields))
	for _, f := range fields {
		ctx[f.Key] = f.Value()
	}
	return ctx
}

// Merge returns a new Context holding the entries of base overlaid by
// those of over. Either may be nil.
func Merge(base, over Context) Context {
	if len(base) == 0 {
		return over
	}
	if len(over) == 0 {
		return base
	}
	out := make(Context, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Stringify renders a context value for placeholder substitution
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case time.Time:
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case Field:
		return val.StringValue()
	default:
		return fmt.Sprint(val)
	}
}

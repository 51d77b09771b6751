package personpb

import (
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Request fields.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldAge          = "age"
	FieldNewFirstName = "newFirstName"
	FieldNewLastName  = "newLastName"
	FieldNewAge       = "newAge"
	FieldArchive      = "archive"
)

// Response fields.
const (
	FieldID            = "id"
	FieldReport        = "report"
	FieldCount         = "count"
	FieldArchiveKey    = "archiveKey"
	FieldMatched       = "matched"
	FieldNotifications = "notifications"
)

// String returns the field as form text. Numbers and booleans are formatted,
// missing and null fields yield "".
func String(s *structpb.Struct, key string) string {
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(k.BoolValue)
	default:
		return ""
	}
}

// Bool returns the field as a boolean. Strings are parsed with strconv.ParseBool.
func Bool(s *structpb.Struct, key string) bool {
	v, ok := s.GetFields()[key]
	if !ok {
		return false
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return k.BoolValue
	case *structpb.Value_StringValue:
		b, _ := strconv.ParseBool(k.StringValue)
		return b
	default:
		return false
	}
}

// Int returns a numeric field truncated to int.
func Int(s *structpb.Struct, key string) int {
	return int(s.GetFields()[key].GetNumberValue())
}

// Strings returns a list field of strings, skipping other kinds.
func Strings(s *structpb.Struct, key string) []string {
	values := s.GetFields()[key].GetListValue().GetValues()
	out := make([]string, 0, len(values))
	for _, v := range values {
		if sv, ok := v.GetKind().(*structpb.Value_StringValue); ok {
			out = append(out, sv.StringValue)
		}
	}
	return out
}

// List converts strings into a Struct list value.
func List(items []string) *structpb.Value {
	values := make([]*structpb.Value, 0, len(items))
	for _, item := range items {
		values = append(values, structpb.NewStringValue(item))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

// Form builds a request Struct of string form fields.
func Form(fields map[string]string) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(fields))}
	for k, v := range fields {
		out.Fields[k] = structpb.NewStringValue(v)
	}
	return out
}

package aws

import (
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// convertTags converts any AWS tag shape to a plain map. Services
// disagree on tag representation: most return []Tag{Key,Value}, some
// (Lambda, EKS) return map[string]string. One reflective converter
// covers them all instead of one helper per SDK tag type.
func convertTags(tags any) map[string]string {
	if tags == nil {
		return nil
	}

	result := make(map[string]string)
	v := reflect.ValueOf(tags)

	switch v.Kind() {
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			key, value := extractTagKeyValue(v.Index(i).Interface())
			if key != "" {
				result[key] = value
			}
		}

	case reflect.Map:
		for _, mapKey := range v.MapKeys() {
			key := mapKey.String()
			if key != "" {
				result[key] = extractStringValue(v.MapIndex(mapKey).Interface())
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// extractTagKeyValue pulls Key and Value fields out of any AWS tag struct.
func extractTagKeyValue(tag any) (string, string) {
	v := reflect.ValueOf(tag)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", ""
	}

	var key, value string
	if keyField := v.FieldByName("Key"); keyField.IsValid() {
		key = extractStringValue(keyField.Interface())
	}
	if valueField := v.FieldByName("Value"); valueField.IsValid() {
		value = extractStringValue(valueField.Interface())
	}
	return key, value
}

// extractStringValue handles string and *string field types.
func extractStringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case *string:
		return aws.ToString(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.String {
			return rv.String()
		}
		return ""
	}
}

package shared

import (
	"reflect"
	"strings"
)

// BuildCacheKey joins the given parts into a single colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// UpdateFields converts the non-zero fields of a struct into a map of updated
// fields keyed by their db tag. Zero-valued fields are treated as "not supplied"
// so partial updates only touch what the caller sent.
func UpdateFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

package utils

import (
	"reflect"
	"strings"
	"time"
)

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// Sanitize trims every string field of the given request struct,
// including optional *string fields.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	sanitizeStruct(v)
}

func sanitizeStruct(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Struct:
			if v.Type().Field(i).Anonymous {
				sanitizeStruct(field)
			}
		}
	}
}

// EmptyToNil normalizes an optional field that arrived as an
// empty string to an absent value.
func EmptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}

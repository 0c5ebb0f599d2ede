package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ruleFunc returns the violation message, or "" when the value passes.
type ruleFunc func(value interface{}, params []string) string

var validate = validator.New()

// catalogue is built once and only read afterwards.
var catalogue = map[string]ruleFunc{
	"required": required,
	"notEmpty": notEmpty,
	"notNull":  notNull,
	"notZero":  notZero,

	"boolean": boolean,

	"integer":            integer,
	"positiveInteger":    withRange(integer, "1", ""),
	"nonNegativeInteger": withRange(integer, "0", ""),
	"negativeInteger":    withRange(integer, "", "-1"),
	"nonPositiveInteger": withRange(integer, "", "0"),

	"float":            float,
	"positiveFloat":    withRange(float, "1", ""),
	"nonNegativeFloat": withRange(float, "0", ""),
	"negativeFloat":    withRange(float, "", "-1"),
	"nonPositiveFloat": withRange(float, "", "0"),

	"string":         str,
	"nonEmptyString": nonEmptyString,

	"array":         array,
	"nonEmptyArray": nonEmptyArray,

	"set": set,
}

// Known reports whether name is part of the rule catalogue.
func Known(name string) bool {
	_, ok := catalogue[name]
	return ok
}

func withRange(check ruleFunc, min, max string) ruleFunc {
	return func(value interface{}, _ []string) string {
		return check(value, []string{min, max})
	}
}

func required(value interface{}, _ []string) string {
	value = indirect(value)
	if value == nil {
		return "Value is required"
	}
	if s, ok := asString(value); ok && strings.TrimSpace(s) == "" {
		return "Value is required"
	}
	return ""
}

func notEmpty(value interface{}, _ []string) string {
	value = indirect(value)
	if value == nil {
		return "Cannot be empty"
	}
	if n, ok := length(value); ok {
		if n == 0 {
			return "Cannot be empty"
		}
		return ""
	}
	if s, ok := asString(value); ok && s == "0" {
		return "Cannot be empty"
	}
	switch kindOf(value) {
	case reflect.Struct, reflect.Func, reflect.Chan:
		return ""
	}
	if validate.Var(value, "required") != nil {
		return "Cannot be empty"
	}
	return ""
}

func notNull(value interface{}, _ []string) string {
	if indirect(value) == nil {
		return "Cannot be null"
	}
	return ""
}

func notZero(value interface{}, _ []string) string {
	value = indirect(value)
	if n, ok := asInt(value); ok && n == 0 {
		return "Cannot be zero"
	}
	if s, ok := asString(value); ok && s == "0" {
		return "Cannot be zero"
	}
	return ""
}

func boolean(value interface{}, _ []string) string {
	if kindOf(value) != reflect.Bool {
		return "Must be a boolean"
	}
	return ""
}

func integer(value interface{}, params []string) string {
	min, max := extractRange(params)
	message := "Must be an integer" + rangeText(", ", min, max)

	n, ok := asInt(indirect(value))
	if !ok {
		return message
	}
	if tag := rangeTag(min, max); tag != "" && validate.Var(n, tag) != nil {
		return message
	}
	return ""
}

func float(value interface{}, params []string) string {
	min, max := extractRange(params)
	message := "Must be a float or a double" + rangeText(", that is ", min, max)

	value = indirect(value)
	switch kindOf(value) {
	case reflect.Float32, reflect.Float64:
	default:
		return message
	}
	f := reflect.ValueOf(value).Float()
	if math.IsNaN(f) {
		return message
	}
	if tag := rangeTag(min, max); tag != "" && validate.Var(f, tag) != nil {
		return message
	}
	return ""
}

func str(value interface{}, _ []string) string {
	if _, ok := asString(indirect(value)); !ok {
		return "Must be a string"
	}
	return ""
}

func nonEmptyString(value interface{}, _ []string) string {
	s, ok := asString(indirect(value))
	if !ok || validate.Var(strings.TrimSpace(s), "required") != nil {
		return "Must be a non-empty string"
	}
	return ""
}

func array(value interface{}, _ []string) string {
	if _, ok := length(indirect(value)); !ok {
		return "Must be an array"
	}
	return ""
}

func nonEmptyArray(value interface{}, _ []string) string {
	n, ok := length(indirect(value))
	if !ok || n == 0 {
		return "Must be a non-empty array"
	}
	return ""
}

// set accepts a scalar that is one of params, or a slice whose members all are.
func set(value interface{}, params []string) string {
	message := "Must be one of the following: [" + strings.Join(params, ", ") + "]"

	quoted := make([]string, len(params))
	for i, p := range params {
		quoted[i] = "'" + p + "'"
	}
	tag := "oneof=" + strings.Join(quoted, " ")

	value = indirect(value)
	if value == nil {
		return message
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		members := make([]string, rv.Len())
		for i := range members {
			members[i] = fmt.Sprint(indirect(rv.Index(i).Interface()))
		}
		if validate.Var(members, "dive,"+tag) != nil {
			return message
		}
		return ""
	}
	if validate.Var(fmt.Sprint(value), tag) != nil {
		return message
	}
	return ""
}

func extractRange(params []string) (string, string) {
	var min, max string
	if len(params) > 0 {
		min = params[0]
	}
	if len(params) > 1 {
		max = params[1]
	}
	return min, max
}

func rangeText(prefix, min, max string) string {
	var bounds []string
	if min != "" {
		bounds = append(bounds, ">= "+min)
	}
	if max != "" {
		bounds = append(bounds, "<= "+max)
	}
	if len(bounds) == 0 {
		return ""
	}
	return prefix + strings.Join(bounds, " and ")
}

func rangeTag(min, max string) string {
	var parts []string
	if min != "" {
		parts = append(parts, "gte="+min)
	}
	if max != "" {
		parts = append(parts, "lte="+max)
	}
	return strings.Join(parts, ",")
}

func indirect(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func kindOf(value interface{}) reflect.Kind {
	value = indirect(value)
	if value == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(value).Kind()
}

func asString(value interface{}) (string, bool) {
	if kindOf(value) != reflect.String {
		return "", false
	}
	return reflect.ValueOf(indirect(value)).String(), true
}

func asInt(value interface{}) (int64, bool) {
	value = indirect(value)
	switch kindOf(value) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(value).Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := reflect.ValueOf(value).Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func length(value interface{}) (int, bool) {
	switch kindOf(value) {
	case reflect.Slice, reflect.Array, reflect.Map:
		return reflect.ValueOf(indirect(value)).Len(), true
	}
	return 0, false
}

package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 按tag的错误提示模板, %s依次为字段名和tag参数
var fieldErrorFormats = map[string]string{
	"required": "field '%s' is required",
	"max":      "field '%s' must be at most %s",
	"min":      "field '%s' must be at least %s",
	"oneof":    "field '%s' must be one of: %s",
	"email":    "field '%s' must be a valid email address",
	"url":      "field '%s' must be a valid URL",
	"gte":      "field '%s' must be greater than or equal to %s",
	"lte":      "field '%s' must be less than or equal to %s",
	"alphanum": "field '%s' must be alphanumeric",
}

// FormatValidationError 格式化验证错误信息
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return strings.Join(messages, "; ")
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("field '%s' should be %s", jsonErr.Field, jsonErr.Type.String())
	}
	if _, ok := err.(*json.SyntaxError); ok {
		return "invalid JSON format"
	}

	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	format, ok := fieldErrorFormats[e.Tag()]
	if !ok {
		return fmt.Sprintf("field '%s' validation failed on '%s' tag", e.Field(), e.Tag())
	}
	if strings.Count(format, "%s") == 2 {
		return fmt.Sprintf(format, e.Field(), e.Param())
	}
	return fmt.Sprintf(format, e.Field())
}

// Package validation выполняет декларативную проверку входных структур.
// Правила описываются тегами validate на DTO; результатом является полный
// список нарушений по полям, а не только первое из них.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Тег с правилом сложности пароля.
const passwordTag = "password"

// FieldViolation описывает одно нарушение правила для конкретного поля.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator оборачивает go-playground/validator с доменными правилами.
type Validator struct {
	validate *validator.Validate
}

// New создает новый Validator с зарегистрированным правилом пароля.
// Имена полей в нарушениях берутся из json тегов.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Ошибка регистрации возможна только для пустого тега.
	_ = v.RegisterValidation(passwordTag, passwordComplexity)

	return &Validator{validate: v}
}

// Struct проверяет структуру и возвращает полный список нарушений.
// Пустой список означает, что все правила выполнены.
func (v *Validator) Struct(s interface{}) []FieldViolation {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, FieldViolation{
			Field:   fieldError.Field(),
			Message: messageFor(fieldError),
		})
	}
	return violations
}

// passwordComplexity требует хотя бы одну строчную и заглавную буквы,
// цифру и специальный символ.
func passwordComplexity(fl validator.FieldLevel) bool {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSpecial
}

// messageFor строит человекочитаемое сообщение для нарушения.
func messageFor(fieldError validator.FieldError) string {
	field := displayName(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "min":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fieldError.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fieldError.Param())
	case "max":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", field, fieldError.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", field, fieldError.Param())
	case "email":
		return "Email should be in valid format!"
	case "url":
		return "Please give proper image URL!"
	case passwordTag:
		return "Password must contain at least one lowercase letter, one uppercase letter, one digit, and one special character"
	case "uuid":
		return fmt.Sprintf("%s must be a valid id!", field)
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

// displayName делает первую букву имени поля заглавной для сообщений.
func displayName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

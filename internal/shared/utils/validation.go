package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"likenovel/internal/shared/errors"
)

var registerOnce sync.Once

// RegisterValidators installs json tag names and the custom `password` and `yn` rules on
// gin's binding validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerOn(v)
	})
}

func registerOn(v *validator.Validate) {
	// Use JSON tag names for validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("yn", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "Y" || s == "N"
	})
}

var standalone = func() *validator.Validate {
	v := validator.New()
	registerOn(v)
	return v
}()

// ValidateStruct validates s outside of gin binding and returns the translated error.
func ValidateStruct(s interface{}) error {
	if err := standalone.Struct(s); err != nil {
		return TranslateBindError(err)
	}
	return nil
}

// IsValidPassword checks 8 to 20 characters with at least one letter, digit and symbol.
func IsValidPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 8 || n > 20 {
		return false
	}
	var letter, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return letter && digit && symbol
}

// TranslateBindError turns a binding failure into a 400 carrying one Korean message
// for the first offending field.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		return errors.NewValidationError(fieldMessage(verrs[0]))
	}

	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		field := typeErr.Field
		if idx := strings.LastIndex(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		return errors.NewValidationError(fmt.Sprintf("%s 항목의 형식이 올바르지 않습니다.", field))
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewValidationError("요청 본문이 올바른 JSON 형식이 아닙니다.")
	}
	if stderrors.Is(err, io.EOF) {
		return errors.NewValidationError("요청 본문이 비어 있습니다.")
	}

	return errors.NewValidationError("요청 값이 올바르지 않습니다.")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 항목은 필수입니다.", field)
	case "email":
		return "이메일 형식이 올바르지 않습니다."
	case "password":
		return "비밀번호는 영문, 숫자, 특수문자를 포함한 8~20자로 입력해주세요."
	case "yn":
		return fmt.Sprintf("%s 항목은 Y 또는 N 이어야 합니다.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s 항목은 %s자 이상이어야 합니다.", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s 항목은 %s개 이상이어야 합니다.", field, param)
		}
		return fmt.Sprintf("%s 항목은 %s 이상이어야 합니다.", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s 항목은 %s자 이하여야 합니다.", field, param)
		}
		return fmt.Sprintf("%s 항목은 %s 이하여야 합니다.", field, param)
	case "gt":
		return fmt.Sprintf("%s 항목은 %s보다 커야 합니다.", field, param)
	case "gte":
		return fmt.Sprintf("%s 항목은 %s 이상이어야 합니다.", field, param)
	case "oneof":
		return fmt.Sprintf("%s 항목은 [%s] 중 하나여야 합니다.", field, param)
	case "url":
		return fmt.Sprintf("%s 항목은 올바른 URL이어야 합니다.", field)
	default:
		return fmt.Sprintf("%s 항목의 값이 올바르지 않습니다.", field)
	}
}

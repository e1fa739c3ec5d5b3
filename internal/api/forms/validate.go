package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError reports rejected input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

var registerOnce sync.Once

// register installs the custom tags on gin's validator and makes field
// errors use the json names.
func register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := genreSet[fl.Field().String()]
		return ok
	})
	_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		_, ok := stateSet[strings.ToUpper(fl.Field().String())]
		return ok
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

// Bind decodes a form or JSON body into dst and validates it. Any failure is
// returned as a *ValidationError.
func Bind(c *gin.Context, dst interface{}) error {
	registerOnce.Do(register)
	if err := c.ShouldBind(dst); err != nil {
		return fromBindError(err)
	}
	return nil
}

func fromBindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Fields: make(map[string]string, len(verrs))}
		for _, fe := range verrs {
			field := fe.Field()
			if i := strings.IndexByte(field, '['); i >= 0 {
				field = field[:i]
			}
			if _, seen := out.Fields[field]; !seen {
				out.Fields[field] = message(fe)
			}
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return invalid(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type))
	}
	if errors.Is(err, io.EOF) {
		return invalid("body", "is empty")
	}
	return invalid("body", err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		return "needs at least " + fe.Param() + " value(s)"
	case "gt":
		return "must be greater than " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "genre":
		return fmt.Sprintf("%q is not a known genre", fe.Value())
	case "state":
		return fmt.Sprintf("%q is not a known state", fe.Value())
	default:
		return "failed " + fe.Tag() + " check"
	}
}

package req

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"beer_service/pkg/errcodes"
	"beer_service/pkg/lox"
	"beer_service/pkg/rest"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	validate = newValidator()                               //nolint:gochecknoglobals // skip
)

// ValidationError carries every rejected field of a request body. It wraps the
// failure error so that reply.Error still classifies it as invalid argument.
type ValidationError struct {
	Fields []rest.FieldError
	err    error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors are reported by their JSON names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// notblank: как required, но строка из одних пробелов тоже пустая.
	lo.Must0(v.RegisterValidation("notblank", validators.NotBlank))

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		return d.InexactFloat64()
	}, decimal.Decimal{})

	return v
}

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return Validate(r, dest)
}

// Validate runs struct validation and converts validator output into a
// *ValidationError.
func Validate(r *http.Request, dest any) error {
	err := validate.StructCtx(r.Context(), dest)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	fields := lox.Map(validationErrors, func(fe validator.FieldError) rest.FieldError {
		return rest.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		}
	})

	return &ValidationError{
		Fields: fields,
		err: failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(describe(fields)),
		),
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return "must not be blank"
		}

		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "oneof":
		return "must be one of [" + strings.ReplaceAll(fe.Param(), " ", ", ") + "]"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "size must be at most " + fe.Param()
	case "min":
		return "size must be at least " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func describe(fields []rest.FieldError) string {
	parts := lox.Map(fields, func(f rest.FieldError) string {
		return f.Field + ": " + f.Message
	})

	return strings.Join(parts, "; ")
}

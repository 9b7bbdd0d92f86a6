// Package validator adapts go-playground/validator to echo with the marketplace's field rules.
package validator

import (
	"reflect"
	"strings"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the custom tags: mealtype, localphone, buyerid and buyername.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"mealtype": func(fl validator.FieldLevel) bool {
			return entity.MealType(fl.Field().String()).Valid()
		},
		"localphone": func(fl validator.FieldLevel) bool {
			return entity.ValidLocalPhone(fl.Field().String())
		},
		"buyerid": func(fl validator.FieldLevel) bool {
			id := fl.Field().String()

			return strings.HasPrefix(id, entity.BuyerIDPrefix) && len(id) > len(entity.BuyerIDPrefix)
		},
		"buyername": func(fl validator.FieldLevel) bool {
			return entity.ValidBuyerName(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return &CustomValidator{validate: validate}
}

// Validate returns ErrValidationFailed with one "field failed on tag" entry per violation.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	parts := make([]string, len(fieldErrs))
	for idx, fe := range fieldErrs {
		if fe.Param() != "" {
			parts[idx] = fe.Field() + " failed on " + fe.Tag() + "=" + fe.Param()
		} else {
			parts[idx] = fe.Field() + " failed on " + fe.Tag()
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(parts, "; "))
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		name, _, _ = strings.Cut(fld.Tag.Get("query"), ",")
	}
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}

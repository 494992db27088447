package invoice

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FormInput holds the raw values submitted by the invoice form.
type FormInput struct {
	CustomerID string `form:"customerId" json:"customerId" validate:"required,uuid"`
	Amount     string `form:"amount" json:"amount" validate:"required,positive_amount,amount_range"`
	Status     string `form:"status" json:"status" validate:"oneof=pending paid"`
}

var fieldMessages = map[string]string{
	"customerId": "Please select a customer.",
	"amount":     "Please enter an amount greater than $0.",
	"status":     "Please select an invoice status.",
}

// tagMessages override fieldMessages for specific rules.
var tagMessages = map[string]string{
	"amount_range": "Please enter an amount no greater than $21,474,836.47.",
}

// maxCents is the largest amount the invoices.amount column holds.
var maxCents = decimal.NewFromInt(math.MaxInt32)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		d, err := parseAmount(fl.Field().String())
		return err == nil && d.IsPositive()
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("amount_range", func(fl validator.FieldLevel) bool {
		d, err := parseAmount(fl.Field().String())
		return err == nil && cents(d).LessThanOrEqual(maxCents)
	}); err != nil {
		panic(err)
	}

	return v
}

// parseAmount reads a form amount. Surrounding whitespace is ignored and
// exponent notation is accepted.
func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// cents converts a decimal amount to minor units, rounding half away from zero.
func cents(d decimal.Decimal) decimal.Decimal {
	return d.Mul(decimal.NewFromInt(100)).Round(0)
}

// toCents is only called on amounts that passed amount_range.
func toCents(d decimal.Decimal) int64 {
	return cents(d).IntPart()
}

type validInput struct {
	customerID uuid.UUID
	cents      int64
	status     Status
}

// check validates in and returns per-field messages keyed by form field name.
func (in FormInput) check() (validInput, map[string][]string) {
	err := validate.Struct(in)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return validInput{}, map[string][]string{"_": {err.Error()}}
		}

		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			if len(fields[field]) > 0 {
				continue
			}

			msg, ok := tagMessages[fe.Tag()]
			if !ok {
				msg = fieldMessages[field]
			}

			fields[field] = append(fields[field], msg)
		}

		return validInput{}, fields
	}

	d, _ := parseAmount(in.Amount)

	return validInput{
		customerID: uuid.MustParse(in.CustomerID),
		cents:      toCents(d),
		status:     Status(in.Status),
	}, nil
}

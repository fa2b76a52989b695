package invoicegen

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/validate"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type rule struct {
	required bool
	check    func(v string) error
}

var (
	stateLength = validate.String{MaxLength: 2, MaxLengthSet: true}
	zipLength   = validate.String{MinLength: 5, MinLengthSet: true, MaxLength: 10, MaxLengthSet: true}

	hundred = decimal.NewFromInt(100)
)

// queryOptionsRules mirrors the constraints the remote service applies.
// Keys without a rule are free-form.
var queryOptionsRules = map[string]rule{
	"invoiceNumber": {required: true},
	"date":          {check: checkDate},
	"from_name":     {required: true},
	"from_street":   {required: true},
	"from_city":     {required: true},
	"from_state":    {required: true, check: stateLength.Validate},
	"from_zip":      {required: true, check: zipLength.Validate},
	"to_name":       {required: true},
	"to_street":     {required: true},
	"to_city":       {required: true},
	"to_state":      {required: true, check: stateLength.Validate},
	"to_zip":        {required: true, check: zipLength.Validate},
	"dueDate":       {check: checkDate},
	"discount":      {check: checkDecimalRange(decimal.Zero, nil)},
	"salesTax":      {check: checkDecimalRange(decimal.Zero, &hundred)},
	"currency":      {check: checkCurrency},
	"items":         {required: true},
}

// Validate checks s against the constraints of the remote service before a
// request is made. QueryOptions never calls it on its own.
//
// Values are sent as JSON strings, so every set field must be valid UTF-8.
// All failures are collected into a single *validate.Error with one entry per
// wire key.
func (s *QueryOptions) Validate() error {
	if s == nil {
		return errors.New("nil QueryOptions")
	}

	var failures []validate.FieldError
	for _, f := range queryOptionsFields {
		v, set := f.ptr(s).Get()
		if set && !utf8.ValidString(v) {
			failures = append(failures, validate.FieldError{
				Name:  f.key,
				Error: errors.New("invalid UTF-8"),
			})
			continue
		}

		r, ok := queryOptionsRules[f.key]
		if !ok {
			continue
		}
		if !set || strings.TrimSpace(v) == "" {
			if r.required {
				failures = append(failures, validate.FieldError{
					Name:  f.key,
					Error: validate.ErrFieldRequired,
				})
			}
			continue
		}

		if r.check == nil {
			continue
		}
		if err := r.check(v); err != nil {
			failures = append(failures, validate.FieldError{
				Name:  f.key,
				Error: err,
			})
		}
	}

	if len(failures) > 0 {
		return &validate.Error{Fields: failures}
	}
	return nil
}

func checkDate(v string) error {
	if _, err := time.Parse(dateLayout, v); err != nil {
		return errors.Errorf("%q is not a YYYY-MM-DD date", v)
	}
	return nil
}

func checkDecimalRange(lo decimal.Decimal, hi *decimal.Decimal) func(string) error {
	return func(v string) error {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return errors.Errorf("%q is not a number", v)
		}
		if d.LessThan(lo) {
			return errors.Errorf("%s is less than minimum %s", d, lo)
		}
		if hi != nil && d.GreaterThan(*hi) {
			return errors.Errorf("%s is greater than maximum %s", d, hi)
		}
		return nil
	}
}

func checkCurrency(v string) error {
	if len(v) != 3 {
		return errors.Errorf("%q is not a three letter currency code", v)
	}
	for _, c := range v {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return errors.Errorf("%q is not a three letter currency code", v)
		}
	}
	return nil
}

package invoicegen

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() *QueryOptions {
	q := NewQueryOptions()
	q.InvoiceNumber.SetTo("INV-1001")
	q.Date.SetTo("2024-01-15")
	q.FromName.SetTo("Acme Co")
	q.FromStreet.SetTo("1 Main St")
	q.FromCity.SetTo("Boston")
	q.FromState.SetTo("MA")
	q.FromZip.SetTo("02110")
	q.ToName.SetTo("Contoso")
	q.ToStreet.SetTo("500 Pine St")
	q.ToCity.SetTo("Seattle")
	q.ToState.SetTo("WA")
	q.ToZip.SetTo("98101-1234")
	q.PaymentTerms.SetTo("Net 30")
	q.DueDate.SetTo("2024-02-14")
	q.Discount.SetTo("0")
	q.SalesTax.SetTo("100")
	q.Currency.SetTo("USD")
	q.Items.SetTo(`[{"qty":1,"description":"Consulting","unit_price":150}]`)
	return q
}

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *validate.Error
	require.True(t, errors.As(err, &verr), "expected *validate.Error, got %T", err)

	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validOptions().Validate())
}

func TestValidate_EmptyReportsAllRequired(t *testing.T) {
	err := NewQueryOptions().Validate()
	require.Error(t, err)

	assert.Equal(t, []string{
		"invoiceNumber",
		"from_name", "from_street", "from_city", "from_state", "from_zip",
		"to_name", "to_street", "to_city", "to_state", "to_zip",
		"items",
	}, failedFields(t, err))
}

func TestValidate_BlankRequired(t *testing.T) {
	q := validOptions()
	q.InvoiceNumber.SetTo("   ")

	err := q.Validate()
	assert.Equal(t, []string{"invoiceNumber"}, failedFields(t, err))

	var verr *validate.Error
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, verr.Fields[0].Error, validate.ErrFieldRequired)
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"state too long", "from_state", "MAS"},
		{"zip too short", "to_zip", "0211"},
		{"zip too long", "from_zip", "02110-12345"},
		{"date format", "date", "15/01/2024"},
		{"date without padding", "date", "2024-1-5"},
		{"impossible date", "dueDate", "2024-02-30"},
		{"discount negative", "discount", "-5"},
		{"discount not a number", "discount", "ten"},
		{"sales tax over 100", "salesTax", "100.01"},
		{"sales tax negative", "salesTax", "-0.5"},
		{"currency length", "currency", "US"},
		{"currency digits", "currency", "U5D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validOptions()
			require.True(t, q.SetByKey(tt.key, tt.value))

			assert.Equal(t, []string{tt.key}, failedFields(t, q.Validate()))
		})
	}
}

func TestValidate_InvalidUTF8(t *testing.T) {
	q := validOptions()
	q.Job.SetTo("a\xffb")
	q.ToName.SetTo("Contoso\xc3")

	assert.Equal(t, []string{"to_name", "job"}, failedFields(t, q.Validate()))
}

func TestValidate_OptionalFieldsMayBeUnset(t *testing.T) {
	q := validOptions()
	q.Date.Reset()
	q.DueDate.Reset()
	q.Discount.Reset()
	q.SalesTax.Reset()
	q.Currency.Reset()
	q.PaymentTerms.Reset()

	assert.NoError(t, q.Validate())
}

func TestValidate_DoesNotMutate(t *testing.T) {
	q := validOptions()
	q.Currency.SetTo("us")
	before := *q

	_ = q.Validate()
	assert.Equal(t, before, *q)
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	q := validOptions()
	q.FromState.SetTo("Mass")
	q.SalesTax.SetTo("150")
	q.Items.Reset()

	assert.Equal(t, []string{"from_state", "salesTax", "items"}, failedFields(t, q.Validate()))
}

package invoicegen

import (
	"net/url"
)

// QueryOptions is the parameter set for one invoice generation request.
//
// Every field is optional and unconstrained. Only fields that were set are
// serialized, each under its wire key; see Fields for the key list.
// The zero value has no parameters set.
type QueryOptions struct {
	// The invoice number.
	InvoiceNumber OptString
	// The invoice date (YYYY-MM-DD).
	Date OptString
	// Name of the person or company issuing the invoice.
	FromName OptString
	// Street address of the issuer.
	FromStreet OptString
	// City of the issuer.
	FromCity OptString
	// State of the issuer.
	FromState OptString
	// Zip code of the issuer.
	FromZip OptString
	// Name of the person or company being invoiced.
	ToName OptString
	// Street address of the recipient.
	ToStreet OptString
	// City of the recipient.
	ToCity OptString
	// State of the recipient.
	ToState OptString
	// Zip code of the recipient.
	ToZip OptString
	// Job or project associated with the invoice.
	Job OptString
	// Payment terms, e.g. "Net 30".
	PaymentTerms OptString
	// Due date (YYYY-MM-DD).
	DueDate OptString
	// Discount applied to the invoice.
	Discount OptString
	// Sales tax rate as percentage.
	SalesTax OptString
	// Currency code, e.g. "USD".
	Currency OptString
	// Encoded line items (qty, description, unit_price).
	Items OptString
}

// NewQueryOptions returns QueryOptions with all fields unset.
func NewQueryOptions() *QueryOptions {
	return &QueryOptions{}
}

// field binds a wire key to the QueryOptions field it is stored in.
type field struct {
	key string
	ptr func(s *QueryOptions) *OptString
}

// queryOptionsFields is the static field to wire key table. Keys are part
// of the remote API contract and must not be renamed.
var queryOptionsFields = [...]field{
	{key: "invoiceNumber", ptr: func(s *QueryOptions) *OptString { return &s.InvoiceNumber }},
	{key: "date", ptr: func(s *QueryOptions) *OptString { return &s.Date }},
	{key: "from_name", ptr: func(s *QueryOptions) *OptString { return &s.FromName }},
	{key: "from_street", ptr: func(s *QueryOptions) *OptString { return &s.FromStreet }},
	{key: "from_city", ptr: func(s *QueryOptions) *OptString { return &s.FromCity }},
	{key: "from_state", ptr: func(s *QueryOptions) *OptString { return &s.FromState }},
	{key: "from_zip", ptr: func(s *QueryOptions) *OptString { return &s.FromZip }},
	{key: "to_name", ptr: func(s *QueryOptions) *OptString { return &s.ToName }},
	{key: "to_street", ptr: func(s *QueryOptions) *OptString { return &s.ToStreet }},
	{key: "to_city", ptr: func(s *QueryOptions) *OptString { return &s.ToCity }},
	{key: "to_state", ptr: func(s *QueryOptions) *OptString { return &s.ToState }},
	{key: "to_zip", ptr: func(s *QueryOptions) *OptString { return &s.ToZip }},
	{key: "job", ptr: func(s *QueryOptions) *OptString { return &s.Job }},
	{key: "paymentTerms", ptr: func(s *QueryOptions) *OptString { return &s.PaymentTerms }},
	{key: "dueDate", ptr: func(s *QueryOptions) *OptString { return &s.DueDate }},
	{key: "discount", ptr: func(s *QueryOptions) *OptString { return &s.Discount }},
	{key: "salesTax", ptr: func(s *QueryOptions) *OptString { return &s.SalesTax }},
	{key: "currency", ptr: func(s *QueryOptions) *OptString { return &s.Currency }},
	{key: "items", ptr: func(s *QueryOptions) *OptString { return &s.Items }},
}

var queryOptionsIndex = func() map[string]int {
	m := make(map[string]int, len(queryOptionsFields))
	for i, f := range queryOptionsFields {
		m[f.key] = i
	}
	return m
}()

// Fields returns wire keys of all QueryOptions fields in declaration order.
func Fields() []string {
	keys := make([]string, len(queryOptionsFields))
	for i, f := range queryOptionsFields {
		keys[i] = f.key
	}
	return keys
}

// Lookup returns the value stored under wire key.
// The boolean is false for unknown keys and for unset fields.
func (s *QueryOptions) Lookup(key string) (string, bool) {
	i, ok := queryOptionsIndex[key]
	if !ok || s == nil {
		return "", false
	}
	return queryOptionsFields[i].ptr(s).Get()
}

// SetByKey sets the field stored under wire key. It reports false if the key
// is not one of Fields.
func (s *QueryOptions) SetByKey(key, value string) bool {
	i, ok := queryOptionsIndex[key]
	if !ok {
		return false
	}
	queryOptionsFields[i].ptr(s).SetTo(value)
	return true
}

// Len returns the number of set fields.
func (s *QueryOptions) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, f := range queryOptionsFields {
		if f.ptr(s).IsSet() {
			n++
		}
	}
	return n
}

// Map returns set fields keyed by wire key.
func (s *QueryOptions) Map() map[string]string {
	m := make(map[string]string, s.Len())
	s.each(func(key, value string) {
		m[key] = value
	})
	return m
}

// Values returns set fields as query string parameters.
func (s *QueryOptions) Values() url.Values {
	v := make(url.Values, s.Len())
	s.each(func(key, value string) {
		v.Set(key, value)
	})
	return v
}

// Clone returns a copy that shares nothing with s.
func (s *QueryOptions) Clone() *QueryOptions {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s *QueryOptions) each(fn func(key, value string)) {
	if s == nil {
		return
	}
	for _, f := range queryOptionsFields {
		if v, ok := f.ptr(s).Get(); ok {
			fn(f.key, v)
		}
	}
}

// GetInvoiceNumber returns the value of InvoiceNumber.
func (s *QueryOptions) GetInvoiceNumber() OptString {
	return s.InvoiceNumber
}

// GetDate returns the value of Date.
func (s *QueryOptions) GetDate() OptString {
	return s.Date
}

// GetFromName returns the value of FromName.
func (s *QueryOptions) GetFromName() OptString {
	return s.FromName
}

// GetFromStreet returns the value of FromStreet.
func (s *QueryOptions) GetFromStreet() OptString {
	return s.FromStreet
}

// GetFromCity returns the value of FromCity.
func (s *QueryOptions) GetFromCity() OptString {
	return s.FromCity
}

// GetFromState returns the value of FromState.
func (s *QueryOptions) GetFromState() OptString {
	return s.FromState
}

// GetFromZip returns the value of FromZip.
func (s *QueryOptions) GetFromZip() OptString {
	return s.FromZip
}

// GetToName returns the value of ToName.
func (s *QueryOptions) GetToName() OptString {
	return s.ToName
}

// GetToStreet returns the value of ToStreet.
func (s *QueryOptions) GetToStreet() OptString {
	return s.ToStreet
}

// GetToCity returns the value of ToCity.
func (s *QueryOptions) GetToCity() OptString {
	return s.ToCity
}

// GetToState returns the value of ToState.
func (s *QueryOptions) GetToState() OptString {
	return s.ToState
}

// GetToZip returns the value of ToZip.
func (s *QueryOptions) GetToZip() OptString {
	return s.ToZip
}

// GetJob returns the value of Job.
func (s *QueryOptions) GetJob() OptString {
	return s.Job
}

// GetPaymentTerms returns the value of PaymentTerms.
func (s *QueryOptions) GetPaymentTerms() OptString {
	return s.PaymentTerms
}

// GetDueDate returns the value of DueDate.
func (s *QueryOptions) GetDueDate() OptString {
	return s.DueDate
}

// GetDiscount returns the value of Discount.
func (s *QueryOptions) GetDiscount() OptString {
	return s.Discount
}

// GetSalesTax returns the value of SalesTax.
func (s *QueryOptions) GetSalesTax() OptString {
	return s.SalesTax
}

// GetCurrency returns the value of Currency.
func (s *QueryOptions) GetCurrency() OptString {
	return s.Currency
}

// GetItems returns the value of Items.
func (s *QueryOptions) GetItems() OptString {
	return s.Items
}

// SetInvoiceNumber sets the value of InvoiceNumber.
func (s *QueryOptions) SetInvoiceNumber(val OptString) {
	s.InvoiceNumber = val
}

// SetDate sets the value of Date.
func (s *QueryOptions) SetDate(val OptString) {
	s.Date = val
}

// SetFromName sets the value of FromName.
func (s *QueryOptions) SetFromName(val OptString) {
	s.FromName = val
}

// SetFromStreet sets the value of FromStreet.
func (s *QueryOptions) SetFromStreet(val OptString) {
	s.FromStreet = val
}

// SetFromCity sets the value of FromCity.
func (s *QueryOptions) SetFromCity(val OptString) {
	s.FromCity = val
}

// SetFromState sets the value of FromState.
func (s *QueryOptions) SetFromState(val OptString) {
	s.FromState = val
}

// SetFromZip sets the value of FromZip.
func (s *QueryOptions) SetFromZip(val OptString) {
	s.FromZip = val
}

// SetToName sets the value of ToName.
func (s *QueryOptions) SetToName(val OptString) {
	s.ToName = val
}

// SetToStreet sets the value of ToStreet.
func (s *QueryOptions) SetToStreet(val OptString) {
	s.ToStreet = val
}

// SetToCity sets the value of ToCity.
func (s *QueryOptions) SetToCity(val OptString) {
	s.ToCity = val
}

// SetToState sets the value of ToState.
func (s *QueryOptions) SetToState(val OptString) {
	s.ToState = val
}

// SetToZip sets the value of ToZip.
func (s *QueryOptions) SetToZip(val OptString) {
	s.ToZip = val
}

// SetJob sets the value of Job.
func (s *QueryOptions) SetJob(val OptString) {
	s.Job = val
}

// SetPaymentTerms sets the value of PaymentTerms.
func (s *QueryOptions) SetPaymentTerms(val OptString) {
	s.PaymentTerms = val
}

// SetDueDate sets the value of DueDate.
func (s *QueryOptions) SetDueDate(val OptString) {
	s.DueDate = val
}

// SetDiscount sets the value of Discount.
func (s *QueryOptions) SetDiscount(val OptString) {
	s.Discount = val
}

// SetSalesTax sets the value of SalesTax.
func (s *QueryOptions) SetSalesTax(val OptString) {
	s.SalesTax = val
}

// SetCurrency sets the value of Currency.
func (s *QueryOptions) SetCurrency(val OptString) {
	s.Currency = val
}

// SetItems sets the value of Items.
func (s *QueryOptions) SetItems(val OptString) {
	s.Items = val
}

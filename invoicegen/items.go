package invoicegen

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// Item is a single invoice line.
type Item struct {
	Qty         int
	Description string
	UnitPrice   decimal.Decimal
}

// EncodeItems renders items as a JSON array of
// {"qty", "description", "unit_price"} objects, the format the service
// documents for the items parameter.
func EncodeItems(items []Item) string {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, it := range items {
		e.ObjStart()
		e.FieldStart("qty")
		e.Int(it.Qty)
		e.FieldStart("description")
		e.Str(it.Description)
		e.FieldStart("unit_price")
		e.Raw([]byte(it.UnitPrice.String()))
		e.ObjEnd()
	}
	e.ArrEnd()

	return string(e.Bytes())
}

// ParseItems is the reverse of EncodeItems. Unit prices may be given as JSON
// numbers or numeric strings.
func ParseItems(s string) ([]Item, error) {
	var items []Item
	d := jx.DecodeStr(s)
	if err := d.Arr(func(d *jx.Decoder) error {
		var it Item
		if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
			switch string(k) {
			case "qty":
				v, err := d.Int()
				if err != nil {
					return errors.Wrap(err, "qty")
				}
				it.Qty = v
			case "description":
				v, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "description")
				}
				it.Description = v
			case "unit_price":
				v, err := decodeDecimal(d)
				if err != nil {
					return errors.Wrap(err, "unit_price")
				}
				it.UnitPrice = v
			default:
				return d.Skip()
			}
			return nil
		}); err != nil {
			return errors.Wrapf(err, "item %d", len(items))
		}
		items = append(items, it)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "parse items")
	}
	if err := decodeEOF(d); err != nil {
		return nil, errors.Wrap(err, "parse items")
	}
	return items, nil
}

// SetItemList encodes items with EncodeItems and stores them in Items.
func (s *QueryOptions) SetItemList(items []Item) {
	s.Items.SetTo(EncodeItems(items))
}

// ItemList parses Items with ParseItems. It returns nil without error when
// Items is unset.
func (s *QueryOptions) ItemList() ([]Item, error) {
	v, ok := s.Items.Get()
	if !ok {
		return nil, nil
	}
	return ParseItems(v)
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	switch d.Next() {
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(v)
	default:
		n, err := d.Num()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(n.String())
	}
}

// Package money holds exact two-place decimal amounts as stored in
// decimal(10,2) columns.
package money

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

// Max é o maior valor que cabe em decimal(10,2).
var Max = MustParse("99999999.99")

var (
	ErrEmpty   = errors.New("money: empty amount")
	ErrInvalid = errors.New("money: invalid amount")
)

// Amount is always rounded to two fractional digits.
type Amount struct {
	d decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{d: d.Round(Places)}
}

// Parse accepts "10", "10.5", "1e1" and similar, rounding half away from zero.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalid
	}
	return New(d), nil
}

func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) IsPositive() bool { return a.d.IsPositive() }

func (a Amount) String() string { return a.d.StringFixed(Places) }

func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	a.d = d.Round(Places)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var t Text
	if err := t.UnmarshalJSON(b); err != nil {
		return err
	}
	parsed, err := Parse(string(t))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Text carries an amount exactly as the client sent it, JSON number or
// string, so validation can happen in the use case.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

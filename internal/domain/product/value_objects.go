package product

import "strings"

const (
	MaxNameLength = 120
	MaxImages     = 8
)

var validSizes = map[string]struct{}{
	"XS": {}, "S": {}, "M": {}, "L": {}, "XL": {}, "XXL": {}, "Free": {},
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Size struct {
	value string
}

func NewSize(s string) (Size, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "FREE" {
		s = "Free"
	}
	if _, ok := validSizes[s]; !ok {
		return Size{}, ErrInvalidSize
	}
	return Size{value: s}, nil
}

func (s Size) String() string { return s.value }

// Money is an amount in paise. Rental prices and deposits never go
// negative.
type Money struct {
	paise int64
}

func NewMoney(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{paise: paise}, nil
}

func (m Money) Paise() int64 { return m.paise }

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

func (m Money) MultiplyDays(days int) Money {
	return Money{paise: m.paise * int64(days)}
}

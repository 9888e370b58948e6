// Package money implements fixed-point decimal amounts with two fraction
// digits, stored as integer cents. Price-like fields across the API accept
// either a JSON string ("89.90") or a JSON number (89.9) and always
// serialize back as a 2-digit string, so repeated read/write cycles never
// drift.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Amount is a monetary value in cents.
type Amount int64

// Parse reads a decimal string into an Amount. Fraction digits beyond the
// second are rounded half away from zero.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(intPart) > 15 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	var cents int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents = cents*10 + int64(r-'0')
	}
	cents *= 100
	if fracPart != "" {
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
		}
		frac := fracPart
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents += int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		// round on the third fraction digit
		if len(fracPart) > 2 && fracPart[2] >= '5' {
			cents++
		}
	}
	if neg {
		cents = -cents
	}
	return Amount(cents), nil
}

// FromFloat converts a float to cents, rounding half away from zero.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// MulInt scales the amount by an integer quantity.
func (a Amount) MulInt(n int) Amount { return a * Amount(n) }

func (a Amount) String() string {
	c := int64(a)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Float returns the amount as a float64, for aggregate output only.
func (a Amount) Float() float64 { return float64(a) / 100 }

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a decimal string or a bare number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		v, err := Parse(str)
		if err != nil {
			return err
		}
		*a = v
		return nil
	}
	if s == "null" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

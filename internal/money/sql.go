package money

import (
	"database/sql/driver"
	"fmt"
)

// Amounts are persisted as their canonical 2-digit string form so the value
// survives any backend's numeric affinity untouched.

func (a Amount) Value() (driver.Value, error) { return a.String(), nil }

func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case int64:
		*a = Amount(v) * 100
		return nil
	case float64:
		*a = FromFloat(v)
		return nil
	}
	return fmt.Errorf("money: cannot scan %T", src)
}

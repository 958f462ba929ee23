package pathabs

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Value implements driver.Valuer. Paths are stored as escaped text.
func (p Path) Value() (driver.Value, error) {
	return Serialize(p), nil
}

// Scan implements sql.Scanner for TEXT and BLOB columns.
func (p *Path) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	case nil:
		return &DecodeError{Err: errors.New("NULL is not a path")}
	default:
		return &DecodeError{Text: fmt.Sprint(v), Err: fmt.Errorf("unsupported column type %T", src)}
	}
}

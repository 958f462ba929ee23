package pathabs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/pathabs/internal/native"
)

// DecodeError reports a text scalar that could not be turned into a Path.
// Err is either an *escape.SyntaxError or the validation error from New.
type DecodeError struct {
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode path %q: %v", e.Text, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Serialize returns the escaped text form of p. It never fails.
func Serialize(p Path) string {
	return native.Encode(native.Extract(p.raw))
}

// Deserialize reverses Serialize. On any failure it returns the zero Path
// and a *DecodeError.
func Deserialize(text string) (Path, error) {
	units, err := native.Decode(text)
	if err != nil {
		return Path{}, &DecodeError{Text: text, Err: err}
	}
	p, err := New(native.Reconstitute(units))
	if err != nil {
		return Path{}, &DecodeError{Text: text, Err: err}
	}
	return p, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(Serialize(p)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	v, err := Deserialize(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON implements json.Marshaler. Escaped text never contains
// characters that JSON would need to escape, so it is quoted as is.
func (p Path) MarshalJSON() ([]byte, error) {
	text := Serialize(p)
	b := make([]byte, 0, len(text)+2)
	b = append(b, '"')
	b = append(b, text...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler. null is rejected like any
// other non-string value.
func (p *Path) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		return &DecodeError{Text: string(data), Err: errors.New("expected a JSON string")}
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return &DecodeError{Text: string(data), Err: err}
	}
	return p.UnmarshalText([]byte(text))
}

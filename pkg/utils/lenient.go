package utils

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errUnsupportedScalar = errors.New("utils: expected a string, number, boolean or null")

// Lenient is a JSON scalar decoded into its textual form. Clients send ids and
// ratings both as numbers and as strings; Lenient accepts either. null and
// false decode to the empty string, which services treat as absent.
type Lenient string

func (l *Lenient) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*l = ""
	case bytes.Equal(data, []byte("true")):
		*l = "true"
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Lenient(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*l = Lenient(n.String())
	default:
		return errUnsupportedScalar
	}
	return nil
}

func (l Lenient) String() string {
	return string(l)
}

package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Serves is the "serves" field, which the API sends either as a string
// ("4 people") or as a bare number.
type Serves string

// UnmarshalJSON accepts a JSON string, number, or null.
func (s *Serves) UnmarshalJSON(data []byte) error {
	v, err := scalarText(data)
	if err != nil {
		return fmt.Errorf("decoding serves: %w", err)
	}
	*s = Serves(v)
	return nil
}

// Nutrient is one named nutrient value. Value is kept as display text.
type Nutrient struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Empty reports whether the value is absent, blank, or numerically zero.
func (n Nutrient) Empty() bool {
	v := strings.TrimSpace(n.Value)
	if v == "" {
		return true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == 0 {
		return true
	}
	return false
}

// Nutrients is the nutrient mapping in the order the API sent it.
type Nutrients []Nutrient

// UnmarshalJSON decodes a JSON object into an ordered list of nutrients.
func (n *Nutrients) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding nutrients: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decoding nutrients: expected object, got %v", tok)
	}

	out := Nutrients{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding nutrients: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decoding nutrients: unexpected key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding nutrient %q: %w", key, err)
		}
		value, err := scalarText(raw)
		if err != nil {
			return fmt.Errorf("decoding nutrient %q: %w", key, err)
		}
		out = append(out, Nutrient{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding nutrients: %w", err)
	}

	*n = out
	return nil
}

// MarshalJSON encodes the nutrients back into an object, keeping order.
func (n Nutrients) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, nt := range n {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(nt.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(nt.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for name and whether it was present.
func (n Nutrients) Get(name string) (string, bool) {
	for _, nt := range n {
		if nt.Name == name {
			return nt.Value, true
		}
	}
	return "", false
}

// scalarText turns a JSON scalar into display text. null and false become "".
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil
	}
	switch data[0] {
	case 'n':
		return "", nil
	case 'f':
		return "", nil
	case 't':
		return "true", nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("unexpected composite value %s", data)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return "", err
		}
		return num.String(), nil
	}
}

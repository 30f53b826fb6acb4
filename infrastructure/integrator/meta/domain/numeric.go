package metadomain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Numeric é um campo numérico da API da Meta, que chega como string
// ("12.5"), número (12.5) ou null. O texto é mantido como veio e
// convertido apenas na normalização.
type Numeric struct {
	raw   string
	valid bool
}

func NewNumeric(raw string) Numeric {
	return Numeric{raw: strings.TrimSpace(raw), valid: true}
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*n = Numeric{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*n = NewNumeric(value)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("metadomain: expected numeric value, got %s", data)
	}

	*n = NewNumeric(string(data))
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// IsEmpty indica campo ausente, null ou string vazia
func (n Numeric) IsEmpty() bool {
	return !n.valid || n.raw == ""
}

func (n Numeric) String() string {
	return n.raw
}

// Float converte o valor, usando 0 quando o campo está vazio
func (n Numeric) Float() (float64, error) {
	if n.IsEmpty() {
		return 0, nil
	}

	value, err := strconv.ParseFloat(n.raw, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("metadomain: non-finite value %q", n.raw)
	}

	return value, nil
}

// Int converte o valor como inteiro base 10, usando 0 quando o campo está vazio
func (n Numeric) Int() (int, error) {
	if n.IsEmpty() {
		return 0, nil
	}

	return strconv.Atoi(n.raw)
}

package domain

import (
	"bytes"
	"strconv"
	"strings"
)

// Figure é um valor numérico que a API pode enviar como número ("85000")
// ou como texto de exibição ("85K", "$5,000", "4.2%").
type Figure struct {
	Raw   string
	Value float64
}

// NewFigure cria um Figure a partir de um número
func NewFigure(v float64) Figure {
	return Figure{Raw: strconv.FormatFloat(v, 'f', -1, 64), Value: v}
}

// ParseFigure converte textos como "85K", "1.2M", "$5,000" e "4.2%" em número.
// Textos sem dígitos resultam em zero.
func ParseFigure(s string) float64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		multiplier = 1_000_000
	case strings.HasSuffix(s, "K"):
		multiplier = 1_000
	}

	var digits strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			digits.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}

	return v * multiplier
}

func (f *Figure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Figure{}
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = Figure{Raw: s, Value: ParseFigure(s)}
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Figure{Raw: string(data), Value: v}
	return nil
}

func (f Figure) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}

package outreachdomain

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
)

// FlexInt é um contador inteiro tolerante: a plataforma às vezes devolve números,
// às vezes strings numéricas, às vezes null. Qualquer valor que não seja
// interpretável vira 0 e nunca gera erro de decodificação.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			return nil
		}
		*f = FlexInt(parseLeadingInt(unquoted))
		return nil
	}

	// Objetos, arrays e booleanos não são contadores
	if raw[0] == '{' || raw[0] == '[' || raw[0] == 't' || raw[0] == 'f' {
		return nil
	}

	*f = FlexInt(parseLeadingInt(string(raw)))
	return nil
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}

// parseLeadingInt lê o inteiro no início da string ("50", "50.9", "50 emails"),
// truncando a parte decimal. Retorna 0 quando não há dígitos ou o valor não cabe em int64.
func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return v
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// fora do intervalo de int64 a conversão estouraria
		if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0
		}
		return int64(f)
	}

	end := 0
	if s[0] == '-' || s[0] == '+' {
		end = 1
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	v, err = strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// LiteralValue builds the Go value of a Literal node from its raw lexeme:
// float64 for numbers, string for strings (quotes removed, escapes applied),
// bool, or nil for null.
func (n *Nodes) LiteralValue(id NodeID) (any, error) {
	lit, ok := n.Literal(id)
	if !ok {
		return nil, fmt.Errorf("node %d is %s, not a literal", id, n.Kind(id))
	}
	switch lit.Kind {
	case LitNumber:
		return parseNumber(lit.Raw)
	case LitString:
		return unquote(lit.Raw)
	case LitBool:
		return lit.Raw == "true", nil
	case LitNil:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown literal kind %d", lit.Kind)
}

func parseNumber(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 0 {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, fmt.Errorf("number %q: %w", raw, err)
			}
			return float64(v), nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", raw, err)
	}
	return v, nil
}

// unquote снимает кавычки и раскрывает escape-последовательности.
// Неизвестный escape оставляет символ как есть (лексер уже предупредил).
func unquote(raw string) (string, error) {
	if len(raw) < 2 || (raw[0] != '"' && raw[0] != '\'') || raw[len(raw)-1] != raw[0] {
		return "", fmt.Errorf("malformed string literal %s", raw)
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body, nil
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch e := body[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '0':
			sb.WriteByte(0)
		case 'x':
			if i+2 < len(body) {
				if v, err := strconv.ParseUint(body[i+1:i+3], 16, 8); err == nil {
					sb.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			sb.WriteByte(e)
		default:
			sb.WriteByte(e)
		}
	}
	return sb.String(), nil
}

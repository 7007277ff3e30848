package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"unicode/utf16"
)

// maxDepth matches the nesting limit of encoding/json.
const maxDepth = 10000

// object is a JSON object that remembers the order its keys first appeared in.
type object struct {
	keys   []string
	values map[string]any
}

func newObject() *object {
	return &object{values: make(map[string]any)}
}

// set stores v under key. A repeated key keeps its first position and takes the last value.
func (o *object) set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// nonFinite are the literals accepted in number position besides JSON numbers.
// They are echoed as written.
var nonFinite = []string{"-Infinity", "Infinity", "NaN"}

// documentDecoder walks the token stream of one document. literals holds,
// for every number token in input order, the non-finite literal it stands
// for or "" for an ordinary number.
type documentDecoder struct {
	dec      *json.Decoder
	literals []string
}

// decodeDocument parses data as exactly one JSON value. The result is built
// from nil, bool, json.Number, string, []any and *object.
func decodeDocument(data []byte) (any, error) {
	masked, literals := maskNonFinite(data)

	d := &documentDecoder{dec: json.NewDecoder(bytes.NewReader(masked)), literals: literals}
	d.dec.UseNumber()

	v, err := d.decodeValue(0)
	if err != nil {
		return nil, wrapDecodeError(d.dec, err)
	}

	switch _, err := d.dec.Token(); {
	case err == io.EOF:
		return v, nil
	case err != nil:
		return nil, wrapDecodeError(d.dec, err)
	default:
		return nil, NewDecodeError(d.dec.InputOffset(), ErrTrailingData)
	}
}

// maskNonFinite replaces NaN, Infinity and -Infinity outside strings with a
// zero padded by spaces, so offsets are unchanged, and records the number
// tokens of data in order.
func maskNonFinite(data []byte) ([]byte, []string) {
	var (
		out      []byte
		literals []string
	)

	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == '"':
			i = skipString(data, i)
		case c == '-' || c == 'N' || c == 'I' || (c >= '0' && c <= '9'):
			if lit := nonFiniteAt(data, i); lit != "" {
				if out == nil {
					out = append([]byte(nil), data...)
				}
				out[i] = '0'
				for j := i + 1; j < i+len(lit); j++ {
					out[j] = ' '
				}
				literals = append(literals, lit)
				i += len(lit)
				continue
			}
			if c == 'N' || c == 'I' {
				i++
				continue
			}
			literals = append(literals, "")
			i = skipNumber(data, i)
			// -NaN and 1Infinity stay invalid
			if i < len(data) && (data[i] == 'N' || data[i] == 'I') {
				i++
			}
		default:
			i++
		}
	}

	if out == nil {
		return data, literals
	}
	return out, literals
}

func nonFiniteAt(data []byte, i int) string {
	for _, lit := range nonFinite {
		if bytes.HasPrefix(data[i:], []byte(lit)) {
			return lit
		}
	}
	return ""
}

// skipString returns the index just past the string starting at data[i].
func skipString(data []byte, i int) int {
	for i++; i < len(data); i++ {
		switch data[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return i
}

func skipNumber(data []byte, i int) int {
	for i++; i < len(data); i++ {
		switch c := data[i]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return i
		}
	}
	return i
}

func (d *documentDecoder) decodeValue(depth int) (any, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	tok, err := d.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, ErrUnexpectedEnd
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		if n, ok := tok.(json.Number); ok {
			return d.number(n), nil
		}
		return tok, nil
	}

	switch delim {
	case '{':
		obj := newObject()
		for d.dec.More() {
			keyTok, err := d.dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errors.New("object key is not a string")
			}
			v, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			obj.set(key, v)
		}
		if err := closeDelim(d.dec); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for d.dec.More() {
			v, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if err := closeDelim(d.dec); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, errors.New("unexpected delimiter " + delim.String())
	}
}

// number swaps a masked zero back for the literal it replaced.
func (d *documentDecoder) number(n json.Number) json.Number {
	if len(d.literals) == 0 {
		return n
	}
	lit := d.literals[0]
	d.literals = d.literals[1:]
	if lit != "" {
		return json.Number(lit)
	}
	return n
}

func closeDelim(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		if err == io.EOF {
			return ErrUnexpectedEnd
		}
		return err
	}
	return nil
}

func wrapDecodeError(dec *json.Decoder, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewDecodeError(syntaxErr.Offset, err)
	}
	return NewDecodeError(dec.InputOffset(), err)
}

// encodeDocument writes v with ", " between elements and ": " after keys.
// Everything outside printable ASCII is escaped, so the output is pure ASCII.
func encodeDocument(v any) []byte {
	var buf bytes.Buffer
	encodeValue(&buf, v)
	return buf.Bytes()
}

func encodeValue(buf *bytes.Buffer, v any) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		buf.WriteString(t.String())
	case string:
		writeString(buf, t)
	case []any:
		buf.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				buf.WriteString(", ")
			}
			encodeValue(buf, elem)
		}
		buf.WriteByte(']')
	case *object:
		buf.WriteByte('{')
		for i, key := range t.keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeString(buf, key)
			buf.WriteString(": ")
			encodeValue(buf, t.values[key])
		}
		buf.WriteByte('}')
	}
}

const hex = "0123456789abcdef"

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				buf.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				writeEscape(buf, r1)
				writeEscape(buf, r2)
			default:
				writeEscape(buf, r)
			}
		}
	}
	buf.WriteByte('"')
}

func writeEscape(buf *bytes.Buffer, r rune) {
	buf.WriteString(`\u`)
	buf.WriteByte(hex[r>>12&0xf])
	buf.WriteByte(hex[r>>8&0xf])
	buf.WriteByte(hex[r>>4&0xf])
	buf.WriteByte(hex[r&0xf])
}

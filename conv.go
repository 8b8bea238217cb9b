package num

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// BigIntFromString creates a BigInt from a decimal string. The string may
// start with a single '-' or '+' and must otherwise consist only of the
// digits '0' to '9'. Leading zeros are permitted, and "-0" is 0.
//
// A failed parse returns a *ParseError that wraps ErrEmpty, ErrLoneSign or
// ErrSyntax.
func BigIntFromString(s string) (out BigInt, err error) {
	if len(s) == 0 {
		return out, &ParseError{Input: s, Err: ErrEmpty}
	}

	digits, neg := s, false
	switch s[0] {
	case '-':
		digits, neg = s[1:], true
	case '+':
		digits = s[1:]
	}
	if len(digits) == 0 {
		return out, &ParseError{Input: s, Err: ErrLoneSign}
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return out, &ParseError{Input: s, Err: ErrSyntax}
		}
	}

	digits = strings.TrimLeft(digits, "0")

	// Fold the digits in chunks small enough that chunk * 10^len fits a limb
	// multiply; the first chunk is short so the rest are all full.
	var z limbs
	first := len(digits) % decimalChunk
	if first == 0 {
		first = decimalChunk
	}
	for i, end := 0, first; i < len(digits); i, end = end, end+decimalChunk {
		var chunk uint64
		for _, c := range []byte(digits[i:end]) {
			chunk = chunk*10 + uint64(c-'0')
		}
		z = mulVW(z, uint64(tenPowers[end-i-1]))
		z = addVW(z, chunk)
	}
	return mkBigInt(z, neg), nil
}

// MustBigIntFromString is BigIntFromString for constant input; it panics if s
// is not a valid decimal integer.
func MustBigIntFromString(s string) BigInt {
	out, err := BigIntFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

func (x BigInt) String() string {
	if len(x.limbs) == 0 {
		return "0"
	}

	// Peel off base 10^9 chunks least significant first.
	var chunks []uint32
	q := x.limbs
	for len(q) > 0 {
		var r uint32
		q, r = divVW(q, tenPowers[decimalChunk-1])
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.Grow(len(chunks)*decimalChunk + 1)
	if x.neg {
		sb.WriteByte('-')
	}

	var buf [decimalChunk]byte
	top := len(chunks) - 1
	sb.WriteString(strconv.FormatUint(uint64(chunks[top]), 10))
	for i := top - 1; i >= 0; i-- {
		v := chunks[i]
		for j := decimalChunk - 1; j >= 0; j-- {
			buf[j] = byte('0' + v%10)
			v /= 10
		}
		sb.Write(buf[:])
	}
	return sb.String()
}

// WriteTo writes the decimal form of x to w. It implements io.WriterTo.
func (x BigInt) WriteTo(w io.Writer) (n int64, err error) {
	c, err := io.WriteString(w, x.String())
	return int64(c), err
}

// Format implements fmt.Formatter. The verbs 'd', 's' and 'v' print the
// decimal form and honour the width and the '-', '+', ' ' and '0' flags.
func (x BigInt) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(num.BigInt=%s)", c, x.String())
		return
	}

	digits := x.String()
	var sign string
	if x.neg {
		sign, digits = "-", digits[1:]
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	width, ok := s.Width()
	pad := 0
	if ok {
		pad = width - len(sign) - len(digits)
	}

	switch {
	case pad <= 0:
		io.WriteString(s, sign+digits)
	case s.Flag('-'):
		io.WriteString(s, sign+digits+strings.Repeat(" ", pad))
	case s.Flag('0'):
		io.WriteString(s, sign+strings.Repeat("0", pad)+digits)
	default:
		io.WriteString(s, strings.Repeat(" ", pad)+sign+digits)
	}
}

func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *BigInt) UnmarshalText(bts []byte) (err error) {
	v, err := BigIntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number, as long
// as the number is written as a decimal integer.
// UnmarshalJSON accepts a quoted or bare decimal number. JSON null leaves x
// unchanged, like the decoders in encoding/json.
func (x *BigInt) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: bigint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := BigIntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

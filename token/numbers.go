package token

import (
	"math"
	"strconv"
	"strings"
)

func (s *Scanner) number() (*Token, error) {
	d := s.d
	start := s.i
	i := start
	if d[i] == '-' || d[i] == '+' {
		i++
	}
	if s.opt.literal && i+1 < len(d) && d[i] == '0' && (d[i+1]|0x20) == 'x' {
		n := hexDigits(d[i+2:])
		if n == 0 {
			return nil, &TokenizeErr{Err: ErrNumber, Off: start, Msg: "hex literal without digits"}
		}
		return s.emit(TInteger, start, i+2+n), nil
	}
	intDigits := s.digits(d[i:])
	if intDigits == 0 && !(s.opt.literal && i < len(d) && d[i] == '.') {
		return nil, &TokenizeErr{Err: ErrNumber, Off: start, Msg: "expected digit"}
	}
	if intDigits > 1 && d[i] == '0' {
		return nil, LeadingZeroErr(start)
	}
	i += intDigits
	isFloat := false
	if i < len(d) && d[i] == '.' {
		f := s.digits(d[i+1:])
		if f == 0 && (!s.opt.literal || intDigits == 0) {
			return nil, &TokenizeErr{Err: ErrNumber, Off: i, Msg: "expected digit after '.'"}
		}
		i += 1 + f
		isFloat = true
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '+' || d[j] == '-') {
			j++
		}
		e := asciiDigits(d[j:])
		if e == 0 {
			return nil, &TokenizeErr{Err: ErrNumber, Off: j, Msg: "expected exponent digits"}
		}
		i = j + e
		isFloat = true
	}
	if isFloat {
		return s.emit(TFloat, start, i), nil
	}
	return s.emit(TInteger, start, i), nil
}

// digits counts leading decimal digits; object literals also allow single
// underscores between digits.
func (s *Scanner) digits(d []byte) int {
	n := asciiDigits(d)
	if !s.opt.literal || n == 0 {
		return n
	}
	for n+1 < len(d) && d[n] == '_' && asciiDigit(d[n+1]) {
		n += 1 + asciiDigits(d[n+1:])
	}
	return n
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func asciiDigits(d []byte) int {
	for i, c := range d {
		if !asciiDigit(c) {
			return i
		}
	}
	return len(d)
}

func hexDigits(d []byte) int {
	for i := range d {
		if !allHex(d[i : i+1]) {
			return i
		}
	}
	return len(d)
}

// NumberText strips the syntax that only object literals accept (a leading
// '+' and digit separators) so the result can be handed to strconv.
func NumberText(b []byte) string {
	v := string(b)
	v = strings.TrimPrefix(v, "+")
	return strings.ReplaceAll(v, "_", "")
}

// IsHex reports whether a number token is a hexadecimal literal.
func IsHex(b []byte) bool {
	v := NumberText(b)
	v = strings.TrimPrefix(v, "-")
	return len(v) > 2 && v[0] == '0' && (v[1]|0x20) == 'x'
}

// FormatFloat renders f the way JavaScript prints numbers: the shortest
// representation that parses back to f, in plain notation when
// 1e-6 <= |f| < 1e21 and in exponent notation otherwise.
func FormatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	fmtc := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		fmtc = 'e'
	}
	b := strconv.AppendFloat(nil, f, fmtc, -1, 64)
	if fmtc == 'e' {
		// e-07 -> e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}

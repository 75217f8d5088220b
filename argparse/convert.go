package argparse

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxBoolWordLen bounds boolean words; longer tokens are a RangeError.
const MaxBoolWordLen = 63

const (
	msgInvalidInt    = "Invalid integer value"
	msgInvalidDouble = "Invalid floating-point value"
	msgInvalidBool   = "Invalid boolean value. Use: true/false, yes/no, 1/0, on/off, enable/disable"
	msgBoolTooLong   = "Boolean value too long"
	msgIntRange      = "Integer value out of range"
	msgDoubleRange   = "Floating-point value out of range"
	msgInvalidList   = "Invalid list value"
	msgEmptySplit    = "List requires values"
)

// ParseInt converts a token to an int within the signed 32-bit range.
// Surrounding whitespace is ignored; anything else that is not part of a
// base-10 number is a TypeError, and overflow is a RangeError.
func ParseInt(token string) (int, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, newError(CategoryType, "", msgInvalidInt)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, wrapError(CategoryRange, "", msgIntRange, err)
		}
		return 0, wrapError(CategoryType, "", msgInvalidInt, err)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, newError(CategoryRange, "", msgIntRange)
	}
	return int(n), nil
}

// ParseDouble converts a decimal token to a finite float64 with the same
// whitespace rules as ParseInt. Digit separators, hex floats, literal
// infinities and NaN are a TypeError. Values too large to represent, or so
// small they would round to zero, are a RangeError.
func ParseDouble(token string) (float64, error) {
	s := strings.TrimSpace(token)
	if s == "" || strings.ContainsAny(s, "_xX") {
		return 0, newError(CategoryType, "", msgInvalidDouble)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, wrapError(CategoryRange, "", msgDoubleRange, err)
		}
		return 0, wrapError(CategoryType, "", msgInvalidDouble, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, newError(CategoryType, "", msgInvalidDouble)
	}
	if f == 0 && nonZeroMantissa(s) {
		return 0, newError(CategoryRange, "", msgDoubleRange)
	}
	return f, nil
}

// nonZeroMantissa reports whether a decimal literal has a non-zero digit
// before its exponent.
func nonZeroMantissa(s string) bool {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	return strings.ContainsAny(s, "123456789")
}

var boolWords = map[string]bool{
	"true": true, "1": true, "yes": true, "on": true, "enable": true, "enabled": true,
	"false": false, "0": false, "no": false, "off": false, "disable": false, "disabled": false,
}

// ParseBoolWord maps a case-insensitive word to a bool. An empty token means
// the flag is present and yields true.
func ParseBoolWord(token string) (bool, error) {
	if token == "" {
		return true, nil
	}
	if len(token) > MaxBoolWordLen {
		return false, newError(CategoryRange, "", msgBoolTooLong)
	}
	b, ok := boolWords[strings.ToLower(token)]
	if !ok {
		return false, newError(CategoryType, "", msgInvalidBool)
	}
	return b, nil
}

// parseElement converts one token into a list element of the given kind.
// Strings are taken verbatim.
func parseElement(kind ArgType, token string) (element, error) {
	switch kind {
	case ArgTypeInt:
		n, err := ParseInt(token)
		return element{i: n}, err
	case ArgTypeDouble:
		f, err := ParseDouble(token)
		return element{f: f}, err
	case ArgTypeString:
		return element{s: token}, nil
	default:
		return element{}, newError(CategoryInternal, "", "Unsupported list element type")
	}
}

// SplitInts splits text on delimiter, skipping empty sub-tokens, and
// parses each piece with ParseInt. The first bad piece fails the whole call
// with a TypeError (RangeError on overflow); no pieces is a SyntaxError.
func SplitInts(text string, delimiter byte) ([]int, error) {
	q, err := splitList(ArgTypeInt, text, delimiter)
	if err != nil {
		return nil, err
	}
	out := make([]int, q.len())
	for i, e := range q.elems {
		out[i] = e.i
	}
	return out, nil
}

// SplitDoubles is SplitInts for float64 elements.
func SplitDoubles(text string, delimiter byte) ([]float64, error) {
	q, err := splitList(ArgTypeDouble, text, delimiter)
	if err != nil {
		return nil, err
	}
	out := make([]float64, q.len())
	for i, e := range q.elems {
		out[i] = e.f
	}
	return out, nil
}

// SplitStrings splits text on delimiter, keeping pieces verbatim.
func SplitStrings(text string, delimiter byte) ([]string, error) {
	q, err := splitList(ArgTypeString, text, delimiter)
	if err != nil {
		return nil, err
	}
	out := make([]string, q.len())
	for i, e := range q.elems {
		out[i] = e.s
	}
	return out, nil
}

func splitList(kind ArgType, text string, delimiter byte) (sequence, error) {
	q := sequence{kind: kind}
	rest := text
	for rest != "" {
		var piece string
		if i := strings.IndexByte(rest, delimiter); i >= 0 {
			piece, rest = rest[:i], rest[i+1:]
		} else {
			piece, rest = rest, ""
		}
		if piece == "" {
			continue
		}
		e, err := parseElement(kind, piece)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) && perr.Category == CategoryRange {
				return sequence{}, perr
			}
			return sequence{}, wrapError(CategoryType, "", msgInvalidList, err)
		}
		q.append(e)
	}
	if q.len() == 0 {
		return sequence{}, newError(CategorySyntax, "", msgEmptySplit)
	}
	return q, nil
}

/*
File    : di/value/literal.go
Project : di compiler front-end
*/

package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DecodeNumber converts a numeric lexeme to an Integer or a Double. The
// lexeme is a double if it carries a fraction or an exponent, an integer
// otherwise. Integers that do not fit in 32 bits fall back to Double.
func DecodeNumber(lexeme string) (Value, error) {
	if strings.ContainsAny(lexeme, ".eE") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number literal %q: %w", lexeme, err)
		}
		return &Double{Value: f}, nil
	}
	n, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		if f, ferr := strconv.ParseFloat(lexeme, 64); ferr == nil {
			return &Double{Value: f}, nil
		}
		return nil, fmt.Errorf("bad number literal %q: %w", lexeme, err)
	}
	return &Integer{Value: int32(n)}, nil
}

// DecodeString converts a quoted string lexeme (including the surrounding
// double quotes) to a String, resolving the JSON escapes
// \" \\ \/ \b \f \n \r \t and \uHHHH.
func DecodeString(lexeme string) (Value, error) {
	var s string
	if err := json.Unmarshal([]byte(lexeme), &s); err != nil {
		return nil, fmt.Errorf("bad string literal %s: %w", lexeme, err)
	}
	return &String{Value: s}, nil
}

// Quote renders s as a JSON string literal with the standard escapes.
func Quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail
		panic(err)
	}
	return string(b)
}

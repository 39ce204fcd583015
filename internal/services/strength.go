package services

import "unicode/utf8"

// Strength is a rough password score from 0 to 4.
type Strength struct {
	Score int
	Label string
}

var strengthLabels = []string{"Very weak", "Weak", "Medium", "Strong", "Very strong"}

// PasswordStrength awards one point each for: at least 8 characters, an
// upper-case letter, a digit, and a character that is not an ASCII letter
// or digit.
func PasswordStrength(pw string) Strength {
	if pw == "" {
		return Strength{Score: 0, Label: "Empty"}
	}

	var upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			symbol = true
		}
	}

	score := 0
	if utf8.RuneCountInString(pw) >= 8 {
		score++
	}
	for _, ok := range []bool{upper, digit, symbol} {
		if ok {
			score++
		}
	}
	return Strength{Score: score, Label: strengthLabels[score]}
}

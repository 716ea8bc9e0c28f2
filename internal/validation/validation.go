// Package validation holds pure checks for Brazilian personal-data formats:
// CPF, birth date and phone number. Validators never fail with an error;
// they always report a valid/invalid result with a human-readable message.
package validation

import "strings"

type Result struct {
	Valid   bool
	Message string
}

func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}

func valid(message string) Result {
	return Result{Valid: true, Message: message}
}

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPF(t *testing.T) {
	tests := []struct {
		name        string
		cpf         string
		wantValid   bool
		wantMessage string
	}{
		{
			name:        "known good cpf",
			cpf:         "12345678909",
			wantValid:   true,
			wantMessage: "CPF válido",
		},
		{
			name:        "formatted input is stripped",
			cpf:         "123.456.789-09",
			wantValid:   true,
			wantMessage: "CPF válido",
		},
		{
			name:        "too short",
			cpf:         "123456789",
			wantMessage: "CPF deve conter exatamente 11 dígitos",
		},
		{
			name:        "too long",
			cpf:         "123456789012",
			wantMessage: "CPF deve conter exatamente 11 dígitos",
		},
		{
			name:        "all digits equal",
			cpf:         "11111111111",
			wantMessage: "CPF inválido - todos os dígitos são iguais",
		},
		{
			name:        "all zeros",
			cpf:         "00000000000",
			wantMessage: "CPF inválido - todos os dígitos são iguais",
		},
		{
			name:        "first check digit wrong",
			cpf:         "12345678919",
			wantMessage: "CPF inválido - primeiro dígito verificador incorreto",
		},
		{
			name:        "second check digit wrong",
			cpf:         "12345678908",
			wantMessage: "CPF inválido - segundo dígito verificador incorreto",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CPF(tc.cpf)
			assert.Equal(t, tc.wantValid, got.Valid)
			assert.Equal(t, tc.wantMessage, got.Message)
		})
	}
}

// Flipping any single digit of a valid CPF must invalidate it.
func TestCPFSingleDigitMutation(t *testing.T) {
	const good = "12345678909"

	for i := range len(good) {
		for d := byte('0'); d <= '9'; d++ {
			if good[i] == d {
				continue
			}
			mutated := good[:i] + string(d) + good[i+1:]
			got := CPF(mutated)
			assert.False(t, got.Valid, "mutated cpf %s should be invalid", mutated)
		}
	}
}

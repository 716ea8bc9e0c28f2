package validation

// CPF validates a Brazilian taxpayer id using its two check digits.
func CPF(raw string) Result {
	cpf := Digits(raw)

	if len(cpf) != 11 {
		return invalid("CPF deve conter exatamente 11 dígitos")
	}

	if allDigitsEqual(cpf) {
		return invalid("CPF inválido - todos os dígitos são iguais")
	}

	if int(cpf[9]-'0') != checkDigit(cpf[:9], 10) {
		return invalid("CPF inválido - primeiro dígito verificador incorreto")
	}

	if int(cpf[10]-'0') != checkDigit(cpf[:10], 11) {
		return invalid("CPF inválido - segundo dígito verificador incorreto")
	}

	return valid("CPF válido")
}

// checkDigit computes a verification digit over the leading digits with
// weights counting down from firstWeight, modulo 11.
func checkDigit(partial string, firstWeight int) int {
	sum := 0
	for i := range len(partial) {
		sum += int(partial[i]-'0') * (firstWeight - i)
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allDigitsEqual(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

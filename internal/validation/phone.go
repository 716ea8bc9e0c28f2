package validation

import "fmt"

// Phone validates a Brazilian phone number: 11 digits for mobile (third
// digit 9), 10 digits for landline or legacy mobile, area code 11-99.
func Phone(raw string) Result {
	phone := Digits(raw)

	if len(phone) != 10 && len(phone) != 11 {
		return invalid("Telefone deve ter 10 ou 11 dígitos")
	}

	if len(phone) == 11 && phone[2] != '9' {
		return invalid("Para celular com 11 dígitos, o terceiro dígito deve ser 9")
	}

	if !validAreaCode(phone[:2]) {
		return invalid("DDD inválido")
	}

	switch {
	case len(phone) == 11:
		return valid("Telefone celular válido")
	case phone[2] == '9':
		return valid("Telefone celular (formato antigo) válido")
	default:
		return valid("Telefone fixo válido")
	}
}

// FormatPhone renders a validated number as (DD) XXXXX-XXXX or
// (DD) XXXX-XXXX. Returns the empty string for unexpected lengths.
func FormatPhone(raw string) string {
	phone := Digits(raw)
	switch len(phone) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", phone[:2], phone[2:7], phone[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", phone[:2], phone[2:6], phone[6:])
	default:
		return ""
	}
}

func validAreaCode(ddd string) bool {
	code := int(ddd[0]-'0')*10 + int(ddd[1]-'0')
	return code >= 11 && code <= 99
}

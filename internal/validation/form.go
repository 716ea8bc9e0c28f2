package validation

// FormInput carries the optional fields of a registration form. Nil fields
// are skipped, not counted as failures.
type FormInput struct {
	CPF       *string
	BirthDate *string
	Phone     *string
}

type FormResult struct {
	Valid  bool
	Fields map[string]Result
}

// Form runs the applicable validators over the present fields and reports
// overall validity as the conjunction of the individual checks.
func Form(in FormInput) FormResult {
	result := FormResult{
		Valid:  true,
		Fields: make(map[string]Result),
	}

	record := func(field string, r Result) {
		result.Fields[field] = r
		if !r.Valid {
			result.Valid = false
		}
	}

	if in.CPF != nil {
		record("cpf", CPF(*in.CPF))
	}
	if in.BirthDate != nil {
		record("data_nascimento", BirthDate(*in.BirthDate))
	}
	if in.Phone != nil {
		record("telefone", Phone(*in.Phone))
	}

	return result
}

package validator

import (
	"strings"
	"testing"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type cpfPayload struct {
	CPF string `json:"cpf" validate:"required,len=11,numeric"`
}

func TestValidatePassesOnValidStruct(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&loginPayload{Email: "ana@example.com", Password: "secret1"})
	if err != nil {
		t.Errorf("esperado sucesso, obteve %v", err)
	}
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&loginPayload{})
	if err == nil {
		t.Fatal("esperado erro de validação")
	}

	fields := cv.FormatValidationErrors(err)
	if len(fields) != 2 {
		t.Fatalf("esperado 2 campos, obteve %d: %v", len(fields), fields)
	}
	if msg := fields["Email"]; !strings.Contains(msg, "obrigatório") {
		t.Errorf("mensagem de Email inesperada: %q", msg)
	}
	if msg := fields["Password"]; !strings.Contains(msg, "obrigatório") {
		t.Errorf("mensagem de Password inesperada: %q", msg)
	}
}

func TestFormatValidationErrorsMin(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&loginPayload{Email: "ana@example.com", Password: "abc"})
	if err == nil {
		t.Fatal("esperado erro de validação")
	}

	fields := cv.FormatValidationErrors(err)
	if msg := fields["Password"]; !strings.Contains(msg, "pelo menos 6") {
		t.Errorf("mensagem de Password inesperada: %q", msg)
	}
}

func TestFormatValidationErrorsLenAndNumeric(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&cpfPayload{CPF: "123"})
	if err == nil {
		t.Fatal("esperado erro de validação")
	}

	fields := cv.FormatValidationErrors(err)
	if msg := fields["CPF"]; !strings.Contains(msg, "exatamente 11") {
		t.Errorf("mensagem de CPF inesperada: %q", msg)
	}
}

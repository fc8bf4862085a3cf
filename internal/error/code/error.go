package code

import (
	"errors"
	"fmt"
)

// Error associa um código da enumeração fechada ao erro subjacente.
// A mensagem original fica retida apenas como detalhe de depuração;
// o usuário recebe a mensagem mapeada do código.
type Error struct {
	Code  int
	Cause error
}

// New cria um Error apenas com o código
func New(code int) *Error {
	return &Error{Code: code}
}

// Wrap cria um Error retendo a causa original
func Wrap(code int, cause error) *Error {
	return &Error{Code: code, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", GetMessage(e.Code), e.Cause)
	}
	return GetMessage(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf extrai o código de um erro; erros fora da enumeração
// são tratados como ErrUnknown.
func CodeOf(err error) int {
	if err == nil {
		return ErrSuccess
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrUnknown
}

package services

import "errors"

// Referential-integrity failures: the caller receives these unchanged when
// trying to delete a record that is still referenced elsewhere.
var (
	ErrClienteReferenciado = errors.New("cliente possui peças ou ordens de produção vinculadas")
	ErrPecaReferenciada    = errors.New("peça está vinculada a itens de ordem de produção")
)

// ValidationError marks input the caller must fix; handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

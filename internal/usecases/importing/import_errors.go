package importing

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("formato de importação não suportado")
	ErrEmptyFile         = errors.New("arquivo sem linhas de dados")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente")
	ErrInvalidValue      = errors.New("valor inválido")
)

// ImportError aponta a linha (CSV) ou o índice (JSON) que não pôde ser importado
type ImportError struct {
	Err   error
	Row   int
	Field string
}

func (e *ImportError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("linha %d, campo %q: %s", e.Row, e.Field, e.Err.Error())
	}
	return fmt.Sprintf("linha %d: %s", e.Row, e.Err.Error())
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func rowError(row int, field string, err error) *ImportError {
	return &ImportError{Err: err, Row: row, Field: field}
}

package packaging

import (
	"errors"
	"fmt"
)

// Erros específicos para os pacotes publicitários
var (
	// Erros de validação
	ErrTitleRequired       = errors.New("título do pacote é obrigatório")
	ErrInvalidPrice        = errors.New("preço não pode ser negativo")
	ErrInvalidDeliveryDays = errors.New("prazo de entrega deve ser de pelo menos 1 dia")
	ErrPackageIDRequired   = errors.New("ID do pacote é obrigatório")

	ErrPackageNotFound = errors.New("pacote não encontrado")

	// Erros de banco de dados
	ErrFetchPackages = errors.New("erro ao buscar pacotes no banco de dados")
	ErrSavePackage   = errors.New("erro ao salvar pacote")
	ErrGenerateID    = errors.New("erro ao gerar ID")
)

// PackageError é um erro com contexto adicional para pacotes
type PackageError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	PackageID string // ID do pacote envolvido (quando aplicável)
	Details   string
}

func (e *PackageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

func NewPackageError(err error, code string, details string) *PackageError {
	return &PackageError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPackageErrorWithID(err error, code string, packageID string, details string) *PackageError {
	return &PackageError{
		Err:       err,
		Code:      code,
		PackageID: packageID,
		Details:   details,
	}
}

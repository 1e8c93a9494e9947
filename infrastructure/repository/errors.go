package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Erros sentinela dos repositórios. Os casos de uso classificam falhas por
// errors.Is, nunca inspecionando o texto do erro do driver.
var (
	ErrNotFound  = errors.New("registro não encontrado")
	ErrDuplicate = errors.New("registro duplicado")
)

const uniqueViolationCode = "23505"

// wrapPqError traduz erros do driver em sentinelas quando há código estruturado
func wrapPqError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}

	return err
}

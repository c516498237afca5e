// Package domain guarda os erros comuns aos repositórios.
package domain

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record does not exist")
	ErrOutOfRange = errors.New("value out of column range")

	// Mais específicos, usados quando a operação referencia duas tabelas.
	ErrServiceNotFound = errors.New("service not found")
	ErrPlanNotFound    = errors.New("monthly plan not found")
)

// Fields são colunas a gravar numa atualização parcial.
type Fields map[string]any

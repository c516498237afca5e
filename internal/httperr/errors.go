package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindUnauthenticated      Kind = "unauthenticated"
	KindConfigurationMissing Kind = "configuration_missing"
	KindForbidden            Kind = "forbidden"
	KindValidation           Kind = "validation_failed"
	KindNotFound             Kind = "not_found"
	KindConflict             Kind = "conflict"
	KindUploadFailed         Kind = "upload_failed"
	KindInternal             Kind = "internal"
)

const internalMessage = "Erro interno do servidor. Tente novamente."

// Error é o único tipo de erro que sai de um caso de uso.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Unauthenticated() *Error {
	return New(KindUnauthenticated, "unauthenticated", "Usuário não autenticado")
}

func ConfigurationMissing() *Error {
	return New(KindConfigurationMissing, "admin_email_missing", "Configuração de e-mail do administrador ausente")
}

func Forbidden() *Error {
	return New(KindForbidden, "forbidden", "Acesso negado: e-mail não autorizado")
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func UploadFailed(err error) *Error {
	return &Error{
		Kind:    KindUploadFailed,
		Code:    "upload_failed",
		Message: "Erro ao fazer upload da imagem. Tente novamente.",
		Err:     err,
	}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "internal_error", Message: internalMessage, Err: err}
}

// From coerces anything into an *Error; unknown errors become Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func Status(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

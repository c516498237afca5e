package handlers

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/middleware"
)

const photoField = "photo"

func actor(c *gin.Context) *auth.User {
	return middleware.CurrentUser(c)
}

// pathID aceita apenas inteiros não negativos; o caso de uso rejeita zero.
func pathID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, httperr.Validation("invalid_id", "ID inválido")
	}
	return uint(v), nil
}

func queryID(c *gin.Context, name string) (uint, bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, true, httperr.Validation("invalid_"+name, "Parâmetro "+name+" inválido")
	}
	return uint(v), true, nil
}

func invalidRequest(err error) error {
	return &httperr.Error{
		Kind:    httperr.KindValidation,
		Code:    "invalid_request",
		Message: "Requisição inválida",
		Err:     err,
	}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bind lê JSON ou formulário conforme o Content-Type.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil {
		return invalidRequest(err)
	}
	return nil
}

// photo devolve o arquivo enviado no campo "photo", se houver. O chamador
// fecha o arquivo.
func photo(c *gin.Context) (multipart.File, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	header, err := c.FormFile(photoField)
	if err != nil {
		return nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, invalidRequest(err)
	}
	return f, nil
}

// reader evita passar um multipart.File nil embrulhado numa interface.
func reader(f multipart.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}

func closeFile(f multipart.File) {
	if f != nil {
		_ = f.Close()
	}
}

package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/httperr"
)

// Result é o envelope uniforme de todas as respostas da API.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Kind    string `json:"error_kind,omitempty"`
	Code    string `json:"error_code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListData[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Result{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Result{Success: true, Message: message, Data: data})
}

func List[T any](c *gin.Context, message string, items []T) {
	if items == nil {
		items = []T{}
	}
	OK(c, message, ListData[T]{Items: items, Total: len(items)})
}

func Fail(c *gin.Context, err error) {
	e := httperr.From(err)
	c.JSON(httperr.Status(e.Kind), Result{
		Success: false,
		Message: e.Message,
		Kind:    string(e.Kind),
		Code:    e.Code,
	})
}

// AbortFail é usado por middlewares.
func AbortFail(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}

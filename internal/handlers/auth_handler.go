package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/middleware"
)

type AuthHandler struct {
	authenticator *auth.Authenticator
	secureCookie  bool
}

func NewAuthHandler(a *auth.Authenticator, secureCookie bool) *AuthHandler {
	return &AuthHandler{authenticator: a, secureCookie: secureCookie}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	res, err := h.authenticator.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, res.Token, maxAge, "/", "", h.secureCookie, true)

	httpresp.OK(c, "Login realizado com sucesso", res)
}

// Session devolve o usuário da sessão atual ou null.
func (h *AuthHandler) Session(c *gin.Context) {
	httpresp.OK(c, "", gin.H{"user": actor(c)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	httpresp.OK(c, "Sessão encerrada", nil)
}

package auth

import (
	"context"

	"github.com/BruksfildServices01/barber-admin/internal/httperr"
)

// User é a identidade resolvida a partir da sessão ativa.
type User struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Guard reconhece um único administrador pelo e-mail configurado.
type Guard struct {
	adminEmail string
}

func NewGuard(adminEmail string) *Guard {
	return &Guard{adminEmail: adminEmail}
}

// Authorize returns nil only for the configured administrator. The
// comparison is case-sensitive.
func (g *Guard) Authorize(u *User) error {
	if u == nil {
		return httperr.Unauthenticated()
	}
	if g == nil || g.adminEmail == "" {
		return httperr.ConfigurationMissing()
	}
	if u.Email != g.adminEmail {
		return httperr.Forbidden()
	}
	return nil
}

type ctxKey struct{}

func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFrom returns nil when the request carries no session.
func UserFrom(ctx context.Context) *User {
	u, _ := ctx.Value(ctxKey{}).(*User)
	return u
}

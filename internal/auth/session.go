package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/validators"
)

var ErrInvalidSession = errors.New("invalid session token")

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Sessions emite e valida tokens HS256.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Sessions) Issue(u User) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)

	claims := sessionClaims{
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *Sessions) Parse(tokenString string) (*User, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 || claims.Email == "" {
		return nil, ErrInvalidSession
	}

	return &User{ID: uint(id), Email: claims.Email, Name: claims.Name}, nil
}

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticator troca e-mail e senha por um token de sessão.
type Authenticator struct {
	users    UserStore
	sessions *Sessions
}

func NewAuthenticator(users UserStore, sessions *Sessions) *Authenticator {
	return &Authenticator{users: users, sessions: sessions}
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

func (a *Authenticator) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, httperr.Validation("invalid_credentials", "E-mail e senha são obrigatórios")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.Validation("invalid_credentials", "E-mail inválido")
	}

	invalid := httperr.New(httperr.KindUnauthenticated, "invalid_credentials", "E-mail ou senha inválidos")

	record, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid
		}
		return nil, httperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}

	u := User{ID: record.ID, Email: record.Email, Name: record.Name}
	token, exp, err := a.sessions.Issue(u)
	if err != nil {
		return nil, httperr.Internal(err)
	}

	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

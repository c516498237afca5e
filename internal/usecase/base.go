// Package usecase reúne o que todo caso de uso do painel faz antes e
// depois de tocar no banco.
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-admin/internal/audit"
	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/money"
)

type Deps struct {
	Guard *auth.Guard
	Stale invalidate.Signaler
	Audit audit.Recorder
}

func (d Deps) Authorize(actor *auth.User) error {
	return d.Guard.Authorize(actor)
}

// Mutation descreve uma escrita concluída.
type Mutation struct {
	Action   string
	Entity   string
	EntityID uint
	Metadata any
	Views    []invalidate.View
}

// Done avisa as telas afetadas e registra a auditoria. Nenhum dos dois
// pode falhar a operação.
func (d Deps) Done(ctx context.Context, actor *auth.User, m Mutation) {
	if d.Stale != nil && len(m.Views) > 0 {
		d.Stale.Stale(ctx, m.Views...)
	}
	if d.Audit == nil {
		return
	}

	ev := audit.Event{
		Action:   m.Action,
		Entity:   m.Entity,
		Metadata: m.Metadata,
	}
	if actor != nil {
		uid := actor.ID
		ev.UserID = &uid
	}
	if m.EntityID != 0 {
		id := m.EntityID
		ev.EntityID = &id
	}
	d.Audit.Dispatch(ev)
}

// DoneIfChanged é Done para atualizações parciais: sem campos nada foi
// gravado, então não há tela a avisar nem auditoria.
func (d Deps) DoneIfChanged(ctx context.Context, actor *auth.User, fields domain.Fields, m Mutation) {
	if len(fields) == 0 {
		return
	}
	d.Done(ctx, actor, m)
}

// Internal loga o erro completo e devolve a mensagem genérica. Valor fora
// do intervalo da coluna vira erro de validação.
func Internal(op string, err error) error {
	if errors.Is(err, domain.ErrOutOfRange) {
		log.Warn().Err(err).Str("op", op).Msg("value out of range")
		return httperr.Validation("value_out_of_range", "Valor fora do intervalo permitido")
	}
	log.Error().Err(err).Str("op", op).Msg("operation failed")
	return httperr.Internal(err)
}

func UploadFailed(op string, err error) error {
	log.Warn().Err(err).Str("op", op).Msg("image upload failed")
	return httperr.UploadFailed(err)
}

func RequireID(id uint, code, message string) error {
	if id == 0 {
		return httperr.Validation(code, message)
	}
	return nil
}

// RequiredText devolve o texto sem espaços nas pontas ou um erro de
// validação quando fica vazio.
func RequiredText(s, code, message string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", httperr.Validation(code, message)
	}
	return s, nil
}

// Nullable apara o texto; vazio vira NULL.
func Nullable(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// NullableValue é Nullable para mapas de atualização parcial.
func NullableValue(s string) any {
	if v := Nullable(&s); v != nil {
		return *v
	}
	return nil
}

// PositivePrice normaliza para duas casas e exige 0 < valor <= money.Max.
func PositivePrice(raw money.Text) (money.Amount, error) {
	a, err := money.Parse(string(raw))
	if err != nil {
		if errors.Is(err, money.ErrEmpty) {
			return money.Amount{}, httperr.Validation("price_required", "Preço é obrigatório")
		}
		return money.Amount{}, httperr.Validation("invalid_price", "Preço inválido")
	}
	if !a.IsPositive() {
		return money.Amount{}, httperr.Validation("invalid_price", "Preço deve ser maior que zero")
	}
	if a.Decimal().GreaterThan(money.Max.Decimal()) {
		return money.Amount{}, httperr.Validation("invalid_price", "Preço deve ser no máximo "+money.Max.String())
	}
	return a, nil
}

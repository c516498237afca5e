package barber

import (
	"context"
	"errors"
	"io"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type CreateInput struct {
	Name                string
	BarbershopID        uint
	WhatsApp            *string
	Instagram           *string
	OpeningTime         *string
	ClosingTime         *string
	CustomHours         bool
	ServicePauseMinutes *int

	// Photo é opcional.
	Photo io.Reader
}

func (uc *Barbers) Create(ctx context.Context, actor *auth.User, in CreateInput) (*models.Barber, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	name, err := usecase.RequiredText(in.Name, "name_required", "Nome do barbeiro é obrigatório")
	if err != nil {
		return nil, err
	}
	if in.BarbershopID == 0 {
		return nil, httperr.Validation("barbershop_required", "Barbearia é obrigatória")
	}
	opening, err := optionalTime(in.OpeningTime, "opening_time", "Horário de abertura")
	if err != nil {
		return nil, err
	}
	closing, err := optionalTime(in.ClosingTime, "closing_time", "Horário de fechamento")
	if err != nil {
		return nil, err
	}
	if err := validatePause(in.ServicePauseMinutes); err != nil {
		return nil, err
	}

	b := &models.Barber{
		BarbershopID:        in.BarbershopID,
		Name:                name,
		WhatsApp:            usecase.Nullable(in.WhatsApp),
		Instagram:           usecase.Nullable(in.Instagram),
		OpeningTime:         opening,
		ClosingTime:         closing,
		CustomHours:         in.CustomHours,
		ServicePauseMinutes: in.ServicePauseMinutes,
	}

	if in.Photo != nil {
		img, err := uc.uploader.Upload(ctx, storage.FolderBarbers, in.Photo)
		if err != nil {
			return nil, usecase.UploadFailed("barber.create", err)
		}
		b.ImageURL = &img.URL
		b.ImageID = &img.ID
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("barber.create", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "barber.created",
		Entity:   "barber",
		EntityID: b.ID,
		Metadata: map[string]any{"name": b.Name},
		Views:    staleViews,
	})

	return b, nil
}

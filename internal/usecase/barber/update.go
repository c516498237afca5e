package barber

import (
	"context"
	"errors"
	"io"
	"maps"
	"slices"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

// UpdateInput: só os campos não nil são gravados. Texto vazio num campo
// opcional apaga o valor.
type UpdateInput struct {
	Name                *string
	WhatsApp            *string
	Instagram           *string
	OpeningTime         *string
	ClosingTime         *string
	CustomHours         *bool
	ServicePauseMinutes *int
	Photo               io.Reader
}

func (uc *Barbers) Update(ctx context.Context, actor *auth.User, id uint, in UpdateInput) (*models.Barber, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	fields := domain.Fields{}

	if in.Name != nil {
		name, err := usecase.RequiredText(*in.Name, "name_required", "Nome do barbeiro é obrigatório")
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if in.WhatsApp != nil {
		fields["whatsapp"] = usecase.NullableValue(*in.WhatsApp)
	}
	if in.Instagram != nil {
		fields["instagram"] = usecase.NullableValue(*in.Instagram)
	}
	if in.OpeningTime != nil {
		v, err := optionalTime(in.OpeningTime, "opening_time", "Horário de abertura")
		if err != nil {
			return nil, err
		}
		fields["opening_time"] = value(v)
	}
	if in.ClosingTime != nil {
		v, err := optionalTime(in.ClosingTime, "closing_time", "Horário de fechamento")
		if err != nil {
			return nil, err
		}
		fields["closing_time"] = value(v)
	}
	if in.CustomHours != nil {
		fields["custom_hours"] = *in.CustomHours
	}
	if in.ServicePauseMinutes != nil {
		if err := validatePause(in.ServicePauseMinutes); err != nil {
			return nil, err
		}
		fields["service_pause_minutes"] = *in.ServicePauseMinutes
	}

	if in.Photo != nil {
		// Confere antes de subir a foto para não deixar arquivo órfão.
		if _, err := uc.Get(ctx, actor, id); err != nil {
			return nil, err
		}
		img, err := uc.uploader.Upload(ctx, storage.FolderBarbers, in.Photo)
		if err != nil {
			return nil, usecase.UploadFailed("barber.update", err)
		}
		fields["image_url"] = img.URL
		fields["image_id"] = img.ID
	}

	b, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBarberNotFound
		}
		return nil, usecase.Internal("barber.update", err)
	}

	uc.DoneIfChanged(ctx, actor, fields, usecase.Mutation{
		Action:   "barber.updated",
		Entity:   "barber",
		EntityID: b.ID,
		Metadata: map[string]any{"fields": fieldNames(fields)},
		Views:    staleViews,
	})

	return b, nil
}

func fieldNames(f domain.Fields) []string {
	return slices.Sorted(maps.Keys(f))
}

package barber

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

func (uc *Barbers) Delete(ctx context.Context, actor *auth.User, id uint) error {
	if err := uc.Authorize(actor); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errBarberNotFound
		}
		return usecase.Internal("barber.delete", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "barber.deleted",
		Entity:   "barber",
		EntityID: id,
		Views:    staleViews,
	})
	return nil
}

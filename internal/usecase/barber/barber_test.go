package barber_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/testutil"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/barber"
)

type fixture struct {
	uc       *barber.Barbers
	h        *testutil.Harness
	db       *gorm.DB
	shop     *models.Barbershop
	uploader *testutil.Uploader
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, shop := testutil.NewProvisionedDB(t)
	h := testutil.NewHarness(testutil.AdminEmail)
	up := &testutil.Uploader{Image: storage.Image{URL: "https://cdn/barbeiros/a.webp", ID: "barbeiros/a.webp"}}
	return &fixture{
		uc:       barber.New(h.Deps, repository.NewBarberGormRepository(db), up),
		h:        h,
		db:       db,
		shop:     shop,
		uploader: up,
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreate_WithPhoto(t *testing.T) {
	f := setup(t)

	b, err := f.uc.Create(context.Background(), testutil.Admin(), barber.CreateInput{
		Name:         "  Zé Navalha ",
		BarbershopID: f.shop.ID,
		WhatsApp:     ptr("11999990000"),
		Instagram:    ptr("  "),
		OpeningTime:  ptr("09:00:00"),
		Photo:        strings.NewReader("img"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Zé Navalha", b.Name)
	assert.Nil(t, b.Instagram)
	assert.Equal(t, "09:00", *b.OpeningTime)
	assert.Equal(t, "https://cdn/barbeiros/a.webp", *b.ImageURL)
	assert.Equal(t, []storage.Folder{storage.FolderBarbers}, f.uploader.Folders)

	assert.EqualValues(t, 1, f.h.Version(invalidate.ViewBarbers))
	assert.EqualValues(t, 1, f.h.Version(invalidate.ViewAppointments))
	assert.Equal(t, []string{"barber.created"}, f.h.Audit.Actions())
}

func TestCreate_UploadFailureCreatesNothing(t *testing.T) {
	f := setup(t)
	f.uploader.Err = errors.New("bucket offline")

	_, err := f.uc.Create(context.Background(), testutil.Admin(), barber.CreateInput{
		Name:         "Zé",
		BarbershopID: f.shop.ID,
		Photo:        strings.NewReader("img"),
	})
	assert.True(t, httperr.Is(err, httperr.KindUploadFailed))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Barber{}))
	assert.Zero(t, f.h.Version(invalidate.ViewBarbers))
}

func TestCreate_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, testutil.Admin(), barber.CreateInput{Name: " ", BarbershopID: f.shop.ID})
	assert.Equal(t, "name_required", httperr.From(err).Code)

	_, err = f.uc.Create(ctx, testutil.Admin(), barber.CreateInput{Name: "Zé"})
	assert.Equal(t, "barbershop_required", httperr.From(err).Code)

	_, err = f.uc.Create(ctx, testutil.Admin(), barber.CreateInput{Name: "Zé", BarbershopID: 777})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Barber{}))
}

func TestMutations_Guarded(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	existing := models.Barber{BarbershopID: f.shop.ID, Name: "Original"}
	require.NoError(t, f.db.Create(&existing).Error)

	mutations := map[string]func(actor *auth.User) error{
		"create": func(a *auth.User) error {
			_, err := f.uc.Create(ctx, a, barber.CreateInput{Name: "Novo", BarbershopID: f.shop.ID, Photo: strings.NewReader("x")})
			return err
		},
		"update": func(a *auth.User) error {
			_, err := f.uc.Update(ctx, a, existing.ID, barber.UpdateInput{Name: ptr("Hack"), Photo: strings.NewReader("x")})
			return err
		},
		"delete": func(a *auth.User) error {
			return f.uc.Delete(ctx, a, existing.ID)
		},
	}

	for name, call := range mutations {
		t.Run(name+" anonymous", func(t *testing.T) {
			assert.True(t, httperr.Is(call(nil), httperr.KindUnauthenticated))
		})
		t.Run(name+" stranger", func(t *testing.T) {
			assert.True(t, httperr.Is(call(testutil.Stranger()), httperr.KindForbidden))
		})
	}

	var stored models.Barber
	require.NoError(t, f.db.First(&stored, existing.ID).Error)
	assert.Equal(t, "Original", stored.Name)
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Barber{}))
	assert.Zero(t, f.uploader.Calls)
	assert.Empty(t, f.h.Audit.Actions())
	assert.Zero(t, f.h.Version(invalidate.ViewBarbers))
}

func TestUpdate_WithoutFieldsSignalsNothing(t *testing.T) {
	f := setup(t)
	existing := models.Barber{BarbershopID: f.shop.ID, Name: "Original"}
	require.NoError(t, f.db.Create(&existing).Error)

	b, err := f.uc.Update(context.Background(), testutil.Admin(), existing.ID, barber.UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, "Original", b.Name)

	assert.Empty(t, f.h.Audit.Actions())
	assert.Zero(t, f.h.Version(invalidate.ViewBarbers))
}

func TestUpdate_OnlyNamePreservesEverythingElse(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, testutil.Admin(), barber.CreateInput{
		Name:                "Zé",
		BarbershopID:        f.shop.ID,
		WhatsApp:            ptr("11999990000"),
		Instagram:           ptr("@ze"),
		OpeningTime:         ptr("08:00"),
		ClosingTime:         ptr("17:00"),
		CustomHours:         true,
		ServicePauseMinutes: ptr(15),
		Photo:               strings.NewReader("img"),
	})
	require.NoError(t, err)

	updated, err := f.uc.Update(ctx, testutil.Admin(), created.ID, barber.UpdateInput{Name: ptr("New Name")})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "11999990000", *updated.WhatsApp)
	assert.Equal(t, "@ze", *updated.Instagram)
	assert.Equal(t, "08:00", *updated.OpeningTime)
	assert.Equal(t, "17:00", *updated.ClosingTime)
	assert.True(t, updated.CustomHours)
	assert.Equal(t, 15, *updated.ServicePauseMinutes)
	assert.Equal(t, *created.ImageURL, *updated.ImageURL)
	assert.Equal(t, *created.ImageID, *updated.ImageID)
}

func TestUpdate_ClearsOptionalAndRejectsEmptyName(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b := models.Barber{BarbershopID: f.shop.ID, Name: "Zé", Instagram: ptr("@ze")}
	require.NoError(t, f.db.Create(&b).Error)

	updated, err := f.uc.Update(ctx, testutil.Admin(), b.ID, barber.UpdateInput{Instagram: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Instagram)

	_, err = f.uc.Update(ctx, testutil.Admin(), b.ID, barber.UpdateInput{Name: ptr("")})
	assert.Equal(t, "name_required", httperr.From(err).Code)
}

func TestUpdate_PhotoFailureKeepsOldPhoto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b := models.Barber{BarbershopID: f.shop.ID, Name: "Zé", ImageURL: ptr("https://cdn/old.webp"), ImageID: ptr("old")}
	require.NoError(t, f.db.Create(&b).Error)

	f.uploader.Err = errors.New("timeout")
	_, err := f.uc.Update(ctx, testutil.Admin(), b.ID, barber.UpdateInput{
		Name:  ptr("Outro"),
		Photo: strings.NewReader("img"),
	})
	assert.True(t, httperr.Is(err, httperr.KindUploadFailed))

	var stored models.Barber
	require.NoError(t, f.db.First(&stored, b.ID).Error)
	assert.Equal(t, "Zé", stored.Name)
	assert.Equal(t, "https://cdn/old.webp", *stored.ImageURL)
}

func TestUpdate_UnknownBarberSkipsUpload(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Update(context.Background(), testutil.Admin(), 404, barber.UpdateInput{Photo: strings.NewReader("img")})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
	assert.Zero(t, f.uploader.Calls)
}

func TestReadAndDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	b := models.Barber{BarbershopID: f.shop.ID, Name: "Zé"}
	require.NoError(t, f.db.Create(&b).Error)

	list, err := f.uc.ListByShop(ctx, testutil.Admin(), f.shop.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.uc.ListByShop(ctx, testutil.Admin(), 0)
	assert.True(t, httperr.Is(err, httperr.KindValidation))

	_, err = f.uc.Get(ctx, testutil.Admin(), 0)
	assert.True(t, httperr.Is(err, httperr.KindValidation))

	_, err = f.uc.List(ctx, nil)
	assert.True(t, httperr.Is(err, httperr.KindUnauthenticated))

	require.NoError(t, f.uc.Delete(ctx, testutil.Admin(), b.ID))
	_, err = f.uc.Get(ctx, testutil.Admin(), b.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	err = f.uc.Delete(ctx, testutil.Admin(), b.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}

func TestMissingAdminConfiguration(t *testing.T) {
	db, shop := testutil.NewProvisionedDB(t)
	h := testutil.NewHarness("")
	uc := barber.New(h.Deps, repository.NewBarberGormRepository(db), &testutil.Uploader{})

	_, err := uc.Create(context.Background(), testutil.Admin(), barber.CreateInput{Name: "Zé", BarbershopID: shop.ID})
	assert.True(t, httperr.Is(err, httperr.KindConfigurationMissing))
	assert.EqualValues(t, 0, testutil.Count(t, db, &models.Barber{}))
}

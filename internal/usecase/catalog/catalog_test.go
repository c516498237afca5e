package catalog_test

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
	"github.com/BruksfildServices01/barber-admin/internal/money"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/testutil"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/catalog"
)

type fixture struct {
	uc       *catalog.Catalog
	h        *testutil.Harness
	db       *gorm.DB
	shop     *models.Barbershop
	uploader *testutil.Uploader
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, shop := testutil.NewProvisionedDB(t)
	h := testutil.NewHarness(testutil.AdminEmail)
	up := &testutil.Uploader{Image: storage.Image{URL: "https://cdn/produtos/p.webp", ID: "produtos/p.webp"}}
	uc := catalog.New(
		h.Deps,
		repository.NewBarbershopGormRepository(db),
		repository.NewServiceGormRepository(db),
		repository.NewProductGormRepository(db),
		up,
	)
	return &fixture{uc: uc, h: h, db: db, shop: shop, uploader: up}
}

func ptr[T any](v T) *T { return &v }

func TestCreateService_NormalizesPrice(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: "10"})
	require.NoError(t, err)
	b, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Barba", Price: "10.5"})
	require.NoError(t, err)

	var stored []models.Service
	require.NoError(t, f.db.Order("id").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "10.00", stored[0].Price.String())
	assert.Equal(t, "10.50", stored[1].Price.String())
	assert.Equal(t, f.shop.ID, a.BarbershopID)
	assert.Equal(t, f.shop.ID, b.BarbershopID)

	assert.EqualValues(t, 2, f.h.Version(invalidate.ViewServices))
}

func TestCreateService_RejectsBadInput(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "", Price: "10"})
	assert.Equal(t, "name_required", httperr.From(err).Code)

	_, err = f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: "dez"})
	assert.Equal(t, "invalid_price", httperr.From(err).Code)

	_, err = f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: "0"})
	assert.Equal(t, "invalid_price", httperr.From(err).Code)

	_, err = f.uc.CreateService(ctx, nil, catalog.CreateServiceInput{Name: "Corte", Price: "10"})
	assert.True(t, httperr.Is(err, httperr.KindUnauthenticated))

	_, err = f.uc.CreateService(ctx, testutil.Stranger(), catalog.CreateServiceInput{Name: "Corte", Price: "10"})
	assert.True(t, httperr.Is(err, httperr.KindForbidden))

	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Service{}))
}

func TestUpdateAndDeleteService(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	s, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: "30"})
	require.NoError(t, err)

	updated, err := f.uc.UpdateService(ctx, testutil.Admin(), s.ID, catalog.UpdateServiceInput{Price: ptr(money.Text("35.5"))})
	require.NoError(t, err)
	assert.Equal(t, "Corte", updated.Name)
	assert.Equal(t, "35.50", updated.Price.String())

	_, err = f.uc.UpdateService(ctx, testutil.Admin(), 999, catalog.UpdateServiceInput{Name: ptr("X")})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	require.NoError(t, f.uc.DeleteService(ctx, testutil.Admin(), s.ID))
	_, err = f.uc.GetService(ctx, testutil.Admin(), s.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	list, err := f.uc.ListServicesByShop(ctx, testutil.Admin(), f.shop.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProduct_RoundTrip(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.uc.CreateProduct(ctx, testutil.Admin(), catalog.CreateProductInput{
		Name:         "Pomada",
		Price:        "25.00",
		BarbershopID: f.shop.ID,
	})
	require.NoError(t, err)

	got, err := f.uc.GetProduct(ctx, testutil.Admin(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pomada", got.Name)
	assert.Equal(t, "25.00", got.Price.String())
	assert.Nil(t, got.ImageURL)
	assert.Zero(t, f.uploader.Calls)

	all, err := f.uc.ListProducts(ctx, testutil.Admin())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProduct_PhotoFlow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.uc.CreateProduct(ctx, testutil.Admin(), catalog.CreateProductInput{
		Name:         "Óleo",
		Price:        "40",
		BarbershopID: f.shop.ID,
		Description:  ptr("  "),
		Photo:        strings.NewReader("img"),
	})
	require.NoError(t, err)
	assert.Nil(t, p.Description)
	assert.Equal(t, "produtos/p.webp", *p.ImageID)
	assert.Equal(t, []storage.Folder{storage.FolderProducts}, f.uploader.Folders)

	f.uploader.Err = errors.New("bucket offline")
	_, err = f.uc.UpdateProduct(ctx, testutil.Admin(), p.ID, catalog.UpdateProductInput{
		Price: ptr(money.Text("99")),
		Photo: strings.NewReader("img2"),
	})
	assert.True(t, httperr.Is(err, httperr.KindUploadFailed))

	var stored models.Product
	require.NoError(t, f.db.First(&stored, p.ID).Error)
	assert.Equal(t, "40.00", stored.Price.String())
	assert.Equal(t, "produtos/p.webp", *stored.ImageID)

	_, err = f.uc.CreateProduct(ctx, testutil.Admin(), catalog.CreateProductInput{
		Name: "Cera", Price: "10", BarbershopID: f.shop.ID, Photo: strings.NewReader("img"),
	})
	assert.True(t, httperr.Is(err, httperr.KindUploadFailed))
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Product{}))
}

func TestProduct_DeleteGuarded(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, err := f.uc.CreateProduct(ctx, testutil.Admin(), catalog.CreateProductInput{Name: "Pomada", Price: "25", BarbershopID: f.shop.ID})
	require.NoError(t, err)

	err = f.uc.DeleteProduct(ctx, testutil.Stranger(), p.ID)
	assert.True(t, httperr.Is(err, httperr.KindForbidden))
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Product{}))

	require.NoError(t, f.uc.DeleteProduct(ctx, testutil.Admin(), p.ID))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Product{}))
	assert.Equal(t, []string{"product.created", "product.deleted"}, f.h.Audit.Actions())
}

func TestMutations_Guarded(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	svc := models.Service{BarbershopID: f.shop.ID, Name: "Corte", Price: money.MustParse("40")}
	require.NoError(t, f.db.Create(&svc).Error)
	prod := models.Product{BarbershopID: f.shop.ID, Name: "Pomada", Price: money.MustParse("25")}
	require.NoError(t, f.db.Create(&prod).Error)

	mutations := map[string]func(actor *auth.User) error{
		"create service": func(a *auth.User) error {
			_, err := f.uc.CreateService(ctx, a, catalog.CreateServiceInput{Name: "Barba", Price: "30"})
			return err
		},
		"update service": func(a *auth.User) error {
			_, err := f.uc.UpdateService(ctx, a, svc.ID, catalog.UpdateServiceInput{Name: ptr("Hack"), Price: ptr(money.Text("1"))})
			return err
		},
		"delete service": func(a *auth.User) error {
			return f.uc.DeleteService(ctx, a, svc.ID)
		},
		"create product": func(a *auth.User) error {
			_, err := f.uc.CreateProduct(ctx, a, catalog.CreateProductInput{
				Name: "Cera", Price: "10", BarbershopID: f.shop.ID, Photo: strings.NewReader("img"),
			})
			return err
		},
		"update product": func(a *auth.User) error {
			_, err := f.uc.UpdateProduct(ctx, a, prod.ID, catalog.UpdateProductInput{Name: ptr("Hack"), Photo: strings.NewReader("img")})
			return err
		},
		"delete product": func(a *auth.User) error {
			return f.uc.DeleteProduct(ctx, a, prod.ID)
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

	var storedSvc models.Service
	require.NoError(t, f.db.First(&storedSvc, svc.ID).Error)
	assert.Equal(t, "Corte", storedSvc.Name)
	assert.Equal(t, "40.00", storedSvc.Price.String())

	var storedProd models.Product
	require.NoError(t, f.db.First(&storedProd, prod.ID).Error)
	assert.Equal(t, "Pomada", storedProd.Name)
	assert.Nil(t, storedProd.ImageURL)

	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Service{}))
	assert.EqualValues(t, 1, testutil.Count(t, f.db, &models.Product{}))
	assert.Zero(t, f.uploader.Calls)
	assert.Empty(t, f.h.Audit.Actions())
	assert.Zero(t, f.h.Version(invalidate.ViewServices))
	assert.Zero(t, f.h.Version(invalidate.ViewProducts))
}

func TestPrices_MustFitTheColumn(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, price := range []money.Text{"100000000", "1e20", "99999999.995"} {
		_, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: price})
		assert.Equal(t, "invalid_price", httperr.From(err).Code, price)

		_, err = f.uc.CreateProduct(ctx, testutil.Admin(), catalog.CreateProductInput{Name: "Pomada", Price: price, BarbershopID: f.shop.ID})
		assert.Equal(t, "invalid_price", httperr.From(err).Code, price)
	}
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Service{}))
	assert.EqualValues(t, 0, testutil.Count(t, f.db, &models.Product{}))

	s, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: "99999999.99"})
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", s.Price.String())

	_, err = f.uc.UpdateService(ctx, testutil.Admin(), s.ID, catalog.UpdateServiceInput{Price: ptr(money.Text("123456789"))})
	assert.Equal(t, "invalid_price", httperr.From(err).Code)
}

func TestUpdate_WithoutFieldsSignalsNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	s, err := f.uc.CreateService(ctx, testutil.Admin(), catalog.CreateServiceInput{Name: "Corte", Price: "40"})
	require.NoError(t, err)
	p, err := f.uc.CreateProduct(ctx, testutil.Admin(), catalog.CreateProductInput{Name: "Pomada", Price: "25", BarbershopID: f.shop.ID})
	require.NoError(t, err)

	got, err := f.uc.UpdateService(ctx, testutil.Admin(), s.ID, catalog.UpdateServiceInput{})
	require.NoError(t, err)
	assert.Equal(t, "Corte", got.Name)
	_, err = f.uc.UpdateProduct(ctx, testutil.Admin(), p.ID, catalog.UpdateProductInput{})
	require.NoError(t, err)

	assert.Equal(t, []string{"service.created", "product.created"}, f.h.Audit.Actions())
	assert.EqualValues(t, 1, f.h.Version(invalidate.ViewServices))
	assert.EqualValues(t, 1, f.h.Version(invalidate.ViewProducts))
}

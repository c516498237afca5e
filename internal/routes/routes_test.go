package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/config"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/routes"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Kind    string          `json:"error_kind"`
	Code    string          `json:"error_code"`
	Data    json.RawMessage `json:"data"`
}

type server struct {
	t        *testing.T
	r        *gin.Engine
	db       *gorm.DB
	shop     *models.Barbershop
	stale    *invalidate.Memory
	uploader *testutil.Uploader
	token    string
}

func newServer(t *testing.T) *server {
	t.Helper()
	db, shop := testutil.NewProvisionedDB(t)

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		Env:        "development",
		AdminEmail: testutil.AdminEmail,
		SessionTTL: time.Hour,
	}

	s := &server{
		t:        t,
		r:        gin.New(),
		db:       db,
		shop:     shop,
		stale:    invalidate.NewMemory(),
		uploader: &testutil.Uploader{Image: storage.Image{URL: "https://cdn/x.webp", ID: "barbeiros/x.webp"}},
	}

	routes.RegisterRoutes(s.r, routes.Infra{
		DB:       db,
		Config:   cfg,
		Stale:    s.stale,
		Uploader: s.uploader,
		Audit:    &testutil.AuditRecorder{},
	})
	return s
}

func (s *server) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.send(req)
}

func (s *server) send(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func (s *server) login() {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testutil.AdminEmail,
		"password": testutil.AdminPassword,
	})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	s.token = data.Token
}

func TestLogin(t *testing.T) {
	s := newServer(t)

	w, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": testutil.AdminEmail, "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid_credentials", env.Code)

	s.login()
	_, env = s.do(http.MethodGet, "/api/auth/session", nil)
	assert.Contains(t, string(env.Data), testutil.AdminEmail)
}

func TestGuardedRoutes_WithoutSession(t *testing.T) {
	s := newServer(t)

	w, env := s.do(http.MethodPost, "/api/services", map[string]any{"name": "Corte", "price": 10})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", env.Kind)
	assert.Equal(t, "Usuário não autenticado", env.Message)
	assert.EqualValues(t, 0, testutil.Count(t, s.db, &models.Service{}))
}

func TestServices_PriceAsNumberOrString(t *testing.T) {
	s := newServer(t)
	s.login()

	w, _ := s.do(http.MethodPost, "/api/services", map[string]any{"name": "Corte", "price": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = s.do(http.MethodPost, "/api/services", map[string]any{"name": "Barba", "price": "10.5"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	_, env := s.do(http.MethodGet, "/api/services", nil)
	var list struct {
		Items []struct {
			Name  string `json:"name"`
			Price string `json:"price"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "10.00", list.Items[0].Price)
	assert.Equal(t, "10.50", list.Items[1].Price)
}

func TestBarbers_MultipartCreateAndPartialUpdate(t *testing.T) {
	s := newServer(t)
	s.login()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Zé"))
	require.NoError(t, mw.WriteField("barbershop_id", itoa(s.shop.ID)))
	require.NoError(t, mw.WriteField("instagram", "@ze"))
	fw, err := mw.CreateFormFile("photo", "ze.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/barbers", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w, env := s.send(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, s.uploader.Calls)

	var created models.Barber
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "https://cdn/x.webp", *created.ImageURL)

	w, env = s.do(http.MethodPatch, "/api/barbers/"+itoa(created.ID), map[string]any{"name": "New Name"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Barber
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "@ze", *updated.Instagram)
	assert.Equal(t, "https://cdn/x.webp", *updated.ImageURL)

	assert.EqualValues(t, 2, mustVersion(t, s.stale, invalidate.ViewBarbers))
}

func TestPlans_EntitlementConflict(t *testing.T) {
	s := newServer(t)
	s.login()

	svc := models.Service{BarbershopID: s.shop.ID, Name: "Corte", Price: mustAmount("40")}
	require.NoError(t, s.db.Create(&svc).Error)

	w, env := s.do(http.MethodPost, "/api/plans", map[string]any{"name": "Mensal", "price": "99.9", "category": "basic"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))

	body := map[string]any{"service_id": svc.ID, "allowed_count": 2}
	w, _ = s.do(http.MethodPost, "/api/plans/"+itoa(p.ID)+"/services", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = s.do(http.MethodPost, "/api/plans/"+itoa(p.ID)+"/services", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Este serviço já está incluído neste plano mensal", env.Message)

	_, env = s.do(http.MethodGet, "/api/plans/"+itoa(p.ID), nil)
	assert.True(t, strings.Contains(string(env.Data), `"name":"Corte"`))
}

func TestOperatingHours_EmptyOpeningRejected(t *testing.T) {
	s := newServer(t)
	s.login()

	var row models.OperatingHours
	require.NoError(t, s.db.First(&row).Error)

	w, env := s.do(http.MethodPatch, "/api/barbershop/operating-hours/"+itoa(row.ID), map[string]any{"opening_time": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", env.Kind)

	var stored models.OperatingHours
	require.NoError(t, s.db.First(&stored, row.ID).Error)
	assert.Equal(t, row.OpeningTime, stored.OpeningTime)
}

func TestViews_RevalidateAndVersion(t *testing.T) {
	s := newServer(t)

	w, _ := s.do(http.MethodPost, "/api/revalidate", map[string]any{"views": []string{"/produtos"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.login()
	w, _ = s.do(http.MethodPost, "/api/revalidate", map[string]any{"views": []string{"/produtos"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, env := s.do(http.MethodGet, "/api/views/produtos/version", nil)
	assert.JSONEq(t, `{"view":"/produtos","version":1}`, string(env.Data))

	w, _ = s.do(http.MethodPost, "/api/revalidate", map[string]any{"views": []string{"/admin"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidID(t *testing.T) {
	s := newServer(t)
	s.login()

	w, env := s.do(http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", env.Code)

	w, _ = s.do(http.MethodGet, "/api/products/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/api/products/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuditLogs_FiltersAndValidation(t *testing.T) {
	s := newServer(t)
	s.login()

	w, env := s.do(http.MethodGet, "/api/audit-logs?from=10-05-2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", env.Code)

	w, env = s.do(http.MethodGet, "/api/audit-logs?from=2024-05-10&to=2024-05-11&page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"limit":10`)
}

func TestServices_PriceBeyondColumnIsValidation(t *testing.T) {
	s := newServer(t)
	s.login()

	w, env := s.do(http.MethodPost, "/api/services", map[string]any{"name": "Corte", "price": 1e20})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_price", env.Code)
	assert.EqualValues(t, 0, testutil.Count(t, s.db, &models.Service{}))
}

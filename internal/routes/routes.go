package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/audit"
	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/config"
	"github.com/BruksfildServices01/barber-admin/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/middleware"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/timezone"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
	ucBarber "github.com/BruksfildServices01/barber-admin/internal/usecase/barber"
	ucBarbershop "github.com/BruksfildServices01/barber-admin/internal/usecase/barbershop"
	ucCatalog "github.com/BruksfildServices01/barber-admin/internal/usecase/catalog"
	ucPlan "github.com/BruksfildServices01/barber-admin/internal/usecase/plan"
)

// Infra são as dependências criadas pelo main (e trocadas nos testes).
type Infra struct {
	DB       *gorm.DB
	Config   *config.Config
	Stale    invalidate.Signaler
	Uploader storage.Uploader
	Audit    audit.Recorder
}

func RegisterRoutes(r *gin.Engine, infra Infra) {
	cfg := infra.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	sessions := auth.NewSessions(cfg.JWTSecret, cfg.SessionTTL)

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.SessionMiddleware(sessions))

	// ======================================================
	// INFRA
	// ======================================================
	shopRepo := infraRepo.NewBarbershopGormRepository(infra.DB)
	barberRepo := infraRepo.NewBarberGormRepository(infra.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(infra.DB)
	productRepo := infraRepo.NewProductGormRepository(infra.DB)
	planRepo := infraRepo.NewPlanGormRepository(infra.DB)
	userRepo := infraRepo.NewUserGormRepository(infra.DB)

	guard := auth.NewGuard(cfg.AdminEmail)

	deps := usecase.Deps{
		Guard: guard,
		Stale: infra.Stale,
		Audit: infra.Audit,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	profileUC := ucBarbershop.New(deps, shopRepo)
	barbersUC := ucBarber.New(deps, barberRepo, infra.Uploader)
	catalogUC := ucCatalog.New(deps, shopRepo, serviceRepo, productRepo, infra.Uploader)
	plansUC := ucPlan.New(deps, shopRepo, planRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(auth.NewAuthenticator(userRepo, sessions), !cfg.IsDevelopment())
	barbershopHandler := handlers.NewBarbershopHandler(profileUC)
	barberHandler := handlers.NewBarberHandler(barbersUC)
	serviceHandler := handlers.NewServiceHandler(catalogUC)
	productHandler := handlers.NewProductHandler(catalogUC)
	planHandler := handlers.NewPlanHandler(plansUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(infra.DB), guard, timezone.Location(cfg.Timezone))
	viewsHandler := handlers.NewViewsHandler(infra.Stale, guard)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ======================================================
	// AUTH
	// ======================================================
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/session", authHandler.Session)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// ======================================================
	// BARBEARIA
	// ======================================================
	api.GET("/barbershop", barbershopHandler.Get)
	api.PATCH("/barbershop", barbershopHandler.Update)
	api.GET("/barbershop/operating-hours", barbershopHandler.ListOperatingHours)
	api.PATCH("/barbershop/operating-hours/:id", barbershopHandler.UpdateOperatingHours)

	api.GET("/barbershops/:id/barbers", barberHandler.ListByShop)
	api.GET("/barbershops/:id/services", serviceHandler.ListByShop)
	api.GET("/barbershops/:id/products", productHandler.ListByShop)
	api.GET("/barbershops/:id/plans", planHandler.ListByShop)

	// ======================================================
	// BARBEIROS
	// ======================================================
	barbers := api.Group("/barbers")
	{
		barbers.GET("", barberHandler.List)
		barbers.POST("", barberHandler.Create)
		barbers.GET("/:id", barberHandler.Get)
		barbers.PATCH("/:id", barberHandler.Update)
		barbers.DELETE("/:id", barberHandler.Delete)
	}

	// ======================================================
	// SERVIÇOS
	// ======================================================
	services := api.Group("/services")
	{
		services.GET("", serviceHandler.List)
		services.POST("", serviceHandler.Create)
		services.GET("/:id", serviceHandler.Get)
		services.PATCH("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}

	// ======================================================
	// PRODUTOS
	// ======================================================
	products := api.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:id", productHandler.Get)
		products.PATCH("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	// ======================================================
	// PLANOS MENSAIS
	// ======================================================
	plans := api.Group("/plans")
	{
		plans.GET("", planHandler.List)
		plans.POST("", planHandler.Create)
		plans.GET("/:id", planHandler.Get)
		plans.PATCH("/:id", planHandler.Update)
		plans.DELETE("/:id", planHandler.Delete)
		plans.POST("/:id/services", planHandler.CreateEntitlement)
	}

	planServices := api.Group("/plan-services")
	{
		planServices.POST("", planHandler.CreateEntitlement)
		planServices.PATCH("/:id", planHandler.UpdateEntitlement)
		planServices.DELETE("/:id", planHandler.DeleteEntitlement)
	}

	// ======================================================
	// AUDITORIA / TELAS
	// ======================================================
	api.GET("/audit-logs", auditLogsHandler.List)
	api.POST("/revalidate", viewsHandler.Revalidate)
	api.GET("/views/:view/version", viewsHandler.Version)
}

package router

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Juan-204/evc-backend/internal/config"
	"github.com/Juan-204/evc-backend/internal/handler"
	"github.com/Juan-204/evc-backend/internal/infra"
	"github.com/Juan-204/evc-backend/internal/middleware"
	"github.com/Juan-204/evc-backend/internal/repository"
	"github.com/Juan-204/evc-backend/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	pdfGen := infra.NewGuiaPDFGenerator(cfg.PDFStoragePath, cfg.PlantaEmail)
	var mailer service.Mailer
	if cfg.NotifyEmail != "" {
		mailer = infra.NewMailer(cfg)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	guiaRepo := repository.NewGuiaRepository(db)
	ingresoRepo := repository.NewIngresoRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	estadisticasRepo := repository.NewEstadisticasRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	guiaSvc := service.NewGuiaService(guiaRepo, pdfGen, mailer)
	ingresoSvc := service.NewIngresoService(ingresoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	guiasH := handler.NewGuiasHandler(guiaSvc)
	ingresosH := handler.NewIngresosHandler(ingresoSvc)
	buscadorH := handler.NewBuscadorHandler(animalRepo)
	catalogosH := handler.NewCatalogosHandler(catalogoRepo)
	estadisticasH := handler.NewEstadisticasHandler(estadisticasRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operarios := middleware.RequireRole("operario", "administrador")
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/ingresos", operarios, ingresosH.Registrar)
		v1.GET("/ingresos", operarios, ingresosH.PorFecha)

		v1.POST("/guias", operarios, guiasH.GuardarGuia)
		v1.GET("/guias", operarios, guiasH.Listar)
		v1.GET("/guias/:id/animales", operarios, guiasH.Animales)
		v1.POST("/guias/:id/pdf", operarios, guiasH.GenerarPDF)
		v1.GET("/guias/:id/pdf", operarios, guiasH.DescargarPDF)

		v1.GET("/animales/buscar", operarios, buscadorH.Buscar)
		v1.GET("/animales/disponibles", operarios, buscadorH.Disponibles)

		catalogos := v1.Group("", operarios)
		{
			catalogos.GET("/plantas", catalogosH.Plantas)
			catalogos.GET("/vehiculos", catalogosH.Vehiculos)
			catalogos.GET("/conductores", catalogosH.Conductores)
			catalogos.GET("/establecimientos", catalogosH.Establecimientos)
		}

		est := v1.Group("/estadisticas", operarios)
		{
			est.GET("/animales-por-especie", estadisticasH.AnimalesPorEspecie)
			est.GET("/decomisos-por-especie", estadisticasH.DecomisosPorEspecie)
			est.GET("/animales-por-establecimiento", estadisticasH.AnimalesPorEstablecimiento)
			est.GET("/distribucion-sexo", estadisticasH.DistribucionSexo)
			est.GET("/peso-promedio", estadisticasH.PesoPromedio)
			est.GET("/evolucion-ingresos", estadisticasH.EvolucionIngresos)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

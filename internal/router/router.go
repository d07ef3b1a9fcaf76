package router

import (
	"time"

	"github.com/Cesar-andres10/bodega-proyecto/internal/config"
	"github.com/Cesar-andres10/bodega-proyecto/internal/handler"
	"github.com/Cesar-andres10/bodega-proyecto/internal/importer"
	"github.com/Cesar-andres10/bodega-proyecto/internal/middleware"
	"github.com/Cesar-andres10/bodega-proyecto/internal/repository"
	"github.com/Cesar-andres10/bodega-proyecto/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cargaSvc := service.NewCargaService(productoRepo, rdb)
	busquedaSvc := service.NewBusquedaService(productoRepo, rdb)
	historialSvc := service.NewHistorialService(movimientoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cargaH := handler.NewCargaHandler(cfg, importer.NewNormalizador(), cargaSvc)
	busquedaH := handler.NewBusquedaHandler(busquedaSvc)
	historialH := handler.NewHistorialHandler(historialSvc)
	snapshotH := handler.NewSnapshotHandler(productoRepo)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Index())
	r.GET("/health", handler.Health(db, rdb))

	r.POST("/cargar_excel", middleware.CargaRateLimiter(), cargaH.CargarExcel)
	r.POST("/buscar", busquedaH.Buscar)
	r.GET("/historial", historialH.DelDia)
	r.GET("/snapshot", snapshotH.Listar)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

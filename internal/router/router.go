package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/checkout"
	"github.com/yuda85/family-ops-sub001/internal/config"
	"github.com/yuda85/family-ops-sub001/internal/handler"
	"github.com/yuda85/family-ops-sub001/internal/middleware"
	"github.com/yuda85/family-ops-sub001/internal/realtime"
	"github.com/yuda85/family-ops-sub001/internal/repository"
	"github.com/yuda85/family-ops-sub001/internal/service"
	"github.com/yuda85/family-ops-sub001/internal/worker"
)

// Deps carries the long-lived collaborators main constructs before wiring
// the HTTP surface.
type Deps struct {
	Cfg        *config.Config
	DB         *gorm.DB
	RDB        *redis.Client
	Hub        *realtime.Hub
	Bridge     *realtime.Bridge
	Dispatcher *worker.Dispatcher
}

// New wires all dependencies and returns a configured Gin engine plus the
// archive worker for the pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(d Deps) (*gin.Engine, *worker.ArchiveWorker) {
	if d.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	catalogRepo := repository.NewCatalogRepository(d.DB)
	listRepo := repository.NewListRepository(d.DB)
	tripRepo := repository.NewTripRepository(d.DB)
	patternRepo := repository.NewPatternRepository(d.DB)
	favoriteRepo := repository.NewFavoriteRepository(d.DB)

	// ── Services ─────────────────────────────────────────────────────────────
	undo := checkout.NewManager()

	catalogSvc := service.NewCatalogService(catalogRepo, d.RDB)
	historySvc := service.NewHistoryService(tripRepo, patternRepo)
	listSvc := service.NewListService(listRepo, catalogRepo, tripRepo, undo, d.Bridge, d.Dispatcher, d.Cfg.DefaultListName)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, catalogRepo)

	archiveWorker := worker.NewArchiveWorker(tripRepo, historySvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogH := handler.NewCatalogHandler(catalogSvc)
	listH := handler.NewListHandler(listSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	favoritesH := handler.NewFavoritesHandler(favoriteSvc)
	syncH := handler.NewSyncHandler(d.Hub)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(d.DB, d.RDB))

	// Protected routes
	jwtMW := middleware.JWTAuth(d.Cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: viewer, editor, admin — every family member can read;
		// mutations are declared per-endpoint.
		edit := middleware.RequireRole(service.RoleEditor, service.RoleAdmin)

		cat := v1.Group("/catalog")
		{
			cat.GET("/search", catalogH.Search)
			cat.GET("/categorize", catalogH.Categorize)
			cat.POST("/seed", edit, catalogH.Seed)
			cat.POST("/items", edit, catalogH.AddItem)
			cat.PATCH("/items/:id/price", edit, catalogH.UpdatePrice)
			cat.GET("/items/:id/price-history", catalogH.PriceHistory)
		}

		list := v1.Group("/list")
		{
			list.GET("", listH.Get)
			list.POST("/items", edit, listH.AddItem)
			list.PATCH("/items/:id", edit, listH.UpdateItem)
			list.POST("/items/:id/toggle", edit, listH.ToggleItem)
			list.POST("/items/:id/quick-check", edit, listH.QuickCheck)
			list.DELETE("/items/:id", edit, listH.RemoveItem)
			list.POST("/undo", edit, listH.Undo)
			list.DELETE("/checked", edit, listH.ClearChecked)
			list.POST("/shopping/enter", edit, listH.EnterShopping)
			list.POST("/shopping/exit", edit, listH.ExitShopping)
			list.POST("/complete", edit, listH.Complete)
		}

		hist := v1.Group("/history")
		{
			hist.GET("/trips", historyH.ListTrips)
			hist.GET("/trips/:id", historyH.GetTrip)
			hist.GET("/monthly", historyH.MonthlySpend)
			hist.GET("/accuracy", historyH.Accuracy)
			hist.GET("/replenishments", historyH.Replenishments)
		}

		fav := v1.Group("/favorites")
		{
			fav.GET("", favoritesH.List)
			fav.POST("", favoritesH.Add)
			fav.DELETE("/:id", favoritesH.Remove)
			fav.POST("/:id/use", favoritesH.MarkUsed)
		}

		// Live sync — WebSocket upgrade
		v1.GET("/sync", syncH.Connect)
	}

	// Swagger UI — only enabled outside production
	if d.Cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, archiveWorker
}

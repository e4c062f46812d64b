package main

import (
	"os"
	"time"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/config"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/database"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/handlers"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/middleware"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/migrations"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/redis"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/repository"
	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Fatal("Invalid TIME_ZONE", zap.String("tz", cfg.TimeZone), zap.Error(err))
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := migrations.RunMigrations(db, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	// Initialize repositories
	usuarioRepo := repository.NewUsuarioRepository(db)
	logRepo := repository.NewLogAcaoRepository(db)
	ordemRepo := repository.NewOrdemProducaoRepository(db)
	pecaRepo := repository.NewPecaRepository(db)

	// Initialize services
	usuarioService := services.NewUsuarioService(usuarioRepo)
	authService := services.NewAuthService(usuarioService, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	logService := services.NewLogAcaoService(logRepo)
	clienteService := services.NewClienteService(db)
	pecaService := services.NewPecaService(db)
	producaoService := services.NewProducaoService(db)
	atividadeService := services.NewAtividadeService(db)
	indicadoresService := services.NewIndicadoresService(
		ordemRepo, pecaRepo, redisClient, time.Duration(cfg.CacheTTL)*time.Second, loc)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService, logService)
	clienteHandler := handlers.NewClienteHandler(clienteService)
	pecaHandler := handlers.NewPecaHandler(pecaService)
	producaoHandler := handlers.NewProducaoHandler(producaoService)
	atividadeHandler := handlers.NewAtividadeHandler(atividadeService)
	anexoHandler := handlers.NewAnexoHandler(atividadeService, cfg.UploadDir)
	indicadoresHandler := handlers.NewIndicadoresHandler(indicadoresService)

	// Setup routes
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.CORS(), middleware.Logger(logger))

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/usuarios", usuarioHandler.List)
		api.POST("/usuarios", usuarioHandler.Create)
		api.GET("/usuarios/:id", usuarioHandler.Get)
		api.PUT("/usuarios/:id", usuarioHandler.Update)
		api.DELETE("/usuarios/:id", usuarioHandler.Delete)

		// Audit log: append-only, no update or delete routes.
		api.GET("/logs", usuarioHandler.ListLogs)
		api.POST("/logs", usuarioHandler.CreateLog)
		api.GET("/logs/:id", usuarioHandler.GetLog)

		api.GET("/clientes", clienteHandler.List)
		api.POST("/clientes", clienteHandler.Create)
		api.GET("/clientes/:id", clienteHandler.Get)
		api.PUT("/clientes/:id", clienteHandler.Update)
		api.DELETE("/clientes/:id", clienteHandler.Delete)

		api.GET("/pecas", pecaHandler.List)
		api.POST("/pecas", pecaHandler.Create)
		api.GET("/pecas/:id", pecaHandler.Get)
		api.PUT("/pecas/:id", pecaHandler.Update)
		api.DELETE("/pecas/:id", pecaHandler.Delete)

		api.GET("/ops", producaoHandler.ListOrdens)
		api.POST("/ops", producaoHandler.CreateOrdem)
		api.GET("/ops/:id", producaoHandler.GetOrdem)
		api.PUT("/ops/:id", producaoHandler.UpdateOrdem)
		api.DELETE("/ops/:id", producaoHandler.DeleteOrdem)

		api.GET("/itens-op", producaoHandler.ListItens)
		api.POST("/itens-op", producaoHandler.CreateItem)
		api.GET("/itens-op/:id", producaoHandler.GetItem)
		api.PUT("/itens-op/:id", producaoHandler.UpdateItem)
		api.DELETE("/itens-op/:id", producaoHandler.DeleteItem)

		api.GET("/atividades", atividadeHandler.List)
		api.POST("/atividades", atividadeHandler.Create)
		api.GET("/atividades/:id", atividadeHandler.Get)
		api.PUT("/atividades/:id", atividadeHandler.Update)
		api.DELETE("/atividades/:id", atividadeHandler.Delete)

		api.GET("/comentarios", atividadeHandler.ListComentarios)
		api.POST("/comentarios", atividadeHandler.CreateComentario)
		api.GET("/comentarios/:id", atividadeHandler.GetComentario)
		api.DELETE("/comentarios/:id", atividadeHandler.DeleteComentario)

		api.GET("/anexos", anexoHandler.List)
		api.POST("/anexos", anexoHandler.Create)
		api.POST("/anexos/upload", anexoHandler.Upload)
		api.GET("/anexos/:id", anexoHandler.Get)
		api.DELETE("/anexos/:id", anexoHandler.Delete)

		api.GET("/indicadores/summary/", indicadoresHandler.GetSummary)
	}

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

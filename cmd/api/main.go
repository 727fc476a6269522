package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"codexgallery/internal/config"
	"codexgallery/internal/database"
	"codexgallery/internal/domain/auth"
	"codexgallery/internal/domain/events"
	"codexgallery/internal/domain/file"
	"codexgallery/internal/domain/snippet"
	"codexgallery/internal/domain/upload"
	"codexgallery/internal/middleware"
	jwtsvc "codexgallery/internal/pkg/jwt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&file.File{}, &snippet.Snippet{}, &auth.StaffUser{}); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)
	hub := events.NewHub()

	fileService := file.NewService(file.NewRepository(db))
	fileHandler := file.NewHandler(fileService, hub)

	snippetService := snippet.NewService(snippet.NewRepository(db))
	snippetHandler := snippet.NewHandler(snippetService, hub)

	storage, err := buildStorage(cfg)
	if err != nil {
		log.Fatal(err)
	}
	uploadService := upload.NewService(storage, fileService, cfg.MaxUploadBytes)
	uploadHandler := upload.NewHandler(uploadService, cfg.CookieName)

	authService := auth.NewService(auth.NewRepository(db), j, auth.NewLockout())
	authHandler := auth.NewHandler(authService, auth.CookieSettings{
		Name:   cfg.CookieName,
		Path:   cfg.CookiePath,
		Secure: cfg.CookieSecure,
		MaxAge: int(cfg.TokenTTL.Seconds()),
	})

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterRoutes(v1, authHandler)
		file.RegisterPublicRoutes(v1, fileHandler)
		snippet.RegisterPublicRoutes(v1, snippetHandler)

		// soft-gated: the handler degrades to anonymous without a cookie
		upload.RegisterRoutes(v1, uploadHandler)

		// staff gate (cookie presence)
		staff := v1.Group("/")
		staff.Use(middleware.StaffGate(cfg.CookieName))
		{
			file.RegisterStaffRoutes(staff, fileHandler)
			snippet.RegisterStaffRoutes(staff, snippetHandler)
			events.RegisterRoutes(staff, eventsHandler)
		}

		// verified staff surface (token actually validated)
		verified := v1.Group("/staff")
		verified.Use(middleware.VerifiedStaffGate(j, cfg.CookieName))
		{
			verified.GET("/files", fileHandler.List)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func buildStorage(cfg *config.Config) (upload.Storage, error) {
	if cfg.UploadBackend == "minio" {
		return upload.NewMinioStorage(upload.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			BaseURL:   cfg.MinioBaseURL,
		})
	}
	return upload.NewInlineStorage(), nil
}

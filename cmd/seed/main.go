package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"codexgallery/internal/database"
	"codexgallery/internal/domain/auth"
	"codexgallery/internal/domain/file"
	"codexgallery/internal/domain/snippet"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gallery.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&file.File{},
		&snippet.Snippet{},
		&auth.StaffUser{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()

	// ================== STAFF ==================
	username := os.Getenv("STAFF_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("STAFF_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	authRepo := auth.NewRepository(db)
	if _, err := authRepo.GetByUsername(ctx, username); err == nil {
		log.Printf("staff user %q already exists, skipping", username)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		if err := authRepo.Create(ctx, &auth.StaffUser{
			ID:           uuid.New().String(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         auth.DefaultRole,
		}); err != nil {
			log.Fatal("failed to create staff user:", err)
		}
		log.Printf("created staff user %q", username)
	}

	// ================== SNIPPETS ==================
	snippetService := snippet.NewService(snippet.NewRepository(db))
	existing, err := snippetService.List(ctx, 1)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Println("snippets already present, skipping samples")
		return
	}

	samples := []snippet.CreateInput{
		{
			Title:       "Fetch with timeout",
			Description: "Abort a fetch call that takes longer than ten seconds.",
			Code:        "const controller = new AbortController();\nsetTimeout(() => controller.abort(), 10000);\nconst res = await fetch(url, { signal: controller.signal });",
			Tags:        []string{"fetch", "timeout"},
		},
		{
			Title:       "Debounce",
			Description: "Classic debounce helper for input handlers.",
			Code:        "export const debounce = (fn, ms) => {\n  let t;\n  return (...args) => {\n    clearTimeout(t);\n    t = setTimeout(() => fn(...args), ms);\n  };\n};",
			Tags:        []string{"utility"},
		},
		{
			Title:       "Worker pool",
			Description: "Bounded concurrency with errgroup.",
			Code:        "g, ctx := errgroup.WithContext(ctx)\ng.SetLimit(4)\nfor _, job := range jobs {\n\tg.Go(func() error { return run(ctx, job) })\n}\nreturn g.Wait()",
			Language:    "go",
			Tags:        []string{"concurrency"},
		},
	}

	for _, in := range samples {
		if _, err := snippetService.Create(ctx, in); err != nil {
			log.Fatal("failed to seed snippet:", err)
		}
	}
	log.Printf("seeded %d snippets", len(samples))
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Nikaum-js/CodeTheKey/internal/auth"
	"github.com/Nikaum-js/CodeTheKey/internal/catalog"
	"github.com/Nikaum-js/CodeTheKey/internal/progress"
	"github.com/Nikaum-js/CodeTheKey/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("codethekey: no .env file, using system environment")
	}

	port := getenv("PORT", "8080")

	apiKey := getenv("YOUTUBE_API_KEY", "")
	if apiKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}
	apiBaseURL := getenv("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3")

	yt := catalog.NewYouTubeClient(apiKey, apiBaseURL)
	cat := catalog.NewService(yt)

	storage := buildStorage()
	store := progress.NewStore(context.Background(), storage)

	sessionSecret := getenv("SESSION_SECRET", "")
	if sessionSecret == "" {
		sessionSecret = "dev-secret-do-not-use-in-production"
		log.Println("codethekey: SESSION_SECRET not set, using a development default")
	}
	authSvc := auth.NewService(auth.Config{
		ClientID:     getenv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: getenv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  getenv("GOOGLE_REDIRECT_URL", ""),
	}, []byte(sessionSecret))
	if !authSvc.Enabled() {
		log.Println("codethekey: google oauth not configured, sign-in disabled")
	}

	srv := web.NewServer(cat, store, authSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Mount("/", srv.Router())

	log.Printf("codethekey listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("codethekey: %v", err)
	}
}

// buildStorage picks the progress backend: redis when configured, a local
// file otherwise.
func buildStorage() progress.Storage {
	if redisURL := getenv("REDIS_URL", ""); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		log.Println("codethekey: progress persisted to redis")
		return progress.NewRedisStorage(redis.NewClient(opt))
	}
	return progress.NewFileStorage(getenv("DATA_DIR", "./data"))
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

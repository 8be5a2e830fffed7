package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkpost/auth"
	"inkpost/config"
	"inkpost/handlers"
	"inkpost/posts"
	"inkpost/routes"
	"inkpost/store/mongostore"
	"inkpost/upload"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.DBName)
	cancel()
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	log.Println("MongoDB connected")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("upload dir: ", err)
	}

	uploader, err := upload.NewCloudinary(cfg.CloudinaryURL, "inkpost/covers")
	if err != nil {
		log.Fatal("cloudinary: ", err)
	}

	sessions := auth.NewService(db, cfg.JWTSecret, cfg.BcryptCost, cfg.TokenTTL)
	postService := posts.NewService(db, uploader, cfg.PageLimit)

	router := routes.Setup(cfg,
		handlers.NewAuth(sessions),
		handlers.NewPosts(postService, cfg.UploadDir),
		sessions,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("forced shutdown:", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Println("mongo disconnect:", err)
	}

	log.Println("server stopped")
}

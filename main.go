package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/emresolakcbu/Connectinno-Notes-Api/config/database"
	"github.com/emresolakcbu/Connectinno-Notes-Api/config/firebase"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/auth"
	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/note/repository"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
	"github.com/emresolakcbu/Connectinno-Notes-Api/router"
	"github.com/emresolakcbu/Connectinno-Notes-Api/socket"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger.Init()
	defer logger.Log.Sync()

	ctx := context.Background()

	// Note store backend: Firestore by default, Postgres when asked.
	var repo repository.NoteRepository
	switch os.Getenv("NOTES_BACKEND") {
	case "postgres":
		db := database.Connect()
		defer db.Close()
		repo = repository.NewPostgresNoteRepository(db)
	default:
		fs := firebase.NewFirestoreClient(ctx)
		defer fs.Close()
		repo = repository.NewFirestoreNoteRepository(fs)
	}

	// Identity verification: Firebase ID tokens by default, shared-secret
	// JWTs for self-hosted setups.
	var verifier auth.Verifier
	switch os.Getenv("AUTH_PROVIDER") {
	case "jwt":
		secret := os.Getenv("AUTH_JWT_SECRET")
		if secret == "" {
			logger.Sugar.Fatal("AUTH_JWT_SECRET must be set when AUTH_PROVIDER=jwt")
		}
		verifier = auth.NewHMACVerifier(secret)
	default:
		verifier = auth.NewFirebaseVerifier(firebase.NewAuthClient(ctx))
	}

	hub := socket.NewHub()
	go hub.Run()

	handler := router.Setup(repo, verifier, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Sugar.Infof("Notes API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}

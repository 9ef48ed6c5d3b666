package firebase

import (
	"context"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	admin "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

func projectID() string {
	return strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID"))
}

func credentialOptions() []option.ClientOption {
	// When the path is unset the SDK falls back to application default
	// credentials, which is what managed environments provide.
	if path := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")); path != "" {
		return []option.ClientOption{option.WithCredentialsFile(path)}
	}
	return nil
}

// NewAuthClient builds the Firebase Auth client used for ID token
// verification.
func NewAuthClient(ctx context.Context) *fbauth.Client {
	app, err := admin.NewApp(ctx, &admin.Config{ProjectID: projectID()}, credentialOptions()...)
	if err != nil {
		logger.Sugar.Fatalf("Failed to initialize Firebase app: %v", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		logger.Sugar.Fatalf("Failed to initialize Firebase Auth client: %v", err)
	}
	logger.Sugar.Info("Firebase Auth client initialized")
	return client
}

// NewFirestoreClient builds the Firestore client backing the note store.
func NewFirestoreClient(ctx context.Context) *firestore.Client {
	client, err := firestore.NewClient(ctx, projectID(), credentialOptions()...)
	if err != nil {
		logger.Sugar.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	logger.Sugar.Info("Firestore client initialized")
	return client
}

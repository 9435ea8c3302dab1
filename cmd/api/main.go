package main

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"nearbuy/internal/adapter/api"
	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
	"nearbuy/internal/adapter/api/router"
	repo "nearbuy/internal/adapter/repository"
	infrafirebase "nearbuy/internal/infrastructure/firebase"
	"nearbuy/internal/infrastructure/geocode"
	"nearbuy/internal/infrastructure/ratelimit"
	"nearbuy/internal/infrastructure/storage"
	"nearbuy/internal/usecase"
	"nearbuy/pkg/config"
	"nearbuy/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	credsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	var opts []option.ClientOption
	if credsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	fbAuth, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase auth client: %v", err)
	}
	authClient := infrafirebase.NewAuthClient(fbAuth)

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credsPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}
	defer storageClient.Close()

	userRepo := repo.NewFirestoreUserRepository(firestoreClient)
	locationRepo := repo.NewFirestoreLocationRepository(firestoreClient)
	postRepo := repo.NewFirestorePostRepository(firestoreClient)
	replyRepo := repo.NewFirestoreReplyRepository(firestoreClient)
	messageRepo := repo.NewFirestoreMessageRepository(firestoreClient)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	geocoder := geocode.NewMapboxGeocoder(cfg.MapboxToken)

	authUseCase := usecase.NewAuthUseCase(userRepo, authClient)
	userUseCase := usecase.NewUserUseCase(userRepo, locationRepo)
	locationUseCase := usecase.NewLocationUseCase(locationRepo, geocoder)
	postUseCase := usecase.NewPostUseCase(postRepo, locationRepo, userRepo)
	replyUseCase := usecase.NewReplyUseCase(replyRepo, postRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, postRepo, rateLimiter)

	handler.Setup(authUseCase, userUseCase, locationUseCase, postUseCase, replyUseCase, messageUseCase, storageClient)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	authMiddleware := middleware.NewAuthMiddleware(authClient)
	router.Setup(e, authMiddleware)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

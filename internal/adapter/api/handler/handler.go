package handler

import (
	"nearbuy/internal/infrastructure/storage"
	"nearbuy/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	locationHandler *LocationHandler
	postHandler     *PostHandler
	replyHandler    *ReplyHandler
	messageHandler  *MessageHandler
	fileHandler     *FileHandler
	healthHandler   *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	locationUseCase *usecase.LocationUseCase,
	postUseCase *usecase.PostUseCase,
	replyUseCase *usecase.ReplyUseCase,
	messageUseCase *usecase.MessageUseCase,
	storageClient *storage.CloudStorageClient,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	locationHandler = NewLocationHandler(locationUseCase)
	postHandler = NewPostHandler(postUseCase)
	replyHandler = NewReplyHandler(replyUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	fileHandler = NewFileHandler(storageClient)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetLocationHandler() *LocationHandler {
	return locationHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetReplyHandler() *ReplyHandler {
	return replyHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

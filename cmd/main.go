package main

import (
	channelHandlers "Seenit/internal/app/channel/handlers"
	channelRepo "Seenit/internal/app/channel/repository"
	channelUCase "Seenit/internal/app/channel/usecase"
	commentHandlers "Seenit/internal/app/comment/handlers"
	commentRepo "Seenit/internal/app/comment/repository"
	commentUCase "Seenit/internal/app/comment/usecase"
	"Seenit/internal/app/config"
	"Seenit/internal/app/database"
	"Seenit/internal/app/middleware"
	postHandlers "Seenit/internal/app/post/handlers"
	postRepo "Seenit/internal/app/post/repository"
	postUCase "Seenit/internal/app/post/usecase"
	serviceHandlers "Seenit/internal/app/service/handlers"
	serviceRepo "Seenit/internal/app/service/repository"
	serviceUCase "Seenit/internal/app/service/usecase"
	userHandlers "Seenit/internal/app/user/handlers"
	userRepo "Seenit/internal/app/user/repository"
	userUCase "Seenit/internal/app/user/usecase"
	voteHandlers "Seenit/internal/app/vote/handlers"
	voteUCase "Seenit/internal/app/vote/usecase"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecretKey == "" {
		logrus.Fatal("JWT_SECRET_KEY is not set")
	}

	postgres, err := database.NewPostgres(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer postgres.Close()

	if err := postgres.RunMigrations("migrations/001_create_tables.sql"); err != nil {
		logrus.Fatal(err)
	}

	userRepository := userRepo.NewRepo(postgres.GetPostgres())
	channelRepository := channelRepo.NewRepo(postgres.GetPostgres())
	postRepository := postRepo.NewRepo(postgres.GetPostgres())
	commentRepository := commentRepo.NewRepo(postgres.GetPostgres())
	serviceRepository := serviceRepo.NewRepo(postgres.GetPool())

	userUseCase := userUCase.NewUseCase(*userRepository, *postRepository, *channelRepository, cfg)
	channelUseCase := channelUCase.NewUseCase(*channelRepository, *userRepository)
	postUseCase := postUCase.NewUseCase(*postRepository)
	commentUseCase := commentUCase.NewUseCase(*commentRepository)
	voteUseCase := voteUCase.NewUseCase(*postRepository, *commentRepository, *userRepository)
	serviceUseCase := serviceUCase.NewUseCase(*serviceRepository)

	userHandler := userHandlers.NewHandler(*userUseCase)
	channelHandler := channelHandlers.NewHandler(*channelUseCase)
	postHandler := postHandlers.NewHandler(*postUseCase)
	commentHandler := commentHandlers.NewHandler(*commentUseCase)
	voteHandler := voteHandlers.NewHandler(*voteUseCase)
	serviceHandler := serviceHandlers.NewHandler(*serviceUseCase)

	router := mux.NewRouter()

	router.Use(middleware.ContentType)
	router.Use(middleware.LoggingRequest)
	router.Use(middleware.Auth(cfg))

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/users/refresh", userHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Profile).Methods(http.MethodGet)

	api.HandleFunc("/channels", channelHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/channels", channelHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/channels/{id:[0-9]+}", channelHandler.Details).Methods(http.MethodGet)
	api.HandleFunc("/channels/{id:[0-9]+}/subscribe", channelHandler.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/channels/{id:[0-9]+}/unsubscribe", channelHandler.Unsubscribe).Methods(http.MethodPost)
	api.HandleFunc("/channels/{id:[0-9]+}/subscribed", channelHandler.IsSubscribed).Methods(http.MethodGet)

	api.HandleFunc("/channels/{id:[0-9]+}/posts", postHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/channels/{id:[0-9]+}/posts", postHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Details).Methods(http.MethodGet)

	api.HandleFunc("/posts/{id:[0-9]+}/comments", commentHandler.CreateRoot).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}/comments", commentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id:[0-9]+}/replies", commentHandler.CreateReply).Methods(http.MethodPost)

	api.HandleFunc("/upvote", voteHandler.Upvote).Methods(http.MethodPost)
	api.HandleFunc("/downvote", voteHandler.Downvote).Methods(http.MethodPost)

	api.HandleFunc("/service/clear", serviceHandler.ClearDB).Methods(http.MethodPost)
	api.HandleFunc("/service/status", serviceHandler.Status).Methods(http.MethodGet)

	server := &http.Server{
		Handler: router,
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
	}

	logrus.Infof("starting server on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"chatserver/internal"
	"chatserver/internal/auth"
	"chatserver/internal/input"
	"chatserver/internal/nlog"
	"chatserver/internal/repository"
	"chatserver/internal/service"
)

func main() {
	configPath := "chatserver.cfg"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Could not load config {%v}\n", err)
		os.Exit(1)
	}

	serverLogger, err := nlog.NewServerLogger(cfg.LogDirectory, cfg.EnableLogging)
	if err != nil {
		fmt.Printf("Could not set up logging {%v}\n", err)
		os.Exit(1)
	}
	defer serverLogger.CloseAll()

	httpLog, _ := serverLogger.RegisterSubsystem("http")
	storeLog, _ := serverLogger.RegisterSubsystem("store")
	authLog, _ := serverLogger.RegisterSubsystem("auth")

	db, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Could not open database {%v}\n", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&repository.Record{}); err != nil {
		fmt.Printf("Could not migrate database {%v}\n", err)
		os.Exit(1)
	}

	store := repository.NewSQLiteKeyedStore(db)
	users := repository.NewKeyedUserRepository(store)
	channels := repository.NewKeyedChannelRepository(store)
	messages := repository.NewKeyedMessageRepository(store)

	tokens := auth.NewTokenService(cfg.SecretKey, time.Duration(cfg.TokenLifetime)*time.Second)

	authService := service.NewAuthService(users, tokens, authLog)
	channelService := service.NewChannelService(channels, storeLog)
	messageService := service.NewMessageService(channels, messages, storeLog)
	dmService := service.NewDMService(messages, storeLog)
	userService := service.NewUserService(users, storeLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go serverLogger.Run(ctx)

	manager := input.NewInputManager()
	manager.SetLogger(httpLog)
	manager.SetTokenService(tokens)
	manager.SetServices(authService, channelService, messageService, dmService, userService)

	if err := manager.Run(ctx, &input.IptConfig{
		ServerPort:      cfg.HTTPServerPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		StaticDirectory: cfg.StaticDirectory,
	}); err != nil {
		fmt.Printf("Server error {%v}\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shutting off...\n")
}

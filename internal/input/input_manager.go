package input

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"chatserver/internal/auth"
	"chatserver/internal/handler"
	"chatserver/internal/middleware"
	"chatserver/internal/nlog"
	"chatserver/internal/service"
)

type IptConfig struct {
	ServerPort      uint16
	ReadTimeout     int64
	WriteTimeout    int64
	StaticDirectory string
}

// InputManager owns the HTTP server: route table, request logging and
// graceful shutdown.
type InputManager struct {
	running atomic.Bool

	logger nlog.Logger
	server *http.Server

	stopFromOutsideChan chan struct{}
	doneFromInsideChan  chan struct{}

	tokens *auth.TokenService

	authService    service.AuthService
	channelService service.ChannelService
	messageService service.MessageService
	dmService      service.DMService
	userService    service.UserService
}

func NewInputManager() *InputManager {
	return &InputManager{
		running:             atomic.Bool{},
		stopFromOutsideChan: make(chan struct{}),
		doneFromInsideChan:  make(chan struct{}),
	}
}

func (i *InputManager) IsReady() bool {
	return i.logger != nil && i.tokens != nil &&
		i.authService != nil && i.channelService != nil &&
		i.messageService != nil && i.dmService != nil && i.userService != nil
}

func (i *InputManager) IsRunning() bool {
	return i.running.Load()
}

func (i *InputManager) SetLogger(l nlog.Logger) {
	i.logger = l
}

func (i *InputManager) SetTokenService(t *auth.TokenService) {
	i.tokens = t
}

func (i *InputManager) SetServices(as service.AuthService, cs service.ChannelService, ms service.MessageService, ds service.DMService, us service.UserService) {
	i.authService = as
	i.channelService = cs
	i.messageService = ms
	i.dmService = ds
	i.userService = us
}

func (i *InputManager) Logf(format string, a ...any) {
	i.logger.Logf(format, a...)
}

// RequestLogMiddleware writes one line per inbound request.
func (i *InputManager) RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.Logf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// Router builds the full route table. Route strings are part of the
// client contract.
func (i *InputManager) Router() *mux.Router {
	authHandler := handler.NewAuthHandler(i.authService)
	channelHandler := handler.NewChannelHandler(i.channelService)
	messageHandler := handler.NewMessageHandler(i.messageService)
	dmHandler := handler.NewDMHandler(i.dmService)
	userHandler := handler.NewUserHandler(i.userService, i.authService)

	r := mux.NewRouter()
	r.Use(i.RequestLogMiddleware)

	// Authentication routes
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")

	// Channel routes
	r.HandleFunc("/api/channels", middleware.OptionalAuth(i.tokens, channelHandler.List)).Methods("GET")
	r.HandleFunc("/api/channels/all", middleware.RequireAuth(i.tokens, channelHandler.ListAll)).Methods("GET")
	r.HandleFunc("/api/channels", middleware.RequireAuth(i.tokens, channelHandler.Create)).Methods("POST")

	// Channel message routes
	r.HandleFunc("/api/messages", middleware.RequireAuth(i.tokens, messageHandler.ListAll)).Methods("GET")
	r.HandleFunc("/api/messages/{channelName}", middleware.OptionalAuth(i.tokens, messageHandler.GetChannel)).Methods("GET")
	r.HandleFunc("/api/messages/{channelName}", middleware.OptionalAuth(i.tokens, messageHandler.PostChannel)).Methods("POST")

	// Direct message routes
	r.HandleFunc("/api/dm", middleware.RequireAuth(i.tokens, dmHandler.Send)).Methods("POST")
	r.HandleFunc("/api/dm/{username}", middleware.RequireAuth(i.tokens, dmHandler.Thread)).Methods("GET")

	// User routes
	r.HandleFunc("/api/users", userHandler.List).Methods("GET")
	r.HandleFunc("/api/users/status", middleware.RequireAuth(i.tokens, userHandler.Status)).Methods("POST")
	r.HandleFunc("/api/users/register", userHandler.Register).Methods("POST")

	return r
}

func (i *InputManager) Run(ctx context.Context, cfg *IptConfig) error {
	i.Logf("Input service started...")

	if !i.IsReady() {
		return fmt.Errorf("The Input manager is not ready... Missing components")
	}

	r := i.Router()
	if cfg.StaticDirectory != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDirectory)))
	}

	i.server = &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:        r,
		ReadTimeout:    time.Duration(cfg.ReadTimeout * int64(time.Second)),
		WriteTimeout:   time.Duration(cfg.WriteTimeout * int64(time.Second)),
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		select {
		case <-ctx.Done():
			i.Logf("Received stop signal. Shutting down...")
		case <-i.stopFromOutsideChan:
			i.Logf("Server was asked to stop. Shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := i.server.Shutdown(shutdownCtx); err != nil {
			i.Logf("Error during shutdown... %v\n", err)
		}
		close(i.doneFromInsideChan)
	}()

	i.running.Store(true)
	i.Logf("Http server listening on port {%d}", cfg.ServerPort)

	if err := i.server.ListenAndServe(); err != http.ErrServerClosed {
		i.Logf("FATAL: HTTP Server error{%v}\n", err)
		return err
	}

	return nil
}

func (i *InputManager) Stop() {
	close(i.stopFromOutsideChan)
	<-i.doneFromInsideChan
	i.running.Store(false)
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ukrway/dorohy/service"
)

// Config holds the HTTP-facing settings of one API process.
type Config struct {
	Port         int
	Timeout      time.Duration
	UseRateLimit bool
	RateLimitRPS float64
}

// API is the HTTP surface over the session services.
type API struct {
	log          *zap.Logger
	graphService *service.GraphService
	pathService  *service.PathService

	validate *validator.Validate
	trans    ut.Translator
}

// NewAPI assembles the API with a shared validator and its English
// translator, so request validation failures come back as readable
// messages.
func NewAPI(log *zap.Logger, graphService *service.GraphService, pathService *service.PathService) *API {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &API{
		log:          log,
		graphService: graphService,
		pathService:  pathService,
		validate:     validate,
		trans:        trans,
	}
}

// validateStruct returns the translated validation failures for req, empty
// when the request is valid.
func (api *API) validateStruct(req interface{}) []string {
	err := api.validate.Struct(req)
	if err == nil {
		return nil
	}

	var msgs []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			msgs = append(msgs, ve.Translate(api.trans))
		}
		return msgs
	}

	return []string{err.Error()}
}

// Handler builds the full middleware chain around the router. Exposed so
// tests can drive the API through httptest without binding a port.
func (api *API) Handler(cfg Config) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	chain := []alice.Constructor{
		corsHandler.Handler,
		api.enforceJSON,
		api.recoverPanic,
		api.heartbeat("healthz"),
		api.logRequests,
	}
	if cfg.UseRateLimit {
		chain = append(chain, api.rateLimit(cfg.RateLimitRPS))
	}

	return alice.New(chain...).Then(api.routes())
}

// Run serves the API until ctx is cancelled or the listener fails. On
// cancellation the server drains in-flight requests before returning.
func (api *API) Run(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(cfg),
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  time.Minute,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	api.log.Info("API running", zap.Int("port", cfg.Port))

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		api.log.Info("context cancelled, shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

// GracefulShutdown blocks until SIGINT or SIGTERM arrives and returns the
// received signal.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return <-quit
}

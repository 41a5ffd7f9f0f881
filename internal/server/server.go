package server

import (
	"net"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/dj-wishboard-go/internal/config"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/core"
	djcommands "github.com/eskrenkovic/dj-wishboard-go/internal/modules/dj/commands"
	djqueries "github.com/eskrenkovic/dj-wishboard-go/internal/modules/dj/queries"
	sessioncommands "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/commands"
	sessiondomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/domain"
	sessionqueries "github.com/eskrenkovic/dj-wishboard-go/internal/modules/session/queries"
	"github.com/eskrenkovic/dj-wishboard-go/internal/modules/status"
	wishcommands "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/commands"
	wishdomain "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/domain"
	wishqueries "github.com/eskrenkovic/dj-wishboard-go/internal/modules/wish/queries"
	"github.com/eskrenkovic/dj-wishboard-go/internal/storage"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = (*HTTPServer)(nil)

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
	logger *zap.Logger
}

func NewHTTPServer(config config.Config) (*HTTPServer, error) {
	store := storage.NewStore(config.DataFilePath, config.Logger)
	store.Load()

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	// session

	err := mediator.RegisterRequestHandler[sessioncommands.CreateSessionCommand, sessiondomain.Session](
		sessioncommands.NewCreateSessionCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.UpdateSessionSettingsCommand, sessiondomain.Session](
		sessioncommands.NewUpdateSessionSettingsCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.SetSessionActiveCommand, sessiondomain.Session](
		sessioncommands.NewSetSessionActiveCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[sessioncommands.DeleteSessionCommand, sessioncommands.DeleteSessionResponse](
		sessioncommands.NewDeleteSessionCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetSessionsQuery, []sessiondomain.Session](
		sessionqueries.NewGetSessionsQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[sessionqueries.GetSessionQuery, sessiondomain.Session](
		sessionqueries.NewGetSessionQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	// wish

	err = mediator.RegisterRequestHandler[wishcommands.SubmitWishCommand, wishdomain.Wish](
		wishcommands.NewSubmitWishCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[wishcommands.SetWishStatusCommand, wishdomain.Wish](
		wishcommands.NewSetWishStatusCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[wishqueries.GetWishesQuery, []wishdomain.Wish](
		wishqueries.NewGetWishesQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	// dj

	err = mediator.RegisterRequestHandler[djqueries.GetDJSessionQuery, sessiondomain.Session](
		djqueries.NewGetDJSessionQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[djqueries.GetDJWishesQuery, []wishdomain.Wish](
		djqueries.NewGetDJWishesQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[djcommands.SetDJWishStatusCommand, wishdomain.Wish](
		djcommands.NewSetDJWishStatusCommandHandler(store),
	)
	if err != nil {
		return nil, err
	}

	// status

	err = mediator.RegisterRequestHandler[status.GetStatusQuery, status.GetStatusResponse](
		status.NewGetStatusQueryHandler(store),
	)
	if err != nil {
		return nil, err
	}

	// http

	r := chi.NewRouter()

	r.Use(core.LoggerMiddleware(config.Logger))
	r.Use(core.CorrelationIDMiddleware)
	r.Use(core.MetricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", status.HandleGetStatus)

		r.Post("/sessions", sessioncommands.HandleCreateSession)
		r.Get("/sessions", sessionqueries.HandleGetSessions)
		r.Get("/sessions/{id}", sessionqueries.HandleGetSession)
		r.Post("/sessions/{id}/settings", sessioncommands.HandleUpdateSessionSettings)
		r.Post("/sessions/{id}/active", sessioncommands.HandleSetSessionActive)
		r.Delete("/sessions/{id}", sessioncommands.HandleDeleteSession)

		r.Post("/wishes", wishcommands.HandleSubmitWish)
		r.Get("/wishes", wishqueries.HandleGetWishes)
		r.Post("/wishes/{id}/status", wishcommands.HandleSetWishStatus)

		r.Get("/dj/session", djqueries.HandleGetDJSession)
		r.Get("/dj/wishes", djqueries.HandleGetDJWishes)
		r.Post("/dj/wishes/{id}/status", djcommands.HandleSetDJWishStatus)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.Dir(config.PublicDir)))

	server := &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: r,
	}

	return &HTTPServer{server: server, logger: config.Logger}, nil
}

// Handler exposes the composed router, mainly so tests can drive the full
// stack without binding a port.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	return s.server.Close()
}

package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/studybridge/backend/internal/config"
	"github.com/studybridge/backend/internal/service"
	"github.com/studybridge/backend/internal/upload"
)

// MailPublisher is the part of *amqp.Channel the handlers use, kept as
// an interface so tests can record publishes without a broker.
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	credentials *service.CredentialService
	submissions *service.SubmissionService
	queries     *service.QueryService
	storage     *upload.DiskStorage
	translator  ut.Translator
	mailChannel MailPublisher
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(
	cfg *config.Config,
	credentials *service.CredentialService,
	submissions *service.SubmissionService,
	queries *service.QueryService,
	storage *upload.DiskStorage,
	mailCh MailPublisher,
	rdb *redis.Client,
) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		credentials: credentials,
		submissions: submissions,
		queries:     queries,
		storage:     storage,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{h.config.Server.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// route names are kept as the frontend already calls them
	h.Mux.Post("/signup", h.SignUp)
	h.Mux.Post("/login", h.Login)
	h.Mux.Post("/SrDashboard", h.UploadSubmission)
	h.Mux.Get("/Jrdashboard", h.ListByOwner)
	h.Mux.Get("/explore", h.Explore)

	fileServer := http.FileServer(http.Dir(h.config.Upload.Dir))
	h.Mux.Handle("/"+upload.PublicPrefix+"/*", http.StripPrefix("/"+upload.PublicPrefix+"/", fileServer))
}

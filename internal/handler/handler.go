package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/monyskow/shift-selector/backend/internal/config"
	"github.com/monyskow/shift-selector/backend/internal/repository"
	"github.com/monyskow/shift-selector/backend/internal/shifttime"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
	resolver   *shifttime.Resolver

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		resolver:   shifttime.NewResolver(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Group(func(r chi.Router) {
		// 配置了密钥时才启用鉴权，便于在内网环境下直接使用
		if h.config.JWT.Secret != "" {
			r.Use(h.auth)
		}

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetAllShifts)
			r.Post("/resolve", h.ResolveShift)
			r.Route("/{name}", func(r chi.Router) {
				r.Use(h.shiftPreset)
				r.Get("/interval", h.GetShiftInterval)
				r.Get("/active", h.GetShiftActive)
			})
		})
	})
}

package delivery

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/blog-platform/internal/pkg/app"
	"github.com/SlavaShagalov/blog-platform/internal/statistics/repository"
)

type Delivery struct {
	repo   *repository.SqlxRepository
	logger *slog.Logger
}

func New(repo *repository.SqlxRepository, logger *slog.Logger) *Delivery {
	return &Delivery{
		repo:   repo,
		logger: logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router, mw *app.Middleware) {
	router.Get("/statistics", mw.RequireAuth, mw.RequireAdmin, d.list)
}

type requestDTO struct {
	ID        int       `json:"id"`
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	Body      string    `json:"body"`
	Headers   string    `json:"headers"`
	CreatedAt time.Time `json:"createdAt"`
}

type listResponse struct {
	Success  bool         `json:"success"`
	Requests []requestDTO `json:"requests"`
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	reqs, err := d.repo.GetRequests(ctx.UserContext())
	if err != nil {
		return err
	}

	dtos := make([]requestDTO, 0, len(reqs))
	for _, req := range reqs {
		dtos = append(dtos, requestDTO{
			ID:        req.ID,
			Method:    req.Method,
			URL:       req.URL,
			Body:      req.Body,
			Headers:   req.Headers,
			CreatedAt: req.CreatedAt,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(listResponse{
		Success:  true,
		Requests: dtos,
	})
}

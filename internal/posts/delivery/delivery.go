package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
	"github.com/SlavaShagalov/blog-platform/internal/posts/usecase"
)

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router, mw *app.Middleware) {
	router.Get("/posts", d.list)
	router.Get("/posts/:id", d.get)
	router.Post("/posts", mw.RequireAuth, mw.RequireAuthor, d.create)
	router.Put("/posts/:id", mw.RequireAuth, mw.RequireAuthor, d.update)
	router.Delete("/posts/:id", mw.RequireAuth, mw.RequireAuthor, d.delete)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	params := usecase.ListParams{
		Pagination: pagination.Params{
			Page:  ctx.QueryInt("page", pagination.DefaultPage),
			Limit: ctx.QueryInt("limit", pagination.DefaultLimit),
		},
		Category:  ctx.Query("category"),
		Tag:       ctx.Query("tag"),
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}

	posts, meta, err := d.useCase.List(ctx.UserContext(), params)
	if err != nil {
		return err
	}

	dtos := make([]PostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, NewPostDTO(post))
	}

	return ctx.Status(fiber.StatusOK).JSON(ListResponse{
		Success:    true,
		Posts:      dtos,
		Pagination: NewPaginationDTO(meta),
	})
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	post, err := d.useCase.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(PostResponse{
		Success: true,
		Post:    NewPostDTO(post),
	})
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	var dto CreatePostDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("parse create post body", slog.String("error", err.Error()))
		return pkgErrors.ErrBadRequestBody
	}

	post, err := d.useCase.Create(ctx.UserContext(), identity.UserID, usecase.CreateParams{
		Title:    dto.Title,
		Body:     dto.Body,
		Tags:     dto.Tags,
		Category: models.Category(dto.Category),
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(PostResponse{
		Success: true,
		Post:    NewPostDTO(post),
	})
}

func (d *Delivery) update(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var dto UpdatePostDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("parse update post body", slog.String("error", err.Error()))
		return pkgErrors.ErrBadRequestBody
	}

	params := usecase.UpdateParams{
		Title: dto.Title,
		Body:  dto.Body,
		Tags:  dto.Tags,
	}
	if dto.Category != nil {
		category := models.Category(*dto.Category)
		params.Category = &category
	}

	post, err := d.useCase.Update(ctx.UserContext(), id, identity.UserID, identity.Role, params)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(PostResponse{
		Success: true,
		Post:    NewPostDTO(post),
	})
}

func (d *Delivery) delete(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err = d.useCase.Delete(ctx.UserContext(), id, identity.UserID, identity.Role); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(DeleteResponse{
		Success: true,
		Message: "post deleted",
	})
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, pkgErrors.ErrInvalidIdentifier
	}
	return id, nil
}

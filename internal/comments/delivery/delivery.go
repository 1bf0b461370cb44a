package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SlavaShagalov/blog-platform/internal/comments/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/pagination"
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
	router.Get("/comments/post/:postId", d.listByPost)
	router.Post("/comments", mw.RequireAuth, d.create)
	router.Put("/comments/:id", mw.RequireAuth, d.update)
	router.Delete("/comments/:id", mw.RequireAuth, d.delete)
}

func (d *Delivery) listByPost(ctx *fiber.Ctx) error {
	postID, err := uuid.Parse(ctx.Params("postId"))
	if err != nil {
		return pkgErrors.ErrInvalidIdentifier
	}

	params := pagination.Params{
		Page:  ctx.QueryInt("page", pagination.DefaultPage),
		Limit: ctx.QueryInt("limit", pagination.DefaultLimit),
	}

	comments, meta, err := d.useCase.ListByPost(ctx.UserContext(), postID, params)
	if err != nil {
		return err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for _, comment := range comments {
		dtos = append(dtos, NewCommentDTO(comment))
	}

	return ctx.Status(fiber.StatusOK).JSON(ListResponse{
		Success:    true,
		Comments:   dtos,
		Pagination: NewPaginationDTO(meta),
	})
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	var dto CreateCommentDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("parse create comment body", slog.String("error", err.Error()))
		return pkgErrors.ErrBadRequestBody
	}

	postID, err := uuid.Parse(dto.PostID)
	if err != nil {
		return pkgErrors.ErrInvalidIdentifier
	}

	comment, err := d.useCase.Create(ctx.UserContext(), identity.UserID, usecase.CreateParams{
		PostID: postID,
		Body:   dto.Body,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(CommentResponse{
		Success: true,
		Comment: NewCommentDTO(comment),
	})
}

func (d *Delivery) update(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return pkgErrors.ErrInvalidIdentifier
	}

	var dto UpdateCommentDTO
	if err = ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("parse update comment body", slog.String("error", err.Error()))
		return pkgErrors.ErrBadRequestBody
	}

	comment, err := d.useCase.Update(ctx.UserContext(), id, identity.UserID, identity.Role, dto.Body)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(CommentResponse{
		Success: true,
		Comment: NewCommentDTO(comment),
	})
}

func (d *Delivery) delete(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return pkgErrors.ErrInvalidIdentifier
	}

	if err = d.useCase.Delete(ctx.UserContext(), id, identity.UserID, identity.Role); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(DeleteResponse{
		Success: true,
		Message: "comment deleted",
	})
}

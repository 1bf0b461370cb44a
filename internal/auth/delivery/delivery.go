package delivery

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/blog-platform/internal/auth/usecase"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
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
	router.Post("/auth/register", d.register)
	router.Post("/auth/login", d.login)
	router.Get("/auth/me", mw.RequireAuth, d.me)
}

func (d *Delivery) register(ctx *fiber.Ctx) error {
	var dto SignUpDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("parse register body", slog.String("error", err.Error()))
		return pkgErrors.ErrBadRequestBody
	}

	user, signed, err := d.useCase.SignUp(ctx.UserContext(), usecase.SignUpParams{
		Username: dto.Username,
		Email:    dto.Email,
		Password: dto.Password,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(AuthResponse{
		Success: true,
		Token:   signed,
		User:    NewUserDTO(user),
	})
}

func (d *Delivery) login(ctx *fiber.Ctx) error {
	var dto SignInDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug("parse login body", slog.String("error", err.Error()))
		return pkgErrors.ErrBadRequestBody
	}

	user, signed, err := d.useCase.SignIn(ctx.UserContext(), usecase.SignInParams{
		Username: dto.Username,
		Password: dto.Password,
	})
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(AuthResponse{
		Success: true,
		Token:   signed,
		User:    NewUserDTO(user),
	})
}

func (d *Delivery) me(ctx *fiber.Ctx) error {
	identity, err := app.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	user, err := d.useCase.GetByID(ctx.UserContext(), identity.UserID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(MeResponse{
		Success: true,
		User:    NewUserDTO(user),
	})
}

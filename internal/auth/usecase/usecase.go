package usecase

import (
	"context"
	"log/slog"
	"net/mail"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	pkgHasher "github.com/SlavaShagalov/blog-platform/internal/pkg/hasher"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/token"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

type UseCase struct {
	repo   Repository
	tokens *token.Manager
	hasher pkgHasher.Hasher
	logger *slog.Logger
}

func New(repo Repository, tokens *token.Manager, hasher pkgHasher.Hasher, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// SignUp registers a new user. Self-registration always produces the User
// role; privileged roles are assigned out of band.
func (u *UseCase) SignUp(ctx context.Context, params SignUpParams) (models.User, string, error) {
	if err := validateSignUp(params); err != nil {
		return models.User{}, "", err
	}

	_, err := u.repo.GetByUsername(ctx, params.Username)
	if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		if err != nil {
			return models.User{}, "", err
		}
		return models.User{}, "", pkgErrors.ErrUserAlreadyExists
	}

	_, err = u.repo.GetByEmail(ctx, params.Email)
	if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		if err != nil {
			return models.User{}, "", err
		}
		return models.User{}, "", pkgErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := u.hasher.GetHashedPassword(ctx, params.Password)
	if err != nil {
		return models.User{}, "", errors.Wrap(pkgErrors.ErrGetHashedPassword, err.Error())
	}

	user, err := u.repo.Create(ctx, CreateParams{
		Username:       params.Username,
		Email:          params.Email,
		Role:           models.RoleUser,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		return models.User{}, "", err
	}

	signed, err := u.tokens.Issue(user)
	if err != nil {
		return models.User{}, "", errors.Wrap(err, "issue token")
	}

	return user, signed, nil
}

func (u *UseCase) SignIn(ctx context.Context, params SignInParams) (models.User, string, error) {
	user, err := u.repo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return models.User{}, "", pkgErrors.ErrWrongLoginOrPassword
		}
		return models.User{}, "", err
	}

	if err = u.hasher.CompareHashAndPassword(ctx, user.Password, params.Password); err != nil {
		return models.User{}, "", pkgErrors.ErrWrongLoginOrPassword
	}

	signed, err := u.tokens.Issue(user)
	if err != nil {
		return models.User{}, "", errors.Wrap(err, "issue token")
	}

	return user, signed, nil
}

func (u *UseCase) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return u.repo.GetByID(ctx, id)
}

func validateSignUp(params SignUpParams) error {
	var merr *multierror.Error

	if utf8.RuneCountInString(params.Username) < minUsernameLen {
		merr = multierror.Append(merr, errors.New("username must be at least 3 characters"))
	}
	if _, err := mail.ParseAddress(params.Email); err != nil {
		merr = multierror.Append(merr, errors.New("email must be a valid address"))
	}
	if utf8.RuneCountInString(params.Password) < minPasswordLen {
		merr = multierror.Append(merr, errors.New("password must be at least 6 characters"))
	}

	if merr == nil {
		return nil
	}

	fields := make([]string, 0, len(merr.Errors))
	for _, fieldErr := range merr.Errors {
		fields = append(fields, fieldErr.Error())
	}
	return pkgErrors.NewValidationError(fields...)
}

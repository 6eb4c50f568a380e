// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	deliverycontext "melospizza/internal/delivery/context"
	"melospizza/internal/domain/entity"
	domainerrors "melospizza/internal/domain/errors"
	"melospizza/internal/domain/repository"
	"melospizza/internal/domain/service"
	"melospizza/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// emailPattern is deliberately permissive; the mailbox's existence is the
// user's problem, not ours.
var emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Username and email are stored lowercased
// so uniqueness and login are case-insensitive. The availability pre-checks
// give friendly field-level conflicts; the database unique constraints stay
// the authority when two registrations race.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validateRegistration(username, email, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username), slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkAvailability(ctx, userRepo, username, email); err != nil {
			return err
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration successful", slog.String("userID", user.ID.String()))

	return &usecase.RegisterOutput{UserID: user.ID}, nil
}

// checkAvailability reports which field collides with an existing account.
// A lookup by either value can match either column, so the matched record
// decides the field reported back.
func (srv *authService) checkAvailability(ctx context.Context, userRepo repository.UserRepository, username, email string) error {
	for _, value := range []string{username, email} {
		existing, err := userRepo.FindByLogin(ctx, value)
		if errors.Is(err, repository.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to check account availability")
		}

		if existing.Username == username {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
		}

		return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	}

	return nil
}

// Login authenticates by username or email. Unknown accounts and wrong
// passwords produce the same caller-visible error; the request log keeps
// the distinction.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	login := strings.ToLower(strings.TrimSpace(input.UsernameOrEmail))

	var fields []string
	if login == "" {
		fields = append(fields, "El usuario es obligatorio")
	}
	if input.Password == "" {
		fields = append(fields, "La contraseña es obligatoria")
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	user, err := srv.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown account", slog.String("login", login))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Login successful", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

func validateRegistration(username, email, password string) error {
	var fields []string

	switch {
	case username == "":
		fields = append(fields, "El nombre de usuario es obligatorio")
	case utf8.RuneCountInString(username) < minUsernameLength:
		fields = append(fields, "El nombre de usuario debe tener al menos 3 caracteres")
	}

	switch {
	case email == "":
		fields = append(fields, "El correo electrónico es obligatorio")
	case !emailPattern.MatchString(email):
		fields = append(fields, "Por favor ingresa un correo electrónico válido")
	}

	switch {
	case password == "":
		fields = append(fields, "La contraseña es obligatoria")
	case utf8.RuneCountInString(password) < minPasswordLength:
		fields = append(fields, "La contraseña debe tener al menos 6 caracteres")
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

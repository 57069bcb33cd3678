// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"salesinsight/config"
	deliverycontext "salesinsight/internal/delivery/context"
	"salesinsight/internal/domain/access"
	"salesinsight/internal/domain/entity"
	domainerrors "salesinsight/internal/domain/errors"
	"salesinsight/internal/domain/repository"
	"salesinsight/internal/domain/service"
	"salesinsight/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	bootstrap    *config.BootstrapConfig
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		bootstrap:    bootstrap,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the password of an active account and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.findUser(ctx, func(repo repository.UserRepository) (*entity.User, error) {
		return repo.FindUserByEmail(ctx, email)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	// bcrypt is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "wrong password"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if !user.IsActive {
		srv.log(ctx).Warn("Login refused for inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login failed")
	}

	output, err := srv.issue(user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return output, nil
}

// Refresh exchanges a valid refresh token for a new pair. The account is re-read so that
// deactivated users cannot keep refreshing.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	user, err := srv.findUser(ctx, func(repo repository.UserRepository) (*entity.User, error) {
		return repo.FindUserByID(ctx, claims.UserID)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "refresh refused")
	}

	return srv.issue(user)
}

// Authenticate resolves an access token to the identity stored for its account.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	user, err := srv.findUser(ctx, func(repo repository.UserRepository) (*entity.User, error) {
		return repo.FindUserByID(ctx, claims.UserID)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "account deactivated")
	}

	identity := user.Identity()

	return &identity, nil
}

func (srv *authService) Me(ctx context.Context, caller *entity.Identity) (*entity.User, error) {
	if err := access.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	user, err := srv.findUser(ctx, func(repo repository.UserRepository) (*entity.User, error) {
		return repo.FindUserByID(ctx, caller.UserID)
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NotFound("user", caller.UserID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// BootstrapAdmin is idempotent: an existing account with the configured email is left untouched,
// whatever its role.
func (srv *authService) BootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || strings.TrimSpace(srv.bootstrap.AdminEmail) == "" {
		srv.log(ctx).Debug("No bootstrap admin configured")

		return nil
	}
	if len(srv.bootstrap.AdminPassword) < minPasswordLength {
		return errors.Errorf("bootstrap admin password must have at least %d characters", minPasswordLength)
	}

	email := normalizeEmail(srv.bootstrap.AdminEmail)
	_, err := srv.findUser(ctx, func(repo repository.UserRepository) (*entity.User, error) {
		return repo.FindUserByEmail(ctx, email)
	})
	if err == nil {
		srv.log(ctx).Debug("Bootstrap admin already present", slog.String("email", email))

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	hash, err := srv.hasher.Hash(srv.bootstrap.AdminPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	name := strings.TrimSpace(srv.bootstrap.AdminName)
	if name == "" {
		name = "Administrator"
	}

	admin := &entity.User{
		Name:         name,
		Email:        email,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		PasswordHash: hash,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().CreateUser(ctx, admin)
	})
	// Another instance may have created it between the lookup and the insert.
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}
	srv.log(ctx).Info("Bootstrap admin created", slog.String("email", email))

	return nil
}

func (srv *authService) findUser(
	ctx context.Context,
	find func(repo repository.UserRepository) (*entity.User, error),
) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.ReadSnapshot(ctx, func(snapshot repository.RepositoryFactory) error {
		var findErr error
		user, findErr = find(snapshot.UserRepo())

		return findErr
	})

	return user, err
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.Identity())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package user

import (
	"context"

	"go.uber.org/zap"

	domain "users-service/internal/domain/user"
	"users-service/pkg/logger"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., MongoDB, PostgreSQL) to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, name, email string) (*domain.User, error) // Persist a new user
	FindAll(ctx context.Context) ([]domain.User, error)                   // Every persisted user
}

// UserUsecase forwards user operations to the repository.
// It holds no state besides its collaborators.
type UserUsecase struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of UserUsecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *UserUsecase {
	return &UserUsecase{repo: r, log: log}
}

// CreateUser persists a user and returns it with the store-assigned ID.
// Storage errors are returned unchanged.
func (uc *UserUsecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	u, err := uc.repo.Create(ctx, in.Name, in.Email)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return toDTO(*u), nil
}

// ListUsers returns every persisted user in store order.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]User, error) {
	log := logger.WithContext(ctx, uc.log)
	log.Info("listing users")

	domainUsers, err := uc.repo.FindAll(ctx)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = *toDTO(du)
	}

	log.Debug("listed users", zap.Int("count", len(users)))
	return users, nil
}

func toDTO(u domain.User) *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/finvault/finvault/internal/domain"
)

// UserUseCase manages the user directory. It only maintains directory
// entries; the ledger core consults it through UserDirectory.Exists.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
	metrics  MetricsRecorder
}

// NewUserUseCase creates a new UserUseCase. metrics may be nil.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator, metrics MetricsRecorder) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
		metrics:  metrics,
	}
}

// CreateUserInput represents input for creating a directory entry.
type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUser registers a new directory entry.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.UserCreated()
	}

	return user, nil
}

// GetUser retrieves a directory entry by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

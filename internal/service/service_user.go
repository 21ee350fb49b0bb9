package service

import (
	"context"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) List(ctx context.Context) ([]models.User, error) {
	return u.userRepository.List(ctx)
}

func (u *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.Get(ctx, id)
}

func (u *userService) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	user, err := u.userRepository.Create(ctx, input.Trimmed())
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (u *userService) Update(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	return u.userRepository.Update(ctx, id, input.Trimmed())
}

func (u *userService) Delete(ctx context.Context, id int64) error {
	if err := u.userRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

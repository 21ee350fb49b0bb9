package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/MKhiriev/user-directory/models"
)

// UserValidationService rejects malformed ids and input before they reach
// the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) List(ctx context.Context) ([]models.User, error) {
	return v.inner.List(ctx)
}

func (v *UserValidationService) Get(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidUserID
	}
	return v.inner.Get(ctx, id)
}

func (v *UserValidationService) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, input)
}

func (v *UserValidationService) Update(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidUserID
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, id, input)
}

func (v *UserValidationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return v.inner.Delete(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

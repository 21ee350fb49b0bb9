package service

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// UserService is the server-side business contract for directory users.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, input models.UserInput) (models.User, error)
	Update(ctx context.Context, id int64, input models.UserInput) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// AppInfoService reports what build of the server is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the backend can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

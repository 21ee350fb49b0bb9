package service

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_user_service_mock.go -package=mock

// ClientUserService is what the terminal client uses to reach the
// directory. Create and Update validate input locally first; invalid input
// never reaches the network and fails with a [*ValidationError].
type ClientUserService interface {
	// List fetches the full record set.
	List(ctx context.Context) ([]models.User, error)

	// Get fetches one record.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create validates input and stores a new record.
	Create(ctx context.Context, input models.UserInput) (models.User, error)

	// Update validates input and replaces the record with id.
	Update(ctx context.Context, id int64, input models.UserInput) (models.User, error)

	// Delete removes the record with id.
	Delete(ctx context.Context, id int64) error

	// Validate checks the given fields of input (all when none given) and
	// returns the failures keyed by field. A nil map means input is valid.
	Validate(ctx context.Context, input models.UserInput, fields ...string) map[string]error
}

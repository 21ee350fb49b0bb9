package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"testing"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/mock"
	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/MKhiriev/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerate(t *testing.T) {
	users := Generate(50, testRand())
	require.Len(t, users, 50)

	v := validators.NewUserValidator()
	emails := make(map[string]struct{}, len(users))
	for _, u := range users {
		require.NoError(t, v.Validate(context.Background(), u), u)
		emails[u.Email] = struct{}{}
	}
	assert.Len(t, emails, 50)
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate(10, testRand()), Generate(10, testRand()))
	assert.Empty(t, Generate(0, testRand()))
}

func TestSeeder_Run(t *testing.T) {
	users := []models.UserInput{
		{Name: "Anna Berg", Email: "anna.berg.1@example.com"},
		{Name: "Boris Novak", Email: "boris.novak.2@example.com"},
		{Name: "Clara Weber", Email: "clara.weber.3@example.com"},
	}

	t.Run("rejected users are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		services := mock.NewMockClientUserService(ctrl)
		gomock.InOrder(
			services.EXPECT().Create(gomock.Any(), users[0]).Return(models.User{ID: 1}, nil),
			services.EXPECT().Create(gomock.Any(), users[1]).Return(models.User{}, adapter.NewAPIError(http.StatusConflict, "email already exists")),
			services.EXPECT().Create(gomock.Any(), users[2]).Return(models.User{ID: 3}, nil),
		)

		report, err := NewSeeder(services, logger.Nop()).Run(context.Background(), users)
		require.NoError(t, err)
		assert.Equal(t, Report{Created: 2, Failed: 1}, report)
	})

	t.Run("unreachable server stops the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		services := mock.NewMockClientUserService(ctrl)
		services.EXPECT().Create(gomock.Any(), users[0]).
			Return(models.User{}, fmt.Errorf("%w: connection refused", adapter.ErrTransport))

		report, err := NewSeeder(services, logger.Nop()).Run(context.Background(), users)
		require.ErrorIs(t, err, adapter.ErrTransport)
		assert.Equal(t, Report{}, report)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		services := mock.NewMockClientUserService(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewSeeder(services, logger.Nop()).Run(ctx, users)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestSeeder_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock.NewMockClientUserService(ctrl)
	services.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{ID: 1}, nil).Times(5)

	seeder := NewSeeder(services, logger.Nop())
	report, err := seeder.Seed(context.Background(), 5, testRand())
	require.NoError(t, err)
	assert.Equal(t, 5, report.Created)

	_, err = seeder.Seed(context.Background(), 0, testRand())
	assert.ErrorIs(t, err, ErrInvalidCount)
}

// Package seed fills a running directory with generated demo users.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/models"
)

var ErrInvalidCount = errors.New("seed count must be positive")

var (
	firstNames = []string{
		"Anna", "Boris", "Clara", "Daniel", "Elena", "Felix", "Greta", "Hugo",
		"Irina", "Jonas", "Katrin", "Leon", "Maria", "Nikolai", "Olga", "Pavel",
		"Rosa", "Stefan", "Tamara", "Viktor", "Anna-Maria", "Jean-Luc",
	}
	lastNames = []string{
		"Berg", "Ivanova", "Keller", "Lindqvist", "Morozov", "Novak", "Orlova",
		"Petersen", "Quinn", "Romanov", "Schmidt", "Sokolova", "Turner",
		"Volkov", "Weber", "Zaitseva", "Smith-Jones",
	}
)

// Generate returns n users. Names are drawn from rnd; each e-mail carries
// the position of its user, so addresses never repeat within one batch.
func Generate(n int, rnd *rand.Rand) []models.UserInput {
	users := make([]models.UserInput, 0, n)
	for i := range n {
		first := firstNames[rnd.IntN(len(firstNames))]
		last := lastNames[rnd.IntN(len(lastNames))]

		users = append(users, models.UserInput{
			Name:  first + " " + last,
			Email: fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
		})
	}
	return users
}

// Report counts the outcome of a Run.
type Report struct {
	Created int
	Failed  int
}

// Seeder creates generated users through the client service.
type Seeder struct {
	users  service.ClientUserService
	logger *logger.Logger
}

func NewSeeder(users service.ClientUserService, logger *logger.Logger) *Seeder {
	return &Seeder{
		users:  users,
		logger: logger.WithComponent("seed"),
	}
}

// Run creates users in order. A rejected user is logged and skipped. Run
// stops when ctx is done or the server cannot be reached.
func (s *Seeder) Run(ctx context.Context, users []models.UserInput) (Report, error) {
	var report Report
	for i, input := range users {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		created, err := s.users.Create(ctx, input)
		if err != nil {
			if errors.Is(err, adapter.ErrTransport) {
				return report, fmt.Errorf("create user %d: %w", i+1, err)
			}
			report.Failed++
			s.logger.Warn().Err(err).Str("email", input.Email).Msg("user rejected")
			continue
		}

		report.Created++
		s.logger.Info().Int64("id", created.ID).Str("name", created.Name).Str("email", created.Email).Msg("user created")
	}
	return report, nil
}

// Seed generates count users with rnd and creates them.
func (s *Seeder) Seed(ctx context.Context, count int, rnd *rand.Rand) (Report, error) {
	if count <= 0 {
		return Report{}, ErrInvalidCount
	}
	return s.Run(ctx, Generate(count, rnd))
}

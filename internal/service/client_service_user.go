package service

import (
	"context"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/MKhiriev/user-directory/models"
	"github.com/rs/zerolog"
)

type clientUserService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	traceIDs      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientUserService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientUserService {
	return &clientUserService{
		serverAdapter: serverAdapter,
		validator:     validators.NewUserValidator(),
		traceIDs:      utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// traced attaches a trace id to ctx unless it already has one, so the
// client log and the server log of one operation can be matched.
func (s *clientUserService) traced(ctx context.Context, op string) (context.Context, *logger.Logger) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = s.traceIDs.Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}

	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("op", op)
	})
	return ctx, l
}

func (s *clientUserService) List(ctx context.Context) ([]models.User, error) {
	ctx, log := s.traced(ctx, "list")

	users, err := s.serverAdapter.List(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list users")
		return nil, err
	}

	log.Debug().Int("count", len(users)).Msg("users listed")
	return users, nil
}

func (s *clientUserService) Get(ctx context.Context, id int64) (models.User, error) {
	ctx, log := s.traced(ctx, "get")

	user, err := s.serverAdapter.Get(ctx, id)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("failed to get user")
		return models.User{}, err
	}
	return user, nil
}

func (s *clientUserService) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	input = input.Trimmed()
	if fields := s.Validate(ctx, input); fields != nil {
		return models.User{}, &ValidationError{Fields: fields}
	}

	ctx, log := s.traced(ctx, "create")

	user, err := s.serverAdapter.Create(ctx, input)
	if err != nil {
		log.Err(err).Msg("failed to create user")
		return models.User{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *clientUserService) Update(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	input = input.Trimmed()
	if fields := s.Validate(ctx, input); fields != nil {
		return models.User{}, &ValidationError{Fields: fields}
	}

	ctx, log := s.traced(ctx, "update")

	user, err := s.serverAdapter.Update(ctx, id, input)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("failed to update user")
		return models.User{}, err
	}

	log.Info().Int64("user_id", id).Msg("user updated")
	return user, nil
}

func (s *clientUserService) Delete(ctx context.Context, id int64) error {
	ctx, log := s.traced(ctx, "delete")

	if err := s.serverAdapter.Delete(ctx, id); err != nil {
		log.Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *clientUserService) Validate(ctx context.Context, input models.UserInput, fields ...string) map[string]error {
	return validators.FieldErrors(ctx, s.validator, input, fields...)
}

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
	"github.com/go-resty/resty/v2"
)

const usersPath = "/users"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and configures the
// underlying HTTP client with it and the request timeout. Requests are never
// retried.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func userPath(id int64) string {
	return usersPath + "/" + strconv.FormatInt(id, 10)
}

// List implements [ServerAdapter] via GET /users.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)

	resp, err := h.request(ctx).
		SetResult(&users).
		Get(usersPath)
	if err != nil {
		return nil, requestError("list users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	return users, nil
}

// Get implements [ServerAdapter] via GET /users/{id}.
func (h *httpServerAdapter) Get(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetResult(&user).
		Get(userPath(id))
	if err != nil {
		return models.User{}, requestError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Create implements [ServerAdapter]. POST /users only answers with the new
// id, so the stored record is fetched afterwards. If that fetch fails the
// user is assembled from input and the id.
func (h *httpServerAdapter) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	var created models.CreateUserResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&created).
		Post(usersPath)
	if err != nil {
		return models.User{}, requestError("create user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	user, err := h.Get(ctx, created.UserID)
	if err != nil {
		h.logger.Warn().Err(err).Int64("user_id", created.UserID).Msg("created user could not be fetched")
		return models.User{ID: created.UserID, Name: input.Name, Email: input.Email}, nil
	}

	return user, nil
}

// Update implements [ServerAdapter] via PUT /users/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&user).
		Put(userPath(id))
	if err != nil {
		return models.User{}, requestError("update user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Delete implements [ServerAdapter] via DELETE /users/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(userPath(id))
	if err != nil {
		return requestError("delete user", err)
	}

	return mapHTTPError(resp)
}

// request starts a call whose successful body is always decoded as JSON,
// whatever Content-Type the server answered with.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		ForceContentType("application/json")
}

// requestError tells a body that arrived but could not be decoded apart
// from a request that got no answer.
func requestError(op string, err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s: %w", ErrDecodingResponse, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

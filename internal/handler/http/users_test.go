package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/user-directory/internal/app"
	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/mock"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/MKhiriev/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	router  http.Handler
	users   *mock.MockUserService
	appInfo *mock.MockAppInfoService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := testEnv{
		users:   mock.NewMockUserService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{UserService: env.users, AppInfoService: env.appInfo}
	env.router = NewHandler(services, config.ServerServer{RequestTimeout: 5 * time.Second}, logger.Nop()).Init()

	return env
}

func (e testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// ── GET /users ───────────────────────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	env.users.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: 1, Name: "Anna", Email: "anna@example.com", CreatedAt: models.NewTimestamp(created)},
		{ID: 2, Name: "Boris", Email: "b@mail.ru"},
	}, nil)

	rr := env.do(http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"id":1,"name":"Anna","email":"anna@example.com","created_at":"2024-05-01T09:00:00Z"},
		{"id":2,"name":"Boris","email":"b@mail.ru","created_at":null}
	]`, rr.Body.String())
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := env.do(http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListUsers_StorageFailure(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("%w: timeout", store.ErrExecutingQuery))

	rr := env.do(http.MethodGet, "/users", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}

// ── GET /users/{id} ──────────────────────────────────────────────────────────

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(env testEnv)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "found",
			target: "/users/7",
			setup: func(env testEnv) {
				env.users.EXPECT().Get(gomock.Any(), int64(7)).Return(models.User{ID: 7, Name: "Anna", Email: "a@b.co"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":7,"name":"Anna","email":"a@b.co","created_at":null}`,
		},
		{
			name:   "missing",
			target: "/users/8",
			setup: func(env testEnv) {
				env.users.EXPECT().Get(gomock.Any(), int64(8)).Return(models.User{}, store.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"user not found"}`,
		},
		{
			name:       "not a number",
			target:     "/users/abc",
			setup:      func(testEnv) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid user id"}`,
		},
		{
			name:       "zero",
			target:     "/users/0",
			setup:      func(testEnv) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid user id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env)

			rr := env.do(http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ── POST /users ──────────────────────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().
		Create(gomock.Any(), models.UserInput{Name: "Anna", Email: "anna@example.com"}).
		Return(models.User{ID: 12, Name: "Anna", Email: "anna@example.com"}, nil)

	rr := env.do(http.MethodPost, "/users", `{"name":"Anna","email":"anna@example.com"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"user created","user_id":12}`, rr.Body.String())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{name: "malformed json", body: `{"name":`, wantStatus: http.StatusBadRequest, wantError: app.MsgInvalidDataProvided},
		{name: "wrong shape", body: `["Anna"]`, wantStatus: http.StatusBadRequest, wantError: app.MsgInvalidDataProvided},
		{
			name:       "validation",
			body:       `{"name":"A","email":"a@b.co"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNameInvalid),
			wantStatus: http.StatusBadRequest,
			wantError:  validators.ErrNameInvalid.Error(),
		},
		{
			name:       "email too long",
			body:       `{"name":"Anna","email":"a@b.co"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmailTooLong),
			wantStatus: http.StatusBadRequest,
			wantError:  validators.ErrEmailTooLong.Error(),
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Anna","email":"dup@b.co"}`,
			serviceErr: store.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantError:  app.MsgEmailAlreadyExists,
		},
		{
			name:       "unexpected",
			body:       `{"name":"Anna","email":"a@b.co"}`,
			serviceErr: errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.serviceErr != nil {
				env.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := env.do(http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rr.Body.String())
		})
	}
}

// ── PUT /users/{id} ──────────────────────────────────────────────────────────

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	in := models.UserInput{Name: "Boris", Email: "b@mail.ru"}
	env.users.EXPECT().Update(gomock.Any(), int64(2), in).Return(models.User{ID: 2, Name: in.Name, Email: in.Email}, nil)

	rr := env.do(http.MethodPut, "/users/2", `{"name":"Boris","email":"b@mail.ru"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":2,"name":"Boris","email":"b@mail.ru","created_at":null}`, rr.Body.String())
}

func TestUpdateUser_Errors(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

		rr := env.do(http.MethodPut, "/users/2", `{"name":"Boris","email":"b@mail.ru"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id is checked before the body", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(http.MethodPut, "/users/-3", `not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"invalid user id"}`, rr.Body.String())
	})
}

// ── DELETE /users/{id} ───────────────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		rr := env.do(http.MethodDelete, "/users/4", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"user deleted"}`, rr.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().Delete(gomock.Any(), int64(4)).Return(store.ErrUserNotFound)

		rr := env.do(http.MethodDelete, "/users/4", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// ── Routing ──────────────────────────────────────────────────────────────────

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodPatch, target: "/users"},
		{method: http.MethodPatch, target: "/users/3"},
		{method: http.MethodPost, target: "/users/3"},
		{method: http.MethodPost, target: "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(tt.method, tt.target, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Not Found"}`, rr.Body.String())
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.2.3", BuildDate: "N/A", BuildCommit: "abc"})

	rr := env.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","build_date":"N/A","build_commit":"abc"}`, rr.Body.String())
}

func TestRecoversFromPanic(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().List(gomock.Any()).DoAndReturn(func(any) ([]models.User, error) {
		panic("boom")
	})

	rr := env.do(http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

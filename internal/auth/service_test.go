package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rfmachado/backoffice/internal/auth"
)

func TestService_Init(t *testing.T) {
	t.Run("BootstrapsFirstUser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)

		repo.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				u.ID = uuid.New()
				assert.Equal(t, "admin@acme.com", u.Email)
				assert.NotEqual(t, "s3cret123", u.PasswordHash)
				return nil
			})

		svc := auth.NewService(repo, auth.NewTokenService("test-secret", 60))

		user, err := svc.Init(context.Background(), auth.InitParams{
			Name:     "Admin",
			Email:    " Admin@Acme.com ",
			Password: "s3cret123",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("ConflictsOnceInitialized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)

		repo.EXPECT().CountUsers(gomock.Any()).Return(1, nil)

		svc := auth.NewService(repo, auth.NewTokenService("test-secret", 60))

		_, err := svc.Init(context.Background(), auth.InitParams{
			Email:    "admin@acme.com",
			Password: "s3cret123",
		})
		assert.ErrorIs(t, err, auth.ErrAlreadyInitialized)
	})
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &auth.User{
		ID:           uuid.New(),
		Email:        "admin@acme.com",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)
		tokens := auth.NewTokenService("test-secret", 60)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@acme.com").Return(user, nil)

		svc := auth.NewService(repo, tokens)

		token, err := svc.Login(context.Background(), "admin@acme.com", "s3cret123")
		require.NoError(t, err)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@acme.com").Return(user, nil)

		svc := auth.NewService(repo, auth.NewTokenService("test-secret", 60))

		_, err := svc.Login(context.Background(), "admin@acme.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := auth.NewMockRepository(ctrl)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@acme.com").Return(nil, auth.ErrNotFound)

		svc := auth.NewService(repo, auth.NewTokenService("test-secret", 60))

		_, err := svc.Login(context.Background(), "nobody@acme.com", "s3cret123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestTokenService_Verify(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)
	userID := uuid.New()

	token, err := tokens.Generate(userID, "admin@acme.com")
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := auth.NewTokenService("other-secret", 60)

		_, err := other.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tokens.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 60)
	userID := uuid.New()

	handler := auth.RequireAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, userID.String(), claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tokens.Generate(userID, "admin@acme.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/health-plans", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health-plans", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health-plans", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

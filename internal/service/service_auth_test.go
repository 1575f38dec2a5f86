// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nurse-notes/internal/config"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/mock"
	"github.com/MKhiriev/nurse-notes/internal/store"
	"github.com/MKhiriev/nurse-notes/internal/utils"
	"github.com/MKhiriev/nurse-notes/models"
)

var testAuthCfg = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "nurse-notes-auth",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAuthCfg, logger.Nop()), repo
}

func TestAuthService_RegisterUser(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "ann@example.com", u.Email)
			assert.Equal(t, "nurse", u.Role)
			assert.Empty(t, u.Password, "plaintext password must not reach the repository")
			assert.NoError(t, utils.CheckPassword(u.PasswordHash, "secret"))
			u.UserID = "u-1"
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Email: " Ann@Example.com ", Password: "secret", FullName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}

func TestAuthService_RegisterUser_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	for _, user := range []models.User{
		{Email: "ann@example.com"},
		{Password: "secret"},
		{Email: "not-an-email", Password: "secret"},
	} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "ann@example.com", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	stored := models.User{UserID: "u-1", Email: "ann@example.com", PasswordHash: hash}

	tests := []struct {
		name    string
		creds   models.Credentials
		setup   func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:  "success",
			creds: models.Credentials{Email: "ANN@example.com", Password: "secret"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
			},
		},
		{
			name:  "wrong password",
			creds: models.Credentials{Email: "ann@example.com", Password: "nope"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "unknown email",
			creds: models.Credentials{Email: "ghost@example.com", Password: "secret"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "repository failure",
			creds: models.Credentials{Email: "ann@example.com", Password: "secret"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(models.User{}, store.ErrScanningRow)
			},
			wantErr: store.ErrScanningRow,
		},
		{
			name:    "empty password",
			creds:   models.Credentials{Email: "ann@example.com"},
			setup:   func(repo *mock.MockUserRepository) {},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)
			tt.setup(repo)

			user, err := svc.Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", user.UserID)
		})
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Profile(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	repo.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{UserID: "u-1", Email: "ann@example.com", PasswordHash: "h"}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), "u-2").Return(models.User{}, store.ErrNoUserWasFound)

	profile, err := svc.Profile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{ID: "u-1", Email: "ann@example.com"}, profile)

	_, err = svc.Profile(context.Background(), "u-2")
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

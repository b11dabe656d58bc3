package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/mocks"
	apperrors "slidealbum-service/app/utils/errors"
	"slidealbum-service/app/utils/logger"
)

func testSessionContext() *domain.SessionContext {
	return &domain.SessionContext{
		Token: "tok-123",
		Identity: domain.Identity{
			ID:        42,
			Username:  "jdoe",
			Customers: []string{"acme"},
		},
	}
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mocks.MockAuthGateway, *mocks.MockSessionStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewAuthUseCase(gateway, sessions, testLogger), gateway, sessions
}

func TestAuthUseCase_Login(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockAuthGateway, *mocks.MockSessionStore)
		wantErr    bool
	}{
		{
			name: "successful login establishes session",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sc := testSessionContext()
				gateway.EXPECT().Login(gomock.Any(), "jdoe", "secret").Return(sc, nil)
				sessions.EXPECT().Establish("handle-1", *sc)
			},
		},
		{
			name: "failed login leaves no session",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				gateway.EXPECT().Login(gomock.Any(), "jdoe", "secret").
					Return(nil, apperrors.ErrInvalidCredentials)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gateway, sessions := newAuthUseCase(t)
			tt.setupMocks(gateway, sessions)

			sc, err := uc.Login(context.Background(), "handle-1", "jdoe", "secret")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, sc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, sc)
				assert.Equal(t, "jdoe", sc.Identity.Username)
			}
		})
	}
}

func TestAuthUseCase_Logout(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockAuthGateway, *mocks.MockSessionStore)
		wantErrCode apperrors.ErrorCode
	}{
		{
			name: "confirmed revocation clears session",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sessions.EXPECT().Current("handle-1").Return(*testSessionContext(), true)
				gateway.EXPECT().Logout(gomock.Any(), "tok-123").Return(nil)
				sessions.EXPECT().Clear("handle-1")
			},
		},
		{
			name: "local session cleared even when revocation fails",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sessions.EXPECT().Current("handle-1").Return(*testSessionContext(), true)
				gateway.EXPECT().Logout(gomock.Any(), "tok-123").
					Return(apperrors.ErrAuthServiceUnavailable)
				sessions.EXPECT().Clear("handle-1")
			},
		},
		{
			name: "unknown handle",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sessions.EXPECT().Current("handle-1").Return(domain.SessionContext{}, false)
			},
			wantErrCode: apperrors.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gateway, sessions := newAuthUseCase(t)
			tt.setupMocks(gateway, sessions)

			err := uc.Logout(context.Background(), "handle-1")

			if tt.wantErrCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, apperrors.GetErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthUseCase_CurrentSession(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockAuthGateway, *mocks.MockSessionStore)
		wantErrCode apperrors.ErrorCode
	}{
		{
			name: "valid session",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sessions.EXPECT().Current("handle-1").Return(*testSessionContext(), true)
				gateway.EXPECT().Validate(gomock.Any(), "tok-123").Return(true)
			},
		},
		{
			name: "no session bound to handle",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sessions.EXPECT().Current("handle-1").Return(domain.SessionContext{}, false)
			},
			wantErrCode: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "invalid token clears the binding",
			setupMocks: func(gateway *mocks.MockAuthGateway, sessions *mocks.MockSessionStore) {
				sessions.EXPECT().Current("handle-1").Return(*testSessionContext(), true)
				gateway.EXPECT().Validate(gomock.Any(), "tok-123").Return(false)
				sessions.EXPECT().Clear("handle-1")
			},
			wantErrCode: apperrors.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gateway, sessions := newAuthUseCase(t)
			tt.setupMocks(gateway, sessions)

			sc, err := uc.CurrentSession(context.Background(), "handle-1")

			if tt.wantErrCode != "" {
				require.Error(t, err)
				assert.Nil(t, sc)
				assert.Equal(t, tt.wantErrCode, apperrors.GetErrorCode(err))
			} else {
				require.NoError(t, err)
				require.NotNil(t, sc)
				assert.Equal(t, "jdoe", sc.Identity.Username)
			}
		})
	}
}

package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lsantos-dev/moneta/internal/user"
)

func TestService_Ensure(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *user.MockRepository)
		wantErr   bool
	}

	id := uuid.New()

	tests := []testCase{
		{
			name: "CreatesOnFirstContact",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), "auth0|abc", "ana@example.com").
					Return(&user.User{ID: id, ExternalID: "auth0|abc", Email: "ana@example.com"}, nil)
			},
		},
		{
			name: "IdempotentOnRepeat",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), "auth0|abc", "ana@example.com").
					Times(2).
					Return(&user.User{ID: id, ExternalID: "auth0|abc", Email: "ana@example.com"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)

			first, err := svc.Ensure(context.Background(), "auth0|abc", "ana@example.com")
			assert.NoError(t, err)
			assert.Equal(t, id, first.ID)

			if tt.name == "IdempotentOnRepeat" {
				second, err := svc.Ensure(context.Background(), "auth0|abc", "ana@example.com")
				assert.NoError(t, err)
				assert.Equal(t, first.ID, second.ID)
			}
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetByExternalID(gomock.Any(), "auth0|abc").
					Return(&user.User{ExternalID: "auth0|abc"}, nil)
				m.EXPECT().
					UpdateProfile(gomock.Any(), "auth0|abc", "Ana").
					Return(&user.User{ExternalID: "auth0|abc", Name: "Ana"}, nil)
			},
		},
		{
			// Calling updateMe before any upsert has happened is a
			// caller ordering error and surfaces as not-found.
			name: "BeforeFirstUpsert",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetByExternalID(gomock.Any(), "auth0|abc").
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := user.NewService(repo)
			got, err := svc.UpdateProfile(context.Background(), "auth0|abc", user.UpdateProfileParams{Name: "Ana"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Ana", got.Name)
		})
	}
}

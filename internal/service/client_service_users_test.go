// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/mock"
	"github.com/MKhiriev/go-av-booking/internal/validators"
	"github.com/MKhiriev/go-av-booking/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(ctrl *gomock.Controller, user *models.User) (UserService, *mock.MockServerAdapter) {
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewUserService(serverAdapter, staticSession{user: user}, logger.Nop()), serverAdapter
}

func TestUserService_RequiresAdmin(t *testing.T) {
	tests := []struct {
		name    string
		user    *models.User
		wantErr error
	}{
		{name: "signed out", user: nil, wantErr: ErrNotAuthenticated},
		{name: "teacher", user: &teacherChan, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestUserService(ctrl, tt.user)
			ctx := context.Background()

			_, err := svc.List(ctx)
			assert.ErrorIs(t, err, tt.wantErr)
			_, err = svc.Add(ctx, models.NewUser{Name: "A", Username: "a", Role: models.RoleTeacher, Password: "p"})
			assert.ErrorIs(t, err, tt.wantErr)
			_, err = svc.Update(ctx, models.UserUpdate{ID: 2, Name: "A", Role: models.RoleTeacher})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, svc.Delete(ctx, 2), tt.wantErr)
		})
	}
}

func TestUserService_List_StripsSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestUserService(ctrl, &adminUser)

	withSecret := teacherChan
	withSecret.Password = "pw"
	serverAdapter.EXPECT().GetUsers(gomock.Any()).Return([]models.User{adminUser, withSecret}, nil)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{adminUser, teacherChan}, users)
}

func TestUserService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestUserService(ctrl, &adminUser)

	serverAdapter.EXPECT().
		AddUser(gomock.Any(), models.NewUser{Name: "Mr Lee", Username: "lee", Role: models.RoleTeacher, Password: "pw"}).
		Return(models.User{ID: 9, Name: "Mr Lee", Username: "lee", Role: models.RoleTeacher, Password: "pw"}, nil)

	created, err := svc.Add(context.Background(), models.NewUser{Name: " Mr Lee ", Username: "lee ", Role: models.RoleTeacher, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Empty(t, created.Password)
}

func TestUserService_Add_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestUserService(ctrl, &adminUser)

	_, err := svc.Add(context.Background(), models.NewUser{Name: "X", Username: "two words", Role: models.RoleTeacher, Password: "pw"})
	assert.ErrorIs(t, err, validators.ErrInvalidUsername)

	_, err = svc.Add(context.Background(), models.NewUser{Name: "X", Username: "x", Role: "owner", Password: "pw"})
	assert.ErrorIs(t, err, validators.ErrInvalidRole)
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestUserService(ctrl, &adminUser)

	serverAdapter.EXPECT().
		UpdateUser(gomock.Any(), models.UserUpdate{ID: 2, Name: "Mrs Chan", Role: models.RoleAdmin}).
		Return(models.User{ID: 2, Name: "Mrs Chan", Username: "chan", Role: models.RoleAdmin}, nil)

	updated, err := svc.Update(context.Background(), models.UserUpdate{ID: 2, Name: "Mrs Chan ", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = svc.Update(context.Background(), models.UserUpdate{ID: 0, Name: "X", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter := newTestUserService(ctrl, &adminUser)

	serverAdapter.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), 2))

	serverAdapter.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(&adapter.RemoteError{Action: "deleteUser", Message: "User not found"})
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), adapter.ErrRemote)

	// удалить самого себя нельзя
	assert.ErrorIs(t, svc.Delete(context.Background(), adminUser.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), -4), validators.ErrInvalidID)
}

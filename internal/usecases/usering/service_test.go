package usering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/dataErrors"
	"go.uber.org/mock/gomock"
)

func TestService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo)

	t.Run("Retorna o usuário encontrado pelo email", func(t *testing.T) {
		expected := &domain.User{
			ID:       "usr001",
			Name:     "Admin User",
			Email:    "user@nextmail.com",
			Password: "$2a$10$abcdefghijklmnopqrstuv",
		}

		mockUserRepo.EXPECT().
			GetUserByEmail("user@nextmail.com").
			Return(expected, nil)

		user, err := service.GetUser("user@nextmail.com")

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Usuário inexistente retorna nil sem erro", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ghost@nextmail.com").
			Return(nil, nil)

		user, err := service.GetUser("ghost@nextmail.com")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Falha de consulta vira ErrUserFetch, sem vazar a causa", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("user@nextmail.com").
			Return(nil, errors.New("relation users does not exist"))

		user, err := service.GetUser("user@nextmail.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserFetch)
		assert.Equal(t, dataErrors.ErrUserLookup, dataErrors.CodeOf(err))
		assert.NotContains(t, err.Error(), "relation")
	})
}

package usering

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/dataErrors"
)

type Userer interface {
	GetUser(email string) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Userer {
	return &Service{
		userRepo: userRepo,
	}
}

// GetUser busca o usuário pelo email exato. Usuário inexistente retorna nil
// sem erro — ausência é um resultado válido, não uma falha. Falhas de
// consulta são logadas com a causa e expostas apenas como ErrUserFetch.
func (s *Service) GetUser(email string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "getUser")).
			Error("Erro ao consultar usuário")
		return nil, dataErrors.NewQueryError(ErrUserFetch, dataErrors.ErrUserLookup, "")
	}

	return user, nil
}

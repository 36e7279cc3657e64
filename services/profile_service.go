//go:generate go run go.uber.org/mock/mockgen -source=profile_service.go -destination=../mocks/mock_profile_service.go -package=mocks
package services

import (
	"github.com/samber/lo"

	"chat-direct/domain"
	"chat-direct/repositories"
)

type IProfileService interface {
	Roster(callerID string) ([]domain.User, error)
	Profile(id string) (domain.User, error)
	UpdateProfile(id string, update repositories.ProfileUpdate) (domain.User, error)
}

// ProfileService is thin request/response plumbing over the identity
// store; presence fields are read here but only ever written by the
// presence path.
type ProfileService struct {
	users repositories.IUserRepository
}

func NewProfileService(users repositories.IUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Roster(callerID string) ([]domain.User, error) {
	accounts, err := s.users.List(callerID)
	if err != nil {
		return nil, err
	}
	return lo.Map(accounts, func(account repositories.Account, _ int) domain.User {
		return account.ToUser()
	}), nil
}

func (s *ProfileService) Profile(id string) (domain.User, error) {
	account, err := s.users.GetByID(id)
	if err != nil {
		return domain.User{}, err
	}
	return account.ToUser(), nil
}

func (s *ProfileService) UpdateProfile(id string, update repositories.ProfileUpdate) (domain.User, error) {
	account, err := s.users.UpdateProfile(id, update)
	if err != nil {
		return domain.User{}, err
	}
	return account.ToUser(), nil
}

package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/policy"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) findUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUser reads a single user record: admins may fetch anyone, everyone
// else only themselves.
func (s *UserService) GetUser(actor *policy.Actor, id uint) (*model.User, error) {
	if actor == nil {
		return nil, util.ErrUnauthenticated
	}
	if decision := policy.CanViewUser(actor, id); !decision.Allowed {
		return nil, util.Forbidden(decision.Reason)
	}
	return s.findUser(id)
}

// ListUsers returns every user for admins; everyone else sees only their
// own record.
func (s *UserService) ListUsers(actor *policy.Actor, search string, page, limit int) ([]model.User, int64, error) {
	if actor == nil {
		return nil, 0, util.ErrUnauthenticated
	}

	if policy.IsAdmin(actor) {
		return s.UserRepo.List(search, page, limit)
	}

	user, err := s.findUser(actor.ID)
	if err != nil {
		return nil, 0, err
	}
	return []model.User{*user}, 1, nil
}

func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

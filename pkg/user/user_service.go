package user

import (
	"context"
	"errors"

	"github.com/NotFish232/Conrad-2023/domain"
	"github.com/NotFish232/Conrad-2023/entities"
	"gorm.io/gorm"
)

type (
	UserService interface {
		AddUser(ctx context.Context, req domain.AddUserRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context) (domain.UsersResponse, error)
		GetUser(ctx context.Context, id uint) (domain.UserDetailResponse, error)
		DeleteUser(ctx context.Context, id uint) error

		// Authorize is the credential gate in front of every other
		// operation. Exact match against the stored pair, nothing more.
		Authorize(ctx context.Context, username, password string) error
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) AddUser(ctx context.Context, req domain.AddUserRequest) (domain.UserResponse, error) {
	count, err := s.userRepository.CountByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if count > 0 {
		return domain.UserResponse{}, domain.ErrCredentialsTaken
	}

	user := &entities.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := s.userRepository.AddUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		Username: user.Username,
		Email:    user.Email,
		ID:       user.ID,
	}, nil
}

func (s *userService) GetUsers(ctx context.Context) (domain.UsersResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return domain.UsersResponse{}, err
	}

	res := domain.UsersResponse{Users: make([]domain.UserResponse, 0, len(users))}
	for _, u := range users {
		res.Users = append(res.Users, domain.UserResponse{
			Username: u.Username,
			Email:    u.Email,
			ID:       u.ID,
		})
	}
	res.Count = len(res.Users)
	return res, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (domain.UserDetailResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserDetailResponse{}, domain.ErrUserNotFound
		}
		return domain.UserDetailResponse{}, err
	}

	return domain.UserDetailResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func (s *userService) Authorize(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingCredentials
	}
	if _, err := s.userRepository.GetUserByCredentials(ctx, username, password); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	return nil
}

package service

import (
	"time"

	"gorm.io/datatypes"

	"teamup/internal/dto"
	"teamup/internal/model"
	"teamup/internal/repository"
	pkgErrors "teamup/pkg/errors"
)

type UserService interface {
	GetByID(id int64) (*dto.UserResponse, error)
	Update(id int64, req *dto.UserUpdateRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) Update(id int64, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil && *req.Nickname != user.Nickname {
		if _, err := s.userRepo.FindByNickname(*req.Nickname); err == nil {
			return nil, pkgErrors.ErrNicknameExists
		} else if err != pkgErrors.ErrUserNotFound {
			return nil, err
		}
		user.Nickname = *req.Nickname
	}
	if req.Position != nil {
		position := model.Position(*req.Position)
		user.Position = &position
	}
	if req.Introduction != nil {
		user.Introduction = req.Introduction
	}
	if req.Skills != nil {
		user.Skills = datatypes.NewJSONSlice(req.Skills)
	}
	if req.IsSeekingTeam != nil {
		user.IsSeekingTeam = *req.IsSeekingTeam
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *model.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Nickname:      user.Nickname,
		Introduction:  user.Introduction,
		Skills:        []string(user.Skills),
		Rating:        user.Rating,
		ReviewCnt:     user.ReviewCnt,
		IsSeekingTeam: user.IsSeekingTeam,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
	if user.Position != nil {
		p := string(*user.Position)
		resp.Position = &p
	}
	return resp
}

func toUserSimpleResponse(user *model.User) *dto.UserSimpleResponse {
	resp := &dto.UserSimpleResponse{
		ID:       user.ID,
		Nickname: user.Nickname,
		Rating:   user.Rating,
	}
	if user.Position != nil {
		p := string(*user.Position)
		resp.Position = &p
	}
	return resp
}

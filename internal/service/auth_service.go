package service

import (
	"time"

	"teamup/internal/dto"
	"teamup/internal/model"
	"teamup/internal/pkg/config"
	"teamup/internal/pkg/crypto"
	"teamup/internal/pkg/jwt"
	"teamup/internal/repository"
	"teamup/pkg/constants"
	pkgErrors "teamup/pkg/errors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	cfg      *config.AuthConfig
	userRepo repository.UserRepository
}

func NewAuthService(cfg *config.AuthConfig, userRepo repository.UserRepository) AuthService {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, pkgErrors.ErrUsernameExists
	} else if err != pkgErrors.ErrUserNotFound {
		return nil, err
	}
	if _, err := s.userRepo.FindByNickname(req.Nickname); err == nil {
		return nil, pkgErrors.ErrNicknameExists
	} else if err != pkgErrors.ErrUserNotFound {
		return nil, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	user := &model.User{
		Username:      req.Username,
		Password:      hash,
		Nickname:      req.Nickname,
		IsSeekingTeam: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if err == pkgErrors.ErrUserNotFound {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}
	if user.Status != constants.StatusEnabled {
		return nil, pkgErrors.ErrForbidden
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *authService) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != constants.JWTTypeRefresh {
		return nil, pkgErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Nickname)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "生成Token失败", err)
	}
	refreshToken, err := jwt.GenerateRefreshToken(user.ID, user.Username, user.Nickname)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeAuthError, "生成Token失败", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.JWT.AccessTokenExpire,
		User: &dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Nickname: user.Nickname,
		},
	}, nil
}

package usecase

import (
	"errors"

	"github.com/jobpilot/resume-tracker/internal/auth"
	"github.com/jobpilot/resume-tracker/internal/config"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown accounts and wrong passwords,
// so login responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUsecase struct {
	users UserStore
	cfg   *config.AuthConfig
}

func NewAuthUsecase(users UserStore, cfg *config.AuthConfig) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg}
}

func (uc *AuthUsecase) Register(req dto.RegisterRequest) (*dto.UserDTO, *util.FormError, error) {
	if formErr := util.ValidateStruct(req); formErr != nil {
		return nil, formErr, nil
	}

	_, err := uc.users.FindByUsername(req.Username)
	if err == nil {
		return nil, util.FieldError("username", "A user with that username already exists."), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, nil, err
	}

	return &dto.UserDTO{ID: user.ID, Username: user.Username, Email: user.Email}, nil, nil
}

func (uc *AuthUsecase) Login(req dto.LoginRequest) (*dto.TokenResponse, *util.FormError, error) {
	if formErr := util.ValidateStruct(req); formErr != nil {
		return nil, formErr, nil
	}

	user, err := uc.users.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := auth.CreateToken(user, uc.cfg.JWTSecret, uc.cfg.TokenLifetime)
	if err != nil {
		return nil, nil, err
	}

	return &dto.TokenResponse{
		Token: token,
		User:  dto.UserDTO{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil, nil
}

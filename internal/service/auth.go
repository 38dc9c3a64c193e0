package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, userID int64) (entities.User, error)
	UpdateUser(ctx context.Context, userID int64, update entities.UserUpdate) (entities.User, error)
}

type Tokens interface {
	Sign(userID int64, role string) (string, error)
}

type authService struct {
	logger *slog.Logger
	repo   UserRepo
	tokens Tokens
}

func NewAuthService(logger *slog.Logger, repo UserRepo, tokens Tokens) *authService {
	return &authService{
		logger: logger.With(slog.String("service", "auth")),
		repo:   repo,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Email      string
	Password   string
	Phone      string
	FirstName  string
	SecondName string
	LastName   string
}

type AuthResult struct {
	Token string
	User  entities.User
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, entities.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Phone:        input.Phone,
		FirstName:    input.FirstName,
		SecondName:   input.SecondName,
		LastName:     input.LastName,
		// Сотрудников заводит администратор, самостоятельная регистрация -
		// всегда покупатель
		Role: entities.RoleCustomer,
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.Sign(user.ID, string(user.Role))
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("user registered", slog.Int64("user_id", user.ID))
	return AuthResult{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, entities.ErrUserNotFound) {
		return AuthResult{}, entities.ErrInvalidCreds
	}
	if err != nil {
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, entities.ErrInvalidCreds
	}

	token, err := s.tokens.Sign(user.ID, string(user.Role))
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return AuthResult{Token: token, User: user}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, actor entities.Actor, update entities.UserUpdate) (entities.User, error) {
	return s.repo.UpdateUser(ctx, actor.UserID, update)
}

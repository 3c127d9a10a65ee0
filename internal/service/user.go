package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/config"
	"github.com/snowshield/snow_shield_api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// SignUpInput - данные регистрации.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Pincode  string
}

// ProfilePatch - частичное обновление профиля. Email и роль через этот
// путь не меняются.
type ProfilePatch struct {
	Name    string
	Phone   string
	Pincode string
}

// TokenClaims - полезная нагрузка JWT. Содержит все, что нужно middleware
// для построения models.Session без похода в базу.
type TokenClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	Pincode  string `json:"pincode"`
	jwt.RegisteredClaims
}

// UserService определяет контракт для аутентификации и профилей
type UserService interface {
	SignUp(ctx context.Context, input SignUpInput) (*models.User, string, error)
	LogIn(ctx context.Context, email, password string) (*models.User, string, error)
	Profile(ctx context.Context, session *models.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, session *models.Session, patch ProfilePatch) (*models.User, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
	clock  clockwork.Clock
}

func NewUserService(repo UserRepository, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		clock:  clock,
	}
}

// SignUp регистрирует пользователя и выдает токен. Роль при регистрации
// всегда "user": повышение - только руками администратора в базе.
func (s *userService) SignUp(ctx context.Context, input SignUpInput) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "SignUp",
		"email":   input.Email,
	})
	log.Info("Attempting to sign up a new user")

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to check existing email")
		return nil, "", fmt.Errorf("service: could not check email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Pincode:      strings.TrimSpace(input.Pincode),
		UserType:     models.UserTypeUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User signed up successfully")
	return user, token, nil
}

// LogIn проверяет пароль и выдает токен. Отсутствие пользователя и неверный
// пароль неразличимы для вызывающего.
func (s *userService) LogIn(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "LogIn",
		"email":   email,
	})

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.WithError(err).Error("Failed to load user by email")
		return nil, "", fmt.Errorf("service: could not load user: %w", err)
	}
	if user == nil {
		return nil, "", ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Warn("Password mismatch")
		return nil, "", ErrBadCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, token, nil
}

// Profile возвращает профиль сессии. Если записи нет (например, аккаунт
// создан вне обычного потока регистрации), синтезируется и сохраняется
// профиль по умолчанию.
func (s *userService) Profile(ctx context.Context, session *models.Session) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Profile",
		"user_id": session.UserID,
	})

	user, err := s.repo.GetByID(ctx, session.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load profile")
		return nil, fmt.Errorf("service: could not load profile: %w", err)
	}
	if user != nil {
		return user, nil
	}

	log.Warn("Profile missing, synthesizing a default one")
	user = &models.User{
		ID:       session.UserID,
		Email:    session.Email,
		Name:     session.Name,
		UserType: models.UserTypeUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to persist synthesized profile")
		return nil, fmt.Errorf("service: could not persist profile: %w", err)
	}
	return user, nil
}

// UpdateProfile меняет имя, телефон и пин-код. Email и роль этим путем
// недоступны.
func (s *userService) UpdateProfile(ctx context.Context, session *models.Session, patch ProfilePatch) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateProfile",
		"user_id": session.UserID,
	})

	user, err := s.Profile(ctx, session)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		user.Name = strings.TrimSpace(patch.Name)
	}
	if patch.Phone != "" {
		user.Phone = strings.TrimSpace(patch.Phone)
	}
	if patch.Pincode != "" {
		user.Pincode = strings.TrimSpace(patch.Pincode)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update profile in repository")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated successfully")
	return user, nil
}

// issueToken подписывает HS256 JWT со сроком из конфигурации.
func (s *userService) issueToken(user *models.User) (string, error) {
	now := s.clock.Now()
	claims := TokenClaims{
		Email:    user.Email,
		Name:     user.Name,
		UserType: user.UserType,
		Pincode:  user.Pincode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

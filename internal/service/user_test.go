package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/config"
	"github.com/snowshield/snow_shield_api/internal/models"
	. "github.com/snowshield/snow_shield_api/internal/service"
	"github.com/snowshield/snow_shield_api/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

// newTestUserService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUserService(t *testing.T) (*UserServiceImpl, *mocks.MockUserRepository, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret:  testJWTSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))

	service := NewUserService(repoMock, logger, cfg, clock)
	return service.(*UserServiceImpl), repoMock, clock
}

func parseTestToken(t *testing.T, token string) *TokenClaims {
	t.Helper()
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	}, jwt.WithTimeFunc(func() time.Time {
		return time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestSignUp_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	input := SignUpInput{
		Email:    "New.User@Example.com",
		Password: "correct horse",
		Name:     "Новый пользователь",
		Pincode:  "171234",
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "new.user@example.com").Return(nil, nil).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			user.ID = uuid.New()
			// Пароль в хранилище попадает только хэшем
			assert.NotEqual(t, input.Password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))
			return nil
		}).Times(1)

	// Действие
	user, token, err := service.SignUp(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.Equal(t, models.UserTypeUser, user.UserType)

	claims := parseTestToken(t, token)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserTypeUser, claims.UserType)
}

func TestSignUp_EmailTaken(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	input := SignUpInput{
		Email:    "taken@example.com",
		Password: "correct horse",
		Name:     "Кто-то",
	}

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "taken@example.com").
		Return(&models.User{ID: uuid.New(), Email: "taken@example.com"}, nil).
		Times(1)

	// Действие
	user, token, err := service.SignUp(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestSignUp_ShortPassword(t *testing.T) {
	// Подготовка
	service, _, _ := newTestUserService(t)
	ctx := context.Background()

	// Действие: до репозитория дело не доходит
	user, token, err := service.SignUp(ctx, SignUpInput{
		Email:    "short@example.com",
		Password: "1234567",
		Name:     "Кто-то",
	})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestLogIn_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{
		ID:           uuid.New(),
		Email:        "login@example.com",
		PasswordHash: string(hash),
		Name:         "Пользователь",
		UserType:     models.UserTypeRescueTeam,
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "login@example.com").Return(stored, nil).Times(1)

	// Действие
	user, token, err := service.LogIn(ctx, "Login@Example.com", "correct horse")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, user)

	claims := parseTestToken(t, token)
	assert.Equal(t, models.UserTypeRescueTeam, claims.UserType)
}

func TestLogIn_WrongPassword(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{
		ID:           uuid.New(),
		Email:        "login@example.com",
		PasswordHash: string(hash),
	}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "login@example.com").Return(stored, nil).Times(1)

	// Действие
	user, token, err := service.LogIn(ctx, "login@example.com", "wrong horse")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestLogIn_UnknownEmail(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil).Times(1)

	// Действие: ответ неотличим от неверного пароля
	user, token, err := service.LogIn(ctx, "nobody@example.com", "whatever")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestProfile_Existing(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	session := userSession()
	stored := &models.User{ID: session.UserID, Email: session.Email}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, session.UserID).Return(stored, nil).Times(1)

	// Действие
	user, err := service.Profile(ctx, session)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestProfile_SynthesizesMissing(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	session := userSession()

	// Ожидания: записи нет - создается профиль по умолчанию с ID из сессии
	repoMock.EXPECT().GetByID(ctx, session.UserID).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, user *models.User) {
			assert.Equal(t, session.UserID, user.ID)
			assert.Equal(t, session.Email, user.Email)
			assert.Equal(t, models.UserTypeUser, user.UserType)
		}).Return(nil).Times(1)

	// Действие
	user, err := service.Profile(ctx, session)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, session.UserID, user.ID)
}

func TestUpdateProfile_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestUserService(t)
	ctx := context.Background()
	session := userSession()
	stored := &models.User{
		ID:      session.UserID,
		Email:   session.Email,
		Name:    "Старое имя",
		Pincode: "171234",
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, session.UserID).Return(stored, nil).Times(1)
	repoMock.EXPECT().Update(ctx, stored).Return(nil).Times(1)

	// Действие
	user, err := service.UpdateProfile(ctx, session, ProfilePatch{
		Name:  "Новое имя",
		Phone: "+7 900 000-00-00",
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Новое имя", user.Name)
	assert.Equal(t, "+7 900 000-00-00", user.Phone)
	// Непереданное поле не трогается
	assert.Equal(t, "171234", user.Pincode)
}

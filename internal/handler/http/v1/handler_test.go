package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowshield/snow_shield_api/internal/config"
	"github.com/snowshield/snow_shield_api/internal/models"
	"github.com/snowshield/snow_shield_api/internal/risk"
	"github.com/snowshield/snow_shield_api/internal/service"
	"github.com/snowshield/snow_shield_api/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "handler-test-secret"

type testMocks struct {
	incidents *mocks.MockIncidentService
	warnings  *mocks.MockWarningService
	users     *mocks.MockUserService
	weather   *mocks.MockWeatherService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	tm := testMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		warnings:  mocks.NewMockWarningService(ctrl),
		users:     mocks.NewMockUserService(ctrl),
		weather:   mocks.NewMockWeatherService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret: testSecret,
	}

	handler := NewHandler(tm.incidents, tm.warnings, tm.users, tm.weather, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, tm, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// bearerFor выдает валидный токен для сессии указанной роли.
func bearerFor(t *testing.T, userType string) (map[string]string, *models.Session) {
	t.Helper()
	userID := uuid.New()
	claims := service.TokenClaims{
		Email:    "tester@example.com",
		Name:     "Тестер",
		UserType: userType,
		Pincode:  "171234",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	session := &models.Session{
		UserID:   userID,
		Email:    claims.Email,
		Name:     claims.Name,
		UserType: userType,
		Pincode:  claims.Pincode,
	}
	return map[string]string{"Authorization": "Bearer " + token}, session
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestSignUpRoute_Success(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	created := &models.User{
		ID:       uuid.New(),
		Email:    "new@example.com",
		Name:     "Новичок",
		UserType: models.UserTypeUser,
	}

	// Ожидания
	tm.users.EXPECT().
		SignUp(gomock.Any(), service.SignUpInput{
			Email:    "new@example.com",
			Password: "correct horse",
			Name:     "Новичок",
		}).
		Return(created, "signed-token", nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/signup", jsonBody(t, SignUpRequest{
		Email:    "new@example.com",
		Password: "correct horse",
		Name:     "Новичок",
	}))

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, created.Email, resp.User.Email)
}

func TestSignUpRoute_InvalidBody(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие: пароль короче минимума отсекает валидатор
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/signup", jsonBody(t, SignUpRequest{
		Email:    "new@example.com",
		Password: "short",
		Name:     "Новичок",
	}))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogInRoute_BadCredentials(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)

	// Ожидания
	tm.users.EXPECT().
		LogIn(gomock.Any(), "user@example.com", "wrong").
		Return(nil, "", service.ErrBadCredentials).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", jsonBody(t, LogInRequest{
		Email:    "user@example.com",
		Password: "wrong",
	}))

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIncidentsRoute_RequiresToken(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIncidentsRoute_Success(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)
	incidents := []*models.Incident{
		{ID: uuid.New(), Type: models.IncidentTypeRegular, Title: "Занос"},
	}

	// Ожидания: сессия восстанавливается из токена
	tm.incidents.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, session *models.Session) ([]*models.Incident, error) {
			assert.Equal(t, models.UserTypeUser, session.UserType)
			return incidents, nil
		}).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, headers)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []*IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Занос", resp[0].Title)
}

func TestListIncidentsRoute_PincodeFilter(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)

	// Ожидания
	tm.incidents.EXPECT().
		ListIncidentsByPincode(gomock.Any(), gomock.Any(), "171234").
		Return(nil, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?pincode=171234", nil, headers)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateIncidentRoute_Multipart(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("type", models.IncidentTypeRegular))
	require.NoError(t, mw.WriteField("title", "Снежный занос"))
	require.NoError(t, mw.WriteField("description", "Дорога перекрыта"))
	require.NoError(t, mw.WriteField("pincode", "171234"))
	part, err := mw.CreateFormFile("photos", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	// Ожидания
	tm.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, session *models.Session, incident *models.Incident, photos []service.PhotoUpload) error {
			assert.Equal(t, "Снежный занос", incident.Title)
			require.Len(t, photos, 1)
			assert.Equal(t, "photo.png", photos[0].Filename)
			incident.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", headers["Authorization"])
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetIncidentRoute_NotFound(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)
	id := uuid.New()

	// Ожидания
	tm.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(nil, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/incidents/%s", id), nil, headers)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncidentRoute_BadID(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/not-a-uuid", nil, headers)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveSOSRoute_Forbidden(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)
	id := uuid.New()

	// Ожидания
	tm.incidents.EXPECT().
		ResolveSOS(gomock.Any(), gomock.Any(), id).
		Return(nil, fmt.Errorf("%w: resolving SOS is restricted", service.ErrForbidden)).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/incidents/%s/resolve", id), nil, headers)

	// Проверки
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateWarningRoute_Success(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeAdmin)

	// Ожидания
	tm.warnings.EXPECT().
		CreateWarning(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, session *models.Session, warning *models.Warning) error {
			assert.Equal(t, models.SeverityHigh, warning.Severity)
			warning.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/warnings", jsonBody(t, CreateWarningRequest{
		Title:            "Лавинная опасность",
		Severity:         models.SeverityHigh,
		AffectedPincodes: []string{"171234"},
	}), headers)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateWarningRoute_InvalidSeverity(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeAdmin)

	// Действие: до сервиса запрос не доходит
	w := makeRequest(router, http.MethodPost, "/api/v1/warnings", jsonBody(t, CreateWarningRequest{
		Title:            "Лавинная опасность",
		Severity:         "catastrophic",
		AffectedPincodes: []string{"171234"},
	}), headers)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWarningsRoute_ActiveFilter(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)

	// Ожидания
	tm.warnings.EXPECT().
		ActiveWarningsForPincode(gomock.Any(), "171234").
		Return([]*models.Warning{{ID: uuid.New(), Severity: models.SeverityLow}}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/warnings?pincode=171234&active=true", nil, headers)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []*WarningResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestResolveWarningRoute_Success(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeAdmin)
	id := uuid.New()

	// Ожидания
	tm.warnings.EXPECT().ResolveWarning(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/warnings/%s/resolve", id), nil, headers)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWeatherRoute_ByCity(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)
	report := &models.WeatherReport{Location: "Shimla", Temperature: 2, Humidity: 85, WindSpeed: 3.5}

	// Ожидания
	tm.weather.EXPECT().
		CurrentByCity(gomock.Any(), "Shimla").
		Return(report, risk.Assessment{Level: risk.LevelHigh}, nil).
		Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/weather?city=Shimla", nil, headers)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Shimla", resp.Location)
	assert.Equal(t, "High", resp.Risk.Level)
}

func TestWeatherRoute_MissingLocation(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)
	headers, _ := bearerFor(t, models.UserTypeUser)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/weather", nil, headers)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRoute_Success(t *testing.T) {
	// Подготовка
	_, tm, router := newTestHandler(t)
	headers, session := bearerFor(t, models.UserTypeUser)
	stored := &models.User{ID: session.UserID, Email: session.Email, Name: session.Name}

	// Ожидания
	tm.users.EXPECT().
		Profile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, got *models.Session) (*models.User, error) {
			assert.Equal(t, session.UserID, got.UserID)
			return stored, nil
		}).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/users/me", nil, headers)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, session.Email, resp.Email)
}

func TestHealthCheckRoute(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие: health не требует токена
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей.
const (
	UserTypeUser       = "user"
	UserTypeRescueTeam = "rescueTeam"
	UserTypeAdmin      = "admin"
)

// User - учетная запись. Email неизменяем после регистрации,
// UserType не редактируется самим пользователем.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Pincode      string    `json:"pincode"`
	UserType     string    `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session - явный контекст аутентифицированного запроса. Создается
// middleware из JWT и передается в сервисы аргументом, глобального
// состояния сессии нет.
type Session struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	UserType string    `json:"user_type"`
	Pincode  string    `json:"pincode"`
}

// IsAdmin сообщает, имеет ли сессия права администратора.
func (s *Session) IsAdmin() bool {
	return s.UserType == UserTypeAdmin
}

// CanSeeSOS - SOS-инциденты видят только администраторы и спасатели.
func (s *Session) CanSeeSOS() bool {
	return s.UserType == UserTypeAdmin || s.UserType == UserTypeRescueTeam
}

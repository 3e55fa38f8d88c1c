// Package dto содержит объекты передачи данных HTTP слоя.
package dto

import (
	"time"

	"coursebay/internal/domain/entities"
)

// SignUpRequest содержит данные для регистрации учетной записи.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,min=8,max=100"`
	Password string `json:"password" validate:"required,min=8,max=32,password"`
}

// SignInRequest содержит данные для входа.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email,min=8,max=100"`
	Password string `json:"password" validate:"required,min=8,max=32,password"`
}

// CreateCourseRequest содержит данные для публикации курса.
// Price - указатель, чтобы ноль отличался от отсутствия поля.
type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=500"`
	Description string   `json:"description" validate:"required,min=20,max=300"`
	Price       *float64 `json:"price" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
}

// BuyCourseRequest содержит данные для покупки курса.
type BuyCourseRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

// ProfileResponse содержит данные профиля учетной записи.
// Хэш пароля наружу не отдается.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewProfileResponse строит ProfileResponse из доменной учетной записи.
func NewProfileResponse(account *entities.Account) ProfileResponse {
	return ProfileResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

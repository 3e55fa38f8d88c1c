package entities

import (
	"errors"
	"time"
)

// Ошибки домена покупок.
var (
	ErrAlreadyPurchased = errors.New("course already purchased by this user")
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// Purchase фиксирует факт покупки курса пользователем.
// Не более одной записи на пару (userId, courseId).
type Purchase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PurchasedCourse - покупка, развернутая полной записью курса.
type PurchasedCourse struct {
	Purchase Purchase `json:"purchase"`
	Course   Course   `json:"course"`
}

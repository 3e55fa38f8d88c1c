package entities

import (
	"errors"
	"time"
)

// Ошибки домена курсов.
var (
	ErrCourseNotFound       = errors.New("course not found")
	ErrDuplicateCourseTitle = errors.New("course with this title already exists for the creator")
)

// Course представляет курс, опубликованный автором.
// CreatorID - слабая ссылка: жизненный цикл автора курсом не управляется.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCourse создает новый курс с указанным автором.
func NewCourse(creatorID, title, description string, price float64, imageURL string) *Course {
	now := time.Now()
	return &Course{
		Title:       title,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

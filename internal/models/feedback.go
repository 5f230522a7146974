package models

// Feedback - отзыв пользователя; рейтинг 0 означает "не выставлен"
type Feedback struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

package models

// UserProfile - профиль пользователя, кешируемый вместе с токеном
type UserProfile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CampusID  int64  `json:"campus_id"`
}

// FullName возвращает имя для отображения
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Session существует только пока есть токен
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Credentials - данные для входа
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration - данные формы регистрации
type Registration struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	CampusID    int64  `json:"campus_id" validate:"required,gt=0"`
}

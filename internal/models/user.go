package models

import "time"

// User, kullanıcı bilgilerini temsil eder. Parola yalnızca bcrypt hash
// olarak saklanır.
type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName, kullanıcının tam adını döndürür.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// SessionUser, oturumda saklanan kimlik bilgisini temsil eder. Parola
// içermez; currentUser anahtarı altında kalıcı tutulur.
type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

package auth

import "time"

type User struct {
	UserID         string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `json:"password,omitempty" gorm:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (User) TableName() string { return "app_auth.users" }

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

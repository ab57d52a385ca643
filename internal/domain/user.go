package domain

import "time"

type User struct {
	UserID       int64     `json:"id" dynamodbav:"user_id"`
	Username     string    `json:"username" dynamodbav:"username"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=1,max=20"`
	Password        string `json:"password" validate:"required,min=1,max=20"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Code            string `json:"code" validate:"required,len=4"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRegistered is the payload of the user.registered event.
type UserRegistered struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created"`
}

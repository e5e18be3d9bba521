package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user created successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessLogout         = "logged out successfully"
	MessageSuccessGetUsers       = "success get users"
	MessageSuccessGetProfile     = "success get profile"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessForgotPassword = "reset password email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetUsers       = "failed to get users"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedForgotPassword = "failed to send reset password email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
	// Uniform for unknown email and wrong password, so callers cannot
	// probe which emails exist.
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrOldPasswordMismatch  = errors.New("old password is incorrect")
	ErrResetTokenInvalid    = errors.New("reset token is invalid or expired")
	ErrAvatarRequired       = errors.New("avatar image is required")
)

type (
	RegisterRequest struct {
		Name     string                `json:"name" form:"name" validate:"required"`
		Email    string                `json:"email" form:"email" validate:"required,email"`
		Password string                `json:"password" form:"password" validate:"required,min=8"`
		Avatar   *multipart.FileHeader `json:"-" form:"-"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateProfileRequest struct {
		Name  string `json:"name,omitempty"`
		Email string `json:"email,omitempty" validate:"omitempty,email"`
	}

	ChangePasswordRequest struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		AvatarURL string    `json:"avatar_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)

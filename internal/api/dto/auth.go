package dto

import "github.com/examhub/examhub-api/internal/api/validation"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Ad alanı zorunludur"
	}
	if r.Email == "" {
		errors["email"] = "E-posta alanı zorunludur"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Geçersiz e-posta adresi"
	}
	if r.Password == "" {
		errors["password"] = "Şifre alanı zorunludur"
	}

	return errors
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "E-posta alanı zorunludur"
	}
	if r.Password == "" {
		errors["password"] = "Şifre alanı zorunludur"
	}

	return errors
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (r VerifyCodeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "E-posta alanı zorunludur"
	}
	if r.Code == "" {
		errors["code"] = "Kod alanı zorunludur"
	} else if !validation.IsValidCode(r.Code) {
		errors["code"] = "Kod 4 haneli olmalıdır"
	}

	return errors
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "E-posta alanı zorunludur"
	}

	return errors
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "E-posta alanı zorunludur"
	}
	if r.Code == "" {
		errors["code"] = "Kod alanı zorunludur"
	} else if !validation.IsValidCode(r.Code) {
		errors["code"] = "Kod 4 haneli olmalıdır"
	}
	if r.NewPassword == "" {
		errors["newPassword"] = "Yeni şifre alanı zorunludur"
	}

	return errors
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

func (r UpdateProfileRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Ad alanı zorunludur"
	}

	return errors
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

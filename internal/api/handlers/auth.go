package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/examhub/examhub-api/internal/api/dto"
	"github.com/examhub/examhub-api/internal/api/middleware"
	"github.com/examhub/examhub-api/internal/api/validation"
	"github.com/examhub/examhub-api/internal/auth"
	"github.com/examhub/examhub-api/internal/database/models"
)

const (
	msgServerError      = "Sunucu hatası"
	msgUserNotFound     = "Kullanıcı bulunamadı"
	msgWeakPassword     = "Şifre en az 8 karakter olmalı, 1 büyük harf ve 1 özel karakter içermelidir."
	msgEmailTaken       = "Bu e-posta zaten kayıtlı"
	msgBadCredentials   = "Geçersiz kimlik bilgileri"
	msgUnauthorized     = "Yetkisiz"
	msgMailVerified     = "📧 Mailiniz doğrulandı!"
	msgAlreadyVerified  = "Zaten doğrulanmış"
	msgWrongCode        = "Kod yanlış"
	msgCodeExpired      = "Kodun süresi dolmuş"
	msgBadOrExpiredCode = "Geçersiz veya süresi dolmuş kod"
)

type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Geçersiz istek gövdesi"})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "name, email, password zorunlu", Details: details})
		return
	}

	user, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Name:     validation.SanitizeString(req.Name),
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: msgWeakPassword})
		case errors.Is(err, auth.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, dto.ErrorResponse{Message: msgEmailTaken})
		default:
			h.serverError(w, "register", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.RegisterResponse{
		Message: "Kayıt başarılı. Mailine gelen kodu doğrula.",
		UserID:  strconv.FormatUint(user.ID, 10),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Geçersiz istek gövdesi"})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "email ve password zorunlu", Details: details})
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Message: msgBadCredentials})
			return
		}
		h.serverError(w, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: resp.Token,
		User:  toUserDTO(resp.User),
	})
}

// Me returns the authenticated user's public fields. A token whose
// subject no longer exists is treated as unauthorized, not missing.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Message: msgUnauthorized})
			return
		}
		h.serverError(w, "me", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Geçersiz istek gövdesi"})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "name zorunlu", Details: details})
		return
	}

	userID := middleware.GetUserID(r.Context())
	user, err := h.authService.UpdateName(r.Context(), userID, validation.SanitizeString(req.Name))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: msgUserNotFound})
			return
		}
		h.serverError(w, "update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (h *AuthHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.authService.DeleteAccount(r.Context(), userID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: msgUserNotFound})
			return
		}
		h.serverError(w, "delete account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Hesabınız silindi"})
}

// VerifyLink handles the mail link flow: GET /auth/verify?token=...
// Responses are plain text because the link opens in a browser.
func (h *AuthHandler) VerifyLink(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	err := h.authService.VerifyByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		http.Error(w, "Geçersiz veya süresi dolmuş token", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(msgMailVerified))
}

func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Geçersiz istek gövdesi"})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "email ve code gerekli", Details: details})
		return
	}

	alreadyVerified, err := h.authService.VerifyCode(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: msgUserNotFound})
		case errors.Is(err, auth.ErrInvalidCode):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: msgWrongCode})
		case errors.Is(err, auth.ErrExpiredCode):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: msgCodeExpired})
		default:
			h.serverError(w, "verify code", err)
		}
		return
	}

	if alreadyVerified {
		writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgAlreadyVerified})
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgMailVerified})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Geçersiz istek gövdesi"})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "email gerekli", Details: details})
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: msgUserNotFound})
			return
		}
		// Includes mail transport failures: this path is awaited.
		h.serverError(w, "forgot password", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Kod mailinize gönderildi"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Geçersiz istek gövdesi"})
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "email, code ve newPassword gerekli", Details: details})
		return
	}

	err := h.authService.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: msgUserNotFound})
		case errors.Is(err, auth.ErrWeakPassword):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: msgWeakPassword})
		case errors.Is(err, auth.ErrInvalidOrExpiredCode):
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: msgBadOrExpiredCode})
		default:
			h.serverError(w, "reset password", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Şifre başarıyla değiştirildi"})
}

func (h *AuthHandler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Message: msgServerError})
}

func toUserDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:         strconv.FormatUint(user.ID, 10),
		Name:       user.Name,
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

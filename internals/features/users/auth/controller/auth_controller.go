package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jebshit_backend/internals/configs"
	authDTO "jebshit_backend/internals/features/users/auth/dto"
	authModel "jebshit_backend/internals/features/users/auth/model"
	authService "jebshit_backend/internals/features/users/auth/service"
	helper "jebshit_backend/internals/helpers"
	"jebshit_backend/internals/i18n"
	"jebshit_backend/internals/middlewares"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// ===================== REGISTER =====================
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.UserName = strings.TrimSpace(req.UserName)
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := h.DB.Model(&authModel.UserModel{}).Where("user_email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	u := &authModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: hashed,
	}
	if err := h.DB.Create(u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, i18n.T(middlewares.Lang(c), "created"), authDTO.NewUserResponse(u))
}

// ===================== LOGIN =====================
// POST /api/auth/login
// Provider-specific failures are mapped to user-facing messages; the
// "too many attempts" case is produced by the login rate limiter.
func (h *AuthController) Login(c *fiber.Ctx) error {
	lang := middlewares.Lang(c)

	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, i18n.T(lang, "auth.invalid_email"))
	}

	var u authModel.UserModel
	if err := h.DB.Where("user_email = ?", req.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, i18n.T(lang, "auth.invalid_email"))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "auth.generic"))
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, i18n.T(lang, "auth.user_disabled"))
	}
	if !authService.CheckPassword(u.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, i18n.T(lang, "auth.wrong_password"))
	}

	access, err := authService.CreateAccessToken(configs.JWTSecret, &u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "auth.generic"))
	}
	refresh, err := authService.CreateRefreshToken(configs.JWTRefreshSecret, u.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, i18n.T(lang, "auth.generic"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(authService.RefreshTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "OK", authDTO.LoginResponse{
		AccessToken: access,
		User:        authDTO.NewSessionResponse(&u),
	})
}

// ===================== REFRESH =====================
// POST /api/auth/refresh-token
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	refresh := strings.TrimSpace(c.Cookies("refresh_token"))
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}
	claims, err := authService.ParseToken(configs.JWTRefreshSecret, refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var u authModel.UserModel
	if err := h.DB.Where("user_id = ?", claims.UserID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, i18n.T(middlewares.Lang(c), "auth.user_disabled"))
	}
	access, err := authService.CreateAccessToken(configs.JWTSecret, &u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"access_token": access})
}

// ===================== LOGOUT =====================
// POST /api/auth/logout — blacklists the presented access token.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	token := extractBearer(c)
	if token != "" {
		bl := &authModel.TokenBlacklist{
			TokenBlacklistToken:     token,
			TokenBlacklistExpiresAt: time.Now().Add(authService.AccessTTL),
		}
		if err := h.DB.Create(bl).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "OK", nil)
}

// ===================== ME =====================
// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var u authModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, i18n.T(middlewares.Lang(c), "not_found"))
	}
	return helper.JsonOK(c, "OK", authDTO.NewUserResponse(&u))
}

func extractBearer(c *fiber.Ctx) string {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

package controllers

import (
	"errors"
	"time"

	"inventario-app/config"
	"inventario-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.New().String()
	ip := ctx.IP()
	ua := ctx.Get("User-Agent")
	now := time.Now()

	// Log por defecto: FAILED. Se sobreescribe si el login pasa.
	loginLog := models.LoginLog{
		SessionID:   sessionID,
		Email:       input.Email,
		LoginAt:     &now,
		IPAddress:   ip,
		UserAgent:   ua,
		LoginStatus: "FAILED",
	}

	var usuario models.Usuario
	if err := c.DB.Where("email = ?", input.Email).First(&usuario).Error; err != nil {
		c.DB.Create(&loginLog)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Unexpected error",
		})
	}

	if !usuario.Estado {
		c.DB.Create(&loginLog)
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User is inactive",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(input.Password)); err != nil {
		c.DB.Create(&loginLog)
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid email or password",
		})
	}

	// Una sola sesion activa por usuario.
	c.DB.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", usuario.ID, true).
		Update("is_active", false)

	session := models.UserSession{
		UserID:         usuario.ID,
		SessionID:      sessionID,
		IPAddress:      ip,
		UserAgent:      ua,
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Duration(config.JWTExpiration) * time.Second),
	}
	if err := c.DB.Create(&session).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create session",
		})
	}

	loginLog.LoginStatus = "SUCCESS"
	c.DB.Create(&loginLog)

	claims := jwt.MapClaims{
		"user_id":    float64(usuario.ID),
		"tipo":       usuario.Tipo,
		"session_id": sessionID,
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to sign token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token": tokenString,
			"usuario": fiber.Map{
				"usuario_id": usuario.ID,
				"nombre":     usuario.Nombre,
				"email":      usuario.Email,
				"tipo":       usuario.Tipo,
			},
		},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid session",
		})
	}

	now := time.Now()

	c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)

	var session models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).First(&session).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid session",
		})
	}

	session.IsActive = false
	session.LastActivityAt = now
	c.DB.Save(&session)

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	var usuario models.Usuario
	if err := c.DB.First(&usuario, uint(userID)).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged in",
		"data": fiber.Map{
			"usuario_id": usuario.ID,
			"nombre":     usuario.Nombre,
			"email":      usuario.Email,
			"tipo":       usuario.Tipo,
		},
	})
}

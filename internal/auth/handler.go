package auth

import (
	"log"

	"seguranca-backend/internal/config"
	"seguranca-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// POST /setup-admin
// Bootstrap do primeiro admin com credenciais fixas (admin/admin123).
// Fraqueza conhecida: a senha padrão deve ser trocada no primeiro login.
// O check-and-insert roda dentro de uma transação para duas chamadas
// simultâneas não criarem dois admins.
func SetupAdminHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Usuario{}).
				Where("role = ?", models.RoleAdmin).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "Já existe um usuário admin")
			}

			hash, err := HashPassword("admin123")
			if err != nil {
				return err
			}

			admin := models.Usuario{
				Username:  "admin",
				SenhaHash: hash,
				Nome:      "Administrador",
				Email:     "admin@wayne.com",
				Cargo:     "Administrador do Sistema",
				Role:      models.RoleAdmin,
			}
			return tx.Create(&admin).Error
		})
		if err != nil {
			return err
		}

		log.Println("[WARN] Usuário admin criado com a senha padrão, troque-a imediatamente")

		return c.JSON(fiber.Map{
			"message": "Usuário admin criado com sucesso",
		})
	}
}

// POST /token
// Aceita form (fluxo OAuth2 password) ou JSON. A mensagem de erro é a mesma
// para usuário inexistente e senha errada.
func LoginHandler(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var usuario models.Usuario
		if err := db.Where("username = ?", body.Username).First(&usuario).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Usuário ou senha incorretos")
		}

		if !VerifyPassword(body.Password, usuario.SenhaHash) {
			return fiber.NewError(fiber.StatusUnauthorized, "Usuário ou senha incorretos")
		}

		token, err := GenerateToken(cfg.JWTSecret, usuario.Username)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o token")
		}

		return c.JSON(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

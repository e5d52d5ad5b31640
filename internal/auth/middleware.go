package auth

import (
	"strings"

	"seguranca-backend/internal/config"
	"seguranca-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const CtxUsuarioKey = "usuario_atual"

// JWTMiddleware valida o bearer token e resolve o usuário atual no banco.
// Roda em toda rota protegida; qualquer falha vira 401.
func JWTMiddleware(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		username, err := ParseSubject(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		var usuario models.Usuario
		if err := db.Where("username = ?", username).First(&usuario).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
		}

		c.Locals(CtxUsuarioKey, &usuario)
		return c.Next()
	}
}

// UsuarioAtual devolve o usuário resolvido pelo JWTMiddleware.
func UsuarioAtual(c *fiber.Ctx) (*models.Usuario, error) {
	usuario, ok := c.Locals(CtxUsuarioKey).(*models.Usuario)
	if !ok || usuario == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	return usuario, nil
}

// RequirePermission consulta o predicado Can antes de deixar a rota executar.
func RequirePermission(acao Acao) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuario, err := UsuarioAtual(c)
		if err != nil {
			return err
		}

		if !Can(usuario.Role, acao) {
			return fiber.NewError(fiber.StatusForbidden, "Sem permissão")
		}

		return c.Next()
	}
}

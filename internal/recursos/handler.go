package recursos

import (
	"fmt"

	"seguranca-backend/internal/audit"
	"seguranca-backend/internal/auth"
	"seguranca-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CriarRecursoRequest struct {
	Tipo        models.TipoRecurso   `json:"tipo"`
	Nome        string               `json:"nome"`
	Status      models.StatusRecurso `json:"status"`
	Localizacao string               `json:"localizacao"`
}

// GET /recursos
func ListarHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recursos []models.Recurso
		if err := db.Order("id ASC").Find(&recursos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os recursos")
		}
		return c.JSON(recursos)
	}
}

// POST /recursos (gerente/admin)
func CriarHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuario, err := auth.UsuarioAtual(c)
		if err != nil {
			return err
		}

		var body CriarRecursoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "nome é obrigatório")
		}
		if !body.Tipo.Valida() {
			return fiber.NewError(fiber.StatusBadRequest, "tipo inválido")
		}
		if !body.Status.Valida() {
			return fiber.NewError(fiber.StatusBadRequest, "status inválido")
		}

		// criado_por vem sempre do chamador autenticado, nunca do cliente
		recurso := models.Recurso{
			Tipo:        body.Tipo,
			Nome:        body.Nome,
			Status:      body.Status,
			Localizacao: body.Localizacao,
			CriadoPor:   usuario.ID,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&recurso).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      usuario.ID,
				UserName:    usuario.Nome,
				EntityType:  "recurso",
				EntityID:    recurso.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Recurso criado: %s (%s)", recurso.Nome, recurso.Tipo),
				After:       recurso,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o recurso")
		}

		return c.Status(fiber.StatusCreated).JSON(recurso)
	}
}

// DELETE /recursos/:id (gerente/admin)
func RemoverHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuario, err := auth.UsuarioAtual(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		var recurso models.Recurso
		if err := db.First(&recurso, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Recurso não encontrado")
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&recurso).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      usuario.ID,
				UserName:    usuario.Nome,
				EntityType:  "recurso",
				EntityID:    recurso.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Recurso removido: %s (%s)", recurso.Nome, recurso.Tipo),
				Before:      recurso,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível remover o recurso")
		}

		return c.JSON(fiber.Map{
			"message": "Recurso removido com sucesso",
		})
	}
}

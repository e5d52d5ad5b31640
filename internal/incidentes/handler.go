package incidentes

import (
	"fmt"

	"seguranca-backend/internal/audit"
	"seguranca-backend/internal/auth"
	"seguranca-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CriarIncidenteRequest struct {
	Titulo    string                    `json:"titulo"`
	Gravidade models.GravidadeIncidente `json:"gravidade"`
	Status    models.StatusIncidente    `json:"status"`
	Descricao string                    `json:"descricao"`
	RecursoID *uint                     `json:"recurso_id"`
}

// GET /incidentes
func ListarHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var incidentes []models.Incidente
		if err := db.Order("id ASC").Find(&incidentes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os incidentes")
		}
		return c.JSON(incidentes)
	}
}

// POST /incidentes (qualquer usuário autenticado)
func CriarHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usuario, err := auth.UsuarioAtual(c)
		if err != nil {
			return err
		}

		var body CriarIncidenteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Titulo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "titulo é obrigatório")
		}
		if !body.Gravidade.Valida() {
			return fiber.NewError(fiber.StatusBadRequest, "gravidade inválida")
		}
		if !body.Status.Valida() {
			return fiber.NewError(fiber.StatusBadRequest, "status inválido")
		}

		// recurso_id não é validado contra a tabela de recursos
		// (acoplamento solto intencional, ver DESIGN.md)
		incidente := models.Incidente{
			Titulo:    body.Titulo,
			Gravidade: body.Gravidade,
			Status:    body.Status,
			Descricao: body.Descricao,
			RecursoID: body.RecursoID,
			CriadoPor: usuario.ID,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&incidente).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      usuario.ID,
				UserName:    usuario.Nome,
				EntityType:  "incidente",
				EntityID:    incidente.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Incidente registrado: %s (gravidade %s)", incidente.Titulo, incidente.Gravidade),
				After:       incidente,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível registrar o incidente")
		}

		return c.Status(fiber.StatusCreated).JSON(incidente)
	}
}

// DELETE /incidentes/:id (gerente/admin)
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

		var incidente models.Incidente
		if err := db.First(&incidente, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Incidente não encontrado")
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&incidente).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				UserID:      usuario.ID,
				UserName:    usuario.Nome,
				EntityType:  "incidente",
				EntityID:    incidente.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Incidente removido: %s", incidente.Titulo),
				Before:      incidente,
			})
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível remover o incidente")
		}

		return c.JSON(fiber.Map{
			"message": "Incidente removido com sucesso",
		})
	}
}

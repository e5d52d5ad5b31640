package dashboard

import (
	"seguranca-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	StatusNormal  = "NORMAL"
	StatusAlerta  = "ALERT"
	StatusCritico = "CRITICAL"
)

type DashboardStats struct {
	TotalRecursos     int64  `json:"total_recursos"`
	RecursosAtivos    int64  `json:"recursos_ativos"`
	TotalIncidentes   int64  `json:"total_incidentes"`
	IncidentesAbertos int64  `json:"incidentes_abertos"`
	CamerasAtivas     int64  `json:"cameras_ativas"`
	StatusSistema     string `json:"status_sistema"`
}

// GET /dashboard/stats
// Função pura do estado atual das tabelas, recalculada a cada chamada.
// "cameras_ativas" conta qualquer Dispositivo ativo, não só câmeras; o nome
// do campo é mantido por compatibilidade com o painel.
func StatsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := ComputeStats(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível calcular as estatísticas")
		}
		return c.JSON(stats)
	}
}

// ComputeStats agrega contagens e deriva o status do sistema a partir dos
// incidentes não resolvidos, na ordem estrita Crítica > Alta > normal.
func ComputeStats(db *gorm.DB) (*DashboardStats, error) {
	stats := &DashboardStats{StatusSistema: StatusNormal}

	if err := db.Model(&models.Recurso{}).Count(&stats.TotalRecursos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Recurso{}).
		Where("status = ?", models.StatusAtivo).
		Count(&stats.RecursosAtivos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Recurso{}).
		Where("tipo = ? AND status = ?", models.TipoDispositivo, models.StatusAtivo).
		Count(&stats.CamerasAtivas).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Incidente{}).Count(&stats.TotalIncidentes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Incidente{}).
		Where("status IN ?", []models.StatusIncidente{models.IncidenteAberto, models.IncidenteEmAndamento}).
		Count(&stats.IncidentesAbertos).Error; err != nil {
		return nil, err
	}

	var criticos, altos int64
	if err := db.Model(&models.Incidente{}).
		Where("gravidade = ? AND status <> ?", models.GravidadeCritica, models.IncidenteResolvido).
		Count(&criticos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Incidente{}).
		Where("gravidade = ? AND status <> ?", models.GravidadeAlta, models.IncidenteResolvido).
		Count(&altos).Error; err != nil {
		return nil, err
	}

	switch {
	case criticos > 0:
		stats.StatusSistema = StatusCritico
	case altos > 0:
		stats.StatusSistema = StatusAlerta
	}

	return stats, nil
}

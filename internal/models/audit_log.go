package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog: trilha de auditoria das mutações (criação/remoção de recursos e
// incidentes). O nome do usuário é denormalizado para a listagem não precisar
// de join.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint   `gorm:"index" json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"`

	// Ex.: "recurso", "incidente"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Estado antes/depois em JSON ("null" quando não se aplica)
	BeforeData string `json:"before_data"`
	AfterData  string `json:"after_data"`
}

package models

import "time"

type GravidadeIncidente string

const (
	GravidadeBaixa   GravidadeIncidente = "Baixa"
	GravidadeMedia   GravidadeIncidente = "Média"
	GravidadeAlta    GravidadeIncidente = "Alta"
	GravidadeCritica GravidadeIncidente = "Crítica"
)

func (g GravidadeIncidente) Valida() bool {
	switch g {
	case GravidadeBaixa, GravidadeMedia, GravidadeAlta, GravidadeCritica:
		return true
	}
	return false
}

type StatusIncidente string

const (
	IncidenteAberto      StatusIncidente = "Aberto"
	IncidenteEmAndamento StatusIncidente = "Em Andamento"
	IncidenteResolvido   StatusIncidente = "Resolvido"
)

func (s StatusIncidente) Valida() bool {
	switch s {
	case IncidenteAberto, IncidenteEmAndamento, IncidenteResolvido:
		return true
	}
	return false
}

// Incidente: evento de segurança registrado, opcionalmente ligado a um Recurso.
// RecursoID não é validado contra a tabela de recursos (acoplamento solto
// intencional).
type Incidente struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Titulo    string             `gorm:"size:150;index;not null" json:"titulo"`
	Gravidade GravidadeIncidente `gorm:"size:20;not null" json:"gravidade"`
	Status    StatusIncidente    `gorm:"size:20;not null" json:"status"`
	Descricao string             `gorm:"size:1000" json:"descricao,omitempty"`
	RecursoID *uint              `gorm:"index" json:"recurso_id"`
	CriadoPor uint               `gorm:"index;not null" json:"criado_por"`
	Criador   *Usuario           `gorm:"foreignKey:CriadoPor" json:"-"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt *time.Time         `gorm:"autoUpdateTime:false" json:"updated_at"`
}

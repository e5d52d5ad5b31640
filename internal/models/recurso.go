package models

import "time"

type TipoRecurso string

const (
	TipoEquipamento TipoRecurso = "Equipamento"
	TipoVeiculo     TipoRecurso = "Veículo"
	TipoDispositivo TipoRecurso = "Dispositivo"
)

func (t TipoRecurso) Valida() bool {
	switch t {
	case TipoEquipamento, TipoVeiculo, TipoDispositivo:
		return true
	}
	return false
}

type StatusRecurso string

const (
	StatusAtivo      StatusRecurso = "Ativo"
	StatusInativo    StatusRecurso = "Inativo"
	StatusManutencao StatusRecurso = "Manutenção"
)

func (s StatusRecurso) Valida() bool {
	switch s {
	case StatusAtivo, StatusInativo, StatusManutencao:
		return true
	}
	return false
}

// Recurso: ativo físico rastreado (equipamento, veículo ou dispositivo).
type Recurso struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Tipo        TipoRecurso   `gorm:"size:20;not null" json:"tipo"`
	Nome        string        `gorm:"size:150;index;not null" json:"nome"`
	Status      StatusRecurso `gorm:"size:20;not null" json:"status"`
	Localizacao string        `gorm:"size:255" json:"localizacao"`
	CriadoPor   uint          `gorm:"index;not null" json:"criado_por"`
	Criador     *Usuario      `gorm:"foreignKey:CriadoPor" json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `gorm:"autoUpdateTime:false" json:"updated_at"`
}

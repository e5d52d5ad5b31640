package models

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleGerente     Role = "gerente"
	RoleFuncionario Role = "funcionario"
)

func (r Role) Valida() bool {
	switch r {
	case RoleAdmin, RoleGerente, RoleFuncionario:
		return true
	}
	return false
}

type Usuario struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Cargo     string `gorm:"size:100" json:"cargo,omitempty"`
	Role      Role   `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	// Nulo até a primeira atualização; o gorm não deve preencher no create.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

package auth

import "seguranca-backend/internal/models"

type Acao string

const (
	AcaoCriarRecurso     Acao = "criar_recurso"
	AcaoRemoverRecurso   Acao = "remover_recurso"
	AcaoRemoverIncidente Acao = "remover_incidente"
	AcaoVerAuditoria     Acao = "ver_auditoria"
)

// Mutações são restritas a gerente/admin; qualquer usuário autenticado pode
// listar e registrar incidentes (sem entrada nesta tabela).
var permissoes = map[Acao][]models.Role{
	AcaoCriarRecurso:     {models.RoleGerente, models.RoleAdmin},
	AcaoRemoverRecurso:   {models.RoleGerente, models.RoleAdmin},
	AcaoRemoverIncidente: {models.RoleGerente, models.RoleAdmin},
	AcaoVerAuditoria:     {models.RoleGerente, models.RoleAdmin},
}

// Can é o predicado único de autorização consultado por toda rota mutadora.
func Can(role models.Role, acao Acao) bool {
	for _, r := range permissoes[acao] {
		if r == role {
			return true
		}
	}
	return false
}

package recursos_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"seguranca-backend/internal/auth"
	"seguranca-backend/internal/config"
	"seguranca-backend/internal/database"
	"seguranca-backend/internal/models"
	"seguranca-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ambiente struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("obtendo *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migração: %v", err)
	}

	cfg := &config.Config{JWTSecret: "segredo-de-teste-com-mais-de-32-caracteres"}
	app := fiber.New()
	routes.Setup(app, cfg, db)
	return &ambiente{app: app, db: db, cfg: cfg}
}

// cria o usuário direto no banco e devolve um token válido para ele
func (a *ambiente) tokenPara(t *testing.T, username string, role models.Role) string {
	t.Helper()

	hash, err := auth.HashPassword("senha")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := a.db.Create(&models.Usuario{
		Username:  username,
		SenhaHash: hash,
		Nome:      username,
		Email:     username + "@wayne.com",
		Role:      role,
	}).Error; err != nil {
		t.Fatalf("criando usuário %s: %v", username, err)
	}

	token, err := auth.GenerateToken(a.cfg.JWTSecret, username)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func (a *ambiente) requisicao(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("serializando corpo: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestCriarRecurso_Permissoes(t *testing.T) {
	tests := []struct {
		role models.Role
		want int
	}{
		{models.RoleFuncionario, http.StatusForbidden},
		{models.RoleGerente, http.StatusCreated},
		{models.RoleAdmin, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			amb := novoAmbiente(t)
			token := amb.tokenPara(t, "usuario-"+string(tt.role), tt.role)

			resp := amb.requisicao(t, http.MethodPost, "/recursos", token, fiber.Map{
				"tipo":        "Veículo",
				"nome":        "Batmóvel",
				"status":      "Ativo",
				"localizacao": "Garagem principal",
			})
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, esperado %d", resp.StatusCode, tt.want)
			}

			if tt.want != http.StatusCreated {
				return
			}

			var criado models.Recurso
			if err := json.NewDecoder(resp.Body).Decode(&criado); err != nil {
				t.Fatalf("decodificando resposta: %v", err)
			}

			var dono models.Usuario
			if err := amb.db.Where("username = ?", "usuario-"+string(tt.role)).First(&dono).Error; err != nil {
				t.Fatal(err)
			}
			if criado.CriadoPor != dono.ID {
				t.Errorf("criado_por = %d, esperado %d (o chamador)", criado.CriadoPor, dono.ID)
			}
			if criado.ID == 0 {
				t.Error("resposta deveria trazer o id gerado")
			}
			if criado.UpdatedAt != nil {
				t.Error("updated_at deveria ser nulo na criação")
			}
		})
	}
}

func TestCriarRecurso_CriadoPorNaoVemDoCliente(t *testing.T) {
	amb := novoAmbiente(t)
	token := amb.tokenPara(t, "gerente1", models.RoleGerente)

	// criado_por enviado pelo cliente deve ser ignorado
	resp := amb.requisicao(t, http.MethodPost, "/recursos", token, fiber.Map{
		"tipo":       "Equipamento",
		"nome":       "Gerador",
		"status":     "Ativo",
		"criado_por": 999,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201", resp.StatusCode)
	}

	var criado models.Recurso
	if err := json.NewDecoder(resp.Body).Decode(&criado); err != nil {
		t.Fatal(err)
	}
	if criado.CriadoPor == 999 {
		t.Error("criado_por veio do cliente, deveria vir do chamador autenticado")
	}
}

func TestCriarRecurso_EnumInvalido(t *testing.T) {
	amb := novoAmbiente(t)
	token := amb.tokenPara(t, "gerente1", models.RoleGerente)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"tipo inválido", fiber.Map{"tipo": "Helicóptero", "nome": "X", "status": "Ativo"}},
		{"status inválido", fiber.Map{"tipo": "Veículo", "nome": "X", "status": "Quebrado"}},
		{"nome vazio", fiber.Map{"tipo": "Veículo", "nome": "", "status": "Ativo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := amb.requisicao(t, http.MethodPost, "/recursos", token, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, esperado 400", resp.StatusCode)
			}
		})
	}
}

func TestListarRecursos_OrdemDeInsercao(t *testing.T) {
	amb := novoAmbiente(t)
	token := amb.tokenPara(t, "gerente1", models.RoleGerente)

	nomes := []string{"Viatura 1", "Câmera portão", "Rádio 7"}
	tipos := []string{"Veículo", "Dispositivo", "Equipamento"}
	for i, nome := range nomes {
		resp := amb.requisicao(t, http.MethodPost, "/recursos", token, fiber.Map{
			"tipo":   tipos[i],
			"nome":   nome,
			"status": "Ativo",
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("criando %q: status = %d", nome, resp.StatusCode)
		}
	}

	resp := amb.requisicao(t, http.MethodGet, "/recursos", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", resp.StatusCode)
	}

	var lista []models.Recurso
	if err := json.NewDecoder(resp.Body).Decode(&lista); err != nil {
		t.Fatal(err)
	}
	if len(lista) != len(nomes) {
		t.Fatalf("len = %d, esperado %d", len(lista), len(nomes))
	}
	for i, r := range lista {
		if r.Nome != nomes[i] {
			t.Errorf("posição %d: nome = %q, esperado %q", i, r.Nome, nomes[i])
		}
	}
}

func TestRemoverRecurso(t *testing.T) {
	amb := novoAmbiente(t)
	tokenGerente := amb.tokenPara(t, "gerente1", models.RoleGerente)
	tokenFuncionario := amb.tokenPara(t, "func1", models.RoleFuncionario)

	resp := amb.requisicao(t, http.MethodPost, "/recursos", tokenGerente, fiber.Map{
		"tipo":   "Dispositivo",
		"nome":   "Sensor térreo",
		"status": "Ativo",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("criando recurso: status = %d", resp.StatusCode)
	}
	var criado models.Recurso
	if err := json.NewDecoder(resp.Body).Decode(&criado); err != nil {
		t.Fatal(err)
	}

	t.Run("funcionário não remove", func(t *testing.T) {
		resp := amb.requisicao(t, http.MethodDelete, fmt.Sprintf("/recursos/%d", criado.ID), tokenFuncionario, nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d, esperado 403", resp.StatusCode)
		}
	})

	t.Run("id inexistente dá 404", func(t *testing.T) {
		resp := amb.requisicao(t, http.MethodDelete, "/recursos/9999", tokenGerente, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, esperado 404", resp.StatusCode)
		}
	})

	t.Run("gerente remove", func(t *testing.T) {
		resp := amb.requisicao(t, http.MethodDelete, fmt.Sprintf("/recursos/%d", criado.ID), tokenGerente, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, esperado 200", resp.StatusCode)
		}

		var count int64
		amb.db.Model(&models.Recurso{}).Count(&count)
		if count != 0 {
			t.Errorf("recurso ainda existe depois do delete (count = %d)", count)
		}
	})
}

func TestRecursos_Auditoria(t *testing.T) {
	amb := novoAmbiente(t)
	token := amb.tokenPara(t, "gerente1", models.RoleGerente)

	resp := amb.requisicao(t, http.MethodPost, "/recursos", token, fiber.Map{
		"tipo":   "Veículo",
		"nome":   "Viatura 2",
		"status": "Ativo",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var criado models.Recurso
	if err := json.NewDecoder(resp.Body).Decode(&criado); err != nil {
		t.Fatal(err)
	}

	amb.requisicao(t, http.MethodDelete, fmt.Sprintf("/recursos/%d", criado.ID), token, nil)

	var logs []models.AuditLog
	if err := amb.db.Where("entity_type = ?", "recurso").Order("id ASC").Find(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Fatalf("len(logs) = %d, esperado 2 (create + delete)", len(logs))
	}
	if logs[0].Action != models.AuditActionCreate || logs[1].Action != models.AuditActionDelete {
		t.Errorf("ações = %s/%s, esperado create/delete", logs[0].Action, logs[1].Action)
	}
	if logs[0].EntityID != criado.ID {
		t.Errorf("entity_id = %d, esperado %d", logs[0].EntityID, criado.ID)
	}
}

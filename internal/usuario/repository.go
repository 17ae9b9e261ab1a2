package usuario

import (
	"errors"
	"log/slog"

	"github.com/NovaTerraImoveis/api-cadastro/internal/utils"
	"gorm.io/gorm"
)

// ErrCredenciaisInvalidas cobre usuário inexistente e senha errada,
// sem distinguir os dois casos para o chamador.
var ErrCredenciaisInvalidas = errors.New("credenciais inválidas")

// UsernameAdmin é a conta bootstrap criada na subida do processo.
const UsernameAdmin = "admin"

type Repository interface {
	Criar(db *gorm.DB, u *Usuario) error
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorUsername(db *gorm.DB, username string) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	Atualizar(db *gorm.DB, id uint, patch *Atualizacao) (*Usuario, error)
	Deletar(db *gorm.DB, id uint) error
	ValidarCredenciais(db *gorm.DB, username, senha string) (*Usuario, error)
	SeedAdmin(db *gorm.DB, senhaPadrao string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Criar hasheia senhas em texto puro antes de gravar; valores que já
// são hashes bcrypt (prefixo de versão) são mantidos como estão.
func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario) error {
	if !utils.SenhaJaHasheada(u.Senha) {
		hash, err := utils.HashSenha(u.Senha)
		if err != nil {
			return err
		}
		u.Senha = hash
	}
	return db.Create(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorUsername(db *gorm.DB, username string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("id").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, patch *Atualizacao) (*Usuario, error) {
	var existente Usuario
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	if patch.Username != nil {
		existente.Username = *patch.Username
	}
	if patch.Senha != nil {
		senha := *patch.Senha
		if !utils.SenhaJaHasheada(senha) {
			hash, err := utils.HashSenha(senha)
			if err != nil {
				return nil, err
			}
			senha = hash
		}
		existente.Senha = senha
	}
	if patch.Nome != nil {
		existente.Nome = *patch.Nome
	}
	if patch.Email != nil {
		existente.Email = *patch.Email
	}
	if patch.IsAdmin != nil {
		existente.IsAdmin = *patch.IsAdmin
	}

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}

// ValidarCredenciais compara a senha contra o hash armazenado e só
// retorna o usuário quando há correspondência.
func (r *repositoryImpl) ValidarCredenciais(db *gorm.DB, username, senha string) (*Usuario, error) {
	u, err := r.BuscarPorUsername(db, username)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if !utils.CheckSenha(u.Senha, senha) {
		return nil, ErrCredenciaisInvalidas
	}
	return u, nil
}

// SeedAdmin cria a conta "admin" caso não exista. A checagem de
// existência mais a constraint de unicidade tornam a rotina
// idempotente mesmo com múltiplas subidas concorrentes.
func (r *repositoryImpl) SeedAdmin(db *gorm.DB, senhaPadrao string) error {
	_, err := r.BuscarPorUsername(db, UsernameAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := &Usuario{
		Username: UsernameAdmin,
		Senha:    senhaPadrao,
		Nome:     "Administrador",
		IsAdmin:  true,
	}
	if err := r.Criar(db, admin); err != nil {
		return err
	}
	slog.Info("usuário admin criado no bootstrap", "username", UsernameAdmin)
	return nil
}

package cadastro

import (
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *Cadastro) error
	BuscarPorID(db *gorm.DB, id uint) (*Cadastro, error)
	ListarTodos(db *gorm.DB) ([]Cadastro, error)
	ListarPorTipo(db *gorm.DB, tipo string) ([]Cadastro, error)
	Atualizar(db *gorm.DB, id uint, patch *Atualizacao) (*Cadastro, error)
	Deletar(db *gorm.DB, id uint) error
	Estatisticas(db *gorm.DB) (*Estatisticas, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cadastro) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cadastro, error) {
	var c Cadastro
	err := db.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarTodos retorna os cadastros do mais recente para o mais antigo.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cadastro, error) {
	var cadastros []Cadastro
	err := db.Order("data_cadastro DESC, id DESC").Find(&cadastros).Error
	return cadastros, err
}

func (r *repositoryImpl) ListarPorTipo(db *gorm.DB, tipo string) ([]Cadastro, error) {
	var cadastros []Cadastro
	err := db.Where("tipo_formulario = ?", tipo).
		Order("data_cadastro DESC, id DESC").
		Find(&cadastros).Error
	return cadastros, err
}

// Atualizar aplica o patch sobre a linha existente; campos ausentes
// no patch mantêm o valor atual.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, patch *Atualizacao) (*Cadastro, error) {
	var existente Cadastro
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	if patch.Nome != nil {
		existente.Nome = *patch.Nome
	}
	if patch.CPF != nil {
		existente.CPF = *patch.CPF
	}
	if patch.Email != nil {
		existente.Email = *patch.Email
	}
	if patch.Celular != nil {
		existente.Celular = *patch.Celular
	}
	if patch.CodigoImovel != nil {
		existente.CodigoImovel = *patch.CodigoImovel
	}
	if patch.FormData != nil {
		existente.FormData = *patch.FormData
	}
	if patch.Assinatura != nil {
		existente.Assinatura = *patch.Assinatura
	}
	if patch.ArquivoPdf != nil {
		existente.ArquivoPdf = *patch.ArquivoPdf
	}
	if patch.Status != nil {
		existente.Status = *patch.Status
	}

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cadastro{}, id).Error
}

func (r *repositoryImpl) Estatisticas(db *gorm.DB) (*Estatisticas, error) {
	var e Estatisticas
	if err := db.Model(&Cadastro{}).Count(&e.TotalCadastros).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Cadastro{}).
		Where("tipo_formulario = ?", "cadastro-imovel").
		Count(&e.ImoveisDisponiveis).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Cadastro{}).
		Where("status = ?", StatusContratoPendente).
		Count(&e.ContratosPendentes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Cadastro{}).
		Where("status = ?", StatusDocumentosPendentes).
		Count(&e.DocumentosPendentes).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

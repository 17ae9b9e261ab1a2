package usuario

import (
	"errors"

	"gorm.io/gorm"
)

type repoMock struct {
	CriarFn              func(u *Usuario) error
	BuscarPorIDFn        func(id uint) (*Usuario, error)
	BuscarPorUsernameFn  func(username string) (*Usuario, error)
	ListarTodosFn        func() ([]Usuario, error)
	AtualizarFn          func(id uint, patch *Atualizacao) (*Usuario, error)
	DeletarFn            func(id uint) error
	ValidarCredenciaisFn func(username, senha string) (*Usuario, error)
	SeedAdminFn          func(senhaPadrao string) error
}

func (m *repoMock) Criar(_ *gorm.DB, u *Usuario) error {
	if m.CriarFn == nil {
		return errors.New("CriarFn not set")
	}
	return m.CriarFn(u)
}

func (m *repoMock) BuscarPorID(_ *gorm.DB, id uint) (*Usuario, error) {
	if m.BuscarPorIDFn == nil {
		return nil, errors.New("BuscarPorIDFn not set")
	}
	return m.BuscarPorIDFn(id)
}

func (m *repoMock) BuscarPorUsername(_ *gorm.DB, username string) (*Usuario, error) {
	if m.BuscarPorUsernameFn == nil {
		return nil, errors.New("BuscarPorUsernameFn not set")
	}
	return m.BuscarPorUsernameFn(username)
}

func (m *repoMock) ListarTodos(_ *gorm.DB) ([]Usuario, error) {
	if m.ListarTodosFn == nil {
		return nil, errors.New("ListarTodosFn not set")
	}
	return m.ListarTodosFn()
}

func (m *repoMock) Atualizar(_ *gorm.DB, id uint, patch *Atualizacao) (*Usuario, error) {
	if m.AtualizarFn == nil {
		return nil, errors.New("AtualizarFn not set")
	}
	return m.AtualizarFn(id, patch)
}

func (m *repoMock) Deletar(_ *gorm.DB, id uint) error {
	if m.DeletarFn == nil {
		return errors.New("DeletarFn not set")
	}
	return m.DeletarFn(id)
}

func (m *repoMock) ValidarCredenciais(_ *gorm.DB, username, senha string) (*Usuario, error) {
	if m.ValidarCredenciaisFn == nil {
		return nil, errors.New("ValidarCredenciaisFn not set")
	}
	return m.ValidarCredenciaisFn(username, senha)
}

func (m *repoMock) SeedAdmin(_ *gorm.DB, senhaPadrao string) error {
	if m.SeedAdminFn == nil {
		return errors.New("SeedAdminFn not set")
	}
	return m.SeedAdminFn(senhaPadrao)
}

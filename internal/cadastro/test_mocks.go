package cadastro

import (
	"errors"
	"io"
	"mime/multipart"

	"gorm.io/gorm"
)

type repoMock struct {
	CriarFn         func(c *Cadastro) error
	BuscarPorIDFn   func(id uint) (*Cadastro, error)
	ListarTodosFn   func() ([]Cadastro, error)
	ListarPorTipoFn func(tipo string) ([]Cadastro, error)
	AtualizarFn     func(id uint, patch *Atualizacao) (*Cadastro, error)
	DeletarFn       func(id uint) error
	EstatisticasFn  func() (*Estatisticas, error)
}

func (m *repoMock) Criar(_ *gorm.DB, c *Cadastro) error {
	if m.CriarFn == nil {
		return errors.New("CriarFn not set")
	}
	return m.CriarFn(c)
}

func (m *repoMock) BuscarPorID(_ *gorm.DB, id uint) (*Cadastro, error) {
	if m.BuscarPorIDFn == nil {
		return nil, errors.New("BuscarPorIDFn not set")
	}
	return m.BuscarPorIDFn(id)
}

func (m *repoMock) ListarTodos(_ *gorm.DB) ([]Cadastro, error) {
	if m.ListarTodosFn == nil {
		return nil, errors.New("ListarTodosFn not set")
	}
	return m.ListarTodosFn()
}

func (m *repoMock) ListarPorTipo(_ *gorm.DB, tipo string) ([]Cadastro, error) {
	if m.ListarPorTipoFn == nil {
		return nil, errors.New("ListarPorTipoFn not set")
	}
	return m.ListarPorTipoFn(tipo)
}

func (m *repoMock) Atualizar(_ *gorm.DB, id uint, patch *Atualizacao) (*Cadastro, error) {
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

func (m *repoMock) Estatisticas(_ *gorm.DB) (*Estatisticas, error) {
	if m.EstatisticasFn == nil {
		return nil, errors.New("EstatisticasFn not set")
	}
	return m.EstatisticasFn()
}

type arquivoMock struct {
	SalvarPDFFn func(fh *multipart.FileHeader) (string, error)
	AbrirFn     func(nome string) (io.ReadSeekCloser, error)
	RemoverFn   func(nome string) error
	removidos   []string
}

func (m *arquivoMock) SalvarPDF(fh *multipart.FileHeader) (string, error) {
	if m.SalvarPDFFn == nil {
		return "", errors.New("SalvarPDFFn not set")
	}
	return m.SalvarPDFFn(fh)
}

func (m *arquivoMock) Abrir(nome string) (io.ReadSeekCloser, error) {
	if m.AbrirFn == nil {
		return nil, errors.New("AbrirFn not set")
	}
	return m.AbrirFn(nome)
}

func (m *arquivoMock) Remover(nome string) error {
	m.removidos = append(m.removidos, nome)
	if m.RemoverFn == nil {
		return nil
	}
	return m.RemoverFn(nome)
}

package arquivo

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TamanhoMaximo limita os PDFs aceitos no intake a 10MB.
const TamanhoMaximo = 10 << 20

var (
	ErrArquivoGrande = errors.New("arquivo excede o limite de 10MB")
	ErrNaoEhPDF      = errors.New("arquivo deve ser um PDF (application/pdf)")
	ErrNaoEncontrado = errors.New("arquivo não encontrado")
	ErrNomeInvalido  = errors.New("nome de arquivo inválido")
)

// Store grava e recupera os PDFs enviados junto com os formulários.
// A gravação acontece antes da persistência do cadastro; uma falha
// entre as duas etapas deixa o arquivo órfão (ver notificacao).
type Store interface {
	SalvarPDF(fh *multipart.FileHeader) (string, error)
	Abrir(nome string) (io.ReadSeekCloser, error)
	Remover(nome string) error
}

type storeLocal struct {
	dir string
}

// NewStore cria (se preciso) o diretório de upload e retorna o store.
func NewStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &storeLocal{dir: dir}, nil
}

// SalvarPDF valida tamanho e content-type e grava o arquivo com um
// nome gerado. Retorna o nome gerado, que é o identificador do PDF.
func (s *storeLocal) SalvarPDF(fh *multipart.FileHeader) (string, error) {
	if fh.Size > TamanhoMaximo {
		return "", ErrArquivoGrande
	}
	if ct := fh.Header.Get("Content-Type"); ct != "application/pdf" {
		return "", ErrNaoEhPDF
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	nome := uuid.NewString() + ".pdf"
	dst, err := os.Create(filepath.Join(s.dir, nome))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, TamanhoMaximo)); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return nome, nil
}

func (s *storeLocal) Abrir(nome string) (io.ReadSeekCloser, error) {
	caminho, err := s.caminho(nome)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(caminho)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNaoEncontrado
	}
	return f, err
}

func (s *storeLocal) Remover(nome string) error {
	caminho, err := s.caminho(nome)
	if err != nil {
		return err
	}
	err = os.Remove(caminho)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNaoEncontrado
	}
	return err
}

// caminho rejeita nomes com separadores para impedir path traversal.
func (s *storeLocal) caminho(nome string) (string, error) {
	if nome == "" || nome != filepath.Base(nome) || strings.Contains(nome, "..") {
		return "", ErrNomeInvalido
	}
	return filepath.Join(s.dir, nome), nil
}

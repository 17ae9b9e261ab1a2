package formulario

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrTipoDesconhecido indica um tipoFormulario sem schema registrado.
var ErrTipoDesconhecido = errors.New("tipo de formulário desconhecido")

// ErroValidacao carrega as violações campo a campo de um payload.
type ErroValidacao struct {
	Campos map[string]string `json:"campos"`
}

func (e *ErroValidacao) Error() string {
	chaves := make([]string, 0, len(e.Campos))
	for c := range e.Campos {
		chaves = append(chaves, c)
	}
	sort.Strings(chaves)
	return fmt.Sprintf("dados inválidos nos campos: %s", strings.Join(chaves, ", "))
}

package formulario

import "sort"

// Tipos de formulário suportados.
const (
	TipoFichaFiadorPF    = "ficha-fiador-pf"
	TipoFichaFiadorPJ    = "ficha-fiador-pj"
	TipoFichaLocatarioPF = "ficha-locatario-pf"
	TipoFichaLocatarioPJ = "ficha-locatario-pj"
	TipoCadastroImovel   = "cadastro-imovel"
	TipoPropostaCompra   = "proposta-compra"
	TipoPropostaLocacao  = "proposta-locacao"
	TipoAutorizacaoFotos = "autorizacao-fotos"
	TipoAutorizacaoVenda = "autorizacao-venda"
)

var schemas = map[string]*Schema{}

func registrar(s *Schema) {
	schemas[s.Tipo] = s
}

func init() {
	registrar(&Schema{
		Tipo: TipoFichaFiadorPF,
		Campos: compor([]Campo{
			{Nome: "nome", Obrigatorio: true},
			{Nome: "cpf", Obrigatorio: true, Regra: regraCPF},
			{Nome: "rg"},
			{Nome: "dataNascimento"},
			{Nome: "estadoCivil"},
			{Nome: "profissao"},
			{Nome: "rendaMensal", Regra: regraValorPositivo},
			{Nome: "codigoImovel", Obrigatorio: true},
		}, camposContato(), camposEndereco(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoFichaFiadorPJ,
		Campos: compor([]Campo{
			{Nome: "razaoSocial", Obrigatorio: true},
			{Nome: "cnpj", Obrigatorio: true, Regra: regraCNPJ},
			{Nome: "inscricaoEstadual"},
			{Nome: "nomeResponsavel", Obrigatorio: true},
			{Nome: "codigoImovel", Obrigatorio: true},
		}, camposContato(), camposEndereco(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoFichaLocatarioPF,
		Campos: compor([]Campo{
			{Nome: "nome", Obrigatorio: true},
			{Nome: "cpf", Obrigatorio: true, Regra: regraCPF},
			{Nome: "rg"},
			{Nome: "profissao"},
			{Nome: "rendaMensal", Regra: regraValorPositivo},
			{Nome: "codigoImovel", Obrigatorio: true},
		}, camposContato(), camposEndereco(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoFichaLocatarioPJ,
		Campos: compor([]Campo{
			{Nome: "razaoSocial", Obrigatorio: true},
			{Nome: "cnpj", Obrigatorio: true, Regra: regraCNPJ},
			{Nome: "inscricaoEstadual"},
			{Nome: "nomeResponsavel", Obrigatorio: true},
			{Nome: "ramoAtividade"},
			{Nome: "codigoImovel", Obrigatorio: true},
		}, camposContato(), camposEndereco(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoCadastroImovel,
		Campos: compor([]Campo{
			{Nome: "nomeProprietario", Obrigatorio: true},
			{Nome: "cpfCnpjProprietario", Obrigatorio: true, Regra: regraCPFouCNPJ},
			{Nome: "codigoImovel", Obrigatorio: true},
			{Nome: "tipoImovel", Obrigatorio: true},
			{Nome: "valorVenda", Regra: regraValorPositivo},
			{Nome: "valorLocacao", Regra: regraValorPositivo},
			{Nome: "descricao"},
		}, camposContato(), camposEndereco(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoPropostaCompra,
		Campos: compor([]Campo{
			{Nome: "nome", Obrigatorio: true},
			{Nome: "cpf", Obrigatorio: true, Regra: regraCPF},
			{Nome: "codigoImovel", Obrigatorio: true},
			{Nome: "valorProposta", Obrigatorio: true, Regra: regraValorPositivo},
			{Nome: "condicaoPagamento"},
		}, camposContato(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoPropostaLocacao,
		Campos: compor([]Campo{
			{Nome: "nome", Obrigatorio: true},
			{Nome: "cpf", Obrigatorio: true, Regra: regraCPF},
			{Nome: "codigoImovel", Obrigatorio: true},
			{Nome: "prazoLocacao", Obrigatorio: true},
			{Nome: "finalidade"},
		}, camposContato(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoAutorizacaoFotos,
		Campos: compor([]Campo{
			{Nome: "nomeProprietario", Obrigatorio: true},
			{Nome: "cpfCnpjProprietario", Obrigatorio: true, Regra: regraCPFouCNPJ},
			{Nome: "codigoImovel", Obrigatorio: true},
		}, camposContato(), camposComuns()),
	})

	registrar(&Schema{
		Tipo: TipoAutorizacaoVenda,
		Campos: compor([]Campo{
			{Nome: "nomeProprietario", Obrigatorio: true},
			{Nome: "cpfCnpjProprietario", Obrigatorio: true, Regra: regraCPFouCNPJ},
			{Nome: "codigoImovel", Obrigatorio: true},
			{Nome: "valorAutorizado", Obrigatorio: true, Regra: regraValorPositivo},
			{Nome: "prazoExclusividade"},
		}, camposContato(), camposComuns()),
	})
}

// Validar seleciona o schema pelo tipo declarado e aplica as regras.
// Retorna ErrTipoDesconhecido ou *ErroValidacao conforme o caso.
func Validar(tipo string, dados map[string]any) (map[string]any, error) {
	s, ok := schemas[tipo]
	if !ok {
		return nil, ErrTipoDesconhecido
	}
	norm, ve := s.Validar(dados)
	if ve != nil {
		return nil, ve
	}
	return norm, nil
}

// Tipos lista os tipos de formulário registrados, em ordem estável.
func Tipos() []string {
	out := make([]string, 0, len(schemas))
	for t := range schemas {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

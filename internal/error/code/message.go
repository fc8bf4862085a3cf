package code

// Mapeamento código -> mensagem exibida ao usuário
var codeMessageMap = map[int]string{
	// Gerais
	ErrSuccess:         "sucesso",
	ErrUnknown:         "erro desconhecido",
	ErrBind:            "não foi possível interpretar a requisição",
	ErrValidation:      "parâmetros inválidos",
	ErrTokenInvalid:    "token de autenticação inválido",
	ErrTooManyRequests: "muitas requisições, tente novamente em instantes",
	ErrForbidden:       "permissão insuficiente para este recurso",

	// Contas
	ErrContaNotFound:      "conta não encontrada",
	ErrContaAlreadyExists: "CPF, CNPJ ou e-mail já cadastrado",
	ErrSenhaIncorreta:     "e-mail ou senha incorretos",
	ErrSenhasNaoConferem:  "as senhas não coincidem",
	ErrCategoriaNotFound:  "selecione uma categoria válida",

	// Cupons
	ErrCupomNotFound:       "cupom não encontrado",
	ErrCupomDatasInvalidas: "período de vigência inválido",
	ErrCupomGeracaoCodigo:  "não foi possível gerar o código do cupom",
	ErrCupomExpirado:       "cupom expirado",
	ErrCupomForaVigencia:   "cupom ainda não está em vigência",
	ErrCupomNaoPertence:    "o cupom não pertence a este comércio",

	// Reservas
	ErrReservaNotFound:    "reserva não encontrada",
	ErrCupomJaReservado:   "cupom já reservado",
	ErrReservaJaUtilizada: "reserva já utilizada",
	ErrReservaNaoPertence: "a reserva não pertence a este associado",

	// Banco de dados
	ErrDatabase:       "erro de banco de dados",
	ErrRecordNotFound: "registro não encontrado",
	ErrDuplicateKey:   "registro duplicado",
}

// Mapeamento código -> status HTTP
var codeStatusMap = map[int]int{
	// Gerais
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,

	// Contas
	ErrContaNotFound:      StatusNotFound,
	ErrContaAlreadyExists: StatusConflict,
	ErrSenhaIncorreta:     StatusUnauthorized,
	ErrSenhasNaoConferem:  StatusBadRequest,
	ErrCategoriaNotFound:  StatusBadRequest,

	// Cupons
	ErrCupomNotFound:       StatusNotFound,
	ErrCupomDatasInvalidas: StatusBadRequest,
	ErrCupomGeracaoCodigo:  StatusInternalServerError,
	ErrCupomExpirado:       StatusConflict,
	ErrCupomForaVigencia:   StatusConflict,
	ErrCupomNaoPertence:    StatusForbidden,

	// Reservas
	ErrReservaNotFound:    StatusNotFound,
	ErrCupomJaReservado:   StatusConflict,
	ErrReservaJaUtilizada: StatusConflict,
	ErrReservaNaoPertence: StatusForbidden,

	// Banco de dados
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
	ErrDuplicateKey:   StatusConflict,
}

// GetMessage retorna a mensagem associada ao código
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "erro desconhecido"
}

// GetStatus retorna o status HTTP associado ao código
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}

package code

// Códigos de status HTTP.
const (
	// StatusOK - 200: sucesso.
	StatusOK = 200
	// StatusBadRequest - 400: parâmetros inválidos.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: não autenticado.
	StatusUnauthorized = 401
	// StatusForbidden - 403: acesso negado.
	StatusForbidden = 403
	// StatusNotFound - 404: recurso inexistente.
	StatusNotFound = 404
	// StatusConflict - 409: conflito de estado.
	StatusConflict = 409
	// StatusTooManyRequests - 429: requisições em excesso.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: erro interno.
	StatusInternalServerError = 500
)

// Códigos de erro gerais (100xxx).
const (
	// ErrSuccess - 200: sucesso.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: erro desconhecido.
	ErrUnknown
	// ErrBind - 400: falha ao interpretar o corpo da requisição.
	ErrBind
	// ErrValidation - 400: falha de validação dos parâmetros.
	ErrValidation
	// ErrTokenInvalid - 401: token inválido.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: frequência de requisições muito alta.
	ErrTooManyRequests
	// ErrForbidden - 403: papel sem permissão para o recurso.
	ErrForbidden
)

// Códigos de erro de contas (101xxx).
const (
	// ErrContaNotFound - 404: conta não encontrada.
	ErrContaNotFound int = iota + 101000
	// ErrContaAlreadyExists - 409: CPF, CNPJ ou e-mail já cadastrado.
	ErrContaAlreadyExists
	// ErrSenhaIncorreta - 401: e-mail ou senha incorretos.
	ErrSenhaIncorreta
	// ErrSenhasNaoConferem - 400: senha e confirmação divergem.
	ErrSenhasNaoConferem
	// ErrCategoriaNotFound - 400: categoria informada não existe.
	ErrCategoriaNotFound
)

// Códigos de erro de cupons (102xxx).
const (
	// ErrCupomNotFound - 404: cupom não encontrado.
	ErrCupomNotFound int = iota + 102000
	// ErrCupomDatasInvalidas - 400: período de vigência inválido.
	ErrCupomDatasInvalidas
	// ErrCupomGeracaoCodigo - 500: não foi possível gerar um código único.
	ErrCupomGeracaoCodigo
	// ErrCupomExpirado - 409: cupom fora da vigência (expirado).
	ErrCupomExpirado
	// ErrCupomForaVigencia - 409: cupom ainda não entrou em vigência.
	ErrCupomForaVigencia
	// ErrCupomNaoPertence - 403: cupom não pertence ao comércio.
	ErrCupomNaoPertence
)

// Códigos de erro de reservas (103xxx).
const (
	// ErrReservaNotFound - 404: reserva não encontrada.
	ErrReservaNotFound int = iota + 103000
	// ErrCupomJaReservado - 409: cupom já reservado por outro associado.
	ErrCupomJaReservado
	// ErrReservaJaUtilizada - 409: reserva já resgatada no comércio.
	ErrReservaJaUtilizada
	// ErrReservaNaoPertence - 403: reserva não pertence ao associado.
	ErrReservaNaoPertence
)

// Códigos de erro de banco de dados (105xxx).
const (
	// ErrDatabase - 500: erro de banco de dados.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: registro inexistente.
	ErrRecordNotFound
	// ErrDuplicateKey - 409: violação de chave única.
	ErrDuplicateKey
)

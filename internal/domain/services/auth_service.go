package services

import (
	"errors"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	apperr "github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAuthService define o serviço de cadastro e autenticação
type InterfaceAuthService interface {
	RegisterAssociado(associado *models.Associado) error
	RegisterComerciante(comercio *models.Comercio, categoriaNome string) error
	Login(email, senha string) (*LoginResult, error)
	GetCategorias() ([]models.Categoria, error)
}

// LoginResult é devolvido após autenticação bem sucedida. O papel é
// resolvido aqui, uma única vez, e fica selado nas claims do token.
type LoginResult struct {
	Token     string `json:"token"`
	Documento uint64 `json:"documento"`
	Role      string `json:"role"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
}

// AuthService provê cadastro e autenticação de contas
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewAuthService cria um novo serviço de autenticação
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

// emailEmUso verifica o e-mail nas duas tabelas de perfil, pois o login
// identifica a conta apenas pelo e-mail.
func emailEmUso(tx *gorm.DB, email string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Associado{}).Where("email_associado = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := tx.Model(&models.Comercio{}).Where("email_comercio = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RegisterAssociado cadastra um associado em uma única transação
func (s *AuthService) RegisterAssociado(associado *models.Associado) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Associado{}).Where("cpf_associado = ?", associado.Cpf).Count(&count).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if count > 0 {
			return apperr.New(apperr.ErrContaAlreadyExists)
		}

		usado, err := emailEmUso(tx, associado.Email)
		if err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if usado {
			return apperr.New(apperr.ErrContaAlreadyExists)
		}

		// O hook BeforeSave aplica bcrypt sobre a senha
		if err := tx.Create(associado).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		return nil
	})
	return err
}

// RegisterComerciante cadastra um comerciante em uma única transação.
// A categoria chega pelo nome, como no formulário, e é resolvida aqui.
func (s *AuthService) RegisterComerciante(comercio *models.Comercio, categoriaNome string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var categoria models.Categoria
		if err := tx.Where("nom_categoria = ?", categoriaNome).First(&categoria).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.ErrCategoriaNotFound)
			}
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		comercio.IDCategoria = categoria.ID

		var count int64
		if err := tx.Model(&models.Comercio{}).Where("cnpj_comercio = ?", comercio.Cnpj).Count(&count).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if count > 0 {
			return apperr.New(apperr.ErrContaAlreadyExists)
		}

		usado, err := emailEmUso(tx, comercio.Email)
		if err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if usado {
			return apperr.New(apperr.ErrContaAlreadyExists)
		}

		if err := tx.Create(comercio).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		return nil
	})
	return err
}

// Login autentica por e-mail e senha. Uma conta sem perfil em nenhuma
// das tabelas é rejeitada; não existe mais rota-padrão para comerciante.
func (s *AuthService) Login(email, senha string) (*LoginResult, error) {
	var associado models.Associado
	err := s.DB.Where("email_associado = ?", email).First(&associado).Error
	if err == nil {
		if !models.CheckPasswordHash(senha, associado.Senha) {
			return nil, apperr.New(apperr.ErrSenhaIncorreta)
		}
		token, err := s.JWT.GenerateToken(associado.Cpf, RoleAssociado, associado.Nome, associado.Email)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrUnknown, err)
		}
		return &LoginResult{
			Token:     token,
			Documento: associado.Cpf,
			Role:      RoleAssociado,
			Nome:      associado.Nome,
			Email:     associado.Email,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}

	var comercio models.Comercio
	err = s.DB.Where("email_comercio = ?", email).First(&comercio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Mesma resposta de senha incorreta para não revelar
			// quais e-mails possuem cadastro
			return nil, apperr.New(apperr.ErrSenhaIncorreta)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}

	if !models.CheckPasswordHash(senha, comercio.Senha) {
		return nil, apperr.New(apperr.ErrSenhaIncorreta)
	}
	token, err := s.JWT.GenerateToken(comercio.Cnpj, RoleComerciante, comercio.NomeFantasia, comercio.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrUnknown, err)
	}
	return &LoginResult{
		Token:     token,
		Documento: comercio.Cnpj,
		Role:      RoleComerciante,
		Nome:      comercio.NomeFantasia,
		Email:     comercio.Email,
	}, nil
}

// GetCategorias lista as categorias para o formulário de cadastro
func (s *AuthService) GetCategorias() ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := s.DB.Order("id_categoria").Find(&categorias).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return categorias, nil
}

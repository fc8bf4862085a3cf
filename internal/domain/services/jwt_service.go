package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
)

// Papéis de conta resolvidos uma única vez no login e carregados
// nas claims do token; nunca re-derivados por consulta às tabelas.
const (
	RoleAssociado   = "associado"
	RoleComerciante = "comerciante"
)

// InterfaceJWTService define o serviço de tokens
type InterfaceJWTService interface {
	GenerateToken(documento uint64, role, nome, email string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService provê geração e validação de tokens
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims define as claims do token. Documento é o CPF do associado
// ou o CNPJ do comércio, conforme o papel.
type JWTClaims struct {
	Documento uint64 `json:"documento"`
	Role      string `json:"role"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTService cria um novo serviço de tokens
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "cupom-facil-http-service",
	}
}

// GenerateToken gera um token com validade de 24 horas
func (s *JWTService) GenerateToken(documento uint64, role, nome, email string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		Documento: documento,
		Role:      role,
		Nome:      nome,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken valida a assinatura e a validade do token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extrai as claims de um token válido
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}

	if documento, ok := claims["documento"].(float64); ok {
		jwtClaims.Documento = uint64(documento)
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if nome, ok := claims["nome"].(string); ok {
		jwtClaims.Nome = nome
	}
	if email, ok := claims["email"].(string); ok {
		jwtClaims.Email = email
	}
	if issuer, ok := claims["iss"].(string); ok {
		jwtClaims.Issuer = issuer
	}

	return jwtClaims, nil
}

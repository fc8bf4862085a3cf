package middleware

import (
	"strings"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware inicializa o middleware de autenticação
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken remove o prefixo "Bearer " do cabeçalho Authorization
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticateRole valida o token e exige o papel informado. O papel
// vem das claims, seladas no login; nenhuma tabela é consultada aqui.
func authenticateRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.FailWithMessage(c, code.ErrTokenInvalid, "token inválido: "+err.Error(), nil)
			c.Abort()
			return
		}

		if claims.Role != role {
			response.Fail(c, code.ErrForbidden, nil)
			c.Abort()
			return
		}

		// Disponibiliza as claims para os controllers
		c.Set("documento", claims.Documento)
		c.Set("role", claims.Role)
		c.Set("nome", claims.Nome)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// AuthenticateAssociado exige uma sessão de associado
func AuthenticateAssociado() gin.HandlerFunc {
	return authenticateRole(services.RoleAssociado)
}

// AuthenticateComerciante exige uma sessão de comerciante
func AuthenticateComerciante() gin.HandlerFunc {
	return authenticateRole(services.RoleComerciante)
}

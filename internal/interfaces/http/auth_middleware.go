package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

// LocalCurrentUser key de c.Locals con el *entity.User autenticado y activo.
const LocalCurrentUser = "current_user"

// IdentityResolver lo implementa *auth.AuthUseCase.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*entity.User, error)
	RequireActive(user *entity.User) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token, resuelve el usuario y exige cuenta activa.
func AuthMiddleware(resolver IdentityResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return writeError(c, log, domain.ErrUnauthorized)
		}
		user, err := resolver.ResolveIdentity(c.UserContext(), token)
		if err != nil {
			return writeError(c, log, err)
		}
		user, err = resolver.RequireActive(user)
		if err != nil {
			return writeError(c, log, err)
		}
		c.Locals(LocalCurrentUser, user)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// CurrentUser devuelve el usuario del contexto (después de AuthMiddleware).
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalCurrentUser).(*entity.User)
	return u
}

// ownerID id del usuario autenticado; vacío si la ruta no pasó por AuthMiddleware.
func ownerID(c *fiber.Ctx) string {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return ""
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los traduce a código de estado; el núcleo nunca los registra ni los reintenta.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no se pudieron validar las credenciales")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrInactiveAccount    = errors.New("usuario inactivo")
	ErrInvalidFilter      = errors.New("filtro inválido")
)

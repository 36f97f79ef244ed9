package auth

// PasswordHasher hashea y verifica contraseñas. Verify nunca falla con error: entrada malformada => false.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// TokenCodec emite y verifica tokens bearer cuyo subject es el email del usuario.
type TokenCodec interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}

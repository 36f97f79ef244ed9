package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL validez por defecto de un token emitido con Issue.
const DefaultTTL = 30 * time.Minute

// ErrInvalidToken se devuelve ante firma incorrecta, payload malformado, algoritmo inesperado,
// subject ausente o token expirado. Es el mismo error en todos los casos.
var ErrInvalidToken = errors.New("jwt: token inválido o expirado")

// Claims claims estándar; el subject es el email del usuario.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec firma y verifica tokens HMAC con un secreto fijo de proceso.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configura un Codec.
type Option func(*Codec)

// WithClock reemplaza el reloj (emisión y verificación).
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// WithIssuer fija el claim iss al emitir y lo exige al verificar.
func WithIssuer(issuer string) Option {
	return func(c *Codec) { c.issuer = issuer }
}

// NewCodec construye el códec. algorithm debe ser HS256, HS384 o HS512; ttl <= 0 usa DefaultTTL.
func NewCodec(secret, algorithm string, ttl time.Duration, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("jwt: algoritmo no soportado %q", algorithm)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Codec{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL devuelve la validez por defecto configurada.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue emite un token para subject con la validez por defecto.
func (c *Codec) Issue(subject string) (string, error) {
	return c.IssueWithTTL(subject, c.ttl)
}

// IssueWithTTL emite un token que expira ttl después de ahora. ttl == 0 produce un token ya vencido.
func (c *Codec) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("jwt: subject vacío")
	}
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(c.method, claims)
	return token.SignedString(c.secret)
}

// Verify valida firma, algoritmo y expiración y devuelve el subject.
// Cualquier fallo se reporta como ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

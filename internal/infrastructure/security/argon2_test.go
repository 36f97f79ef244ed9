package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Invoicing-api/pkg/config"
)

// parámetros bajos para que los tests sean rápidos
func fastParams() Argon2Params {
	return Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestArgon2Hasher_HashVerify(t *testing.T) {
	h := NewArgon2Hasher(fastParams())

	encoded, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	assert.True(t, h.Verify("s3cret!", encoded))
	assert.False(t, h.Verify("s3cret", encoded))
	assert.False(t, h.Verify("", encoded))
}

func TestArgon2Hasher_SalAleatoria(t *testing.T) {
	h := NewArgon2Hasher(fastParams())

	a, err := h.Hash("misma")
	require.NoError(t, err)
	b, err := h.Hash("misma")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("misma", a))
	assert.True(t, h.Verify("misma", b))
}

func TestArgon2Hasher_VerificaConParametrosDelHash(t *testing.T) {
	old := NewArgon2Hasher(fastParams())
	encoded, err := old.Hash("pw")
	require.NoError(t, err)

	other := fastParams()
	other.Iterations = 2
	assert.True(t, NewArgon2Hasher(other).Verify("pw", encoded))
}

func TestArgon2Hasher_MalformadoDevuelveFalse(t *testing.T) {
	h := NewArgon2Hasher(fastParams())
	valid, err := h.Hash("pw")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	cases := map[string]string{
		"vacío":            "",
		"texto plano":      "pw",
		"bcrypt":           "$2a$10$abcdefghijklmnopqrstuuC2aJ1b0Q2r9XhN0iQzSx7e9bFvE8yW",
		"algoritmo":        strings.Replace(valid, "argon2id", "argon2i", 1),
		"versión":          strings.Replace(valid, "v=19", "v=16", 1),
		"parámetros":       "$argon2id$v=19$m=x,t=1,p=1$" + parts[4] + "$" + parts[5],
		"paralelismo cero": "$argon2id$v=19$m=1024,t=1,p=0$" + parts[4] + "$" + parts[5],
		"sal inválida":     "$argon2id$v=19$m=1024,t=1,p=1$%%%$" + parts[5],
		"hash vacío":       "$argon2id$v=19$m=1024,t=1,p=1$" + parts[4] + "$",
		"partes de más":    valid + "$extra",
	}
	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("pw", encoded))
			})
		})
	}
}

func TestParamsFromConfig(t *testing.T) {
	p := ParamsFromConfig(config.HashConfig{MemoryKB: 2048, Iterations: 4, Parallelism: 1})
	assert.Equal(t, uint32(2048), p.Memory)
	assert.Equal(t, uint32(4), p.Iterations)
	assert.Equal(t, uint8(1), p.Parallelism)
	assert.Equal(t, uint32(16), p.SaltLength)
	assert.Equal(t, uint32(32), p.KeyLength)

	assert.Equal(t, DefaultArgon2Params(), ParamsFromConfig(config.HashConfig{}))
}

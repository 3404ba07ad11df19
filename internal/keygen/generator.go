package keygen

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/curve25519"

	"keymint/internal/domain"
	"keymint/internal/util/memzero"
)

// Generator produces credential material from a cryptographically
// secure entropy source. The zero source defaults to crypto/rand.
type Generator struct {
	rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator { return &Generator{rand: rand.Reader} }

// NewWithRand returns a Generator reading entropy from r. Intended for
// tests; r must behave like a secure random source in production.
func NewWithRand(r io.Reader) *Generator { return &Generator{rand: r} }

// read fills b from the entropy source.
func (g *Generator) read(b []byte) error {
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEntropyUnavailable, err)
	}
	return nil
}

// X25519 generates a fresh Curve25519 key pair. The private key is
// clamped per RFC 7748; both keys are encoded base64url without padding.
func (g *Generator) X25519() (domain.KeyPair, error) {
	var priv [32]byte
	if err := g.read(priv[:]); err != nil {
		return domain.KeyPair{}, err
	}
	clamp(&priv)
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrPrimitiveFailure, err)
	}
	kp := domain.KeyPair{
		PublicKey:  base64.RawURLEncoding.EncodeToString(pub),
		PrivateKey: base64.RawURLEncoding.EncodeToString(priv[:]),
	}
	memzero.Zero(priv[:])
	return kp, nil
}

// ShortID generates a REALITY short identifier: 8 random bytes as
// 16 lowercase hex characters.
func (g *Generator) ShortID() (domain.ShortID, error) {
	var b [8]byte
	if err := g.read(b[:]); err != nil {
		return "", err
	}
	return domain.ShortID(hex.EncodeToString(b[:])), nil
}

// ClientID generates a random RFC 4122 UUID for a VLESS user.
func (g *Generator) ClientID() (domain.ClientID, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEntropyUnavailable, err)
	}
	return domain.ClientID(id.String()), nil
}

// ShadowsocksPassword generates a pre-shared key for method. The method
// is validated before any randomness is consumed.
func (g *Generator) ShadowsocksPassword(method domain.CipherMethod) (domain.ShadowsocksPassword, error) {
	n, ok := method.KeyLen()
	if !ok {
		return domain.ShadowsocksPassword{}, fmt.Errorf("%w: %q", domain.ErrInvalidMethod, method)
	}
	key := make([]byte, n)
	if err := g.read(key); err != nil {
		return domain.ShadowsocksPassword{}, err
	}
	p := domain.ShadowsocksPassword{
		Method: method,
		Value:  base64.RawURLEncoding.EncodeToString(key),
	}
	memzero.Zero(key)
	return p, nil
}

func clamp(k *[32]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}

// Compile-time assertion that Generator implements domain.KeyMaterialGenerator.
var _ domain.KeyMaterialGenerator = (*Generator)(nil)

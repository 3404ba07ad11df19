package keygen

import (
	"encoding/base64"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"keymint/internal/domain"
	"keymint/internal/util/memzero"
)

// MLDSA65 generates ML-DSA-65 signature key material: a 32-byte seed
// (the server keeps this) and the packed verification key (clients pin
// it). Both are encoded base64url without padding.
func (g *Generator) MLDSA65() (domain.MLDSA65KeyPair, error) {
	var seed [mldsa65.SeedSize]byte
	if err := g.read(seed[:]); err != nil {
		return domain.MLDSA65KeyPair{}, err
	}
	pub, _ := mldsa65.NewKeyFromSeed(&seed)
	verify, err := pub.MarshalBinary()
	if err != nil {
		return domain.MLDSA65KeyPair{}, fmt.Errorf("%w: mldsa65: %v", domain.ErrPrimitiveFailure, err)
	}
	kp := domain.MLDSA65KeyPair{
		Seed:   base64.RawURLEncoding.EncodeToString(seed[:]),
		Verify: base64.RawURLEncoding.EncodeToString(verify),
	}
	memzero.Zero(seed[:])
	return kp, nil
}

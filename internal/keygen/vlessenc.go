package keygen

import (
	"crypto/mlkem"
	"encoding/base64"
	"fmt"

	"keymint/internal/domain"
	"keymint/internal/util/memzero"
)

// VLESS encryption strings are four dot-delimited fields:
// {alg}.{mode}.{session}.{key}. The literal tokens below are a
// compatibility contract with the core binary and must not change.
const (
	vlessAlg           = "mlkem768x25519plus"
	vlessMode          = "native"
	vlessServerSession = "600s" // decryption side: ticket lifetime
	vlessClientSession = "0rtt" // encryption side: zero round-trip
)

func vlessString(session, key string) string {
	return vlessAlg + "." + vlessMode + "." + session + "." + key
}

// VLESSEncryption generates both key-exchange variants of a VLESS
// encryption/decryption pair in one call.
//
// X25519 variant: the private key is the server-side material, the
// public key the client-side material. ML-KEM-768 variant: a 64-byte
// seed is the server-side material; the encapsulation key derived from
// it is the client-side material.
func (g *Generator) VLESSEncryption() (domain.VLESSEncryptionBundle, error) {
	kp, err := g.X25519()
	if err != nil {
		return domain.VLESSEncryptionBundle{}, err
	}
	x := &domain.VLESSEncryption{
		Decryption: vlessString(vlessServerSession, kp.PrivateKey),
		Encryption: vlessString(vlessClientSession, kp.PublicKey),
	}

	var seed [64]byte
	if err := g.read(seed[:]); err != nil {
		return domain.VLESSEncryptionBundle{}, err
	}
	dk, err := mlkem.NewDecapsulationKey768(seed[:])
	if err != nil {
		return domain.VLESSEncryptionBundle{}, fmt.Errorf("%w: mlkem768: %v", domain.ErrPrimitiveFailure, err)
	}
	client := dk.EncapsulationKey().Bytes()
	m := &domain.VLESSEncryption{
		Decryption: vlessString(vlessServerSession, base64.RawURLEncoding.EncodeToString(seed[:])),
		Encryption: vlessString(vlessClientSession, base64.RawURLEncoding.EncodeToString(client)),
	}
	memzero.Zero(seed[:])

	return domain.VLESSEncryptionBundle{X25519: x, MLKEM768: m}, nil
}

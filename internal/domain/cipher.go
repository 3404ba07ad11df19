package domain

import "sort"

// CipherMethod identifies a Shadowsocks AEAD cipher. Each method fixes
// the pre-shared key length the core expects.
type CipherMethod string

const (
	Cipher2022AES128GCM        CipherMethod = "2022-blake3-aes-128-gcm"
	Cipher2022AES256GCM        CipherMethod = "2022-blake3-aes-256-gcm"
	Cipher2022ChaCha20Poly1305 CipherMethod = "2022-blake3-chacha20-poly1305"
	CipherAES128GCM            CipherMethod = "aes-128-gcm"
	CipherAES256GCM            CipherMethod = "aes-256-gcm"
	CipherChaCha20Poly1305     CipherMethod = "chacha20-ietf-poly1305"
)

// cipherKeyLens is the authoritative method table (SIP022 names for the
// 2022 family). Treated as configuration data: adding a method here is
// the only change needed to support it everywhere.
var cipherKeyLens = map[CipherMethod]int{
	Cipher2022AES128GCM:        16,
	Cipher2022AES256GCM:        32,
	Cipher2022ChaCha20Poly1305: 32,
	CipherAES128GCM:            16,
	CipherAES256GCM:            32,
	CipherChaCha20Poly1305:     32,
}

// KeyLen reports the required key length in bytes for the method and
// whether the method is recognised.
func (m CipherMethod) KeyLen() (int, bool) {
	n, ok := cipherKeyLens[m]
	return n, ok
}

// CipherMethods lists the supported methods in stable order.
func CipherMethods() []CipherMethod {
	out := make([]CipherMethod, 0, len(cipherKeyLens))
	for m := range cipherKeyLens {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

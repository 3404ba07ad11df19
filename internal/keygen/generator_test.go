package keygen_test

import (
	"bytes"
	"crypto/mlkem"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"golang.org/x/crypto/curve25519"

	"keymint/internal/domain"
	"keymint/internal/keygen"
)

func TestX25519_EncodingAndLength(t *testing.T) {
	g := keygen.New()
	kp, err := g.X25519()
	if err != nil {
		t.Fatalf("generate x25519: %v", err)
	}
	for name, s := range map[string]string{"public": kp.PublicKey, "private": kp.PrivateKey} {
		if strings.ContainsAny(s, "=+/") {
			t.Fatalf("%s key not base64url without padding: %q", name, s)
		}
		b, err := base64.RawURLEncoding.DecodeString(s)
		if err != nil {
			t.Fatalf("decode %s key: %v", name, err)
		}
		if len(b) != 32 {
			t.Fatalf("%s key: want 32 bytes, got %d", name, len(b))
		}
	}

	// The public key must be the one derived from the private key.
	priv, _ := base64.RawURLEncoding.DecodeString(kp.PrivateKey)
	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		t.Fatalf("derive public key: %v", err)
	}
	if base64.RawURLEncoding.EncodeToString(pub) != kp.PublicKey {
		t.Fatal("public key does not match the private key")
	}
}

func TestX25519_FreshEveryCall(t *testing.T) {
	g := keygen.New()
	a, err := g.X25519()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := g.X25519()
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if a.PrivateKey == b.PrivateKey || a.PublicKey == b.PublicKey {
		t.Fatal("consecutive key pairs must differ")
	}
}

func TestShortID_Format(t *testing.T) {
	g := keygen.New()
	hex16 := regexp.MustCompile(`^[0-9a-f]{16}$`)
	seen := map[domain.ShortID]bool{}
	for i := 0; i < 32; i++ {
		id, err := g.ShortID()
		if err != nil {
			t.Fatalf("generate short id: %v", err)
		}
		if !hex16.MatchString(string(id)) {
			t.Fatalf("short id %q is not 16 lowercase hex chars", id)
		}
		if seen[id] {
			t.Fatalf("short id %q repeated", id)
		}
		seen[id] = true
	}
}

func TestMLDSA65_SeedAndVerify(t *testing.T) {
	g := keygen.New()
	kp, err := g.MLDSA65()
	if err != nil {
		t.Fatalf("generate mldsa65: %v", err)
	}
	seed, err := base64.RawURLEncoding.DecodeString(kp.Seed)
	if err != nil {
		t.Fatalf("decode seed: %v", err)
	}
	if len(seed) != 32 {
		t.Fatalf("seed: want 32 bytes, got %d", len(seed))
	}
	verify, err := base64.RawURLEncoding.DecodeString(kp.Verify)
	if err != nil {
		t.Fatalf("decode verify key: %v", err)
	}
	if len(verify) == 0 {
		t.Fatal("verify key is empty")
	}

	// The verify key must be the one derived from the seed.
	var seedArr [mldsa65.SeedSize]byte
	copy(seedArr[:], seed)
	pub, _ := mldsa65.NewKeyFromSeed(&seedArr)
	want, err := pub.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal derived key: %v", err)
	}
	if !bytes.Equal(verify, want) {
		t.Fatal("verify key does not match the seed")
	}

	again, err := g.MLDSA65()
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if again.Seed == kp.Seed {
		t.Fatal("consecutive seeds must differ")
	}
}

func TestVLESSEncryption_Format(t *testing.T) {
	g := keygen.New()
	b, err := g.VLESSEncryption()
	if err != nil {
		t.Fatalf("generate vless encryption: %v", err)
	}
	if b.X25519 == nil || b.MLKEM768 == nil {
		t.Fatal("both variants must be generated together")
	}

	check := func(s, wantSession string) {
		t.Helper()
		fields := strings.Split(s, ".")
		if len(fields) != 4 {
			t.Fatalf("want 4 dot-delimited fields, got %d in %q", len(fields), s)
		}
		if fields[0] != "mlkem768x25519plus" || fields[1] != "native" || fields[2] != wantSession {
			t.Fatalf("unexpected header fields in %q", s)
		}
		if fields[3] == "" || strings.ContainsAny(fields[3], "=+/") {
			t.Fatalf("key field must be non-empty base64url without padding: %q", fields[3])
		}
	}
	check(b.X25519.Decryption, "600s")
	check(b.X25519.Encryption, "0rtt")
	check(b.MLKEM768.Decryption, "600s")
	check(b.MLKEM768.Encryption, "0rtt")

	// X25519 variant: server side carries the private key, client side
	// the public key, matching the pair relationship.
	serverKey := strings.Split(b.X25519.Decryption, ".")[3]
	clientKey := strings.Split(b.X25519.Encryption, ".")[3]
	if serverKey == clientKey {
		t.Fatal("server and client key material must differ")
	}

	// ML-KEM variant: server side is the 64-byte seed and the client
	// side must be exactly the encapsulation key derived from it.
	seed, err := base64.RawURLEncoding.DecodeString(strings.Split(b.MLKEM768.Decryption, ".")[3])
	if err != nil {
		t.Fatalf("decode mlkem seed: %v", err)
	}
	if len(seed) != 64 {
		t.Fatalf("mlkem seed: want 64 bytes, got %d", len(seed))
	}
	dk, err := mlkem.NewDecapsulationKey768(seed)
	if err != nil {
		t.Fatalf("derive from seed: %v", err)
	}
	wantClient := base64.RawURLEncoding.EncodeToString(dk.EncapsulationKey().Bytes())
	if got := strings.Split(b.MLKEM768.Encryption, ".")[3]; got != wantClient {
		t.Fatal("client key is not the encapsulation key derived from the seed")
	}
}

func TestShadowsocksPassword_Lengths(t *testing.T) {
	g := keygen.New()
	cases := []struct {
		method domain.CipherMethod
		want   int
	}{
		{domain.Cipher2022AES128GCM, 16},
		{domain.Cipher2022AES256GCM, 32},
		{domain.Cipher2022ChaCha20Poly1305, 32},
		{domain.CipherAES128GCM, 16},
		{domain.CipherAES256GCM, 32},
		{domain.CipherChaCha20Poly1305, 32},
	}
	for _, tc := range cases {
		p, err := g.ShadowsocksPassword(tc.method)
		if err != nil {
			t.Fatalf("%s: %v", tc.method, err)
		}
		if p.Method != tc.method {
			t.Fatalf("method echoed as %q, want %q", p.Method, tc.method)
		}
		if strings.ContainsAny(p.Value, "=+/") {
			t.Fatalf("%s: password not base64url without padding: %q", tc.method, p.Value)
		}
		raw, err := base64.RawURLEncoding.DecodeString(p.Value)
		if err != nil {
			t.Fatalf("%s: decode password: %v", tc.method, err)
		}
		if len(raw) != tc.want {
			t.Fatalf("%s: want %d bytes, got %d", tc.method, tc.want, len(raw))
		}
	}
}

func TestShadowsocksPassword_InvalidMethod(t *testing.T) {
	g := keygen.New()
	_, err := g.ShadowsocksPassword("not-a-real-method")
	if !errors.Is(err, domain.ErrInvalidMethod) {
		t.Fatalf("want ErrInvalidMethod, got %v", err)
	}
}

func TestShadowsocksPassword_MethodSwitch(t *testing.T) {
	g := keygen.New()
	first, err := g.ShadowsocksPassword(domain.Cipher2022AES128GCM)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := g.ShadowsocksPassword(domain.Cipher2022AES256GCM)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(second.Value)
	if err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("after switching methods: want 32 bytes, got %d", len(raw))
	}
	if first.Value == second.Value {
		t.Fatal("regenerated password must differ")
	}
}

func TestClientID_IsUUID(t *testing.T) {
	g := keygen.New()
	id, err := g.ClientID()
	if err != nil {
		t.Fatalf("generate client id: %v", err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`).MatchString(string(id)) {
		t.Fatalf("client id %q is not a random UUID", id)
	}
}

func TestEntropyFailure(t *testing.T) {
	g := keygen.NewWithRand(iotest.ErrReader(errors.New("closed")))

	if _, err := g.X25519(); !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("x25519: want ErrEntropyUnavailable, got %v", err)
	}
	if _, err := g.ShortID(); !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("short id: want ErrEntropyUnavailable, got %v", err)
	}
	if _, err := g.MLDSA65(); !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("mldsa65: want ErrEntropyUnavailable, got %v", err)
	}
	if _, err := g.VLESSEncryption(); !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("vless: want ErrEntropyUnavailable, got %v", err)
	}
	if _, err := g.ShadowsocksPassword(domain.Cipher2022AES128GCM); !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("shadowsocks: want ErrEntropyUnavailable, got %v", err)
	}
	if _, err := g.ClientID(); !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("client id: want ErrEntropyUnavailable, got %v", err)
	}

	// The invalid method check fires before the entropy source is touched.
	if _, err := g.ShadowsocksPassword("bogus"); !errors.Is(err, domain.ErrInvalidMethod) {
		t.Fatalf("want ErrInvalidMethod even with broken entropy, got %v", err)
	}
}

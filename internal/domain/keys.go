package domain

// KeyPair is an X25519 key pair with both keys encoded as base64url
// without padding, the form expected by REALITY settings.
type KeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// ShortID is a REALITY short identifier: 8 random bytes rendered as
// 16 lowercase hex characters.
type ShortID string

// MLDSA65KeyPair carries ML-DSA-65 signature key material. Seed is the
// 32-byte generation seed and Verify the packed verification key, both
// base64url without padding.
type MLDSA65KeyPair struct {
	Seed   string `json:"seed"`
	Verify string `json:"verify"`
}

// VLESSEncryption is one key-exchange variant of a VLESS encryption
// setting: the server-facing "decryption" string and the client-facing
// "encryption" string.
type VLESSEncryption struct {
	Decryption string `json:"decryption"`
	Encryption string `json:"encryption"`
}

// VLESSEncryptionBundle holds both key-exchange variants, generated
// together. The UI picks which one to display; the other is kept so
// switching variants needs no regeneration.
type VLESSEncryptionBundle struct {
	X25519   *VLESSEncryption `json:"x25519,omitempty"`
	MLKEM768 *VLESSEncryption `json:"mlkem768,omitempty"`
}

// ShadowsocksPassword is a pre-shared key for the given cipher method,
// encoded as base64url without padding.
type ShadowsocksPassword struct {
	Method CipherMethod `json:"method"`
	Value  string       `json:"password"`
}

// ClientID is a random RFC 4122 UUID used as a VLESS user identity.
type ClientID string

// MaterialState holds the last successfully generated value of each
// credential kind. Slots are independent: regeneration overwrites only
// its own slot, and a failed generation leaves the slot untouched.
type MaterialState struct {
	KeyPair     *KeyPair               `json:"keyPair,omitempty"`
	ShortID     ShortID                `json:"shortId,omitempty"`
	MLDSA65     *MLDSA65KeyPair        `json:"mldsa65,omitempty"`
	VLESS       *VLESSEncryptionBundle `json:"vless,omitempty"`
	Shadowsocks *ShadowsocksPassword   `json:"shadowsocks,omitempty"`
	ClientID    ClientID               `json:"clientId,omitempty"`
}

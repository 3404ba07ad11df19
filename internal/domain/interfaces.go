package domain

// KeyMaterialGenerator produces credential material for the supported
// proxy protocols. Every call draws fresh randomness; no state is
// shared between calls, so implementations must be safe for concurrent
// use.
type KeyMaterialGenerator interface {
	// X25519 returns a fresh key pair, both keys base64url without padding.
	X25519() (KeyPair, error)
	// ShortID returns a fresh 16-hex-char REALITY short identifier.
	ShortID() (ShortID, error)
	// MLDSA65 returns fresh ML-DSA-65 seed and verification key material.
	MLDSA65() (MLDSA65KeyPair, error)
	// VLESSEncryption returns both key-exchange variants of a VLESS
	// encryption/decryption string pair, generated together.
	VLESSEncryption() (VLESSEncryptionBundle, error)
	// ShadowsocksPassword returns a pre-shared key sized for method.
	// Fails with ErrInvalidMethod before consuming randomness when the
	// method is not recognised.
	ShadowsocksPassword(method CipherMethod) (ShadowsocksPassword, error)
	// ClientID returns a fresh random UUID.
	ClientID() (ClientID, error)
}

// ConfigStore persists core configuration records.
type ConfigStore interface {
	CreateConfig(c CoreConfig) (CoreConfig, error)
	GetConfig(id string) (CoreConfig, error)
	ListConfigs() ([]CoreConfig, error)
	UpdateConfig(c CoreConfig) (CoreConfig, error)
	DeleteConfig(id string) error
}

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient user-facing notification about the outcome of
// an operation.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	TimeUTC int64       `json:"time_utc"`
}

// Notifier delivers notices to the user. Implementations must not
// block the caller for long; delivery is best effort.
type Notifier interface {
	Notify(n Notice)
}

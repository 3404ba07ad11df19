package material

import (
	"fmt"
	"sync"
	"time"

	"keymint/internal/domain"
)

// Service generates credential material and caches the latest result of
// each kind. Safe for concurrent use; generation for different kinds
// never blocks on each other beyond the brief slot write.
type Service struct {
	gen      domain.KeyMaterialGenerator
	notifier domain.Notifier

	mu    sync.Mutex
	state domain.MaterialState
}

// New returns a Service generating with gen. notifier may be nil.
func New(gen domain.KeyMaterialGenerator, notifier domain.Notifier) *Service {
	return &Service{gen: gen, notifier: notifier}
}

// GenerateKeyPair generates an X25519 key pair and stores it in its slot.
func (s *Service) GenerateKeyPair() (domain.KeyPair, error) {
	kp, err := s.gen.X25519()
	if err != nil {
		s.failure("X25519 key pair", err)
		return domain.KeyPair{}, err
	}
	s.mu.Lock()
	s.state.KeyPair = &kp
	s.mu.Unlock()
	s.success("X25519 key pair generated")
	return kp, nil
}

// GenerateShortID generates a REALITY short ID and stores it in its slot.
func (s *Service) GenerateShortID() (domain.ShortID, error) {
	id, err := s.gen.ShortID()
	if err != nil {
		s.failure("short ID", err)
		return "", err
	}
	s.mu.Lock()
	s.state.ShortID = id
	s.mu.Unlock()
	s.success("short ID generated")
	return id, nil
}

// GenerateMLDSA65 generates ML-DSA-65 material and stores it in its slot.
func (s *Service) GenerateMLDSA65() (domain.MLDSA65KeyPair, error) {
	kp, err := s.gen.MLDSA65()
	if err != nil {
		s.failure("ML-DSA-65 key pair", err)
		return domain.MLDSA65KeyPair{}, err
	}
	s.mu.Lock()
	s.state.MLDSA65 = &kp
	s.mu.Unlock()
	s.success("ML-DSA-65 key pair generated")
	return kp, nil
}

// GenerateVLESSEncryption generates both VLESS encryption variants and
// stores the bundle in its slot.
func (s *Service) GenerateVLESSEncryption() (domain.VLESSEncryptionBundle, error) {
	b, err := s.gen.VLESSEncryption()
	if err != nil {
		s.failure("VLESS encryption", err)
		return domain.VLESSEncryptionBundle{}, err
	}
	s.mu.Lock()
	s.state.VLESS = &b
	s.mu.Unlock()
	s.success("VLESS encryption generated")
	return b, nil
}

// GenerateShadowsocksPassword generates a password for method and stores
// it in its slot. The editor calls this again whenever the selected
// method changes.
func (s *Service) GenerateShadowsocksPassword(method domain.CipherMethod) (domain.ShadowsocksPassword, error) {
	p, err := s.gen.ShadowsocksPassword(method)
	if err != nil {
		s.failure("Shadowsocks password", err)
		return domain.ShadowsocksPassword{}, err
	}
	s.mu.Lock()
	s.state.Shadowsocks = &p
	s.mu.Unlock()
	s.success("Shadowsocks password generated")
	return p, nil
}

// GenerateClientID generates a VLESS user UUID and stores it in its slot.
func (s *Service) GenerateClientID() (domain.ClientID, error) {
	id, err := s.gen.ClientID()
	if err != nil {
		s.failure("client ID", err)
		return "", err
	}
	s.mu.Lock()
	s.state.ClientID = id
	s.mu.Unlock()
	s.success("client ID generated")
	return id, nil
}

// Snapshot returns a copy of the current slots for rendering.
func (s *Service) Snapshot() domain.MaterialState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset clears every slot. Called when the editor closes.
func (s *Service) Reset() {
	s.mu.Lock()
	s.state = domain.MaterialState{}
	s.mu.Unlock()
}

func (s *Service) success(msg string) {
	s.notify(domain.Notice{Level: domain.NoticeInfo, Message: msg, TimeUTC: time.Now().Unix()})
}

// failure reports the descriptive cause when the error carries one and
// a generic message otherwise.
func (s *Service) failure(what string, err error) {
	msg := fmt.Sprintf("%s generation failed", what)
	if err != nil && err.Error() != "" {
		msg = fmt.Sprintf("%s generation failed: %v", what, err)
	}
	s.notify(domain.Notice{Level: domain.NoticeError, Message: msg, TimeUTC: time.Now().Unix()})
}

func (s *Service) notify(n domain.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}

package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"keymint/internal/domain"
)

// Client is a typed client for the generation endpoints. It implements
// domain.KeyMaterialGenerator, so callers can treat a remote daemon and
// the local generator interchangeably.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for the daemon at base, e.g. http://127.0.0.1:8787.
func NewClient(base string) *Client { return &Client{Base: base, HTTP: http.DefaultClient} }

func (c *Client) X25519() (domain.KeyPair, error) {
	var out domain.KeyPair
	if err := c.getJSON("/api/keys/x25519", &out); err != nil {
		return domain.KeyPair{}, err
	}
	return out, nil
}

func (c *Client) ShortID() (domain.ShortID, error) {
	var out shortIDResponse
	if err := c.getJSON("/api/keys/shortid", &out); err != nil {
		return "", err
	}
	return out.ShortID, nil
}

func (c *Client) MLDSA65() (domain.MLDSA65KeyPair, error) {
	var out domain.MLDSA65KeyPair
	if err := c.getJSON("/api/keys/mldsa65", &out); err != nil {
		return domain.MLDSA65KeyPair{}, err
	}
	return out, nil
}

func (c *Client) VLESSEncryption() (domain.VLESSEncryptionBundle, error) {
	var out domain.VLESSEncryptionBundle
	if err := c.getJSON("/api/keys/vlessenc", &out); err != nil {
		return domain.VLESSEncryptionBundle{}, err
	}
	return out, nil
}

func (c *Client) ShadowsocksPassword(method domain.CipherMethod) (domain.ShadowsocksPassword, error) {
	var out domain.ShadowsocksPassword
	path := "/api/keys/shadowsocks?method=" + url.QueryEscape(string(method))
	if err := c.getJSON(path, &out); err != nil {
		return domain.ShadowsocksPassword{}, err
	}
	return out, nil
}

func (c *Client) ClientID() (domain.ClientID, error) {
	var out clientIDResponse
	if err := c.getJSON("/api/keys/clientid", &out); err != nil {
		return "", err
	}
	return out.ClientID, nil
}

func (c *Client) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var e errResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Kind != "" {
			return domain.ErrorFromKind(e.Kind, "")
		}
		return fmt.Errorf("keymintd get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Compile-time assertion that Client implements domain.KeyMaterialGenerator.
var _ domain.KeyMaterialGenerator = (*Client)(nil)

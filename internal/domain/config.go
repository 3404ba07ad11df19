package domain

import "encoding/json"

// CoreConfig is a stored core configuration record: a named JSON
// document describing the proxy engine's inbounds, outbounds and
// routing rules. The document itself is kept opaque.
type CoreConfig struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Config     json.RawMessage `json:"config"`
	CreatedUTC int64           `json:"created_utc"`
	UpdatedUTC int64           `json:"updated_utc"`
}

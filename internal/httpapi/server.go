package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"keymint/internal/domain"
	"keymint/internal/services/material"
)

// Server serves the dashboard API: credential generation, core-config
// CRUD and the event feed.
type Server struct {
	materials *material.Service
	store     domain.ConfigStore
	hub       *Hub
}

// New returns a Server. hub may be nil when no event feed is wanted.
func New(materials *material.Service, store domain.ConfigStore, hub *Hub) *Server {
	return &Server{materials: materials, store: store, hub: hub}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/keys/x25519", s.generate(func() (any, error) {
		return s.materials.GenerateKeyPair()
	}))
	mux.HandleFunc("/api/keys/shortid", s.generate(func() (any, error) {
		id, err := s.materials.GenerateShortID()
		return shortIDResponse{ShortID: id}, err
	}))
	mux.HandleFunc("/api/keys/mldsa65", s.generate(func() (any, error) {
		return s.materials.GenerateMLDSA65()
	}))
	mux.HandleFunc("/api/keys/vlessenc", s.generate(func() (any, error) {
		return s.materials.GenerateVLESSEncryption()
	}))
	mux.HandleFunc("/api/keys/clientid", s.generate(func() (any, error) {
		id, err := s.materials.GenerateClientID()
		return clientIDResponse{ClientID: id}, err
	}))
	mux.HandleFunc("/api/keys/shadowsocks", s.handleShadowsocks)
	mux.HandleFunc("/api/keys/methods", s.handleMethods)

	mux.HandleFunc("/api/material", s.handleMaterial)

	mux.HandleFunc("/api/configs", s.handleConfigs)
	mux.HandleFunc("/api/configs/", s.handleConfigByID)

	if s.hub != nil {
		mux.Handle("/api/events", s.hub)
	}
	return mux
}

type shortIDResponse struct {
	ShortID domain.ShortID `json:"shortId"`
}

type clientIDResponse struct {
	ClientID domain.ClientID `json:"clientId"`
}

// generate wraps a parameterless generation call as a GET handler.
func (s *Server) generate(fn func() (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
			return
		}
		v, err := fn()
		if err != nil {
			writeErr(w, statusFor(err), err)
			return
		}
		writeJSON(w, v)
	}
}

func (s *Server) handleShadowsocks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	method := domain.CipherMethod(r.URL.Query().Get("method"))
	if method == "" {
		method = domain.Cipher2022AES128GCM
	}
	p, err := s.materials.GenerateShadowsocksPassword(method)
	if err != nil {
		writeErr(w, statusFor(err), err)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	writeJSON(w, domain.CipherMethods())
}

// handleMaterial exposes the slot cache: GET returns the snapshot,
// DELETE clears it (editor closed).
func (s *Server) handleMaterial(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.materials.Snapshot())
	case http.MethodDelete:
		s.materials.Reset()
		w.WriteHeader(http.StatusNoContent)
	default:
		writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

func (s *Server) handleConfigs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.store.ListConfigs()
		if err != nil {
			writeErr(w, statusFor(err), err)
			return
		}
		writeJSON(w, list)
	case http.MethodPost:
		var c domain.CoreConfig
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		created, err := s.store.CreateConfig(c)
		if err != nil {
			writeErr(w, statusFor(err), err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeBody(w, created)
	default:
		writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

func (s *Server) handleConfigByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/configs/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		c, err := s.store.GetConfig(id)
		if err != nil {
			writeErr(w, statusFor(err), err)
			return
		}
		writeJSON(w, c)
	case http.MethodPut:
		var c domain.CoreConfig
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		c.ID = id
		updated, err := s.store.UpdateConfig(c)
		if err != nil {
			writeErr(w, statusFor(err), err)
			return
		}
		writeJSON(w, updated)
	case http.MethodDelete:
		if err := s.store.DeleteConfig(id); err != nil {
			writeErr(w, statusFor(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeErr(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidMethod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConfigNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConfigExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	writeBody(w, v)
}

func writeBody(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("httpapi: encode response: %v", err)
	}
}

func writeErr(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeBody(w, errResponse{Error: err.Error(), Kind: domain.ErrorKind(err)})
}

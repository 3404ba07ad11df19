package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"keymint/internal/domain"
	"keymint/internal/store"
)

func TestExport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.enc")

	in := domain.MaterialState{
		KeyPair: &domain.KeyPair{PublicKey: "pub", PrivateKey: "priv"},
		ShortID: "0011223344556677",
	}
	if err := store.Export(path, "open sesame", in); err != nil {
		t.Fatalf("export: %v", err)
	}

	var out domain.MaterialState
	if err := store.Import(path, "open sesame", &out); err != nil {
		t.Fatalf("import: %v", err)
	}
	if out.KeyPair == nil || out.KeyPair.PrivateKey != "priv" || out.ShortID != in.ShortID {
		t.Fatalf("mismatch after round trip: %+v", out)
	}
}

func TestImport_WrongPassphrase_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.enc")
	if err := store.Export(path, "correct", domain.MaterialState{ShortID: "00"}); err != nil {
		t.Fatalf("export: %v", err)
	}
	var out domain.MaterialState
	if err := store.Import(path, "wrong", &out); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cardbank/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cardbank.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Currency != "USD" || cfg.Log.Level != "warn" || !strings.HasSuffix(cfg.DataFile, "accounts.json") {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
data_file = "/tmp/bank.toml"
currency = "EUR"

[log]
level = "info"
format = "json"
`)
	t.Setenv("CARDBANK_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataFile != "/tmp/bank.toml" || cfg.Currency != "EUR" || cfg.Log.Format != "json" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env did not override level: %q", cfg.Log.Level)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "currency = [")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := LoadConfig(writeConfig(t, `currency = "XXQ"`)); err == nil {
		t.Fatal("expected unknown currency error")
	}
}

func TestNew_EndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.DataFile = filepath.Join(t.TempDir(), "accounts.json")
	var logs bytes.Buffer

	a, err := New(cfg, &logs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sess, err := a.Accounts.CreateAccount(ctx, domain.Account{Name: "Alice", Age: 30, Login: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	c := a.Cards.CreateCard(sess, domain.KindCapitalist)
	if err := a.Cards.Commit(ctx, sess); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	sess, err = a.Login(ctx, "alice", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	got, err := a.Cards.FindCard(sess, 1)
	if err != nil || got.Number != c.Number {
		t.Fatalf("FindCard: %v, %v", got, err)
	}
	if s := a.Display(got.Balance); s != "$100.00" {
		t.Fatalf("Display=%q", s)
	}
	if _, err := a.Login(ctx, "alice", "nope!!"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

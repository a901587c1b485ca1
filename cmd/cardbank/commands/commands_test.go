package commands

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cardbank/internal/domain"
	"cardbank/internal/store"
)

func run(t *testing.T, data string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--data", data}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, data string, args ...string) string {
	t.Helper()
	out, err := run(t, data, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func cardNumbers(t *testing.T, data, login string) []string {
	t.Helper()
	accounts, err := store.NewAccountFileStore(data, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	acc, ok := store.FindByLogin(accounts, login)
	if !ok {
		t.Fatalf("account %q not stored", login)
	}
	var numbers []string
	for _, c := range acc.Cards {
		numbers = append(numbers, c.Number)
	}
	return numbers
}

func TestCLI_CardLifecycle(t *testing.T) {
	data := filepath.Join(t.TempDir(), "accounts.json")
	alice := []string{"-l", "alice", "-p", "secret1"}

	mustRun(t, data, append([]string{"create-account", "--name", "Alice", "--age", "30"}, alice...)...)
	out := mustRun(t, data, append([]string{"cards"}, alice...)...)
	if !strings.Contains(out, "no active cards") {
		t.Fatalf("cards: %q", out)
	}

	mustRun(t, data, append([]string{"create-card", "Capitalist"}, alice...)...)
	out = mustRun(t, data, append([]string{"withdraw", "1", "20"}, alice...)...)
	if !strings.Contains(out, "Money left: $79.20") || !strings.Contains(out, "Tax: $0.80") {
		t.Fatalf("withdraw: %q", out)
	}
	out = mustRun(t, data, append([]string{"put", "1", "20"}, alice...)...)
	if !strings.Contains(out, "Balance: $89.20") {
		t.Fatalf("put: %q", out)
	}

	_, err := run(t, data, append([]string{"put", "1", "5"}, alice...)...)
	if !errors.Is(err, domain.ErrTaxExceedsAmount) {
		t.Fatalf("put 5: want ErrTaxExceedsAmount, got %v", err)
	}
	_, err = run(t, data, append([]string{"withdraw", "1", "abc"}, alice...)...)
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("withdraw abc: want ErrInvalidAmount, got %v", err)
	}
	_, err = run(t, data, append([]string{"withdraw", "2", "1"}, alice...)...)
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Fatalf("withdraw card 2: want ErrCardNotFound, got %v", err)
	}
	_, err = run(t, data, append([]string{"create-card", "gold"}, alice...)...)
	if !errors.Is(err, domain.ErrUnknownCardKind) {
		t.Fatalf("create-card gold: want ErrUnknownCardKind, got %v", err)
	}
	_, err = run(t, data, append([]string{"create-card", "cap"}, alice...)...)
	if !errors.Is(err, domain.ErrUnknownCardKind) || !strings.Contains(err.Error(), "did you mean capitalist?") {
		t.Fatalf("create-card cap: got %v", err)
	}

	_, err = run(t, data, append([]string{"destroy-card", "1"}, alice...)...)
	if !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("destroy-card without --yes: got %v", err)
	}
	mustRun(t, data, append([]string{"destroy-card", "1", "--yes"}, alice...)...)
	if n := cardNumbers(t, data, "alice"); len(n) != 0 {
		t.Fatalf("cards left: %v", n)
	}
}

func TestCLI_Send(t *testing.T) {
	data := filepath.Join(t.TempDir(), "accounts.toml")
	alice := []string{"-l", "alice", "-p", "secret1"}
	bob := []string{"-l", "bobby", "-p", "secret2"}

	mustRun(t, data, append([]string{"create-account", "--name", "Alice", "--age", "30"}, alice...)...)
	mustRun(t, data, append([]string{"create-account", "--name", "Bob", "--age", "40"}, bob...)...)
	mustRun(t, data, append([]string{"create-card", "usual"}, alice...)...)
	mustRun(t, data, append([]string{"create-card", "usual"}, bob...)...)
	recipient := cardNumbers(t, data, "bobby")[0]

	out := mustRun(t, data, append([]string{"send", "1", recipient, "10"}, alice...)...)
	if !strings.Contains(out, "Balance: $59.80") || !strings.Contains(out, "Balance: $39.50") {
		t.Fatalf("send: %q", out)
	}
	out = mustRun(t, data, append([]string{"cards"}, bob...)...)
	if !strings.Contains(out, "$59.80") {
		t.Fatalf("bob cards after reload: %q", out)
	}

	_, err := run(t, data, append([]string{"create-card", "capitalist"}, bob...)...)
	if err != nil {
		t.Fatalf("create-card: %v", err)
	}
	capitalist := cardNumbers(t, data, "bobby")[1]
	_, err = run(t, data, append([]string{"send", "1", capitalist, "5"}, alice...)...)
	if !errors.Is(err, domain.ErrTaxExceedsAmount) || !strings.Contains(err.Error(), capitalist) {
		t.Fatalf("send below recipient tax: got %v", err)
	}

	_, err = run(t, data, append([]string{"send", "1", "0000000000000000", "1"}, alice...)...)
	if !errors.Is(err, domain.ErrCardNotFound) {
		t.Fatalf("send to unknown card: got %v", err)
	}
}

func TestCLI_Accounts(t *testing.T) {
	data := filepath.Join(t.TempDir(), "accounts.json")
	alice := []string{"-l", "alice", "-p", "secret1"}

	_, err := run(t, data, append([]string{"create-account", "--name", "alice", "--age", "12"}, alice...)...)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Codes) != 2 {
		t.Fatalf("want two validation codes, got %v", err)
	}

	mustRun(t, data, append([]string{"create-account", "--name", "Alice", "--age", "30"}, alice...)...)
	if _, err := run(t, data, "cards", "-l", "alice", "-p", "wrong!"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("bad password: got %v", err)
	}
	if _, err := run(t, data, append([]string{"destroy-account"}, alice...)...); !errors.Is(err, domain.ErrNotConfirmed) {
		t.Fatalf("destroy without --yes: got %v", err)
	}
	mustRun(t, data, append([]string{"destroy-account", "--yes"}, alice...)...)
	if _, err := run(t, data, append([]string{"cards"}, alice...)...); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("destroyed account still logs in: %v", err)
	}
}

func TestCLI_Kinds(t *testing.T) {
	out := mustRun(t, filepath.Join(t.TempDir(), "accounts.json"), "kinds")
	for _, k := range domain.CardKinds() {
		if !strings.Contains(out, k.String()) {
			t.Fatalf("kinds output misses %s: %q", k, out)
		}
	}
}

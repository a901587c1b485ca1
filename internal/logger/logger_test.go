package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardbank/internal/domain"
)

func TestNew_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("want json warn line, got %s", out)
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(Config{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := New(Config{Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New(Config{Level: "debug"}, &buf)

	LogOperation(log, domain.Result{
		ID:        uuid.New(),
		Operation: domain.OpPut,
		Amount:    decimal.NewFromInt(5),
		Tax:       decimal.NewFromInt(10),
		Reason:    domain.ReasonTaxExceedsAmount,
	})
	if out := buf.String(); !strings.Contains(out, "reason=tax_exceeds_amount") || !strings.Contains(out, "level=WARN") {
		t.Fatalf("unexpected log line: %s", out)
	}
}

package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")
	doc := `[
		{"id":"1","date":"2019-01-14","amount":"100","type":"debit","merchant":"Coffee Shop","description":"coffee"},
		{"id":"2","date":"2019-01-15","amount":200,"type":"credit","merchant":"Employer","description":"salary"}
	]`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	txs, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("loaded %d records, want 2", len(txs))
	}
	if txs[0].ID != "1" || txs[1].Amount.Float() != 200 {
		t.Fatalf("unexpected records: %+v", txs)
	}
}

func TestReadFileMissing(t *testing.T) {
	txs, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(txs))
	}
}

func TestReadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not":"an array"`), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	txs, err := ReadFile(path)
	if err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(txs))
	}
}

package yamlroster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/petspeak/internal/domain"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadRoster_Valid(t *testing.T) {
	p := writeRoster(t, `
animals:
  - name: Rex
    species: Dog
    sound: Bark
  - name: "  Nemo "
    species: Fish
    sound: Blub
`)

	animals, rejected, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}
	if len(rejected) != 0 {
		t.Fatalf("expected no rejected entries, got %v", rejected)
	}
	if len(animals) != 2 {
		t.Fatalf("expected 2 animals, got=%d", len(animals))
	}
	if animals[1].Name() != "Nemo" {
		t.Fatalf("expected trimmed name=Nemo, got=%q", animals[1].Name())
	}
	if animals[0].Speak() != "Rex the Dog says: Bark!" {
		t.Fatalf("unexpected speech %q", animals[0].Speak())
	}
}

func TestLoadRoster_DropsInvalidEntries(t *testing.T) {
	p := writeRoster(t, `
animals:
  - name: Rex
    species: Dog
    sound: Bark
  - name: ""
    species: Cat
    sound: Meow
  - name: Count
    species: Bat
    sound: 123
  - species: Cow
    sound: Moo
`)

	animals, rejected, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}
	if len(animals) != 1 || animals[0].Name() != "Rex" {
		t.Fatalf("expected only Rex, got %v", animals)
	}
	if len(rejected) != 3 {
		t.Fatalf("expected 3 rejected entries, got %d", len(rejected))
	}
	for _, r := range rejected {
		if !domain.IsKind(r, domain.KindInvalidInput) {
			t.Fatalf("expected KindInvalidInput, got %v", r)
		}
	}
}

func TestLoadRoster_MissingFile(t *testing.T) {
	_, _, err := NewLoader().LoadRoster(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadRoster_InvalidYAML(t *testing.T) {
	p := writeRoster(t, "animals: [\n")
	_, _, err := NewLoader().LoadRoster(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadRoster_EmptyFile(t *testing.T) {
	p := writeRoster(t, "")
	animals, rejected, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(animals) != 0 || len(rejected) != 0 {
		t.Fatalf("expected empty roster, got %v %v", animals, rejected)
	}
}

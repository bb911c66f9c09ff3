package source_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"os"
	"path/filepath"
	"testing"

	encryptconfig "github.com/kingwingfly/encrypt-config"
	"github.com/kingwingfly/encrypt-config/backend"
	"github.com/kingwingfly/encrypt-config/codec"
	"github.com/kingwingfly/encrypt-config/crypt"
	"github.com/kingwingfly/encrypt-config/source"
)

// profileSlot is configured per test; the Profile methods close over it
// the way an application would close over its global slots.
var profileSlot source.Persist[Profile]

type Profile struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Token string `json:"token,omitempty"`
}

func (p *Profile) LoadOrDefault() {
	*p = Profile{Name: "anonymous"}
	profileSlot.Load(p)
}

func (p *Profile) Save() error { return profileSlot.Save(p) }

func fileSlot(t *testing.T, dir string) source.Persist[Profile] {
	t.Helper()
	files, err := backend.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	return source.Persist[Profile]{
		Name:    "profile.json",
		Backend: files,
		Codec:   codec.JSON[Profile]{},
	}
}

func TestPersistRoundTrip(t *testing.T) {
	slot := fileSlot(t, t.TempDir())

	var p Profile
	ok, err := slot.Load(&p)
	if err != nil || ok {
		t.Fatalf("load before save: ok=%v err=%v", ok, err)
	}

	p = Profile{Name: "alice", Age: 30}
	if err := slot.Save(&p); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got Profile
	ok, err = slot.Load(&got)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != p {
		t.Fatalf("loaded %+v, want %+v", got, p)
	}

	if err := slot.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := slot.Load(&got); ok {
		t.Fatal("slot still loads after delete")
	}
}

func TestLoadMissKeepsDefaults(t *testing.T) {
	slot := fileSlot(t, t.TempDir())

	p := Profile{Name: "defaulted", Age: 7}
	if ok, err := slot.Load(&p); err != nil || ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if p.Name != "defaulted" || p.Age != 7 {
		t.Fatalf("miss clobbered defaults: %+v", p)
	}
}

func TestLoadCorruptPayloadKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	slot := fileSlot(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "profile.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := Profile{Name: "defaulted"}
	ok, err := slot.Load(&p)
	if ok {
		t.Fatal("corrupt payload reported as loaded")
	}
	if err == nil {
		t.Fatal("corrupt payload reported no error")
	}
	if p.Name != "defaulted" {
		t.Fatalf("corrupt payload clobbered defaults: %+v", p)
	}
}

func TestSecretRoundTrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	files, err := backend.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	slot := source.Secret("vault.bin", files, codec.JSON[Profile]{}, crypt.NewEncrypterFromKey(priv))

	p := Profile{Name: "alice", Token: "s3cr3t-token"}
	if err := slot.Save(&p); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "vault.bin"))
	if err != nil {
		t.Fatal(err)
	}
	for _, leak := range []string{"alice", "s3cr3t-token"} {
		if bytes.Contains(raw, []byte(leak)) {
			t.Fatalf("plaintext %q on disk", leak)
		}
	}

	var got Profile
	ok, err := slot.Load(&got)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != p {
		t.Fatalf("loaded %+v, want %+v", got, p)
	}
}

// A mutation made through one cache instance survives into a second one:
// write-back at Close persists through the slot, and the fresh cache's
// first access loads it back.
func TestPersistenceAcrossCaches(t *testing.T) {
	profileSlot = fileSlot(t, t.TempDir())

	cfg := encryptconfig.New(encryptconfig.Options{})
	m := encryptconfig.GetMut[Profile](cfg)
	m.Value().Name = "bob"
	m.Value().Age = 44
	m.Release()
	cfg.Close()

	cfg2 := encryptconfig.New(encryptconfig.Options{})
	r := encryptconfig.Get[Profile](cfg2)
	if r.Value().Name != "bob" || r.Value().Age != 44 {
		t.Fatalf("second cache loaded %+v, want bob/44", *r.Value())
	}
	r.Release()
	cfg2.Close()
}

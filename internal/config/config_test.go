package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gosh-lang/gosh/internal/symtab"
)

func TestLoadNoHomeReturnsZeroValue(t *testing.T) {
	t.Setenv("HOME", "")
	o, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if o != (Overrides{}) {
		t.Fatalf("Load() = %+v, want zero value", o)
	}
}

func TestLoadNoRCFileReturnsZeroValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	o, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if o != (Overrides{}) {
		t.Fatalf("Load() = %+v, want zero value", o)
	}
}

func TestLoadYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	content := "PS1: \"gosh> \"\nIFS: \":\"\n"
	if err := os.WriteFile(filepath.Join(home, ".goshrc.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	o, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if o.PS1 != "gosh> " || o.IFS != ":" {
		t.Fatalf("Load() = %+v, want PS1=%q IFS=%q", o, "gosh> ", ":")
	}
}

func TestLoadJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	content := `{"PS1": "gosh$ ", "PS2": "... "}`
	if err := os.WriteFile(filepath.Join(home, ".goshrc.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	o, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if o.PS1 != "gosh$ " || o.PS2 != "... " {
		t.Fatalf("Load() = %+v, want PS1=%q PS2=%q", o, "gosh$ ", "... ")
	}
}

func TestSeedSkipsBlankFields(t *testing.T) {
	st := symtab.New()
	Seed(st, Overrides{PS1: "custom$ "})

	ps1 := st.GetSymtabEntry("PS1")
	if ps1 == nil || ps1.Value != "custom$ " {
		t.Fatalf("PS1 entry = %+v, want value 'custom$ '", ps1)
	}
	if st.GetSymtabEntry("PS2") != nil {
		t.Fatalf("PS2 entry should not have been seeded when blank")
	}
}

func TestInitExportsEnvironmentAndSetsDefaultPrompts(t *testing.T) {
	t.Setenv("GOSH_TEST_VAR", "hello")

	st := symtab.New()
	Init(st)

	v := st.GetSymtabEntry("GOSH_TEST_VAR")
	if v == nil || v.Value != "hello" || !v.Exported {
		t.Fatalf("GOSH_TEST_VAR entry = %+v, want value hello, exported true", v)
	}

	ps1 := st.GetSymtabEntry("PS1")
	if ps1 == nil || ps1.Value != "$ " {
		t.Fatalf("PS1 entry = %+v, want default '$ '", ps1)
	}
	ps2 := st.GetSymtabEntry("PS2")
	if ps2 == nil || ps2.Value != "> " {
		t.Fatalf("PS2 entry = %+v, want default '> '", ps2)
	}
}

func TestInitSeedsSpecialParameters(t *testing.T) {
	st := symtab.New()
	Init(st)

	pid := st.GetSymtabEntry("$")
	if pid == nil || pid.Value != strconv.Itoa(os.Getpid()) {
		t.Fatalf("$ entry = %+v, want this process's PID", pid)
	}
	name := st.GetSymtabEntry("0")
	if name == nil || name.Value != "gosh" {
		t.Fatalf("0 entry = %+v, want value 'gosh'", name)
	}
	count := st.GetSymtabEntry("#")
	if count == nil || count.Value != "0" {
		t.Fatalf("# entry = %+v, want value '0'", count)
	}
}

func TestInitAfterSeedLetsEnvironmentAndDefaultsWinLast(t *testing.T) {
	st := symtab.New()
	Seed(st, Overrides{PS1: "seeded$ "})
	Init(st)

	ps1 := st.GetSymtabEntry("PS1")
	if ps1 == nil || ps1.Value != "$ " {
		t.Fatalf("PS1 after Init = %+v, want the unconditional default '$ ' to win", ps1)
	}
}

// Package config implements the optional rc-file override described
// in SPEC_FULL.md 12.4, supplementing original_source/part5/initsh.c's
// initsh(): the original unconditionally seeds the symbol table from
// the process environment, then unconditionally sets PS1/PS2. This
// project adds an earlier, optional seed step from a YAML or JSON rc
// file that sets PS1/PS2/IFS, without disturbing initsh's observed
// precedence (environment, then the PS1/PS2 defaults, always win
// last). As a result an rc-file PS1 or PS2 is always replaced by the
// defaults, and an rc-file IFS is kept only when the environment has
// no IFS.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/gosh-lang/gosh/internal/symtab"
)

// Overrides holds the rc file's recognized keys. Unknown keys are
// ignored, matching the permissive spirit of shell rc files.
type Overrides struct {
	PS1 string `yaml:"PS1"`
	PS2 string `yaml:"PS2"`
	IFS string `yaml:"IFS"`
}

// Load looks for $HOME/.goshrc.yaml then $HOME/.goshrc.json, returning
// the first one found parsed into Overrides. A missing HOME or a
// missing rc file is not an error: it simply yields zero Overrides,
// meaning "seed nothing, let initsh's later steps apply as usual."
func Load() (Overrides, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return Overrides{}, nil
	}

	yamlPath := filepath.Join(home, ".goshrc.yaml")
	if data, err := os.ReadFile(yamlPath); err == nil {
		return parseYAML(data)
	}

	jsonPath := filepath.Join(home, ".goshrc.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		return parseJSON(data), nil
	}

	return Overrides{}, nil
}

func parseYAML(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

func parseJSON(data []byte) Overrides {
	root := gjson.ParseBytes(data)
	return Overrides{
		PS1: root.Get("PS1").String(),
		PS2: root.Get("PS2").String(),
		IFS: root.Get("IFS").String(),
	}
}

// Seed applies o into the global scope, for use before the
// environment walk (SPEC_FULL.md 12.4's rc-file-seed step). Blank
// fields are left unset so they don't shadow a later environment
// value with an empty string.
func Seed(st *symtab.Stack, o Overrides) {
	apply := func(name, val string) {
		if val == "" {
			return
		}
		entry := st.AddGlobal(name)
		symtab.SetVal(entry, val)
	}
	apply("PS1", o.PS1)
	apply("PS2", o.PS2)
	apply("IFS", o.IFS)
}

// Init reproduces initsh(): Seed must already have run (or been
// skipped) before this is called. It walks os.Environ() into the
// global scope, exporting every NAME=value pair, then unconditionally
// sets PS1 and PS2 to their shell defaults, matching the source's
// fixed final two add_to_symtab+symtab_entry_setval calls. It also
// seeds the special parameters SPEC_FULL.md 12.1 says live as ordinary
// symtab entries set once here: "$" (this process's PID), "0" (the
// shell's name), and "#" (always "0", since positional parameters are
// not implemented), and gives "?" its starting value "0", which the
// executor then refreshes after each command.
func Init(st *symtab.Stack) {
	for _, kv := range os.Environ() {
		name, val, hasEq := splitEnv(kv)
		entry := st.AddGlobal(name)
		if hasEq {
			symtab.SetVal(entry, val)
			entry.Exported = true
		}
	}

	ps1 := st.AddGlobal("PS1")
	symtab.SetVal(ps1, "$ ")

	ps2 := st.AddGlobal("PS2")
	symtab.SetVal(ps2, "> ")

	pid := st.AddGlobal("$")
	symtab.SetVal(pid, strconv.Itoa(os.Getpid()))

	shellName := st.AddGlobal("0")
	symtab.SetVal(shellName, "gosh")

	paramCount := st.AddGlobal("#")
	symtab.SetVal(paramCount, "0")

	status := st.AddGlobal("?")
	symtab.SetVal(status, "0")
}

func splitEnv(kv string) (name, val string, hasEq bool) {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return kv, "", false
}

// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
)

func TestFlagsFromParams_BindsTaggedFields(t *testing.T) {
	type params struct {
		Role      string `flag:"role" desc:"role name"`
		Admin     bool   `flag:"admin" desc:"admin principal"`
		Principal uint64 `flag:"principal,p" desc:"principal identifier"`
		Untagged  string
	}

	var p params
	flagSet := FlagsFromParams("test", &p)

	if err := flagSet.Parse([]string{"--role", "mods", "--admin", "-p", "42"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Role != "mods" {
		t.Errorf("Role = %q, want %q", p.Role, "mods")
	}
	if !p.Admin {
		t.Error("Admin not set")
	}
	if p.Principal != 42 {
		t.Errorf("Principal = %d, want 42", p.Principal)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field should not produce a flag")
	}
}

func TestFlagsFromParams_Defaults(t *testing.T) {
	type params struct {
		Format string `flag:"format" default:"text"`
		Limit  int    `flag:"limit" default:"20"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)

	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Format != "text" {
		t.Errorf("Format = %q, want default %q", p.Format, "text")
	}
	if p.Limit != 20 {
		t.Errorf("Limit = %d, want default 20", p.Limit)
	}
}

func TestFlagsFromParams_EmbeddedBinders(t *testing.T) {
	type params struct {
		JSONOutput
		ConfigFlag
	}

	var p params
	flagSet := FlagsFromParams("test", &p)

	if err := flagSet.Parse([]string{"--json", "--config", "/tmp/warden.yaml"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !p.OutputJSON {
		t.Error("--json not bound through embedded JSONOutput")
	}
	if p.Path != "/tmp/warden.yaml" {
		t.Errorf("ConfigFlag.Path = %q, want /tmp/warden.yaml", p.Path)
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	type params struct{}
	flagSet := FlagsFromParams("empty", &params{})

	if err := BindFlags(params{}, flagSet); err == nil {
		t.Error("BindFlags with a non-pointer should fail")
	}
}

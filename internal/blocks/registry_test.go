// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import "testing"

func TestDefault_Catalog(t *testing.T) {
	reg := Default()

	kinds := []string{
		"HeadingBlock", "TextBlock", "HeroBlock", "GridBlock", "CardBlock",
		"SectionBlock", "ButtonBlock", "SpacerBlock", "DividerBlock",
		"ImageBlock", "NavbarBlock", "FooterBlock", "YouTubeBlock",
	}
	for _, kind := range kinds {
		def, ok := reg.Get(kind)
		if !ok {
			t.Errorf("kind %q not registered", kind)
			continue
		}
		if len(def.Fields) == 0 {
			t.Errorf("kind %q has no fields", kind)
		}
		if def.Defaults == nil {
			t.Errorf("kind %q has no defaults", kind)
		}
		if def.Render == nil {
			t.Errorf("kind %q has no renderer", kind)
		}
	}

	if got := len(reg.List()); got != len(kinds) {
		t.Errorf("List() returned %d kinds, want %d", got, len(kinds))
	}
}

func TestRegistry_DuplicateRegister(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{Name: "TestBlock", Fields: []Field{{Name: "x", Type: FieldText}}}

	if err := reg.Register(def); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if err := reg.Register(def); err == nil {
		t.Fatal("second Register should fail")
	}
}

func TestRegistry_Unknown(t *testing.T) {
	reg := Default()
	if _, ok := reg.Get("NoSuchBlock"); ok {
		t.Error("Get should report unknown kind")
	}
}

func TestDefault_EveryDefaultHasField(t *testing.T) {
	// Defaults for props without a field cannot be edited away; keep the
	// two sets aligned.
	for _, def := range Default().List() {
		names := make(map[string]bool, len(def.Fields))
		for _, f := range def.Fields {
			names[f.Name] = true
		}
		for key := range def.Defaults {
			if !names[key] {
				t.Errorf("%s: default %q has no matching field", def.Name, key)
			}
		}
	}
}

func TestDefault_ZoneKinds(t *testing.T) {
	wantZones := map[string][]string{
		"GridBlock":    {GridZone},
		"CardBlock":    {CardZone},
		"SectionBlock": {SectionZone},
	}
	for kind, zones := range wantZones {
		def, ok := Default().Get(kind)
		if !ok {
			t.Fatalf("kind %q not registered", kind)
		}
		if len(def.Zones) != len(zones) || def.Zones[0] != zones[0] {
			t.Errorf("%s zones = %v, want %v", kind, def.Zones, zones)
		}
	}
}

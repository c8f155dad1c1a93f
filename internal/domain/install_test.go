package domain

import "testing"

func TestSelectableWtfsFiltersSourcesWithoutVars(t *testing.T) {
	version := Version{
		Name: "_retail_",
		Wtfs: []Wtf{
			{Account: "ACC1", Realm: "Proudmoore", Character: "Aldara", HasVars: true},
			{Account: "ACC1", Realm: "Proudmoore", Character: "Fresh", HasVars: false},
			{Account: "ACC2", Realm: "Frostmourne", Character: "Bort", HasVars: true},
		},
	}

	sources := version.SelectableWtfs(RoleSource)
	if len(sources) != 2 {
		t.Fatalf("expected 2 source candidates, got %d", len(sources))
	}
	for _, w := range sources {
		if !w.HasVars {
			t.Fatalf("source candidate %s has no saved variables", w)
		}
	}

	targets := version.SelectableWtfs(RoleTarget)
	if len(targets) != 3 {
		t.Fatalf("expected all 3 target candidates, got %d", len(targets))
	}
}

func TestInstallVersionLookupByName(t *testing.T) {
	inst := Install{
		Dir: "/games/wow",
		Versions: []Version{
			{Name: "_retail_"},
			{Name: "_classic_era_"},
		},
	}

	v, ok := inst.Version("_classic_era_")
	if !ok {
		t.Fatalf("expected to find _classic_era_")
	}
	if v.Name != "_classic_era_" {
		t.Fatalf("unexpected version %q", v.Name)
	}

	if _, ok := inst.Version("_ptr_"); ok {
		t.Fatalf("did not expect to find _ptr_")
	}
}

func TestWtfStringRendersAccountRealmCharacter(t *testing.T) {
	w := Wtf{Account: "ACC1", Realm: "Proudmoore", Character: "Aldara"}
	if got := w.String(); got != "ACC1/Proudmoore/Aldara" {
		t.Fatalf("unexpected display form %q", got)
	}
}

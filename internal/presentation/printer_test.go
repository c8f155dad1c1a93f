package presentation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"wowcopy/internal/domain"
)

func plainColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestPrintInstallTree(t *testing.T) {
	plainColor(t)

	install := domain.Install{
		Dir: "/wow",
		Versions: []domain.Version{
			{
				Name: "_retail_",
				Wtfs: []domain.Wtf{
					{Account: "MYACC", Realm: "Ravencrest", Character: "Thrall", HasVars: true},
					{Account: "MYACC", Realm: "Ravencrest", Character: "Jaina"},
					{Account: "MYACC", Realm: "Stormrage", Character: "Uther", HasVars: true},
					{Account: "OTHER", Realm: "Ravencrest", Character: "Grom", HasVars: true},
				},
			},
			{Name: "_classic_"},
		},
	}

	var buf bytes.Buffer
	Printer{Out: &buf}.PrintInstall(install)

	want := strings.Join([]string{
		"/wow",
		"  _retail_",
		"    MYACC",
		"      Ravencrest",
		"        Thrall",
		"        Jaina (no SavedVariables)",
		"      Stormrage",
		"        Uther",
		"    OTHER",
		"      Ravencrest",
		"        Grom",
		"  _classic_",
		"    (no characters)",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("tree output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintPlan(t *testing.T) {
	plainColor(t)

	req := domain.CopyRequest{
		Source:           domain.CharacterRef{Version: "_retail_", Account: "A", Realm: "R1", Character: "C1"},
		Target:           domain.CharacterRef{Version: "_classic_", Account: "B", Realm: "R2", Character: "C2"},
		OverwriteAccount: true,
	}

	var buf bytes.Buffer
	Printer{Out: &buf}.PrintPlan(req)
	out := buf.String()
	if !strings.Contains(out, "from: _retail_ A/R1/C1") {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "to: _classic_ B/R2/C2") {
		t.Errorf("missing target line:\n%s", out)
	}
	if !strings.Contains(out, "account data: overwritten") {
		t.Errorf("missing account line:\n%s", out)
	}

	buf.Reset()
	req.Target.Account = "A"
	Printer{Out: &buf}.PrintPlan(req)
	if !strings.Contains(buf.String(), "account data: skipped (same account)") {
		t.Errorf("same-account plan:\n%s", buf.String())
	}

	buf.Reset()
	req.Target.Account = "B"
	req.OverwriteAccount = false
	Printer{Out: &buf}.PrintPlan(req)
	if !strings.Contains(buf.String(), "account data: kept") {
		t.Errorf("overwrite-off plan:\n%s", buf.String())
	}
}

func TestPrintLogKeepsOrder(t *testing.T) {
	plainColor(t)

	lines := []string{
		"skipping account copy.",
		"copied AddOns.txt",
		"error copying layout-local.txt: open: no such file",
		"removed cache.md5",
	}

	var buf bytes.Buffer
	Printer{Out: &buf}.PrintLog(lines)

	want := strings.Join(lines, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("log output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

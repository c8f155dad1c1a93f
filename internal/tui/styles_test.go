package tui

import "testing"

func TestStylesAdaptToBackground(t *testing.T) {
	dark := NewStyles(true)
	light := NewStyles(false)

	if dark.Title.GetForeground() == light.Title.GetForeground() {
		t.Fatal("title color should change with the background")
	}
	if dark.Error.GetForeground() == light.Error.GetForeground() {
		t.Fatal("error color should change with the background")
	}
	if !dark.Title.GetBold() || !light.Title.GetBold() {
		t.Fatal("title stays bold in both palettes")
	}
}

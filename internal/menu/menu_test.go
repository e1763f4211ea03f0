package menu

import "testing"

func TestLoadOpenMenuMarksMissingFilesDisabled(t *testing.T) {
	ctx := Context{RecentFiles: []FileEntry{
		{Path: "/tmp/notes.md"},
		{Path: "/tmp/gone.md", Missing: true},
	}}
	items, err := loadOpenMenu(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Disabled {
		t.Fatalf("expected %q enabled", items[0].ID)
	}
	if !items[1].Disabled {
		t.Fatalf("expected %q disabled", items[1].ID)
	}
	if items[0].Label != "notes.md" {
		t.Fatalf("expected base-name label, got %q", items[0].Label)
	}
}

func TestLoadOpenMenuEmptyPlaceholder(t *testing.T) {
	items, err := loadOpenMenu(Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || !items[0].Disabled {
		t.Fatalf("expected single disabled placeholder, got %+v", items)
	}
}

func TestOpenFileActionReportsPath(t *testing.T) {
	cmd := OpenFileAction(Context{}, Item{ID: "open:/tmp/notes.md"})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	result, ok := cmd().(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", cmd())
	}
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Info != "opened /tmp/notes.md" {
		t.Fatalf("unexpected info %q", result.Info)
	}
}

func TestOpenFileActionRejectsMalformedID(t *testing.T) {
	cmd := OpenFileAction(Context{}, Item{ID: "bogus"})
	result, ok := cmd().(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", cmd())
	}
	if result.Err == nil {
		t.Fatalf("expected error for malformed ID")
	}
}

func TestLoadBookmarkMenuDisablesWithoutEntries(t *testing.T) {
	items, err := loadBookmarkMenu(Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, item := range items {
		if item.ID == "bookmark:add" {
			if item.Disabled {
				t.Fatalf("add should stay enabled")
			}
			continue
		}
		if !item.Disabled {
			t.Fatalf("expected %q disabled with no bookmarks", item.ID)
		}
	}
}

func TestLoadWorkspaceSwitchMenuDisablesCurrent(t *testing.T) {
	ctx := Context{WorkspaceName: "alpha", Workspaces: []string{"alpha", "beta"}}
	items, err := loadWorkspaceSwitchMenu(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Disabled || items[1].Disabled {
		t.Fatalf("expected current workspace disabled only, got %+v", items)
	}
}

func TestLoadPaletteMenuDisablesActiveAccent(t *testing.T) {
	items, err := loadPaletteMenu(Context{ActiveTheme: "teal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	disabled := 0
	for _, item := range items {
		if item.Disabled {
			disabled++
			if item.ID != "palette:teal" {
				t.Fatalf("unexpected disabled item %q", item.ID)
			}
		}
	}
	if disabled != 1 {
		t.Fatalf("expected exactly one disabled swatch, got %d", disabled)
	}
}

func TestPrettyLabel(t *testing.T) {
	cases := map[string]string{
		"main-left":  "main left",
		"stack":      "stack",
		"two_words":  "two words",
		"Horizontal": "Horizontal",
	}
	for input, expected := range cases {
		if got := prettyLabel(input); got != expected {
			t.Fatalf("prettyLabel(%q) = %q, expected %q", input, got, expected)
		}
	}
}

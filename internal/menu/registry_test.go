package menu

import "testing"

func TestBuildRegistryWiresLoadersAndActions(t *testing.T) {
	registry := BuildRegistry()

	root := registry.Root()
	if root == nil || root.Loader == nil {
		t.Fatalf("expected root node with loader")
	}
	items, err := root.Loader(Context{})
	if err != nil {
		t.Fatalf("root loader failed: %v", err)
	}
	if len(items) != len(RootItems()) {
		t.Fatalf("expected %d root items, got %d", len(RootItems()), len(items))
	}

	for id := range CategoryLoaders() {
		node, ok := registry.Find(id)
		if !ok || node.Loader == nil {
			t.Fatalf("expected loader node for %q", id)
		}
	}
	for id := range ActionHandlers() {
		node, ok := registry.Find(id)
		if !ok || node.Action == nil {
			t.Fatalf("expected action node for %q", id)
		}
	}
}

func TestRegistryChildResolution(t *testing.T) {
	registry := BuildRegistry()

	node, ok := registry.Child("root", "bookmark")
	if !ok || node.ID != "bookmark" {
		t.Fatalf("expected bookmark under root, got %+v ok=%v", node, ok)
	}
	node, ok = registry.Child("bookmark", "go")
	if !ok || node.ID != "bookmark:go" {
		t.Fatalf("expected bookmark:go under bookmark, got %+v ok=%v", node, ok)
	}
	if _, ok := registry.Child("bookmark", "missing"); ok {
		t.Fatalf("expected miss for unknown child")
	}
}

func TestRegistryGridCols(t *testing.T) {
	registry := BuildRegistry()

	palette, ok := registry.Find("palette")
	if !ok {
		t.Fatalf("expected palette node")
	}
	if palette.Cols != paletteCols {
		t.Fatalf("expected palette cols %d, got %d", paletteCols, palette.Cols)
	}
	arrange, ok := registry.Find("view:arrange")
	if !ok || arrange.Cols != 2 {
		t.Fatalf("expected view:arrange cols 2, got %+v ok=%v", arrange, ok)
	}
	open, ok := registry.Find("open")
	if !ok || open.Cols != 0 {
		t.Fatalf("expected open to stay linear, got %+v ok=%v", open, ok)
	}
}

func TestParentKey(t *testing.T) {
	cases := []struct {
		id     string
		parent string
		key    string
	}{
		{"open", "root", "open"},
		{"bookmark:go", "bookmark", "go"},
		{"workspace:switch:alpha", "workspace:switch", "alpha"},
		{"", "root", ""},
	}
	for _, tc := range cases {
		parent, key := parentKey(tc.id)
		if parent != tc.parent || key != tc.key {
			t.Fatalf("parentKey(%q) = (%q, %q), expected (%q, %q)", tc.id, parent, key, tc.parent, tc.key)
		}
	}
}

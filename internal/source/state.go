package source

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/floatkit/floatnav/internal/menu"
)

// State mirrors the on-disk demo state file. The watcher re-reads it every
// poll interval so edits show up under an open popup.
type State struct {
	Workspace  string         `toml:"workspace"`
	Workspaces []string       `toml:"workspaces"`
	Recent     []RecentFile   `toml:"recent"`
	Bookmarks  []BookmarkSpec `toml:"bookmark"`
}

// RecentFile is a recently opened file reference in the state file.
type RecentFile struct {
	Path  string `toml:"path"`
	Label string `toml:"label"`
}

// BookmarkSpec is a saved location in the state file.
type BookmarkSpec struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

// LoadState parses the state file at path. A missing file yields an empty
// state rather than an error so the demo runs without setup.
func LoadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read state file: %w", err)
	}
	var state State
	if err := toml.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("parse state file %s: %w", path, err)
	}
	return state, nil
}

// FileEntries resolves the recent-file list against the filesystem: files
// that no longer exist are marked missing, files touched since asOf are
// marked modified.
func (s State) FileEntries(asOf time.Time) []menu.FileEntry {
	entries := make([]menu.FileEntry, 0, len(s.Recent))
	for _, recent := range s.Recent {
		entry := menu.FileEntry{Path: recent.Path, Label: recent.Label}
		info, err := os.Stat(recent.Path)
		switch {
		case err != nil:
			entry.Missing = true
		case !asOf.IsZero() && info.ModTime().After(asOf):
			entry.Modified = true
		}
		entries = append(entries, entry)
	}
	return entries
}

// BookmarkEntries converts the state's bookmarks into menu entries.
func (s State) BookmarkEntries() []menu.BookmarkEntry {
	entries := make([]menu.BookmarkEntry, 0, len(s.Bookmarks))
	for _, bookmark := range s.Bookmarks {
		label := bookmark.Label
		if label == "" {
			label = bookmark.ID
		}
		entries = append(entries, menu.BookmarkEntry{ID: bookmark.ID, Label: label, Path: bookmark.Path})
	}
	return entries
}

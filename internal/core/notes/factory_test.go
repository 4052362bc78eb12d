package notes

import (
	"testing"
	"time"

	"github.com/globalnotes/notes-workspace/internal/model"
)

func TestNewNote_Defaults(t *testing.T) {
	n := NewNote(model.Note{})

	if n.ID == "" {
		t.Fatal("expected generated id")
	}
	if n.Tags == nil || len(n.Tags) != 0 {
		t.Fatalf("expected empty tag slice, got %#v", n.Tags)
	}
	if n.Theme != DefaultTheme {
		t.Fatalf("expected default theme, got %s", n.Theme)
	}
	if n.CreatedAt == "" || n.UpdatedAt == "" {
		t.Fatal("expected timestamps to be stamped")
	}
	if _, err := time.Parse(time.RFC3339, n.CreatedAt); err != nil {
		t.Fatalf("createdAt not RFC3339: %v", err)
	}
}

func TestNewNote_KeepsSuppliedFields(t *testing.T) {
	n := NewNote(model.Note{
		ID:        "fixed",
		Title:     "T",
		Tags:      []string{"a"},
		Theme:     "midnight",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-02T00:00:00Z",
	})
	if n.ID != "fixed" || n.Title != "T" || n.Theme != "midnight" {
		t.Fatalf("supplied fields overwritten: %#v", n)
	}
	if n.CreatedAt != "2024-01-01T00:00:00Z" || n.UpdatedAt != "2024-01-02T00:00:00Z" {
		t.Fatalf("supplied timestamps overwritten: %#v", n)
	}
}

func TestNewNote_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewNote(model.Note{}).ID
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewFolder_DefaultName(t *testing.T) {
	f := NewFolder("")
	if f.Name != "New Folder" {
		t.Fatalf("expected placeholder name, got %s", f.Name)
	}
	if f.ID == "" || f.CreatedAt == "" {
		t.Fatalf("missing id or timestamp: %#v", f)
	}

	named := NewFolder("Work")
	if named.Name != "Work" {
		t.Fatalf("expected supplied name, got %s", named.Name)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	notes := []model.Note{
		{Content: "<b>Hello</b> world", UpdatedAt: "2026-08-28T09:00:00Z"},
		{Content: "one two three", UpdatedAt: "2026-08-20T09:00:00Z"},
	}

	st := ComputeStats(notes, now)
	if st.TotalNotes != 2 {
		t.Fatalf("expected 2 notes, got %d", st.TotalNotes)
	}
	if st.TotalWords != 5 {
		t.Fatalf("expected 5 words with markup stripped, got %d", st.TotalWords)
	}
	if st.LastActive != "Today" {
		t.Fatalf("expected Today, got %s", st.LastActive)
	}
}

func TestComputeStats_Labels(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		updated string
		want    string
	}{
		{"2026-08-27T09:00:00Z", "Yesterday"},
		{"2026-08-25T09:00:00Z", "3 days ago"},
		{"2026-01-01T09:00:00Z", "Jan 1, 2026"},
	}
	for _, c := range cases {
		st := ComputeStats([]model.Note{{UpdatedAt: c.updated}}, now)
		if st.LastActive != c.want {
			t.Fatalf("updated %s: expected %q, got %q", c.updated, c.want, st.LastActive)
		}
	}

	empty := ComputeStats(nil, now)
	if empty.LastActive != "Never" {
		t.Fatalf("expected Never for no notes, got %s", empty.LastActive)
	}
}

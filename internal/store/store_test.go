package store

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/homeboard/homeboard/internal/config"
	"github.com/homeboard/homeboard/internal/model"
)

func newTestStore() *Store {
	return New(nil)
}

func strPtr(s string) *string { return &s }

func TestCreateProjectAssignsUniqueIDs(t *testing.T) {
	s := newTestStore()

	names := []string{"Work", "Home", "Lab", "Side"}
	ids := make(map[string]bool)
	for _, name := range names {
		p := s.CreateProject(name, "", "", "")
		if p.ID == "" {
			t.Fatalf("project %q got empty id", name)
		}
		if ids[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		ids[p.ID] = true
	}

	if got := len(s.Projects()); got != len(names) {
		t.Errorf("project count = %d, want %d", got, len(names))
	}
}

func TestCreateProjectActivatesItself(t *testing.T) {
	s := newTestStore()

	work := s.CreateProject("Work", "", "", "")
	if s.ActiveProjectID() != work.ID {
		t.Error("first created project should be active")
	}

	home := s.CreateProject("Home", "", "", "")
	if s.ActiveProjectID() != home.ID {
		t.Error("newly created project should steal focus")
	}

	s.DeleteProject(home.ID)
	if s.ActiveProjectID() != work.ID {
		t.Error("deleting the active project should fall back to the first remaining one")
	}
}

func TestDeleteProjectIdempotent(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Work", "", "", "")

	s.DeleteProject(p.ID)
	after := s.Projects()
	s.DeleteProject(p.ID)

	if !reflect.DeepEqual(s.Projects(), after) {
		t.Error("second delete of the same id should change nothing")
	}
	if len(after) != 0 {
		t.Errorf("project count = %d, want 0", len(after))
	}
}

func TestDeleteLastProjectClearsActive(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Only", "", "", "")

	s.DeleteProject(p.ID)
	if got := s.ActiveProjectID(); got != "" {
		t.Errorf("active pointer should be empty, got %q", got)
	}
	if _, ok := s.ActiveProject(); ok {
		t.Error("no project should be active")
	}
}

func TestDeleteProjectCascadesShortcuts(t *testing.T) {
	s := newTestStore()
	p1 := s.CreateProject("Work", "", "", "")
	p2 := s.CreateProject("Home", "", "", "")

	s.AddShortcut(model.Shortcut{ProjectID: p1.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	keep := s.AddShortcut(model.Shortcut{ProjectID: p2.ID, Name: "B", Path: "/b", Type: model.ShortcutFile})

	s.DeleteProject(p1.ID)

	all := s.Shortcuts()
	if len(all) != 1 || all[0].ID != keep.ID {
		t.Errorf("only the surviving project's shortcut should remain, got %+v", all)
	}
}

func TestUpdateProjectEmptyPatchIsIdentity(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Work", "day job", "192.168.1.20", "192.168.1.1")

	before := s.Projects()
	s.UpdateProject(p.ID, ProjectPatch{})

	if !reflect.DeepEqual(s.Projects(), before) {
		t.Error("empty patch should leave the project unchanged")
	}
}

func TestUpdateProjectMergesFields(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Work", "old", "", "")

	pinned := true
	s.UpdateProject(p.ID, ProjectPatch{Description: strPtr("new"), IsPinned: &pinned})

	got, _ := s.ActiveProject()
	if got.Description != "new" || !got.IsPinned {
		t.Errorf("patch not merged: %+v", got)
	}
	if got.Name != "Work" {
		t.Errorf("untouched field changed: %q", got.Name)
	}
	if got.ID != p.ID {
		t.Error("id must be immutable")
	}
}

func TestUpdateProjectUnknownIDIsNoop(t *testing.T) {
	s := newTestStore()
	s.CreateProject("Work", "", "", "")

	before := s.Projects()
	s.UpdateProject("missing", ProjectPatch{Name: strPtr("X")})

	if !reflect.DeepEqual(s.Projects(), before) {
		t.Error("updating a missing id should change nothing")
	}
}

func TestUpdateProjectNotes(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Work", "", "", "")

	s.UpdateProjectNotes(p.ID, "# Heading\n\n- item")

	got, _ := s.ActiveProject()
	if got.Notes != "# Heading\n\n- item" {
		t.Errorf("notes = %q", got.Notes)
	}
}

func TestSetActiveProjectIsUnchecked(t *testing.T) {
	s := newTestStore()
	s.CreateProject("Work", "", "", "")

	// No existence check by contract; callers must pass valid ids.
	s.SetActiveProject("ghost")
	if s.ActiveProjectID() != "ghost" {
		t.Error("pointer should be set unconditionally")
	}
	if _, ok := s.ActiveProject(); ok {
		t.Error("a dangling pointer resolves to no project")
	}
}

func TestShortcutAddFilterReorder(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("p1", "", "", "")

	a := s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	b := s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "B", Path: "/b", Type: model.ShortcutFile})

	if err := s.ReorderShortcuts(p.ID, []string{b.ID, a.ID}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	got := s.ProjectShortcuts(p.ID)
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != a.ID {
		t.Errorf("order after reorder = %+v, want [B A]", got)
	}
}

func TestReorderPreservesOtherProjects(t *testing.T) {
	s := newTestStore()
	p1 := s.CreateProject("p1", "", "", "")
	p2 := s.CreateProject("p2", "", "", "")

	// Interleave the two projects' shortcuts in storage.
	a := s.AddShortcut(model.Shortcut{ProjectID: p1.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	t1 := s.AddShortcut(model.Shortcut{ProjectID: p2.ID, Name: "T1", Path: "/t1", Type: model.ShortcutFolder})
	b := s.AddShortcut(model.Shortcut{ProjectID: p1.ID, Name: "B", Path: "/b", Type: model.ShortcutFile})
	t2 := s.AddShortcut(model.Shortcut{ProjectID: p2.ID, Name: "T2", Path: "/t2", Type: model.ShortcutURL})

	otherBefore := s.ProjectShortcuts(p2.ID)

	if err := s.ReorderShortcuts(p1.ID, []string{b.ID, a.ID}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	otherAfter := s.ProjectShortcuts(p2.ID)
	if !reflect.DeepEqual(otherBefore, otherAfter) {
		t.Errorf("other project's shortcuts changed: %+v -> %+v", otherBefore, otherAfter)
	}
	if otherAfter[0].ID != t1.ID || otherAfter[1].ID != t2.ID {
		t.Error("other project's relative order must be preserved")
	}
}

func TestReorderRejectsNonPermutation(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("p1", "", "", "")
	a := s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	b := s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "B", Path: "/b", Type: model.ShortcutFile})

	before := s.Shortcuts()

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "missing element", ids: []string{a.ID}},
		{name: "unknown element", ids: []string{a.ID, "ghost"}},
		{name: "duplicate element", ids: []string{a.ID, a.ID}},
		{name: "extra element", ids: []string{a.ID, b.ID, b.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.ReorderShortcuts(p.ID, tt.ids); err != ErrReorderMismatch {
				t.Fatalf("err = %v, want ErrReorderMismatch", err)
			}
			if !reflect.DeepEqual(s.Shortcuts(), before) {
				t.Error("a rejected reorder must leave state untouched")
			}
		})
	}
}

func TestRemoveShortcutIdempotent(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("p1", "", "", "")
	sc := s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})

	s.RemoveShortcut(sc.ID)
	s.RemoveShortcut(sc.ID)

	if got := len(s.Shortcuts()); got != 0 {
		t.Errorf("shortcut count = %d, want 0", got)
	}
}

func TestGlobalShortcutsIndependent(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("p1", "", "", "")

	s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	g := s.AddGlobalShortcut(model.Shortcut{ProjectID: model.GlobalProjectID, Name: "G", Path: "https://example.com", Type: model.ShortcutURL})

	if got := len(s.GlobalShortcuts()); got != 1 {
		t.Fatalf("global count = %d, want 1", got)
	}

	s.UpdateGlobalShortcut(g.ID, ShortcutPatch{Name: strPtr("G2")})
	if s.GlobalShortcuts()[0].Name != "G2" {
		t.Error("global update did not apply")
	}
	if len(s.ProjectShortcuts(p.ID)) != 1 {
		t.Error("global mutations must not touch project shortcuts")
	}

	s.RemoveGlobalShortcut(g.ID)
	if len(s.GlobalShortcuts()) != 0 {
		t.Error("global shortcut not removed")
	}
	if len(s.Shortcuts()) != 1 {
		t.Error("project shortcut collection must be independent")
	}
}

func TestCalendarMemoEmptyStringIsAnEntry(t *testing.T) {
	s := newTestStore()

	s.UpdateCalendarMemo("2024-01-01", "Dentist")
	s.UpdateCalendarMemo("2024-01-01", "")

	text, ok := s.CalendarMemo("2024-01-01")
	if !ok {
		t.Fatal("overwriting with empty string must keep the entry")
	}
	if text != "" {
		t.Errorf("memo = %q, want empty string", text)
	}

	if _, ok := s.CalendarMemo("2024-01-02"); ok {
		t.Error("a date never written must have no entry")
	}
}

func TestToggleThemeAndLanguage(t *testing.T) {
	s := newTestStore()

	orig := s.Theme()
	s.ToggleTheme()
	s.ToggleTheme()
	if s.Theme() != orig {
		t.Error("double theme toggle should restore the original value")
	}

	lang := s.Language()
	s.ToggleLanguage()
	s.ToggleLanguage()
	if s.Language() != lang {
		t.Error("double language toggle should restore the original value")
	}
}

func TestUpdateGlobalNetworkSettingsReplaces(t *testing.T) {
	s := newTestStore()

	ns := model.NetworkSettings{IP: "192.168.1.50", Gateway: "192.168.1.1", InterfaceName: "Wi-Fi"}
	s.UpdateGlobalNetworkSettings(ns)

	if got := s.NetworkSettings(); got != ns {
		t.Errorf("NetworkSettings() = %+v, want %+v", got, ns)
	}

	// Full replace, not merge.
	s.UpdateGlobalNetworkSettings(model.NetworkSettings{IP: "10.0.0.2"})
	if got := s.NetworkSettings(); got.Gateway != "" || got.InterfaceName != "" {
		t.Errorf("replace should not keep old fields: %+v", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Work", "desc", "", "")
	s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	s.AddGlobalShortcut(model.Shortcut{ProjectID: model.GlobalProjectID, Name: "G", Path: "https://example.com", Type: model.ShortcutURL})
	s.UpdateCalendarMemo("2024-01-01", "Dentist")

	b := s.ExportData()

	other := newTestStore()
	if err := other.ImportData(b); err != nil {
		t.Fatalf("import of a fresh export failed: %v", err)
	}

	if !reflect.DeepEqual(other.Projects(), s.Projects()) {
		t.Error("projects did not round-trip")
	}
	if !reflect.DeepEqual(other.Shortcuts(), s.Shortcuts()) {
		t.Error("shortcuts did not round-trip")
	}
	if !reflect.DeepEqual(other.GlobalShortcuts(), s.GlobalShortcuts()) {
		t.Error("global shortcuts did not round-trip")
	}
	if !reflect.DeepEqual(other.CalendarMemos(), s.CalendarMemos()) {
		t.Error("calendar memos did not round-trip")
	}
	if other.ActiveProjectID() != p.ID {
		t.Error("import should activate the first imported project")
	}
}

// Version 1.1 exports do not carry network settings, so they do not
// round-trip; the importer accepts them only when a bundle includes them.
func TestExportOmitsNetworkSettings(t *testing.T) {
	s := newTestStore()
	s.UpdateGlobalNetworkSettings(model.NetworkSettings{IP: "192.168.1.50", Gateway: "192.168.1.1", InterfaceName: "Ethernet"})

	b := s.ExportData()
	if b.GlobalNetworkSettings != nil {
		t.Error("export must not include globalNetworkSettings")
	}

	other := newTestStore()
	if err := other.ImportData(b); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if other.NetworkSettings().IP != "" {
		t.Error("network settings must not round-trip through a 1.1 bundle")
	}
}

func TestImportAbsentKeysLeaveStateUntouched(t *testing.T) {
	s := newTestStore()
	p := s.CreateProject("Work", "", "", "")
	s.UpdateCalendarMemo("2024-01-01", "Dentist")

	// Only global shortcuts in the bundle; everything else stays.
	err := s.ImportData(model.Bundle{
		GlobalShortcuts: []model.Shortcut{{ID: "g1", Path: "https://example.com", Type: model.ShortcutURL}},
	})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(s.Projects()) != 1 || s.ActiveProjectID() != p.ID {
		t.Error("projects and active pointer must survive a partial bundle")
	}
	if _, ok := s.CalendarMemo("2024-01-01"); !ok {
		t.Error("memos must survive a partial bundle")
	}
	if len(s.GlobalShortcuts()) != 1 {
		t.Error("global shortcuts should have been replaced")
	}
}

func TestImportEmptyProjectsClearsActive(t *testing.T) {
	s := newTestStore()
	s.CreateProject("Work", "", "", "")

	err := s.ImportData(model.Bundle{Projects: []model.Project{}})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if got := s.ActiveProjectID(); got != "" {
		t.Errorf("active pointer = %q, want empty after importing zero projects", got)
	}
}

func TestImportRejectsInvalidBundle(t *testing.T) {
	s := newTestStore()
	s.CreateProject("Work", "", "", "")
	before := s.Projects()

	tests := []struct {
		name   string
		bundle model.Bundle
	}{
		{
			name:   "project without id",
			bundle: model.Bundle{Projects: []model.Project{{Name: "X"}}},
		},
		{
			name:   "project without name",
			bundle: model.Bundle{Projects: []model.Project{{ID: "p1"}}},
		},
		{
			name: "duplicate project ids",
			bundle: model.Bundle{Projects: []model.Project{
				{ID: "p1", Name: "A"}, {ID: "p1", Name: "B"},
			}},
		},
		{
			name:   "shortcut with unknown type",
			bundle: model.Bundle{Shortcuts: []model.Shortcut{{ID: "s1", Path: "/a", Type: "link"}}},
		},
		{
			name:   "memo key not a date",
			bundle: model.Bundle{CalendarMemos: map[string]string{"someday": "x"}},
		},
		{
			name:   "network ip not an address",
			bundle: model.Bundle{GlobalNetworkSettings: &model.NetworkSettings{IP: "not-an-ip"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.ImportData(tt.bundle); err == nil {
				t.Fatal("expected validation error")
			}
			if !reflect.DeepEqual(s.Projects(), before) {
				t.Error("a rejected import must leave state untouched")
			}
		})
	}
}

func TestVisibleProjectsSorting(t *testing.T) {
	s := newTestStore()
	s.CreateProject("banana", "", "", "")
	apple := s.CreateProject("apple", "", "", "")
	s.CreateProject("cherry", "", "", "")
	s.TogglePin(apple.ID)

	names := func(ps []model.Project) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Name
		}
		return out
	}

	asc := names(s.VisibleProjects("", SortAscending))
	if !reflect.DeepEqual(asc, []string{"apple", "banana", "cherry"}) {
		t.Errorf("ascending = %v", asc)
	}

	desc := names(s.VisibleProjects("", SortDescending))
	if !reflect.DeepEqual(desc, []string{"apple", "cherry", "banana"}) {
		t.Errorf("pinned stays first in descending order, got %v", desc)
	}

	filtered := names(s.VisibleProjects("an", SortAscending))
	if !reflect.DeepEqual(filtered, []string{"banana"}) {
		t.Errorf("filtered = %v", filtered)
	}
}

func TestOnChangeNotified(t *testing.T) {
	s := newTestStore()

	calls := 0
	s.OnChange(func() { calls++ })

	p := s.CreateProject("Work", "", "", "")
	s.UpdateCalendarMemo("2024-01-01", "x")
	s.DeleteProject(p.ID)

	if calls != 3 {
		t.Errorf("observer called %d times, want 3", calls)
	}
}

func TestPersistenceAcrossStores(t *testing.T) {
	app := test.NewApp()
	prefs := config.NewPrefs(app)

	s := New(prefs)
	s.Load()
	p := s.CreateProject("Work", "", "", "")
	s.AddShortcut(model.Shortcut{ProjectID: p.ID, Name: "A", Path: "/a", Type: model.ShortcutFile})
	s.UpdateCalendarMemo("2024-01-01", "Dentist")
	s.ToggleTheme()
	s.ToggleLanguage()
	s.Close()

	// A second store over the same preferences sees the same state.
	reloaded := New(prefs)
	reloaded.Load()
	defer reloaded.Close()

	if !reflect.DeepEqual(reloaded.Projects(), s.Projects()) {
		t.Error("projects did not survive reload")
	}
	if !reflect.DeepEqual(reloaded.Shortcuts(), s.Shortcuts()) {
		t.Error("shortcuts did not survive reload")
	}
	if text, ok := reloaded.CalendarMemo("2024-01-01"); !ok || text != "Dentist" {
		t.Error("memo did not survive reload")
	}
	if reloaded.Theme() != model.ThemeLight {
		t.Errorf("theme after reload = %q, want light", reloaded.Theme())
	}
	if reloaded.Language() != model.LanguageJapanese {
		t.Errorf("language after reload = %q, want ja", reloaded.Language())
	}
	if reloaded.ActiveProjectID() != p.ID {
		t.Error("active pointer should default to the first loaded project")
	}
}

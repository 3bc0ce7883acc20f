package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/homeboard/homeboard/internal/config"
	"github.com/homeboard/homeboard/internal/model"
)

// SortOrder selects the direction of the derived project listing.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// ProjectPatch is a partial update for a project. Nil fields are left
// unchanged; the id is immutable.
type ProjectPatch struct {
	Name          *string
	Description   *string
	IsPinned      *bool
	Notes         *string
	IP            *string
	Gateway       *string
	InterfaceName *string
}

// ShortcutPatch is a partial update for a shortcut. Nil fields are left
// unchanged; the id and owning collection are immutable.
type ShortcutPatch struct {
	Name *string
	Path *string
	Type *model.ShortcutType
	Icon *string
}

// Store owns every user-data collection plus the active-project pointer.
// There is one logical writer (the UI event loop) but bridge completions
// arrive on other goroutines, so access is mutex-guarded.
type Store struct {
	mu              sync.RWMutex
	projects        []model.Project
	shortcuts       []model.Shortcut
	globalShortcuts []model.Shortcut
	calendarMemos   map[string]string
	theme           model.Theme
	lang            model.Language
	network         model.NetworkSettings
	activeProjectID string

	persist  *persister
	onChange func()
	now      func() time.Time
	newID    func() string
}

// New creates a store persisting into prefs. A nil prefs keeps the store
// purely in memory.
func New(prefs *config.Prefs) *Store {
	return &Store{
		calendarMemos: make(map[string]string),
		theme:         model.ThemeDark,
		lang:          model.LanguageEnglish,
		network:       model.DefaultNetworkSettings(),
		persist:       newPersister(prefs),
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// OnChange registers the observer invoked after every mutation. The UI uses
// it to refresh dependent views; it runs on the mutating goroutine.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Load initializes state from persistence, falling back to defaults for
// absent or unreadable keys. The active pointer is set to the first loaded
// project, or none.
func (s *Store) Load() {
	s.mu.Lock()

	s.persist.loadJSON(config.KeyProjects, &s.projects)
	s.persist.loadJSON(config.KeyShortcuts, &s.shortcuts)
	s.persist.loadJSON(config.KeyGlobalShortcuts, &s.globalShortcuts)
	s.persist.loadJSON(config.KeyCalendarMemos, &s.calendarMemos)
	s.persist.loadJSON(config.KeyNetworkSettings, &s.network)

	if t := model.Theme(s.persist.loadString(config.KeyTheme)); t.Valid() {
		s.theme = t
	}
	if l := model.Language(s.persist.loadString(config.KeyLanguage)); l.Valid() {
		s.lang = l
	}

	if s.calendarMemos == nil {
		s.calendarMemos = make(map[string]string)
	}
	if s.network.InterfaceName == "" {
		s.network.InterfaceName = model.DefaultInterfaceName
	}
	s.normalizeActiveLocked()

	s.mu.Unlock()
	s.notify()
}

// Flush blocks until all queued persistence writes have completed.
func (s *Store) Flush() {
	s.persist.flush()
}

// Close drains the persistence queue and stops its worker.
func (s *Store) Close() {
	s.persist.close()
}

// --- projects ---

// CreateProject adds a project with a fresh id and makes it active. Name
// validation is the caller's responsibility; the store does not reject
// empty names.
func (s *Store) CreateProject(name, description, ip, gateway string) model.Project {
	p := model.Project{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		IP:          ip,
		Gateway:     gateway,
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.activeProjectID = p.ID
	s.mu.Unlock()

	s.save(config.KeyProjects)
	s.notify()
	return p
}

// DeleteProject removes the project and its shortcuts. Deleting an unknown
// id is a no-op. The active pointer falls back to the first remaining
// project, or to none.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()

	kept := s.projects[:0]
	removed := false
	for _, p := range s.projects {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept

	if !removed {
		s.mu.Unlock()
		return
	}

	// Cascade: shortcuts referencing the deleted project would otherwise
	// linger invisibly in storage.
	keptShortcuts := s.shortcuts[:0]
	for _, sc := range s.shortcuts {
		if sc.ProjectID != id {
			keptShortcuts = append(keptShortcuts, sc)
		}
	}
	s.shortcuts = keptShortcuts

	s.normalizeActiveLocked()
	s.mu.Unlock()

	s.save(config.KeyProjects, config.KeyShortcuts)
	s.notify()
}

// UpdateProject merges the patch into the matching project. Unknown ids are
// a no-op.
func (s *Store) UpdateProject(id string, patch ProjectPatch) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.IsPinned != nil {
			p.IsPinned = *patch.IsPinned
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		if patch.IP != nil {
			p.IP = *patch.IP
		}
		if patch.Gateway != nil {
			p.Gateway = *patch.Gateway
		}
		if patch.InterfaceName != nil {
			p.InterfaceName = *patch.InterfaceName
		}
		changed = true
		break
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	s.save(config.KeyProjects)
	s.notify()
}

// UpdateProjectNotes replaces the Markdown notes of the matching project.
func (s *Store) UpdateProjectNotes(id, notes string) {
	s.UpdateProject(id, ProjectPatch{Notes: &notes})
}

// TogglePin flips the pinned flag of the matching project.
func (s *Store) TogglePin(id string) {
	s.mu.RLock()
	var pinned *bool
	for i := range s.projects {
		if s.projects[i].ID == id {
			v := !s.projects[i].IsPinned
			pinned = &v
			break
		}
	}
	s.mu.RUnlock()

	if pinned != nil {
		s.UpdateProject(id, ProjectPatch{IsPinned: pinned})
	}
}

// SetActiveProject sets the pointer unconditionally; the caller is
// responsible for passing a valid id.
func (s *Store) SetActiveProject(id string) {
	s.mu.Lock()
	s.activeProjectID = id
	s.mu.Unlock()
	s.notify()
}

// ActiveProjectID returns the active pointer, or "" when no project is active.
func (s *Store) ActiveProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeProjectID
}

// ActiveProject returns the active project, if any.
func (s *Store) ActiveProject() (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == s.activeProjectID {
			return p, true
		}
	}
	return model.Project{}, false
}

// Projects returns a copy of the project collection in storage order.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// VisibleProjects returns the derived sidebar listing: projects whose name
// contains query (case-insensitive), pinned projects first, then by name in
// the collation order of the active language. The display order is
// recomputed on every call and never persisted.
func (s *Store) VisibleProjects(query string, order SortOrder) []model.Project {
	s.mu.RLock()
	lang := s.lang
	out := make([]model.Project, 0, len(s.projects))
	q := strings.ToLower(query)
	for _, p := range s.projects {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()

	cl := collate.New(language.Make(string(lang)))
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		cmp := cl.CompareString(out[i].Name, out[j].Name)
		if order == SortDescending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// --- shortcuts ---

// AddShortcut appends a shortcut under a fresh id and returns the stored value.
func (s *Store) AddShortcut(sc model.Shortcut) model.Shortcut {
	sc.ID = s.newID()

	s.mu.Lock()
	s.shortcuts = append(s.shortcuts, sc)
	s.mu.Unlock()

	s.save(config.KeyShortcuts)
	s.notify()
	return sc
}

// UpdateShortcut merges the patch into the matching shortcut; unknown ids
// are a no-op.
func (s *Store) UpdateShortcut(id string, patch ShortcutPatch) {
	if s.patchShortcuts(&s.shortcuts, id, patch) {
		s.save(config.KeyShortcuts)
		s.notify()
	}
}

// RemoveShortcut removes the shortcut by id; unknown ids are a no-op.
func (s *Store) RemoveShortcut(id string) {
	if s.removeFromShortcuts(&s.shortcuts, id) {
		s.save(config.KeyShortcuts)
		s.notify()
	}
}

// ReorderShortcuts replaces the stored order of exactly the shortcuts
// belonging to projectID with orderedIDs. Shortcuts of other projects keep
// their relative order. The supplied ids must be a permutation of the
// current subset; a mismatch returns ErrReorderMismatch and leaves state
// untouched.
func (s *Store) ReorderShortcuts(projectID string, orderedIDs []string) error {
	s.mu.Lock()

	current := make(map[string]model.Shortcut)
	count := 0
	for _, sc := range s.shortcuts {
		if sc.ProjectID == projectID {
			current[sc.ID] = sc
			count++
		}
	}

	if len(orderedIDs) != count {
		s.mu.Unlock()
		return ErrReorderMismatch
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := current[id]; !ok || seen[id] {
			s.mu.Unlock()
			return ErrReorderMismatch
		}
		seen[id] = true
	}

	// Rewrite the slots occupied by this project's shortcuts in the new
	// order; everything else stays byte for byte where it was.
	next := 0
	for i := range s.shortcuts {
		if s.shortcuts[i].ProjectID == projectID {
			s.shortcuts[i] = current[orderedIDs[next]]
			next++
		}
	}
	s.mu.Unlock()

	s.save(config.KeyShortcuts)
	s.notify()
	return nil
}

// Shortcuts returns a copy of the full shortcut collection, all projects
// interleaved in storage order.
func (s *Store) Shortcuts() []model.Shortcut {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Shortcut, len(s.shortcuts))
	copy(out, s.shortcuts)
	return out
}

// ProjectShortcuts returns the ordered subset belonging to projectID.
func (s *Store) ProjectShortcuts(projectID string) []model.Shortcut {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Shortcut
	for _, sc := range s.shortcuts {
		if sc.ProjectID == projectID {
			out = append(out, sc)
		}
	}
	return out
}

// --- global shortcuts ---

// AddGlobalShortcut appends to the independent global collection. The
// ProjectID field is stored as given but carries no meaning there.
func (s *Store) AddGlobalShortcut(sc model.Shortcut) model.Shortcut {
	sc.ID = s.newID()

	s.mu.Lock()
	s.globalShortcuts = append(s.globalShortcuts, sc)
	s.mu.Unlock()

	s.save(config.KeyGlobalShortcuts)
	s.notify()
	return sc
}

// UpdateGlobalShortcut merges the patch into the matching global shortcut.
func (s *Store) UpdateGlobalShortcut(id string, patch ShortcutPatch) {
	if s.patchShortcuts(&s.globalShortcuts, id, patch) {
		s.save(config.KeyGlobalShortcuts)
		s.notify()
	}
}

// RemoveGlobalShortcut removes the global shortcut by id.
func (s *Store) RemoveGlobalShortcut(id string) {
	if s.removeFromShortcuts(&s.globalShortcuts, id) {
		s.save(config.KeyGlobalShortcuts)
		s.notify()
	}
}

// GlobalShortcuts returns a copy of the global collection in storage order.
func (s *Store) GlobalShortcuts() []model.Shortcut {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Shortcut, len(s.globalShortcuts))
	copy(out, s.globalShortcuts)
	return out
}

// --- calendar memos ---

// UpdateCalendarMemo upserts the memo for a date key. An empty string is
// stored as an empty entry, distinguishable from an absent one; deletion is
// an explicit caller decision the store does not make.
func (s *Store) UpdateCalendarMemo(dateKey, text string) {
	s.mu.Lock()
	s.calendarMemos[dateKey] = text
	s.mu.Unlock()

	s.save(config.KeyCalendarMemos)
	s.notify()
}

// CalendarMemo returns the memo for a date key and whether an entry exists.
func (s *Store) CalendarMemo(dateKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.calendarMemos[dateKey]
	return text, ok
}

// CalendarMemos returns a copy of all memos.
func (s *Store) CalendarMemos() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.calendarMemos))
	for k, v := range s.calendarMemos {
		out[k] = v
	}
	return out
}

// --- theme, language, network ---

// Theme returns the current theme.
func (s *Store) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips light and dark and returns the new value.
func (s *Store) ToggleTheme() model.Theme {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	t := s.theme
	s.mu.Unlock()

	s.persist.saveString(config.KeyTheme, string(t))
	s.notify()
	return t
}

// Language returns the current UI language.
func (s *Store) Language() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// ToggleLanguage flips en and ja and returns the new value.
func (s *Store) ToggleLanguage() model.Language {
	s.mu.Lock()
	s.lang = s.lang.Toggle()
	l := s.lang
	s.mu.Unlock()

	s.persist.saveString(config.KeyLanguage, string(l))
	s.notify()
	return l
}

// NetworkSettings returns the global network settings.
func (s *Store) NetworkSettings() model.NetworkSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network
}

// UpdateGlobalNetworkSettings replaces the global settings record in full.
func (s *Store) UpdateGlobalNetworkSettings(ns model.NetworkSettings) {
	s.mu.Lock()
	s.network = ns
	s.mu.Unlock()

	s.save(config.KeyNetworkSettings)
	s.notify()
}

// --- import / export ---

// ExportData snapshots the store into a bundle. Global network settings are
// deliberately not exported, matching version 1.1 files; the importer still
// accepts them when present.
func (s *Store) ExportData() model.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := model.NewBundle(s.now())
	b.Projects = append([]model.Project(nil), s.projects...)
	b.Shortcuts = append([]model.Shortcut(nil), s.shortcuts...)
	b.GlobalShortcuts = append([]model.Shortcut(nil), s.globalShortcuts...)
	for k, v := range s.calendarMemos {
		b.CalendarMemos[k] = v
	}
	return b
}

// ImportData validates the bundle and bulk-replaces every collection whose
// key is present (nil means absent and leaves the live value untouched).
// Invalid bundles are rejected without touching state. Afterwards the
// active pointer names an existing project or is empty.
func (s *Store) ImportData(b model.Bundle) error {
	if err := ValidateBundle(&b); err != nil {
		return err
	}

	s.mu.Lock()
	keys := make([]string, 0, 5)
	if b.Projects != nil {
		s.projects = append([]model.Project(nil), b.Projects...)
		keys = append(keys, config.KeyProjects)
	}
	if b.Shortcuts != nil {
		s.shortcuts = append([]model.Shortcut(nil), b.Shortcuts...)
		keys = append(keys, config.KeyShortcuts)
	}
	if b.GlobalShortcuts != nil {
		s.globalShortcuts = append([]model.Shortcut(nil), b.GlobalShortcuts...)
		keys = append(keys, config.KeyGlobalShortcuts)
	}
	if b.CalendarMemos != nil {
		memos := make(map[string]string, len(b.CalendarMemos))
		for k, v := range b.CalendarMemos {
			memos[k] = v
		}
		s.calendarMemos = memos
		keys = append(keys, config.KeyCalendarMemos)
	}
	if b.GlobalNetworkSettings != nil {
		s.network = *b.GlobalNetworkSettings
		if s.network.InterfaceName == "" {
			s.network.InterfaceName = model.DefaultInterfaceName
		}
		keys = append(keys, config.KeyNetworkSettings)
	}
	s.normalizeActiveLocked()
	s.mu.Unlock()

	s.save(keys...)
	s.notify()
	return nil
}

// --- internals ---

// normalizeActiveLocked makes the active pointer name an existing project or
// be empty. Called after every bulk mutation with the write lock held.
func (s *Store) normalizeActiveLocked() {
	for _, p := range s.projects {
		if p.ID == s.activeProjectID {
			return
		}
	}
	if len(s.projects) > 0 {
		s.activeProjectID = s.projects[0].ID
		return
	}
	s.activeProjectID = ""
}

func (s *Store) patchShortcuts(coll *[]model.Shortcut, id string, patch ShortcutPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range *coll {
		if (*coll)[i].ID != id {
			continue
		}
		sc := &(*coll)[i]
		if patch.Name != nil {
			sc.Name = *patch.Name
		}
		if patch.Path != nil {
			sc.Path = *patch.Path
		}
		if patch.Type != nil {
			sc.Type = *patch.Type
		}
		if patch.Icon != nil {
			sc.Icon = *patch.Icon
		}
		return true
	}
	return false
}

func (s *Store) removeFromShortcuts(coll *[]model.Shortcut, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range *coll {
		if (*coll)[i].ID == id {
			*coll = append((*coll)[:i], (*coll)[i+1:]...)
			return true
		}
	}
	return false
}

// save snapshots each key's value under the read lock and enqueues its
// persistence write.
func (s *Store) save(keys ...string) {
	for _, key := range keys {
		s.persist.enqueue(key, s.snapshot(key))
	}
}

func (s *Store) snapshot(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch key {
	case config.KeyProjects:
		return append([]model.Project(nil), s.projects...)
	case config.KeyShortcuts:
		return append([]model.Shortcut(nil), s.shortcuts...)
	case config.KeyGlobalShortcuts:
		return append([]model.Shortcut(nil), s.globalShortcuts...)
	case config.KeyCalendarMemos:
		memos := make(map[string]string, len(s.calendarMemos))
		for k, v := range s.calendarMemos {
			memos[k] = v
		}
		return memos
	case config.KeyNetworkSettings:
		return s.network
	}
	return nil
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

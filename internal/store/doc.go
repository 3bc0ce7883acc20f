// Package store implements the single source of truth for all user data:
// projects, shortcuts, global shortcuts, calendar memos, theme, language,
// and network settings. Mutations update in-memory state synchronously,
// notify the registered observer, and enqueue asynchronous per-key
// persistence writes. Import payloads are validated structurally before
// they replace live state.
package store

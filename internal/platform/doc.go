// Package platform contains OS integration and external tooling glue:
// launching shortcut targets, applying network configuration through the
// platform's network tools, and best-effort file icon snapshots.
package platform

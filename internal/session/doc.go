// Package session persists the CLI's working file set between invocations.
//
// Each CLI command runs in its own process, so the path set a user builds up
// with add/drop/rm is kept in a small JSON file per named session under
// ~/.projxml/sessions/. Session files are private working state; the XML
// project document is the only exchange format.
//
// Key concepts:
//   - SessionState: the ordered path list plus bookkeeping timestamps
//   - SessionStore: interface for loading, saving and listing sessions
//   - FileSessionStore: JSON files written atomically through fsops
package session

// Package screens holds the per-screen UI state controllers: the full
// in-memory list, the search string, the selected row and the modal form
// state. Rendering and widgets are out of scope; callers own those.
package screens

import "strings"

// ModalMode tells the active form whether it is adding or editing.
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalAdd
	ModalEdit
)

// matchesSearch reports whether any of the fields contains the search
// string, case-insensitively. An empty search matches everything.
func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

package helper

import "strings"

// TempIDPrefix marks client-side placeholder identifiers assigned before an
// entity is first saved. They route the save to the insert path and must never
// reach the store as the persisted id.
const TempIDPrefix = "new_"

// IsNewEntityID reports whether the save should take the insert path.
func IsNewEntityID(id string) bool {
	return strings.TrimSpace(id) == "" || strings.HasPrefix(id, TempIDPrefix)
}

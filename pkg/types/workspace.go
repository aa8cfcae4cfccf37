package types

import "fmt"

// Theme names available to the workspace.
const (
	ThemeDefault  = "default"
	ThemeWarm     = "warm"
	ThemeCool     = "cool"
	ThemeSepia    = "sepia"
	ThemeDark     = "dark"
	ThemeDarkWarm = "dark-warm"
)

// validThemes is the set of recognized theme names.
var validThemes = map[string]bool{
	ThemeDefault:  true,
	ThemeWarm:     true,
	ThemeCool:     true,
	ThemeSepia:    true,
	ThemeDark:     true,
	ThemeDarkWarm: true,
}

// ValidTheme reports whether name is a recognized theme.
func ValidTheme(name string) bool {
	return validThemes[name]
}

// Workspace is the singleton record of per-store settings. Exactly one
// instance exists per store, held under WorkspaceKey; the repository
// creates a default instance on first read.
type Workspace struct {
	ClientID   string  `json:"clientId"`   // Generated once when the workspace is vivified.
	Title      string  `json:"title"`      // Workspace display title.
	Theme      string  `json:"theme"`      // One of the Theme* constants.
	Darkmode   bool    `json:"darkmode"`   // Dark color scheme toggle.
	LastNoteID *string `json:"lastNoteId"` // Last-viewed note, for resume-on-launch; nil if none.
}

// DefaultWorkspaceTitle is the title of a freshly vivified workspace.
const DefaultWorkspaceTitle = "My Workspace"

// Validate checks that the workspace is well-formed for storage.
func (w *Workspace) Validate() error {
	if !ValidTheme(w.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrValidation, w.Theme)
	}
	return nil
}

// Apply merges a patch over the workspace. ClientID is immutable.
func (w *Workspace) Apply(p Patch) error {
	for field, v := range p {
		var err error
		switch field {
		case "title":
			w.Title, err = patchString(field, v)
		case "theme":
			var s string
			if s, err = patchString(field, v); err == nil {
				if !ValidTheme(s) {
					return fmt.Errorf("%w: unknown theme %q", ErrValidation, s)
				}
				w.Theme = s
			}
		case "darkmode":
			w.Darkmode, err = patchBool(field, v)
		case "lastNoteId":
			w.LastNoteID, err = patchNullableString(field, v)
		case "clientId":
			return fmt.Errorf("%w: field %q is immutable", ErrValidation, field)
		default:
			return fmt.Errorf("%w: unknown workspace field %q", ErrValidation, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Package theme resolves, persists and applies the site's light/dark theme.
//
// The controller never talks to the browser directly. It drives a Document,
// a Storage and a Preference, so every fallible step returns an explicit
// value the controller can fall back from.
package theme

// Theme is the visual mode applied to the page
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the only key the controller reads or writes
const StorageKey = "theme"

// Parse accepts exactly "light" or "dark"
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Valid reports whether t is one of the two themes
func (t Theme) Valid() bool {
	_, ok := Parse(string(t))
	return ok
}

// Opposite returns the other theme. There is no third state.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }

// Storage is a durable key-value store such as window.localStorage
type Storage interface {
	// Get returns ok=false when the key is absent
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ClassList is the class attribute of a DOM element
type ClassList interface {
	Add(name string) error
	Remove(names ...string) error
	Contains(name string) (bool, error)
}

// Document exposes the root element and, when it exists, the body
type Document interface {
	Root() ClassList
	Body() (ClassList, bool)
}

// Preference reports the system color scheme
type Preference interface {
	PrefersLight() (bool, error)
}

// Event is the activation event delivered to a control
type Event interface {
	PreventDefault()
	StopImmediatePropagation()
}

// Control is an element that triggers theme changes when activated
type Control interface {
	// Installed reports whether a handler was already bound to the element
	Installed() bool
	MarkInstalled()
	OnActivate(func(Event))
}

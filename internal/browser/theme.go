//go:build js && wasm

package browser

import (
	"syscall/js"

	"delizur.dev/internal/theme"
)

const (
	// ToggleID is the id of the theme toggle button
	ToggleID = "theme"
	// SetterAttr marks buttons that apply a fixed theme, e.g. data-theme-set="light"
	SetterAttr = "data-theme-set"

	toggleMarker = "__themeToggleInstalled"
	setterMarker = "__themeSetterInstalled"
)

type classList struct {
	el js.Value
}

func (c classList) list() (js.Value, error) { return get(c.el, "classList") }

func (c classList) Add(name string) error {
	l, err := c.list()
	if err != nil {
		return err
	}
	_, err = call(l, "add", name)
	return err
}

func (c classList) Remove(names ...string) error {
	l, err := c.list()
	if err != nil {
		return err
	}
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	_, err = call(l, "remove", args...)
	return err
}

func (c classList) Contains(name string) (bool, error) {
	l, err := c.list()
	if err != nil {
		return false, err
	}
	v, err := call(l, "contains", name)
	if err != nil {
		return false, err
	}
	return v.Truthy(), nil
}

// Document exposes <html> and <body> class lists
type Document struct{}

// NewDocument returns the live document
func NewDocument() Document { return Document{} }

// Root returns the class list of the document element
func (Document) Root() theme.ClassList {
	el, _ := get(document(), "documentElement")
	return classList{el: el}
}

// Body returns the class list of <body>, if the body exists
func (Document) Body() (theme.ClassList, bool) {
	el, err := get(document(), "body")
	if err != nil || missing(el) {
		return nil, false
	}
	return classList{el: el}, true
}

// LocalStorage is window.localStorage. Restricted contexts throw on access,
// which surfaces as an error from every method.
type LocalStorage struct{}

// NewLocalStorage returns the page's localStorage
func NewLocalStorage() LocalStorage { return LocalStorage{} }

func (LocalStorage) store() (js.Value, error) {
	s, err := get(window(), "localStorage")
	if err == nil && missing(s) {
		err = errMissing
	}
	return s, err
}

// Get reads key
func (l LocalStorage) Get(key string) (string, bool, error) {
	s, err := l.store()
	if err != nil {
		return "", false, err
	}
	v, err := call(s, "getItem", key)
	if err != nil {
		return "", false, err
	}
	if missing(v) {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set writes key
func (l LocalStorage) Set(key, value string) error {
	s, err := l.store()
	if err != nil {
		return err
	}
	_, err = call(s, "setItem", key, value)
	return err
}

// ColorScheme evaluates the prefers-color-scheme media query
type ColorScheme struct{}

// NewColorScheme returns the system color scheme source
func NewColorScheme() ColorScheme { return ColorScheme{} }

// PrefersLight reports whether "(prefers-color-scheme: light)" matches
func (ColorScheme) PrefersLight() (bool, error) {
	mq, err := call(window(), "matchMedia", "(prefers-color-scheme: light)")
	if err != nil {
		return false, err
	}
	matches, err := get(mq, "matches")
	if err != nil {
		return false, err
	}
	return matches.Truthy(), nil
}

type event struct {
	v js.Value
}

func (e event) PreventDefault()           { _, _ = call(e.v, "preventDefault") }
func (e event) StopImmediatePropagation() { _, _ = call(e.v, "stopImmediatePropagation") }

// control is a clickable element. The toggle listens in the capture phase
// so it can stop page-level handlers on the same element; setters listen
// in the bubble phase like an inline onclick. Each kind has its own marker,
// so one element can carry both.
type control struct {
	el      js.Value
	marker  string
	capture bool
}

func (c control) Installed() bool {
	v, err := get(c.el, c.marker)
	return err == nil && v.Truthy()
}

func (c control) MarkInstalled() {
	defer func() { _ = recover() }()
	c.el.Set(c.marker, true)
}

func (c control) OnActivate(fn func(theme.Event)) {
	_ = listen(c.el, "click", c.capture, func(ev js.Value) { fn(event{v: ev}) })
}

// ToggleControl returns the theme toggle button, if the page has one
func ToggleControl() (theme.Control, bool) {
	el, err := call(document(), "getElementById", ToggleID)
	if err != nil || missing(el) {
		return nil, false
	}
	return control{el: el, marker: toggleMarker, capture: true}, true
}

// Setter is a button that applies a fixed theme
type Setter struct {
	Control theme.Control
	Theme   theme.Theme
}

// Setters returns the elements carrying SetterAttr with a valid theme
func Setters() []Setter {
	nodes, err := call(document(), "querySelectorAll", "["+SetterAttr+"]")
	if err != nil {
		return nil
	}
	var out []Setter
	for _, el := range elements(nodes) {
		attr, err := call(el, "getAttribute", SetterAttr)
		if err != nil || missing(attr) {
			continue
		}
		t, ok := theme.Parse(attr.String())
		if !ok {
			continue
		}
		out = append(out, Setter{Control: control{el: el, marker: setterMarker}, Theme: t})
	}
	return out
}

func elements(list js.Value) []js.Value {
	n, err := get(list, "length")
	if err != nil || n.Type() != js.TypeNumber {
		return nil
	}
	out := make([]js.Value, 0, n.Int())
	for i := 0; i < n.Int(); i++ {
		el, err := call(list, "item", i)
		if err != nil || missing(el) {
			continue
		}
		out = append(out, el)
	}
	return out
}

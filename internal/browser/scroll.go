//go:build js && wasm

package browser

import (
	"syscall/js"

	"delizur.dev/internal/scroll"
)

type header struct {
	el js.Value
}

func (h header) BoundingHeight() (float64, error) {
	rect, err := call(h.el, "getBoundingClientRect")
	if err != nil {
		return 0, err
	}
	v, err := get(rect, "height")
	if err != nil {
		return 0, err
	}
	return number(v), nil
}

func (h header) OffsetHeight() (float64, error) {
	v, err := get(h.el, "offsetHeight")
	if err != nil {
		return 0, err
	}
	return number(v), nil
}

func number(v js.Value) float64 {
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

type style struct {
	el js.Value
}

func (s style) SetProperty(name, value string) error {
	decl, err := get(s.el, "style")
	if err != nil {
		return err
	}
	_, err = call(decl, "setProperty", name, value)
	return err
}

type anchor struct {
	el js.Value
}

func (a anchor) Href() string {
	v, err := call(a.el, "getAttribute", "href")
	if err != nil || missing(v) {
		return ""
	}
	return v.String()
}

func (a anchor) OnClick(fn func(scroll.Event)) {
	_ = listen(a.el, "click", false, func(ev js.Value) { fn(event{v: ev}) })
}

// Page is the document side of the scroll coordinator
type Page struct{}

// NewPage returns the live page
func NewPage() Page { return Page{} }

// Header returns the first <header> element
func (Page) Header() (scroll.Header, bool) {
	el, err := call(document(), "querySelector", "header")
	if err != nil || missing(el) {
		return nil, false
	}
	return header{el: el}, true
}

// RootStyle returns the document element's style
func (Page) RootStyle() scroll.Style {
	el, _ := get(document(), "documentElement")
	return style{el: el}
}

// BodyStyle returns the body's style, if the body exists
func (Page) BodyStyle() (scroll.Style, bool) {
	el, err := get(document(), "body")
	if err != nil || missing(el) {
		return nil, false
	}
	return style{el: el}, true
}

// ElementTop returns the viewport-relative top of the element with id
func (Page) ElementTop(id string) (float64, bool) {
	el, err := call(document(), "getElementById", id)
	if err != nil || missing(el) {
		return 0, false
	}
	rect, err := call(el, "getBoundingClientRect")
	if err != nil {
		return 0, false
	}
	top, err := get(rect, "top")
	if err != nil {
		return 0, false
	}
	return number(top), true
}

// Anchors returns every link whose href starts with "#"
func (Page) Anchors() []scroll.Anchor {
	nodes, err := call(document(), "querySelectorAll", `a[href^="#"]`)
	if err != nil {
		return nil
	}
	els := elements(nodes)
	out := make([]scroll.Anchor, 0, len(els))
	for _, el := range els {
		out = append(out, anchor{el: el})
	}
	return out
}

// Window is the viewport, location and history of the page
type Window struct{}

// NewWindow returns the live window
func NewWindow() Window { return Window{} }

// Hash returns location.hash including the leading "#"
func (Window) Hash() string {
	loc, err := get(window(), "location")
	if err != nil {
		return ""
	}
	h, err := get(loc, "hash")
	if err != nil || h.Type() != js.TypeString {
		return ""
	}
	return h.String()
}

// ScrollY returns the vertical scroll position
func (Window) ScrollY() float64 {
	v, err := get(window(), "scrollY")
	if err != nil {
		return 0
	}
	return number(v)
}

// ScrollTo jumps to top without animation
func (Window) ScrollTo(top int) {
	_, _ = call(window(), "scrollTo", map[string]any{"top": top, "left": 0})
}

// PushHash records fragment in history without navigating
func (Window) PushHash(fragment string) error {
	hist, err := get(window(), "history")
	if err != nil {
		return err
	}
	_, err = call(hist, "pushState", js.Null(), "", fragment)
	return err
}

// OnResize registers fn for window resize
func (Window) OnResize(fn func()) {
	_ = listen(window(), "resize", false, func(js.Value) { fn() })
}

// OnOrientationChange registers fn for device rotation
func (Window) OnOrientationChange(fn func()) {
	_ = listen(window(), "orientationchange", false, func(js.Value) { fn() })
}

// ObserveResize watches h with a ResizeObserver when the browser has one
func (Window) ObserveResize(h scroll.Header, fn func()) (ok bool) {
	hd, isHeader := h.(header)
	if !isHeader {
		return false
	}
	ctor, err := get(window(), "ResizeObserver")
	if err != nil || missing(ctor) {
		return false
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	defer func() {
		if r := recover(); r != nil {
			cb.Release()
			ok = false
		}
	}()
	observer := ctor.New(cb)
	if _, err := call(observer, "observe", hd.el); err != nil {
		cb.Release()
		return false
	}
	return true
}

// Package scroll keeps anchor navigation clear of the fixed site header.
package scroll

import "time"

// Header is the fixed page header being measured
type Header interface {
	// BoundingHeight is the rendered bounding-box height
	BoundingHeight() (float64, error)
	// OffsetHeight is the layout height, used when the bounding box is unavailable
	OffsetHeight() (float64, error)
}

// Style is an element's inline style declaration
type Style interface {
	SetProperty(name, value string) error
}

// Event is a click delivered to an anchor
type Event interface {
	PreventDefault()
}

// Anchor is an in-page link
type Anchor interface {
	Href() string
	OnClick(func(Event))
}

// Page is the document side of the browser
type Page interface {
	Header() (Header, bool)
	RootStyle() Style
	BodyStyle() (Style, bool)
	// ElementTop returns the viewport-relative top of the element with id
	ElementTop(id string) (float64, bool)
	// Anchors returns the links whose href starts with "#"
	Anchors() []Anchor
}

// Window is the viewport, location and history side of the browser
type Window interface {
	Hash() string
	ScrollY() float64
	ScrollTo(top int)
	PushHash(fragment string) error
	OnResize(func())
	OnOrientationChange(func())
	// ObserveResize calls fn whenever h changes size. It returns false when
	// no layout observer is available.
	ObserveResize(h Header, fn func()) bool
}

// Timer is a pending scheduled call
type Timer interface {
	Stop() bool
}

// Scheduler runs functions after a delay. A zero delay means the next turn.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ClockScheduler schedules on the runtime timer
type ClockScheduler struct{}

// AfterFunc calls fn in its own goroutine after d
func (ClockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

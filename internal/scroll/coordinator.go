package scroll

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"delizur.dev/internal/logging"
)

const (
	// Margin is the gap kept between the header and a scrolled-to target
	Margin = 6
	// PaddingProperty is the CSS custom property consumed by scroll-padding-top
	PaddingProperty = "--scroll-padding-top"

	ResizeDebounce   = 120 * time.Millisecond
	OrientationDelay = 120 * time.Millisecond
	// HashSettleDelay lets the browser's own anchor jump finish before correcting it
	HashSettleDelay = 50 * time.Millisecond
)

// Coordinator keeps the scroll padding in sync with the header height
// and corrects fragment navigation
type Coordinator struct {
	page   Page
	win    Window
	sched  Scheduler
	resize *Debouncer
	logger *zap.Logger
}

// NewCoordinator creates a Coordinator. A nil scheduler uses the runtime clock.
func NewCoordinator(page Page, win Window, sched Scheduler, logger *zap.Logger) *Coordinator {
	if sched == nil {
		sched = ClockScheduler{}
	}
	return &Coordinator{
		page:   page,
		win:    win,
		sched:  sched,
		resize: NewDebouncer(sched, ResizeDebounce),
		logger: logging.OrNop(logger).Named("scroll"),
	}
}

// HeaderHeight returns the rendered header height rounded up, or 0 when
// there is no header or it cannot be measured
func (c *Coordinator) HeaderHeight() int {
	h, ok := c.page.Header()
	if !ok || h == nil {
		return 0
	}
	return c.measure(h)
}

func (c *Coordinator) measure(h Header) int {
	if v, err := h.BoundingHeight(); err == nil && v > 0 {
		return int(math.Ceil(v))
	} else if err != nil {
		c.logger.Debug("bounding height", zap.Error(err))
	}
	if v, err := h.OffsetHeight(); err == nil && v > 0 {
		return int(math.Ceil(v))
	} else if err != nil {
		c.logger.Debug("offset height", zap.Error(err))
	}
	return 0
}

// RecomputeOffset publishes header height + Margin as PaddingProperty on
// the root and body elements. Without a header it does nothing.
func (c *Coordinator) RecomputeOffset() (int, bool) {
	h, ok := c.page.Header()
	if !ok || h == nil {
		return 0, false
	}
	offset := c.measure(h) + Margin
	value := strconv.Itoa(offset) + "px"

	if root := c.page.RootStyle(); root != nil {
		if err := root.SetProperty(PaddingProperty, value); err != nil {
			c.logger.Debug("set root scroll padding", zap.Error(err))
		}
	}
	if body, ok := c.page.BodyStyle(); ok && body != nil {
		if err := body.SetProperty(PaddingProperty, value); err != nil {
			c.logger.Debug("set body scroll padding", zap.Error(err))
		}
	}
	return offset, true
}

// AdjustScrollToHash scrolls the fragment target to just below the header.
// It returns the scroll position used, or false when there is no fragment
// or no matching element.
func (c *Coordinator) AdjustScrollToHash() (int, bool) {
	id := strings.TrimPrefix(c.win.Hash(), "#")
	if id == "" {
		return 0, false
	}
	top, ok := c.page.ElementTop(id)
	if !ok {
		return 0, false
	}
	target := int(math.Floor(top + c.win.ScrollY() - float64(c.HeaderHeight()) - Margin))
	if target < 0 {
		target = 0
	}
	c.win.ScrollTo(target)
	return target, true
}

// InterceptAnchorClicks binds every "#" link present now so that clicking
// it updates history and scrolls with the header offset. Links added
// later are not covered. It returns the number of links bound.
func (c *Coordinator) InterceptAnchorClicks() int {
	n := 0
	for _, a := range c.page.Anchors() {
		if a == nil || !strings.HasPrefix(a.Href(), "#") {
			continue
		}
		a := a // per-iteration copy; go.mod targets 1.21 loop semantics
		a.OnClick(func(e Event) { c.follow(a, e) })
		n++
	}
	return n
}

func (c *Coordinator) follow(a Anchor, e Event) {
	href := a.Href()
	if !strings.HasPrefix(href, "#") {
		return
	}
	id := strings.TrimPrefix(href, "#")
	if _, ok := c.page.ElementTop(id); !ok {
		return
	}
	if e != nil {
		e.PreventDefault()
	}
	if err := c.win.PushHash("#" + id); err != nil {
		c.logger.Debug("push fragment", zap.String("id", id), zap.Error(err))
	}
	// Deferred so any native jump settles first.
	c.sched.AfterFunc(0, func() { c.AdjustScrollToHash() })
}

// Start publishes the offset and keeps it current across resizes,
// orientation changes and header size changes. It also schedules one
// correction of the initial fragment jump. Without a header nothing is
// bound and Start returns false.
func (c *Coordinator) Start() bool {
	h, ok := c.page.Header()
	if !ok || h == nil {
		return false
	}
	c.RecomputeOffset()
	c.sched.AfterFunc(HashSettleDelay, func() { c.AdjustScrollToHash() })

	c.win.OnResize(func() { c.resize.Trigger(c.recompute) })
	c.win.OnOrientationChange(func() { c.sched.AfterFunc(OrientationDelay, c.recompute) })
	if !c.win.ObserveResize(h, c.recompute) {
		c.logger.Debug("header resize observer unavailable")
	}
	return true
}

// Stop cancels a pending debounced recompute
func (c *Coordinator) Stop() {
	c.resize.Stop()
}

func (c *Coordinator) recompute() { c.RecomputeOffset() }

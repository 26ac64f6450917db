package theme

import (
	"go.uber.org/zap"

	"delizur.dev/internal/logging"
)

// Applied reports which steps of SetTheme took effect
type Applied struct {
	Theme     Theme
	Root      bool
	Body      bool
	Persisted bool
}

// Controller owns the persisted theme and the marker classes.
// All mutation goes through SetTheme.
type Controller struct {
	doc     Document
	storage Storage
	pref    Preference
	logger  *zap.Logger
}

// NewController creates a Controller. A nil storage falls back to an
// in-memory store and a nil preference reads as "prefers dark".
func NewController(doc Document, storage Storage, pref Preference, logger *zap.Logger) *Controller {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Controller{
		doc:     doc,
		storage: storage,
		pref:    pref,
		logger:  logging.OrNop(logger).Named("theme"),
	}
}

// SetTheme applies t to the root and body elements, then persists it.
// Each step runs even if an earlier one failed; failures are only reported
// through the returned Applied.
func (c *Controller) SetTheme(t Theme) Applied {
	applied := Applied{Theme: t}
	if !t.Valid() {
		c.logger.Debug("ignoring unknown theme", zap.String("theme", string(t)))
		return applied
	}

	applied.Root = c.mark("root", c.doc.Root(), t)
	if body, ok := c.doc.Body(); ok && body != nil {
		applied.Body = c.mark("body", body, t)
	}

	if err := c.storage.Set(StorageKey, string(t)); err != nil {
		c.logger.Debug("theme not persisted", zap.Error(err))
	} else {
		applied.Persisted = true
	}

	c.logger.Debug("set theme",
		zap.Stringer("theme", t),
		zap.Bool("root", applied.Root),
		zap.Bool("body", applied.Body),
		zap.Bool("persisted", applied.Persisted),
	)
	return applied
}

func (c *Controller) mark(name string, classes ClassList, t Theme) bool {
	if classes == nil {
		return false
	}
	ok := true
	if err := classes.Remove(string(Light), string(Dark)); err != nil {
		c.logger.Debug("remove marker classes", zap.String("element", name), zap.Error(err))
		ok = false
	}
	if err := classes.Add(string(t)); err != nil {
		c.logger.Debug("add marker class", zap.String("element", name), zap.Error(err))
		ok = false
	}
	return ok
}

// Stored returns the persisted theme. A missing key, a storage failure and
// an unrecognised value all read as unset.
func (c *Controller) Stored() (Theme, bool) {
	v, ok, err := c.storage.Get(StorageKey)
	if err != nil {
		c.logger.Debug("read stored theme", zap.Error(err))
		return "", false
	}
	if !ok {
		return "", false
	}
	return Parse(v)
}

// SystemDefault maps the color-scheme preference to a theme.
// When the preference cannot be evaluated the default is dark.
func (c *Controller) SystemDefault() Theme {
	if c.pref == nil {
		return Dark
	}
	light, err := c.pref.PrefersLight()
	if err != nil {
		c.logger.Debug("evaluate color scheme preference", zap.Error(err))
		return Dark
	}
	if light {
		return Light
	}
	return Dark
}

// Init resolves the initial theme (stored, else system) and applies it
func (c *Controller) Init() Theme {
	t, ok := c.Stored()
	if !ok {
		t = c.SystemDefault()
	}
	c.SetTheme(t)
	return t
}

// Current determines the active theme: the stored value, then the root
// marker class, then the system preference. DOM and storage may disagree
// when an earlier write failed; the stored value wins.
func (c *Controller) Current() Theme {
	if t, ok := c.Stored(); ok {
		return t
	}
	root := c.doc.Root()
	if root != nil {
		for _, t := range []Theme{Light, Dark} {
			has, err := root.Contains(string(t))
			if err != nil {
				c.logger.Debug("inspect root classes", zap.Error(err))
				break
			}
			if has {
				return t
			}
		}
	}
	return c.SystemDefault()
}

// Toggle switches to the opposite of the current theme
func (c *Controller) Toggle() Theme {
	next := c.Current().Opposite()
	c.SetTheme(next)
	return next
}

// BindToggle attaches the toggle handler to ctl once. It returns false when
// there is no control or a handler is already installed.
func (c *Controller) BindToggle(ctl Control) bool {
	return c.bind(ctl, true, func() { c.Toggle() })
}

// BindSetter makes ctl apply t when activated. Unlike the toggle it leaves
// the event alone, so other handlers and the default action still run.
func (c *Controller) BindSetter(ctl Control, t Theme) bool {
	if !t.Valid() {
		return false
	}
	return c.bind(ctl, false, func() { c.SetTheme(t) })
}

func (c *Controller) bind(ctl Control, exclusive bool, action func()) bool {
	if ctl == nil || ctl.Installed() {
		return false
	}
	ctl.MarkInstalled()
	ctl.OnActivate(func(e Event) {
		if exclusive && e != nil {
			e.PreventDefault()
			e.StopImmediatePropagation()
		}
		action()
	})
	return true
}

// Start binds the toggle control before resolving the initial theme, so a
// click can never observe a half-initialised state
func (c *Controller) Start(ctl Control) Theme {
	c.BindToggle(ctl)
	return c.Init()
}

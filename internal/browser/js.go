//go:build js && wasm

// Package browser implements the theme and scroll ports on top of the DOM.
// Every call into JavaScript is guarded: exceptions come back as errors and
// missing objects come back as ok=false.
package browser

import (
	"errors"
	"fmt"
	"syscall/js"
)

var errMissing = errors.New("browser: value is null or undefined")

func missing(v js.Value) bool {
	return v.IsUndefined() || v.IsNull()
}

// get reads prop from v, turning a thrown exception into an error
func get(v js.Value, prop string) (res js.Value, err error) {
	if missing(v) {
		return js.Undefined(), errMissing
	}
	defer func() {
		if r := recover(); r != nil {
			res, err = js.Undefined(), fmt.Errorf("browser: get %s: %v", prop, r)
		}
	}()
	return v.Get(prop), nil
}

// call invokes method on v, turning a thrown exception into an error
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	if missing(v) {
		return js.Undefined(), errMissing
	}
	defer func() {
		if r := recover(); r != nil {
			res, err = js.Undefined(), fmt.Errorf("browser: %s: %v", method, r)
		}
	}()
	return v.Call(method, args...), nil
}

// listen registers fn for event on target. The js.Func lives as long as the page.
func listen(target js.Value, event string, capture bool, fn func(js.Value)) error {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	_, err := call(target, "addEventListener", event, cb, capture)
	if err != nil {
		cb.Release()
	}
	return err
}

func document() js.Value { return js.Global().Get("document") }

func window() js.Value { return js.Global() }

// OnReady runs fn once the document is interactive
func OnReady(fn func()) {
	state, err := get(document(), "readyState")
	if err == nil && state.Type() == js.TypeString && state.String() != "loading" {
		fn()
		return
	}
	var once js.Func
	once = js.FuncOf(func(this js.Value, args []js.Value) any {
		once.Release()
		fn()
		return nil
	})
	if _, err := call(document(), "addEventListener", "DOMContentLoaded", once); err != nil {
		once.Release()
		fn()
	}
}

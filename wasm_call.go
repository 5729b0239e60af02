package main

import (
	"fmt"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

var errMissingArgument = errors.New("missing argument")

// guard runs one js call. Errors and panics both come back as {error}, so a bad call
// never takes the go runtime down with it.
func guard(name string, fn func() (any, error)) (res map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("call", name).Debugf("recovered from panic: %v", r)
			res = map[string]any{"error": fmt.Sprintf("%s: panic: %v", name, r)}
		}
	}()

	v, err := fn()
	if err != nil {
		log.WithError(err).WithField("call", name).Debug("wasm call failed")
		return map[string]any{"error": fmt.Sprintf("%s: %v", name, err)}
	}
	return map[string]any{"value": v}
}

// Copyright (c) 2025, recipelog authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package handler

import (
	"fmt"
	"sync"

	"github.com/modpack-tools/recipelog/pkg/errors"
	"github.com/modpack-tools/recipelog/pkg/record"
)

// Registry is the fixed, statically enumerable set of all handlers. It is
// built once at startup and never mutated afterwards; enumeration order is
// registration order and defines the dispatcher's deterministic tie-break.
type Registry struct {
	handlers []*Handler
	byFormat map[record.Format]*Handler
}

// NewRegistry builds a registry from the given handlers, validating each
// handler's identity. A handler missing its name, prefix, format, or layouts
// fails construction before any segment is processed.
func NewRegistry(handlers ...*Handler) (*Registry, error) {
	r := &Registry{
		handlers: make([]*Handler, 0, len(handlers)),
		byFormat: make(map[record.Format]*Handler, len(handlers)),
	}
	for i, h := range handlers {
		if h == nil {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("handler %d is nil", i))
		}
		if h.Name == "" || h.Prefix == "" || h.Format == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("handler %d is missing required identity", i),
				map[string]any{"name": h.Name, "prefix": h.Prefix, "format": h.Format.String()})
		}
		if len(h.Layouts) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("handler %s declares no layouts", h.Name))
		}
		if _, dup := r.byFormat[h.Format]; dup {
			return nil, errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("handler %s reuses format %s", h.Name, h.Format))
		}
		r.handlers = append(r.handlers, h)
		r.byFormat[h.Format] = h
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on construction error. Intended
// for the statically assembled built-in set.
func MustNewRegistry(handlers ...*Handler) *Registry {
	r, err := NewRegistry(handlers...)
	if err != nil {
		panic(err)
	}
	return r
}

// Handlers returns the registered handlers in stable registration order.
// The returned slice is a copy; the registry itself is immutable.
func (r *Registry) Handlers() []*Handler {
	out := make([]*Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// ByFormat returns the handler owning the given format tag, nil if none.
func (r *Registry) ByFormat(f record.Format) *Handler {
	return r.byFormat[f]
}

// RecipeTypes returns the bracketed recipe-type names of all typed handlers,
// in registration order. Untyped built-in handlers are skipped.
func (r *Registry) RecipeTypes() []string {
	out := make([]string, 0, len(r.handlers))
	for _, h := range r.handlers {
		if rt := h.RecipeType(); rt != "" {
			out = append(out, rt)
		}
	}
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry of all built-in handlers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNewRegistry(Builtin()...)
	})
	return defaultRegistry
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Application and Component structures, the parsed form
// of an application definition.
//
// Why a component tree?
//
// An application is assembled from components that may themselves be built
// from smaller components. Each level of the tree owns its own namespace, so a
// parameter named "image" can hold a different value for every component while
// values declared at a higher level remain visible to the levels below. The
// tree shape is what the configuration engine walks when resolving params.
package component

import (
	"github.com/specialistvlad/answergrid/internal/param"
)

// Application is the root of a parsed definition.
type Application struct {
	// Name is taken from the `application` block label.
	Name string

	// Description is an optional human readable summary.
	Description string

	// Dir is the directory the definition was loaded from. Artifact paths are
	// relative to it.
	Dir string

	// Params are the application-wide params, resolved in the Global
	// namespace.
	Params []param.Param

	// Components are the top-level components in declaration order.
	Components []*Component
}

// Component is a single deployable part of an application.
type Component struct {
	// Name is taken from the `component` block label. It becomes the last
	// segment of the component's namespace.
	Name string

	// Description is an optional human readable summary.
	Description string

	// Dir is the directory of the definition that declared the component.
	Dir string

	// Params are the component's declared inputs in declaration order.
	Params []param.Param

	// Artifacts maps a provider name to the template files rendered for it.
	// Paths are relative to Dir.
	Artifacts map[string][]string

	// Components are nested components in declaration order.
	Components []*Component

	// Source, when set, is the absolute directory of an external application
	// whose components are mounted under this one.
	Source string
}

// IsExternal reports whether the component mounts another application.
func (c *Component) IsExternal() bool {
	return c.Source != ""
}

// ArtifactsFor returns the artifact files declared for provider.
func (c *Component) ArtifactsFor(provider string) []string {
	return c.Artifacts[provider]
}

// Walk calls fn for every component in depth-first, declaration order. The
// path holds the names from the top-level component down to the visited one.
// Walking stops at the first error.
func (a *Application) Walk(fn func(path []string, c *Component) error) error {
	return walk(nil, a.Components, fn)
}

func walk(prefix []string, components []*Component, fn func([]string, *Component) error) error {
	for _, c := range components {
		path := append(append([]string(nil), prefix...), c.Name)
		if err := fn(path, c); err != nil {
			return err
		}
		if err := walk(path, c.Components, fn); err != nil {
			return err
		}
	}
	return nil
}

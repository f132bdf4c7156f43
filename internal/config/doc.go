// Package config implements namespace-scoped configuration resolution for the
// components of an application.
//
// A Config is one component's view over three shared stores: answers supplied
// by the user, data computed or collected while resolving, and command-line
// overrides. Views for child components are produced with Clone and share the
// same store handles, so a value written by any component is visible to every
// other component that looks it up in the same namespace.
//
// Lookups follow a fixed precedence chain (see Config.Get): data before
// answers, and within each store the component's own namespace, then its
// parent namespace, then the Global namespace. Empty values never terminate
// the chain.
//
// Load fills in every declared parameter of a component, falling back to the
// declared default or to an injected Prompter that asks the user.
//
// Config values are not safe for concurrent use. The stores they share are.
package config

// Package component defines the application definition model: an application
// with its global params and a tree of components, each declaring params,
// per-provider artifacts and nested or external child components.
//
// Definitions are written in HCL and read by LoadApplication.
package component

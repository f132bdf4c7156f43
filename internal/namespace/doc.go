// internal/namespace/doc.go

/*
Package namespace provides the hierarchical naming scheme used to scope
configuration values to the components of an application.

A namespace is a dot-separated sequence of component names, e.g.,
`web.db.replica`. The distinguished Global namespace sits above every
component and is also the section name used for application-wide values in
answers files.

Two levels of strictness are offered. Split, Normalize and Join never fail and
accept any string, because they run on every configuration lookup. Parse
enforces the segment schema and is applied once, when component names are read
from an application definition.
*/
package namespace

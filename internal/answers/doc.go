// Package answers reads and writes answers files: the per-namespace values a
// user supplies up front instead of answering prompts, and the resolved values
// persisted after a run.
//
// Every format maps to one section per namespace holding param name → value:
//
//	[general]
//	provider = kubernetes
//
//	[web]
//	image = nginx
//
// The supported formats are ini (the default, stored as answers.conf), json
// (comments and trailing commas allowed), yaml, toml and hcl.
package answers

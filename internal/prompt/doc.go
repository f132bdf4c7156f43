// Package prompt implements the capabilities the configuration engine uses to
// ask for parameters that have neither an answer nor a usable default.
//
// Three implementations are provided:
//   - Terminal asks a human on the controlling terminal.
//   - Env reads values from environment variables for unattended runs.
//   - Static answers from a fixed map, mainly for automation and tests.
//
// All of them satisfy config.Prompter.
package prompt

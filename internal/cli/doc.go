// Package cli implements the interactive terminal front end of cipherhunt.
//
// App owns the explicit *services.Session for the run and dispatches REPL
// commands to the services. Every storage-touching command runs under a
// per-operation timeout (config.OpTimeout); interactive prompts do not.
package cli

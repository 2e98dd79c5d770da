// Package cli provides the interactive gophchat command-line client.
//
// It wires configuration, session storage (SQLite or Redis), the HTTP auth
// client and the signup/auth services, then runs a REPL:
//
//	signup | register   create an account and sign in
//	login               sign in to an existing account
//	logout              end the current session
//	whoami              show the signed-in user
//	help                list commands
//	exit | quit         leave the program
//
// A session persisted by an earlier run is restored on start unless its
// token has expired. The REPL is started via App.Run(ctx), which blocks until
// the user exits or ctx is canceled.
package cli

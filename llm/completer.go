// Package llm wraps the generative-text collaborator behind a single narrow
// interface so handlers never know whether a real upstream or the static
// advisor is wired in.
package llm

import "context"

// Completer produces one assistant reply for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

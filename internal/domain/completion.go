package domain

import "context"

// CompletionStream is a pull-based sequence of incremental completion chunks.
// Recv returns the next raw text chunk; it returns io.EOF after the final
// chunk and any other error is terminal. Chunks may split multi-byte
// characters at arbitrary boundaries.
type CompletionStream interface {
	Recv() ([]byte, error)
	Close() error
}

// Completer starts a streaming completion for an assembled message sequence.
type Completer interface {
	StreamCompletion(ctx context.Context, msgs []Turn) (CompletionStream, error)
}

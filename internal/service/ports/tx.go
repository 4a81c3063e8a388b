package ports

import "context"

// Transactor runs fn in one transaction. Repositories called with the ctx passed to fn
// join that transaction; an error returned by fn rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

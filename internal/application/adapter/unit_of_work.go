// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Repositories groups the repositories bound to a single store transaction.
type Repositories struct {
	Categories   CategoryRepository
	Transactions TransactionRepository
	Goals        GoalRepository
}

// UnitOfWork runs a function inside one store transaction.
// Returning an error from fn rolls back every write made through repos.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

package store

import "context"

// RunInChat wraps ctx with chat id and calls fn inside the provided TxRunner
func RunInChat(ctx context.Context, tx TxRunner, chatID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithChat(ctx, chatID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

// RunAsSuperadmin wraps ctx as superadmin and calls fn inside the provided TxRunner
func RunAsSuperadmin(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithSuperadmin(ctx)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

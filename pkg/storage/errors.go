package storage

import "seoeval/pkg/serrors"

// Transaction misuse. Both surface as internal errors through the HTTP layer.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = serrors.NewKind("ALREADY_IN_TX")
	// ErrNotInTx is returned by Commit and Rollback outside of a transaction.
	ErrNotInTx = serrors.NewKind("NOT_IN_TX")
)

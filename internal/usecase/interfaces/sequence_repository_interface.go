package interfaces

import "context"

// Sequence names, one strictly-increasing counter per document type.
const (
	SequenceEstimates = "estimates"
	SequenceInvoices  = "invoices"
)

// IDocumentSequenceRepository issues the next value of a named counter.
//
// Next must be atomic: two concurrent callers never receive the same value for
// the same counter. When called inside a transaction the increment joins it,
// so a rolled-back document creation never leaves a number attached to a row.
type IDocumentSequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

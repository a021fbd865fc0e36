package usecase

import (
	"context"
	"strconv"

	"bizops/internal/usecase/interfaces"
)

const (
	estimateNumberPrefix = "EST-"
	invoiceNumberPrefix  = "INV-"
)

// INumberingService issues unique, human-readable document numbers.
//
// Each document type draws from its own strictly-increasing counter; a number
// is never reused and never handed to two callers. Failure to obtain a number
// must block document creation entirely.

type INumberingService interface {
	NextEstimateNumber(ctx context.Context) (string, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
}

type NumberingService struct {
	sequences interfaces.IDocumentSequenceRepository
}

var _ INumberingService = (*NumberingService)(nil)

func NewNumberingService(sequences interfaces.IDocumentSequenceRepository) *NumberingService {
	return &NumberingService{sequences: sequences}
}

func (s *NumberingService) NextEstimateNumber(ctx context.Context) (string, error) {
	return s.next(ctx, estimateNumberPrefix, interfaces.SequenceEstimates)
}

func (s *NumberingService) NextInvoiceNumber(ctx context.Context) (string, error) {
	return s.next(ctx, invoiceNumberPrefix, interfaces.SequenceInvoices)
}

func (s *NumberingService) next(ctx context.Context, prefix, sequence string) (string, error) {
	v, err := s.sequences.Next(ctx, sequence)
	if err != nil {
		return "", err
	}
	// Raw counter value, no zero-padding.
	return prefix + strconv.FormatInt(v, 10), nil
}

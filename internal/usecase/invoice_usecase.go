package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bizops/internal/domain/entities"
	"bizops/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrEstimateNotApproved = errors.New("only approved estimates can be converted to invoices")
)

const defaultDueInDays = 30

// ConversionResult is what the caller gets back from a successful conversion.
type ConversionResult struct {
	InvoiceID     string
	InvoiceNumber string
}

// IInvoiceUseCase exposes invoice operations to the HTTP layer.
//
// ConvertFromEstimate is the one multi-step workflow in this service: it turns
// an approved estimate into a draft invoice, copying totals and line items
// verbatim and issuing a fresh invoice number, all inside one transaction.

type IInvoiceUseCase interface {
	ConvertFromEstimate(ctx context.Context, estimateID, actor string) (ConversionResult, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	estimateRepo interfaces.IEstimateRepository
	activity     interfaces.IActivityRepository
	numbering    INumberingService
	tx           interfaces.ITransactionManager
	dueInDays    int
	log          *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	estimateRepo interfaces.IEstimateRepository,
	activity interfaces.IActivityRepository,
	numbering INumberingService,
	tx interfaces.ITransactionManager,
	dueInDays int,
	log *zap.Logger,
) *InvoiceUseCase {
	if dueInDays <= 0 {
		dueInDays = defaultDueInDays
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceUseCase{
		repo:         repo,
		estimateRepo: estimateRepo,
		activity:     activity,
		numbering:    numbering,
		tx:           tx,
		dueInDays:    dueInDays,
		log:          log,
	}
}

func (u *InvoiceUseCase) ConvertFromEstimate(ctx context.Context, estimateID, actor string) (ConversionResult, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return ConversionResult{}, ErrInvalidEstimateID
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = "system"
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		u.log.Error("conversion: loading estimate failed",
			zap.String("estimate_id", estimateID), zap.Error(err))
		return ConversionResult{}, err
	}
	if est.ID == "" {
		return ConversionResult{}, ErrEstimateNotFound
	}
	// Strict equality: sent/draft estimates cannot be converted even though
	// they might later become approved.
	if est.Status != entities.EstimateStatusApproved {
		u.log.Warn("conversion rejected: estimate not approved",
			zap.String("estimate_id", est.ID), zap.String("status", string(est.Status)))
		return ConversionResult{}, ErrEstimateNotApproved
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:          uuid.NewString(),
		EstimateID:  est.ID,
		ClientID:    est.ClientID,
		ProjectID:   est.ProjectID,
		Title:       est.Title,
		Description: est.Description,
		Status:      entities.InvoiceStatusDraft,
		LineItems:   copyLineItems(est.LineItems),
		TaxRate:     est.TaxRate,
		Subtotal:    est.Subtotal,
		TaxAmount:   est.TaxAmount,
		Total:       est.Total,
		DueDate:     now.AddDate(0, 0, u.dueInDays),
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created entities.Invoice
	err = u.tx.Do(ctx, func(ctx context.Context) error {
		number, err := u.numbering.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number

		created, err = u.repo.Create(ctx, inv)
		if err != nil {
			return err
		}

		return u.activity.Append(ctx, newActivityEntry(actor,
			entities.ActivityEntityInvoice, created.ID, entities.ActivityActionCreated,
			fmt.Sprintf("Invoice %s created from estimate %s", created.InvoiceNumber, est.EstimateNumber),
			map[string]any{
				"invoice_number":  created.InvoiceNumber,
				"estimate_id":     est.ID,
				"estimate_number": est.EstimateNumber,
			},
		))
	})
	if err != nil {
		u.log.Error("conversion failed, rolled back",
			zap.String("estimate_id", est.ID), zap.Error(err))
		return ConversionResult{}, err
	}

	u.log.Info("estimate converted to invoice",
		zap.String("estimate_id", est.ID),
		zap.String("invoice_id", created.ID),
		zap.String("invoice_number", created.InvoiceNumber))
	return ConversionResult{InvoiceID: created.ID, InvoiceNumber: created.InvoiceNumber}, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Invoice, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

// copyLineItems duplicates rows for the invoice, preserving description,
// quantity, unit price, the already-computed line total and sort order.
// Totals are copied on the invoice itself, not recalculated.
func copyLineItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			ID:          uuid.NewString(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			SortOrder:   it.SortOrder,
		}
	}
	return out
}

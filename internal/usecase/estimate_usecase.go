package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bizops/internal/domain/entities"
	"bizops/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidTitle      = errors.New("title is required")
	ErrNoLineItems       = errors.New("estimate requires at least one line item")
	ErrInvalidLineItem   = errors.New("invalid line item")
	ErrInvalidTaxRate    = errors.New("tax rate must be between 0 and 1")
	ErrInvalidStatus     = errors.New("invalid estimate status")
	ErrEstimateLocked    = errors.New("cannot edit approved/rejected/expired estimates")
)

// LineItemInput is the caller-facing shape of one priced row. IDs, line totals
// and sort order are assigned here, never by the caller.
type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

type CreateEstimateCommand struct {
	ClientID    string
	ProjectID   string
	Title       string
	Description string
	LineItems   []LineItemInput
	TaxRate     *decimal.Decimal
	ValidUntil  *time.Time
	CreatedBy   string
}

// EstimatePatch is a partial update. Nil fields are left untouched; a nil
// LineItems slice keeps the existing rows, a non-nil one replaces them all.
//
// Setting Status is the lifecycle escape hatch: a patch that carries a status
// change is accepted regardless of the current status, while a content-only
// patch is rejected once the estimate left draft/sent.
type EstimatePatch struct {
	Title       *string
	Description *string
	LineItems   []LineItemInput
	TaxRate     *decimal.Decimal
	ValidUntil  *time.Time
	Status      *entities.EstimateStatus
}

// IEstimateUseCase exposes estimate operations to the HTTP layer.

type IEstimateUseCase interface {
	Create(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error)
	Update(ctx context.Context, id string, patch EstimatePatch, actor string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	activity  interfaces.IActivityRepository
	numbering INumberingService
	tx        interfaces.ITransactionManager
	log       *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	activity interfaces.IActivityRepository,
	numbering INumberingService,
	tx interfaces.ITransactionManager,
	log *zap.Logger,
) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{repo: repo, activity: activity, numbering: numbering, tx: tx, log: log}
}

func (u *EstimateUseCase) Create(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	if clientID == "" {
		return entities.Estimate{}, ErrInvalidClientID
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return entities.Estimate{}, ErrInvalidTitle
	}
	if err := validateTaxRate(cmd.TaxRate); err != nil {
		return entities.Estimate{}, err
	}
	items, err := buildLineItems(cmd.LineItems)
	if err != nil {
		return entities.Estimate{}, err
	}

	actor := strings.TrimSpace(cmd.CreatedBy)
	if actor == "" {
		actor = "system"
	}

	now := time.Now().UTC()
	totals := CalculateTotals(items, cmd.TaxRate)
	e := entities.Estimate{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		ProjectID:   strings.TrimSpace(cmd.ProjectID),
		Title:       title,
		Description: cmd.Description,
		Status:      entities.EstimateStatusDraft,
		LineItems:   items,
		TaxRate:     cmd.TaxRate,
		Subtotal:    totals.Subtotal,
		TaxAmount:   totals.TaxAmount,
		Total:       totals.Total,
		ValidUntil:  cmd.ValidUntil,
		CreatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created entities.Estimate
	err = u.tx.Do(ctx, func(ctx context.Context) error {
		// Numbering failure aborts the whole creation: no estimate row may
		// ever exist without a number.
		number, err := u.numbering.NextEstimateNumber(ctx)
		if err != nil {
			return err
		}
		e.EstimateNumber = number

		created, err = u.repo.Create(ctx, e)
		if err != nil {
			return err
		}

		return u.activity.Append(ctx, newActivityEntry(actor,
			entities.ActivityEntityEstimate, created.ID, entities.ActivityActionCreated,
			fmt.Sprintf("Estimate %s created", created.EstimateNumber),
			map[string]any{"estimate_number": created.EstimateNumber},
		))
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	u.log.Info("estimate created",
		zap.String("estimate_id", created.ID),
		zap.String("estimate_number", created.EstimateNumber),
		zap.String("client_id", created.ClientID))
	return created, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, id string, patch EstimatePatch, actor string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = "system"
	}

	est, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	// Content edits are gated on the current status; an explicit status change
	// is always allowed and unlocks the rest of the patch.
	if patch.Status == nil && !est.Status.ContentEditable() {
		return entities.Estimate{}, ErrEstimateLocked
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entities.Estimate{}, ErrInvalidStatus
		}
		est.Status = *patch.Status
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return entities.Estimate{}, ErrInvalidTitle
		}
		est.Title = title
	}
	if patch.Description != nil {
		est.Description = *patch.Description
	}
	if patch.ValidUntil != nil {
		est.ValidUntil = patch.ValidUntil
	}

	recompute := false
	if patch.LineItems != nil {
		items, err := buildLineItems(patch.LineItems)
		if err != nil {
			return entities.Estimate{}, err
		}
		est.LineItems = items
		recompute = true
	}
	if patch.TaxRate != nil {
		if err := validateTaxRate(patch.TaxRate); err != nil {
			return entities.Estimate{}, err
		}
		est.TaxRate = patch.TaxRate
		recompute = true
	}
	if recompute {
		totals := CalculateTotals(est.LineItems, est.TaxRate)
		est.Subtotal = totals.Subtotal
		est.TaxAmount = totals.TaxAmount
		est.Total = totals.Total
	}
	est.UpdatedAt = time.Now().UTC()

	var updated entities.Estimate
	err = u.tx.Do(ctx, func(ctx context.Context) error {
		updated, err = u.repo.Update(ctx, est)
		if err != nil {
			return err
		}
		return u.activity.Append(ctx, newActivityEntry(actor,
			entities.ActivityEntityEstimate, updated.ID, entities.ActivityActionUpdated,
			fmt.Sprintf("Estimate %s updated", updated.EstimateNumber),
			map[string]any{"status": string(updated.Status)},
		))
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func buildLineItems(inputs []LineItemInput) ([]entities.LineItem, error) {
	if len(inputs) == 0 {
		return nil, ErrNoLineItems
	}
	items := make([]entities.LineItem, 0, len(inputs))
	for i, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: item %d: description is required", ErrInvalidLineItem, i+1)
		}
		if in.Quantity.Sign() <= 0 {
			return nil, fmt.Errorf("%w: item %d: quantity must be positive", ErrInvalidLineItem, i+1)
		}
		if in.UnitPrice.Sign() < 0 {
			return nil, fmt.Errorf("%w: item %d: unit price cannot be negative", ErrInvalidLineItem, i+1)
		}
		items = append(items, entities.LineItem{
			ID:          uuid.NewString(),
			Description: desc,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			LineTotal:   in.Quantity.Mul(in.UnitPrice),
			SortOrder:   i,
		})
	}
	return items, nil
}

func validateTaxRate(rate *decimal.Decimal) error {
	if rate == nil {
		return nil
	}
	if rate.Sign() < 0 || rate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidTaxRate
	}
	return nil
}

func newActivityEntry(actor, entityType, entityID, action, description string, metadata map[string]any) entities.ActivityEntry {
	return entities.ActivityEntry{
		ID:          uuid.NewString(),
		ActorID:     actor,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
}

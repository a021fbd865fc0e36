package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"bizops/internal/domain/entities"
	mock_interfaces "bizops/internal/usecase/interfaces/mocks"
)

type invoiceFixture struct {
	repo         *mock_interfaces.MockIInvoiceRepository
	estimateRepo *mock_interfaces.MockIEstimateRepository
	activity     *mock_interfaces.MockIActivityRepository
	seq          *mock_interfaces.MockIDocumentSequenceRepository
	tx           *mock_interfaces.MockITransactionManager
	uc           *InvoiceUseCase
}

func newInvoiceFixture(t *testing.T, dueInDays int) (*invoiceFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &invoiceFixture{
		repo:         mock_interfaces.NewMockIInvoiceRepository(ctrl),
		estimateRepo: mock_interfaces.NewMockIEstimateRepository(ctrl),
		activity:     mock_interfaces.NewMockIActivityRepository(ctrl),
		seq:          mock_interfaces.NewMockIDocumentSequenceRepository(ctrl),
		tx:           mock_interfaces.NewMockITransactionManager(ctrl),
	}
	f.uc = NewInvoiceUseCase(f.repo, f.estimateRepo, f.activity, NewNumberingService(f.seq), f.tx, dueInDays, nil)
	return f, ctrl
}

func approvedEstimate() entities.Estimate {
	return entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-3",
		ClientID:       "client-1",
		ProjectID:      "proj-1",
		Title:          "Kitchen remodel",
		Description:    "Full remodel",
		Status:         entities.EstimateStatusApproved,
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Labor", Quantity: dec("2"), UnitPrice: dec("100"), LineTotal: dec("200"), SortOrder: 0},
			{ID: "li-2", Description: "Materials", Quantity: dec("1"), UnitPrice: dec("50"), LineTotal: dec("50"), SortOrder: 1},
		},
		TaxRate:   decPtr("0.08"),
		Subtotal:  dec("250"),
		TaxAmount: dec("20"),
		Total:     dec("270"),
	}
}

func TestInvoiceUseCase_ConvertFromEstimate(t *testing.T) {
	t.Run("invalid estimate id", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		_, err := f.uc.ConvertFromEstimate(context.Background(), "  ", "user-9")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("estimate lookup error", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("only approved estimates convert", func(t *testing.T) {
		for _, status := range []entities.EstimateStatus{
			entities.EstimateStatusDraft,
			entities.EstimateStatusSent,
			entities.EstimateStatusRejected,
			entities.EstimateStatusExpired,
		} {
			t.Run(string(status), func(t *testing.T) {
				f, ctrl := newInvoiceFixture(t, 0)
				defer ctrl.Finish()
				est := approvedEstimate()
				est.Status = status
				f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)

				_, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
				if !errors.Is(err, ErrEstimateNotApproved) {
					t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
				}
			})
		}
	})

	t.Run("numbering failure blocks conversion", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		passthroughTx(f.tx)
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate(), nil)
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db"))

		_, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create failure rolls back", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		passthroughTx(f.tx)
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate(), nil)
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(12), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("insert failed"))

		_, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err == nil || err.Error() != "insert failed" {
			t.Fatalf("expected insert error, got %v", err)
		}
	})

	t.Run("audit failure aborts conversion", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		passthroughTx(f.tx)
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate(), nil)
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(12), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		)
		f.activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

		_, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err == nil || err.Error() != "audit down" {
			t.Fatalf("expected audit error, got %v", err)
		}
	})

	t.Run("success copies the estimate verbatim", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 15)
		defer ctrl.Finish()
		passthroughTx(f.tx)
		est := approvedEstimate()
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(12), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.InvoiceNumber != "INV-12" {
					t.Fatalf("expected INV-12, got %s", inv.InvoiceNumber)
				}
				if inv.EstimateID != "est-1" || inv.ClientID != "client-1" || inv.ProjectID != "proj-1" {
					t.Fatalf("unexpected references: %+v", inv)
				}
				if inv.Status != entities.InvoiceStatusDraft {
					t.Fatalf("expected draft invoice, got %s", inv.Status)
				}
				if !inv.Subtotal.Equal(dec("250")) || !inv.TaxAmount.Equal(dec("20")) || !inv.Total.Equal(dec("270")) {
					t.Fatalf("totals not copied: %s %s %s", inv.Subtotal, inv.TaxAmount, inv.Total)
				}
				if len(inv.LineItems) != 2 {
					t.Fatalf("expected 2 line items, got %d", len(inv.LineItems))
				}
				for i, it := range inv.LineItems {
					src := est.LineItems[i]
					if it.ID == src.ID || it.ID == "" {
						t.Fatalf("line item %d should get a fresh id", i)
					}
					if it.Description != src.Description || !it.Quantity.Equal(src.Quantity) ||
						!it.UnitPrice.Equal(src.UnitPrice) || !it.LineTotal.Equal(src.LineTotal) ||
						it.SortOrder != src.SortOrder {
						t.Fatalf("line item %d not copied verbatim: %+v", i, it)
					}
				}
				wantDue := time.Now().UTC().AddDate(0, 0, 15)
				if inv.DueDate.Before(wantDue.Add(-time.Minute)) || inv.DueDate.After(wantDue.Add(time.Minute)) {
					t.Fatalf("unexpected due date: %s", inv.DueDate)
				}
				return inv, nil
			},
		)
		f.activity.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.ActivityEntry{})).DoAndReturn(
			func(_ context.Context, entry entities.ActivityEntry) error {
				if entry.EntityType != entities.ActivityEntityInvoice || entry.Action != entities.ActivityActionCreated {
					t.Fatalf("unexpected activity entry: %+v", entry)
				}
				if entry.Metadata["estimate_id"] != "est-1" || entry.Metadata["invoice_number"] != "INV-12" {
					t.Fatalf("unexpected metadata: %+v", entry.Metadata)
				}
				return nil
			},
		)

		res, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.InvoiceID == "" || res.InvoiceNumber != "INV-12" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repeat conversion issues a second invoice", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		passthroughTx(f.tx)
		f.estimateRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate(), nil).Times(2)
		gomock.InOrder(
			f.seq.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(1), nil),
			f.seq.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(2), nil),
		)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
		).Times(2)
		f.activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		first, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.uc.ConvertFromEstimate(context.Background(), "est-1", "user-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.InvoiceNumber == second.InvoiceNumber || first.InvoiceID == second.InvoiceID {
			t.Fatalf("expected distinct invoices, got %+v and %+v", first, second)
		}
	})
}

func TestInvoiceUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid id", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		_, err := f.uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)
		_, err := f.uc.GetByID(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		f.repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1"}, nil)
		res, err := f.uc.GetByID(context.Background(), " inv-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "inv-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ListByEstimateID invalid id", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		_, err := f.uc.ListByEstimateID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("ListByEstimateID success", func(t *testing.T) {
		f, ctrl := newInvoiceFixture(t, 0)
		defer ctrl.Finish()
		f.repo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Invoice{{ID: "inv-1"}, {ID: "inv-2"}}, nil)
		res, err := f.uc.ListByEstimateID(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(res))
		}
	})
}

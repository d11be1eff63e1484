package services

import (
	"testing"

	"balanco/internal/testutil"
	"balanco/internal/uuid"
)

func TestCreateBillStartsActive(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewBillService(store)

	bill := testutil.NewBill()
	bill.IsActive = false

	created, err := svc.CreateBill(bill)
	testutil.AssertNoError(t, err)

	if !created.IsActive {
		t.Error("expected a new bill to start active regardless of input")
	}
	if !uuid.IsValid(created.ID) {
		t.Errorf("expected a generated UUID, got %q", created.ID)
	}
}

func TestUpdateBillDeactivates(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewBillService(store)

	created, err := svc.CreateBill(testutil.NewBill())
	testutil.AssertNoError(t, err)

	updated := *created
	updated.IsActive = false
	updated.LastPaid = testutil.Today()

	_, err = svc.UpdateBill(updated)
	testutil.AssertNoError(t, err)

	got := svc.ListBills()[0]
	if got.IsActive {
		t.Error("expected the bill to be inactive after update")
	}
	if got.LastPaid == "" {
		t.Error("expected lastPaid to persist")
	}
}

func TestDeleteBill(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewBillService(store)

	created, err := svc.CreateBill(testutil.NewBill())
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteBill(created.ID))
	testutil.AssertAppError(t, svc.DeleteBill(created.ID), "BILL_NOT_FOUND")
}

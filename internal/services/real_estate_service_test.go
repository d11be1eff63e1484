package services

import (
	"testing"

	"balanco/internal/testutil"
	"balanco/internal/uuid"
)

func TestCreateAndListProperties(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewRealEstateService(store)

	created, err := svc.CreateProperty(testutil.NewProperty())
	testutil.AssertNoError(t, err)

	list := svc.ListProperties()
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("expected the created property in the list, got %+v", list)
	}
	if list[0].MonthlyRent == nil || *list[0].MonthlyRent != 2200 {
		t.Errorf("expected rent to persist, got %+v", list[0].MonthlyRent)
	}
}

func TestUpdatePropertyNotFound(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewRealEstateService(store)

	_, err := svc.UpdateProperty(testutil.NewProperty())
	testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
}

func TestDeleteProperty(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := NewRealEstateService(store)

	created, err := svc.CreateProperty(testutil.NewProperty())
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.DeleteProperty(created.ID))
	testutil.AssertAppError(t, svc.DeleteProperty(uuid.New()), "PROPERTY_NOT_FOUND")
}

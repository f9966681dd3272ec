package handlers

import (
	"net/http"
	"testing"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

func TestVendorHandler(t *testing.T) {
	var created services.CreateVendorParams
	vendorSvc := &mockVendorService{
		createVendorFn: func(p services.CreateVendorParams) (string, error) {
			created = p
			return "0190b6c8-0000-7000-8000-0000000000b1", nil
		},
		deleteVendorFn: func(services.DeleteParams) error {
			return apperrors.ErrVendorHasExpenses
		},
	}
	h := NewVendorHandler(vendorSvc)
	r := authed()
	r.POST("/vendors", h.CreateVendor)
	r.DELETE("/vendors/:id", h.DeleteVendor)

	rec := doRequest(r, "POST", "/vendors", `{"name":"Corner Shop","description":"milk and bread"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created.Name != "Corner Shop" || created.Description != "milk and bread" {
		t.Errorf("unexpected params %+v", created)
	}
	if dataObject(t, parseJSON(t, rec))["type"] != "vendor" {
		t.Error("expected type vendor")
	}

	rec = doRequest(r, "DELETE", "/vendors/x", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "VENDOR_HAS_EXPENSES")
}

func TestHouseholdMemberHandler(t *testing.T) {
	h := NewHouseholdMemberHandler(&mockHouseholdMemberService{})
	r := authed()
	r.POST("/household-members", h.CreateHouseholdMember)
	r.GET("/household-members", h.ListHouseholdMembers)
	r.PUT("/household-members/:id", h.UpdateHouseholdMember)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"POST", "/household-members", `{"name":"Sam"}`, http.StatusCreated},
		{"POST", "/household-members", `{"name":""}`, http.StatusBadRequest},
		{"GET", "/household-members", "", http.StatusOK},
		{"PUT", "/household-members/x", `{"name":"Samira"}`, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(r, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}

	rec := doRequest(r, "POST", "/household-members", `{"name":"Sam"}`)
	if dataObject(t, parseJSON(t, rec))["type"] != "household_member" {
		t.Error("expected type household_member")
	}
}

func TestSubcategoryHandler(t *testing.T) {
	var updated services.UpdateSubcategoryParams
	subSvc := &mockSubcategoryService{
		updateSubcategoryFn: func(p services.UpdateSubcategoryParams) error {
			updated = p
			return nil
		},
		createSubcategoryFn: func(services.CreateSubcategoryParams) (string, error) {
			return "", apperrors.ErrSubcategoryInvalidCategory
		},
	}
	h := NewSubcategoryHandler(subSvc)
	r := authed()
	r.POST("/subcategories", h.CreateSubcategory)
	r.PUT("/subcategories/:id", h.UpdateSubcategory)

	rec := doRequest(r, "POST", "/subcategories", `{"category_id":"c","name":"Fruit"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "SUBCATEGORY_INVALID_CATEGORY")

	rec = doRequest(r, "PUT", "/subcategories/s1", `{"category_id":"c2","name":"Veg"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if updated.ID != "s1" || updated.CategoryID != "c2" || updated.Name != "Veg" {
		t.Errorf("unexpected params %+v", updated)
	}
}

package services

import (
	"context"
	"testing"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/shopspring/decimal"
)

func seedCartProduct(productRepo *fakeProductRepo, id, price string, active bool) {
	productRepo.products[id] = &models.Product{
		ID:       id,
		Price:    decimal.RequireFromString(price),
		IsActive: active,
	}
}

func TestGetCartCreatesOnFirstAccess(t *testing.T) {
	cartRepo := newFakeCartRepo()
	svc := NewCartService(cartRepo, newFakeProductRepo())

	view, err := svc.GetCart(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if view.CustomerID != "customer-1" {
		t.Errorf("customerId = %q", view.CustomerID)
	}
	if view.TotalItems != 0 || !view.TotalAmount.IsZero() {
		t.Errorf("new cart should be empty, got %d items, total %s", view.TotalItems, view.TotalAmount)
	}

	again, err := svc.GetCart(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("second GetCart: %v", err)
	}
	if again.ID != view.ID {
		t.Errorf("second access created a new cart: %q vs %q", again.ID, view.ID)
	}
}

func TestAddItemComputesTotals(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	cartRepo.products = productRepo
	seedCartProduct(productRepo, "product-1", "25.00", true)
	seedCartProduct(productRepo, "product-2", "10.50", true)
	svc := NewCartService(cartRepo, productRepo)

	if _, err := svc.AddItem(context.Background(), "customer-1", "product-1", 2); err != nil {
		t.Fatalf("AddItem product-1: %v", err)
	}
	view, err := svc.AddItem(context.Background(), "customer-1", "product-2", 3)
	if err != nil {
		t.Fatalf("AddItem product-2: %v", err)
	}

	if view.TotalItems != 5 {
		t.Errorf("totalItems = %d, want 5", view.TotalItems)
	}
	want := decimal.RequireFromString("81.50")
	if !view.TotalAmount.Equal(want) {
		t.Errorf("totalAmount = %s, want %s", view.TotalAmount, want)
	}
	if view.DisplayTotal == "" {
		t.Error("displayTotal should be formatted")
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	cartRepo.products = productRepo
	seedCartProduct(productRepo, "product-1", "25.00", true)
	svc := NewCartService(cartRepo, productRepo)

	if _, err := svc.AddItem(context.Background(), "customer-1", "product-1", 2); err != nil {
		t.Fatalf("first AddItem: %v", err)
	}
	view, err := svc.AddItem(context.Background(), "customer-1", "product-1", 3)
	if err != nil {
		t.Fatalf("second AddItem: %v", err)
	}

	if len(view.CartItems) != 1 {
		t.Fatalf("cart lines = %d, want 1 merged line", len(view.CartItems))
	}
	if view.CartItems[0].Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", view.CartItems[0].Quantity)
	}
}

func TestAddItemRejections(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	cartRepo.products = productRepo
	seedCartProduct(productRepo, "product-inactive", "25.00", false)
	svc := NewCartService(cartRepo, productRepo)

	cases := []struct {
		name      string
		productID string
		quantity  int
		wantKind  apperrors.Kind
		wantMsg   string
	}{
		{"missing product id", "", 1, apperrors.KindBadRequest, "Product ID is required"},
		{"zero quantity", "product-1", 0, apperrors.KindBadRequest, "Quantity must be at least 1"},
		{"negative quantity", "product-1", -2, apperrors.KindBadRequest, "Quantity must be at least 1"},
		{"unknown product", "product-404", 1, apperrors.KindNotFound, "Product not found"},
		{"inactive product", "product-inactive", 1, apperrors.KindBadRequest, "Product is not available"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddItem(context.Background(), "customer-1", tc.productID, tc.quantity)
			if apperrors.KindOf(err) != tc.wantKind {
				t.Fatalf("kind = %v, want %v", apperrors.KindOf(err), tc.wantKind)
			}
			if apperrors.MessageOf(err) != tc.wantMsg {
				t.Errorf("message = %q, want %q", apperrors.MessageOf(err), tc.wantMsg)
			}
		})
	}
}

// Existence is checked before ownership, so probing a deleted id yields
// NotFound while touching another customer's live item yields Forbidden.
func TestCartItemOwnershipOrdering(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	cartRepo.products = productRepo
	seedCartProduct(productRepo, "product-1", "25.00", true)
	svc := NewCartService(cartRepo, productRepo)

	ownerView, err := svc.AddItem(context.Background(), "customer-1", "product-1", 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := ownerView.CartItems[0].ID

	if _, err := svc.GetCart(context.Background(), "customer-2"); err != nil {
		t.Fatalf("GetCart for intruder: %v", err)
	}

	t.Run("missing item reads as NotFound", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(context.Background(), "customer-2", "item-404", 2)
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			t.Fatalf("kind = %v, want NotFound", apperrors.KindOf(err))
		}
		if apperrors.MessageOf(err) != "Cart item not found" {
			t.Errorf("message = %q", apperrors.MessageOf(err))
		}
	})

	t.Run("foreign item reads as Forbidden", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(context.Background(), "customer-2", itemID, 2)
		if apperrors.KindOf(err) != apperrors.KindForbidden {
			t.Fatalf("kind = %v, want Forbidden", apperrors.KindOf(err))
		}
		if apperrors.MessageOf(err) != "Not authorized to modify this cart item" {
			t.Errorf("message = %q", apperrors.MessageOf(err))
		}
	})

	t.Run("foreign removal also Forbidden", func(t *testing.T) {
		_, err := svc.RemoveItem(context.Background(), "customer-2", itemID)
		if apperrors.KindOf(err) != apperrors.KindForbidden {
			t.Fatalf("kind = %v, want Forbidden", apperrors.KindOf(err))
		}
	})
}

func TestUpdateAndRemoveItem(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	cartRepo.products = productRepo
	seedCartProduct(productRepo, "product-1", "20.00", true)
	svc := NewCartService(cartRepo, productRepo)

	view, err := svc.AddItem(context.Background(), "customer-1", "product-1", 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	itemID := view.CartItems[0].ID

	view, err = svc.UpdateItemQuantity(context.Background(), "customer-1", itemID, 4)
	if err != nil {
		t.Fatalf("UpdateItemQuantity: %v", err)
	}
	if view.TotalItems != 4 || !view.TotalAmount.Equal(decimal.RequireFromString("80.00")) {
		t.Errorf("after update: %d items, total %s", view.TotalItems, view.TotalAmount)
	}

	view, err = svc.RemoveItem(context.Background(), "customer-1", itemID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if view.TotalItems != 0 || !view.TotalAmount.IsZero() {
		t.Errorf("after removal: %d items, total %s", view.TotalItems, view.TotalAmount)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gomartghana/gomart-api/app/helpers"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gorilla/mux"
)

type stubReviewRepo struct {
	existing *models.Review
	created  *models.Review
}

func (s *stubReviewRepo) Create(ctx context.Context, review *models.Review) error {
	review.ID = "review-1"
	s.created = review
	return nil
}

func (s *stubReviewRepo) FindByCustomerAndProduct(ctx context.Context, customerID, productID string) (*models.Review, error) {
	return s.existing, nil
}

func (s *stubReviewRepo) FindByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	if s.existing != nil {
		return []models.Review{*s.existing}, nil
	}
	return nil, nil
}

type stubProductRepo struct {
	product *models.Product
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }

func (s *stubProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if s.product != nil && s.product.ID == id {
		return s.product, nil
	}
	return nil, nil
}

func (s *stubProductRepo) FindByIDWithDetails(ctx context.Context, id string) (*models.Product, error) {
	return s.FindByID(ctx, id)
}

func (s *stubProductRepo) FindPaginated(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }

func (s *stubProductRepo) Delete(ctx context.Context, id string) error { return nil }

func postReview(t *testing.T, h *ReviewHandler, customer *models.Customer, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(payload))
	if customer != nil {
		ctx := context.WithValue(req.Context(), helpers.ContextKeyCustomer, customer)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func reviewMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body.Message
}

func TestCreateReviewValidation(t *testing.T) {
	customer := &models.Customer{ID: "customer-1", IsActive: true}
	product := &models.Product{ID: "product-1", IsActive: true}

	cases := []struct {
		name        string
		payload     string
		existing    *models.Review
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing product id",
			payload:     `{"rating": 4}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Product ID and rating are required",
		},
		{
			name:        "missing rating",
			payload:     `{"productId": "product-1"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Product ID and rating are required",
		},
		{
			name:        "rating too low",
			payload:     `{"productId": "product-1", "rating": 0}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Product ID and rating are required",
		},
		{
			name:        "rating too high",
			payload:     `{"productId": "product-1", "rating": 6}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Rating must be between 1 and 5",
		},
		{
			name:        "negative rating",
			payload:     `{"productId": "product-1", "rating": -3}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Rating must be between 1 and 5",
		},
		{
			name:        "unknown product",
			payload:     `{"productId": "product-404", "rating": 4}`,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Product not found",
		},
		{
			name:        "duplicate review",
			payload:     `{"productId": "product-1", "rating": 4}`,
			existing:    &models.Review{ID: "review-0", CustomerID: "customer-1", ProductID: "product-1"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "You have already reviewed this product",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewReviewHandler(&stubReviewRepo{existing: tc.existing}, &stubProductRepo{product: product})

			rec := postReview(t, h, customer, tc.payload)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if got := reviewMessage(t, rec); got != tc.wantMessage {
				t.Errorf("message = %q, want %q", got, tc.wantMessage)
			}
		})
	}
}

func TestCreateReviewSuccess(t *testing.T) {
	customer := &models.Customer{ID: "customer-1", IsActive: true}
	reviewRepo := &stubReviewRepo{}
	h := NewReviewHandler(reviewRepo, &stubProductRepo{product: &models.Product{ID: "product-1", IsActive: true}})

	rec := postReview(t, h, customer, `{"productId": "product-1", "rating": 5, "comment": "Quality kente, fast delivery"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if got := reviewMessage(t, rec); got != "Review created successfully" {
		t.Errorf("message = %q", got)
	}
	if reviewRepo.created == nil || reviewRepo.created.CustomerID != "customer-1" {
		t.Errorf("review not persisted for the authenticated customer: %+v", reviewRepo.created)
	}
}

func TestListReviewsByProduct(t *testing.T) {
	review := &models.Review{ID: "review-1", ProductID: "product-1", Rating: 5}
	h := NewReviewHandler(&stubReviewRepo{existing: review}, &stubProductRepo{product: &models.Product{ID: "product-1"}})

	t.Run("unknown product", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reviews/product/product-404", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "product-404"})
		rec := httptest.NewRecorder()
		h.ListByProduct(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("existing product", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reviews/product/product-1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "product-1"})
		rec := httptest.NewRecorder()
		h.ListByProduct(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body struct {
			Data struct {
				Reviews []models.Review `json:"reviews"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if len(body.Data.Reviews) != 1 || body.Data.Reviews[0].ID != "review-1" {
			t.Errorf("reviews = %+v", body.Data.Reviews)
		}
	})
}

package services

import (
	"context"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
	"github.com/gomartghana/gomart-api/app/utils/format"
	"github.com/shopspring/decimal"
)

// CartView is a cart with its derived totals. Totals are computed from the
// live product prices, not stored.
type CartView struct {
	*models.Cart
	TotalItems   int             `json:"totalItems"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	DisplayTotal string          `json:"displayTotal"`
}

type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the customer's cart, creating an empty one on first
// access. Every customer has at most one cart.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*CartView, error) {
	cart, err := s.findOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.buildView(cart), nil
}

func (s *CartService) AddItem(ctx context.Context, customerID, productID string, quantity int) (*CartView, error) {
	if productID == "" {
		return nil, apperrors.BadRequest("Product ID is required")
	}
	if quantity < 1 {
		return nil, apperrors.BadRequest("Quantity must be at least 1")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if product == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	if !product.IsActive {
		return nil, apperrors.BadRequest("Product is not available")
	}

	cart, err := s.findOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindItemByProduct(ctx, cart.ID, productID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if existing != nil {
		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, apperrors.Internal(err)
		}
	} else {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.CreateItem(ctx, item); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return s.GetCart(ctx, customerID)
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, customerID, itemID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, apperrors.BadRequest("Quantity must be at least 1")
	}

	if err := s.resolveOwnedItem(ctx, customerID, itemID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.GetCart(ctx, customerID)
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID string) (*CartView, error) {
	if err := s.resolveOwnedItem(ctx, customerID, itemID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.GetCart(ctx, customerID)
}

// resolveOwnedItem confirms the item exists before checking ownership, so a
// non-owner probing a missing id sees NotFound rather than Forbidden.
func (s *CartService) resolveOwnedItem(ctx context.Context, customerID, itemID string) error {
	item, err := s.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if item == nil {
		return apperrors.NotFound("Cart item not found")
	}

	cart, err := s.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if cart == nil || item.CartID != cart.ID {
		return apperrors.Forbidden("Not authorized to modify this cart item")
	}
	return nil
}

func (s *CartService) findOrCreateCart(ctx context.Context, customerID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{CustomerID: customerID}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, apperrors.Internal(err)
	}
	cart.CartItems = []models.CartItem{}
	return cart, nil
}

func (s *CartService) buildView(cart *models.Cart) *CartView {
	totalItems := 0
	totalAmount := decimal.Zero
	for _, item := range cart.CartItems {
		totalItems += item.Quantity
		if item.Product != nil {
			totalAmount = totalAmount.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return &CartView{
		Cart:         cart,
		TotalItems:   totalItems,
		TotalAmount:  totalAmount,
		DisplayTotal: format.Cedi(totalAmount),
	}
}

package repositories

import (
	"context"
	"errors"

	"github.com/gomartghana/gomart-api/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindByCustomerID(ctx context.Context, customerID string) ([]models.Order, error)
	// FindByIDAndCustomer resolves an order by id scoped to its owner. A
	// miss on either condition yields (nil, nil); callers cannot tell a
	// foreign order from a missing one.
	FindByIDAndCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db}
}

func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("Payment").
		Preload("Shipping").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByIDAndCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("Payment").
		Preload("Shipping").
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

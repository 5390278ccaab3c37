package services

import (
	"context"
	"fmt"

	"github.com/gomartghana/gomart-api/app/models"
	"github.com/gomartghana/gomart-api/app/repositories"
)

// In-memory repository fakes for the service tests. Each fake mirrors the
// real repository's (nil, nil) convention for missed lookups.

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
	createErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*models.Customer{}}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	if customer.ID == "" {
		customer.ID = fmt.Sprintf("customer-%d", len(f.customers)+1)
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email || c.PhoneNumber == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) UpdatePassword(ctx context.Context, customerID, newPasswordHash string) error {
	if c, ok := f.customers[customerID]; ok {
		c.Password = newPasswordHash
	}
	return nil
}

type fakeVendorRepo struct {
	vendors     map[string]*models.Vendor
	products    []*models.Product
	deactivated []string

	softDeleteErr error
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[string]*models.Vendor{}}
}

func (f *fakeVendorRepo) Create(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = fmt.Sprintf("vendor-%d", len(f.vendors)+1)
	}
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) FindByID(ctx context.Context, id string) (*models.Vendor, error) {
	return f.vendors[id], nil
}

func (f *fakeVendorRepo) FindByIDWithProducts(ctx context.Context, id string, productLimit int) (*models.Vendor, error) {
	return f.vendors[id], nil
}

func (f *fakeVendorRepo) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.Email == email {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) FindByEmailOrPhone(ctx context.Context, email, phone string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.Email == email || v.PhoneNumber == phone {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) FindActive(ctx context.Context, filter repositories.VendorFilter) ([]repositories.VendorSummary, error) {
	var out []repositories.VendorSummary
	for _, v := range f.vendors {
		if v.IsActive {
			out = append(out, repositories.VendorSummary{Vendor: *v})
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) Update(ctx context.Context, vendor *models.Vendor) error {
	f.vendors[vendor.ID] = vendor
	return nil
}

// SoftDeleteWithProducts mirrors the real repository's transaction: on
// error nothing is touched, on success the vendor and its products flip
// together.
func (f *fakeVendorRepo) SoftDeleteWithProducts(ctx context.Context, vendorID string) error {
	if f.softDeleteErr != nil {
		return f.softDeleteErr
	}
	if v, ok := f.vendors[vendorID]; ok {
		v.IsActive = false
	}
	for _, p := range f.products {
		if p.VendorID == vendorID {
			p.IsActive = false
		}
	}
	f.deactivated = append(f.deactivated, vendorID)
	return nil
}

type fakeCartRepo struct {
	carts map[string]*models.Cart
	items map[string]*models.CartItem

	// mirrors the real repo's Preload("CartItems.Product") when set
	products *fakeProductRepo
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: map[string]*models.Cart{},
		items: map[string]*models.CartItem{},
	}
}

func (f *fakeCartRepo) Create(ctx context.Context, cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = fmt.Sprintf("cart-%d", len(f.carts)+1)
	}
	f.carts[cart.CustomerID] = cart
	return nil
}

func (f *fakeCartRepo) FindByCustomerID(ctx context.Context, customerID string) (*models.Cart, error) {
	cart, ok := f.carts[customerID]
	if !ok {
		return nil, nil
	}
	view := *cart
	view.CartItems = nil
	for _, item := range f.items {
		if item.CartID == cart.ID {
			loaded := *item
			if f.products != nil {
				loaded.Product = f.products.products[item.ProductID]
			}
			view.CartItems = append(view.CartItems, loaded)
		}
	}
	return &view, nil
}

func (f *fakeCartRepo) FindItemByID(ctx context.Context, itemID string) (*models.CartItem, error) {
	return f.items[itemID], nil
}

func (f *fakeCartRepo) FindItemByProduct(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	for _, item := range f.items {
		if item.CartID == cartID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) CreateItem(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(f.items)+1)
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeCartRepo) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) error {
	if item, ok := f.items[itemID]; ok {
		item.Quantity = quantity
	}
	return nil
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, itemID string) error {
	delete(f.items, itemID)
	return nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*models.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(f.products)+1)
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindByIDWithDetails(ctx context.Context, id string) (*models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindPaginated(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*models.Order
}

func (f *fakeOrderRepo) FindByCustomerID(ctx context.Context, customerID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByIDAndCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.CustomerID == customerID {
			return o, nil
		}
	}
	return nil, nil
}

type fakePaymentRepo struct {
	payments      map[string]*models.Payment
	statusUpdates int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("payment-%d", len(f.payments)+1)
	}
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	for _, p := range f.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByTransactionReference(ctx context.Context, txRef string) (*models.Payment, error) {
	for _, p := range f.payments {
		if p.TransactionReference == txRef {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, paymentID, status string) error {
	f.statusUpdates++
	if p, ok := f.payments[paymentID]; ok {
		p.Status = status
	}
	return nil
}

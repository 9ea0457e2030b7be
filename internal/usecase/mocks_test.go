package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (model.User, error) {
	args := m.Called(ctx, phone)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

// =====================
// Mock: CartRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error {
	args := m.Called(ctx, cartID, status)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateTotals(ctx context.Context, cartID int64, totalItems int64, subtotal decimal.Decimal) error {
	args := m.Called(ctx, cartID, totalItems, subtotal)
	return args.Error(0)
}

// =====================
// Mock: CartItemRepository
// =====================

type MockCartItemRepository struct {
	mock.Mock
}

func (m *MockCartItemRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *MockCartItemRepository) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *MockCartItemRepository) MergeAdd(ctx context.Context, cartID int64, productID int64, shopID int64, addQty int64, unitPrice decimal.Decimal) (model.CartItem, error) {
	args := m.Called(ctx, cartID, productID, shopID, addQty, unitPrice)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *MockCartItemRepository) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64, lineTotal decimal.Decimal) error {
	args := m.Called(ctx, cartItemID, qty, lineTotal)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByCartID(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64, page int, perPage int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, perPage)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// =====================
// Mock: OrderItemRepository
// =====================

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *MockOrderItemRepository) FindByID(ctx context.Context, itemID int64) (model.OrderItem, error) {
	args := m.Called(ctx, itemID)
	it, _ := args.Get(0).(model.OrderItem)
	return it, args.Error(1)
}

func (m *MockOrderItemRepository) UpdateStatus(ctx context.Context, itemID int64, status string) error {
	args := m.Called(ctx, itemID, status)
	return args.Error(0)
}

func (m *MockOrderItemRepository) UpdateStatusByOrderID(ctx context.Context, orderID int64, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderItemRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderItemRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *MockOrderItemRepository) MarkSettled(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// =====================
// Mock: TransactionRepository
// =====================

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, trx *model.Transaction) error {
	args := m.Called(ctx, trx)
	return args.Error(0)
}

func (m *MockTransactionRepository) List(ctx context.Context, f repo.TransactionFilter) ([]model.Transaction, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Transaction)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SumAmount(ctx context.Context, f repo.TransactionFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, f)
	d, _ := args.Get(0).(decimal.Decimal)
	return d, args.Error(1)
}

// =====================
// Mock: AssignmentRepository
// =====================

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a *model.AssignDeliveryMan) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindAssignedByOrderID(ctx context.Context, orderID int64, deliveryManID *int64) (model.AssignDeliveryMan, error) {
	args := m.Called(ctx, orderID, deliveryManID)
	a, _ := args.Get(0).(model.AssignDeliveryMan)
	return a, args.Error(1)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *model.AssignDeliveryMan) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// =====================
// Mock: TransactionManager
// =====================

// 固定のmock repo一式に対してfnをそのまま実行する。
type mockTxRepos struct {
	users        *MockUserRepository
	products     *MockProductRepository
	carts        *MockCartRepository
	cartItems    *MockCartItemRepository
	orders       *MockOrderRepository
	orderItems   *MockOrderItemRepository
	transactions *MockTransactionRepository
	assignments  *MockAssignmentRepository
}

func newMockTxRepos() *mockTxRepos {
	return &mockTxRepos{
		users:        new(MockUserRepository),
		products:     new(MockProductRepository),
		carts:        new(MockCartRepository),
		cartItems:    new(MockCartItemRepository),
		orders:       new(MockOrderRepository),
		orderItems:   new(MockOrderItemRepository),
		transactions: new(MockTransactionRepository),
		assignments:  new(MockAssignmentRepository),
	}
}

func (r *mockTxRepos) Users() repo.UserRepository               { return r.users }
func (r *mockTxRepos) Products() repo.ProductRepository         { return r.products }
func (r *mockTxRepos) Carts() repo.CartRepository               { return r.carts }
func (r *mockTxRepos) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *mockTxRepos) Orders() repo.OrderRepository             { return r.orders }
func (r *mockTxRepos) OrderItems() repo.OrderItemRepository     { return r.orderItems }
func (r *mockTxRepos) Transactions() repo.TransactionRepository { return r.transactions }
func (r *mockTxRepos) Assignments() repo.AssignmentRepository   { return r.assignments }

type MockTxManager struct {
	repos *mockTxRepos
}

func newMockTxManager() *MockTxManager {
	return &MockTxManager{repos: newMockTxRepos()}
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	repo "marketplace/internal/repository"
)

type txReposGorm struct {
	users        repo.UserRepository
	products     repo.ProductRepository
	carts        repo.CartRepository
	cartItems    repo.CartItemRepository
	orders       repo.OrderRepository
	orderItems   repo.OrderItemRepository
	transactions repo.TransactionRepository
	assignments  repo.AssignmentRepository
}

func (r *txReposGorm) Users() repo.UserRepository               { return r.users }
func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Carts() repo.CartRepository               { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository     { return r.orderItems }
func (r *txReposGorm) Transactions() repo.TransactionRepository { return r.transactions }
func (r *txReposGorm) Assignments() repo.AssignmentRepository   { return r.assignments }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fn内の失敗はすべてロールバックされ、部分的なコミットは見えない。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:        NewUserGormRepository(tx),
			products:     NewProductGormRepository(tx),
			carts:        NewCartGormRepository(tx),
			cartItems:    NewCartItemGormRepository(tx),
			orders:       NewOrderGormRepository(tx),
			orderItems:   NewOrderItemGormRepository(tx),
			transactions: NewTransactionGormRepository(tx),
			assignments:  NewAssignmentGormRepository(tx),
		}
		return fn(r)
	})
}

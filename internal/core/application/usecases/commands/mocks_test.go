package commands_test

import (
	"context"
	"sync"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// In-memory repositories backing handler tests. They satisfy the ports
// interfaces with plain maps; transaction calls are no-ops so handlers can be
// exercised without a database.

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*order.Order)}
}

func (r *memOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r *memOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	aggregate, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return aggregate, nil
}

func (r *memOrderRepo) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*order.Order, 0, len(r.orders))
	for _, aggregate := range r.orders {
		all = append(all, aggregate)
	}
	return all, nil
}

func (r *memOrderRepo) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*order.Order, 0)
	for _, aggregate := range r.orders {
		if aggregate.Status() == status {
			matched = append(matched, aggregate)
		}
	}
	return matched, nil
}

func (r *memOrderRepo) GetFirstInStatus(ctx context.Context, status order.Status) (*order.Order, error) {
	matched, err := r.GetAllInStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, errs.NewObjectNotFoundError("order", status.String())
	}
	return matched[0], nil
}

type memCourierRepo struct {
	mu       sync.Mutex
	couriers map[string]*courier.Courier
}

func newMemCourierRepo() *memCourierRepo {
	return &memCourierRepo{couriers: make(map[string]*courier.Courier)}
}

func (r *memCourierRepo) Add(_ context.Context, c *courier.Courier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.couriers[c.ID().String()] = c
	return nil
}

func (r *memCourierRepo) Update(_ context.Context, c *courier.Courier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.couriers[c.ID().String()] = c
	return nil
}

func (r *memCourierRepo) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.couriers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return c, nil
}

func (r *memCourierRepo) GetAll(_ context.Context) ([]*courier.Courier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*courier.Courier, 0, len(r.couriers))
	for _, c := range r.couriers {
		all = append(all, c)
	}
	return all, nil
}

func (r *memCourierRepo) GetAllFree(ctx context.Context) ([]*courier.Courier, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	free := make([]*courier.Courier, 0)
	for _, c := range all {
		if c.IsAvailable() {
			free = append(free, c)
		}
	}
	return free, nil
}

func (r *memCourierRepo) GetAllBusy(ctx context.Context) ([]*courier.Courier, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	busy := make([]*courier.Courier, 0)
	for _, c := range all {
		if !c.IsAvailable() {
			busy = append(busy, c)
		}
	}
	return busy, nil
}

type memPaymentRepo struct {
	mu      sync.Mutex
	records map[string]*payment.Record
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{records: make(map[string]*payment.Record)}
}

func (r *memPaymentRepo) Add(_ context.Context, record *payment.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.OrderID().String()] = record
	return nil
}

func (r *memPaymentRepo) Update(_ context.Context, record *payment.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.OrderID().String()] = record
	return nil
}

func (r *memPaymentRepo) GetByOrderID(_ context.Context, orderID kernel.UUID) (*payment.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[orderID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("payment record", orderID)
	}
	return record, nil
}

// fakeUoW wires the in-memory repositories into a no-op transaction.
type fakeUoW struct {
	orders   *memOrderRepo
	couriers *memCourierRepo
	payments *memPaymentRepo
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		orders:   newMemOrderRepo(),
		couriers: newMemCourierRepo(),
		payments: newMemPaymentRepo(),
	}
}

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Commit(context.Context) error   { return nil }
func (u *fakeUoW) Rollback(context.Context) error { return nil }

func (u *fakeUoW) OrderRepository() ports.OrderRepository     { return u.orders }
func (u *fakeUoW) CourierRepository() ports.CourierRepository { return u.couriers }
func (u *fakeUoW) PaymentRepository() ports.PaymentRepository { return u.payments }

// fakeUoWFactory returns the same fakeUoW to every handler so tests can seed
// state and inspect the outcome.
type fakeUoWFactory struct {
	uow *fakeUoW
}

func newFakeUoWFactory() *fakeUoWFactory {
	return &fakeUoWFactory{uow: newFakeUoW()}
}

func (f *fakeUoWFactory) Create() commands.UoW { return f.uow }

// Narrowed factories for handlers that only need part of the unit of work.

type fakeOrderUoWFactory struct{ inner *fakeUoWFactory }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return f.inner.uow }

type fakePaymentUoWFactory struct{ inner *fakeUoWFactory }

func (f fakePaymentUoWFactory) Create() commands.PaymentUoW { return f.inner.uow }

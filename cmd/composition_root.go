package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/jobs"
)

// CompositionRoot wires adapters, shared domain services, and use case
// handlers. The menu, stock, and oven are process-wide singletons shared
// by every request.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	menu       *menu.Menu
	stock      *inventory.StockInventory
	oven       *inventory.BatchOven
	dispatcher services.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot builds the application graph from config and an open
// database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	m, stock, err := defaultCatalog()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("building catalog: %w", err)
	}

	oven, err := inventory.NewBatchOven(config.OvenCapacity)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("building oven: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		menu:       m,
		stock:      stock,
		oven:       oven,
		dispatcher: services.NewDispatcher(services.NewNearestCourier()),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// ServerHandlers bundles every handler the HTTP server needs.
func (c *CompositionRoot) ServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:   commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		AddItem:       commands.NewAddItemCommandHandler(c.orderUoWFactory(), c.menu),
		ApplyDiscount: commands.NewApplyDiscountCommandHandler(c.orderUoWFactory()),
		AcceptOrder:   commands.NewAcceptOrderCommandHandler(c.orderUoWFactory()),
		StartBaking:   commands.NewStartBakingCommandHandler(c.orderUoWFactory(), c.stock, c.oven),
		BoxOrder:      commands.NewBoxOrderCommandHandler(c.orderUoWFactory(), c.oven),
		DispatchOrder: commands.NewDispatchOrderCommandHandler(c.fullUoWFactory(), c.dispatcher),
		DeliverOrder:  commands.NewDeliverOrderCommandHandler(c.fullUoWFactory()),
		CancelOrder:   commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		SettlePayment: commands.NewSettlePaymentCommandHandler(c.paymentUoWFactory()),
		RefundPayment: commands.NewRefundPaymentCommandHandler(c.paymentUoWFactory()),

		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrdersByStatus: queries.NewGetOrdersByStatusQueryHandler(c.gormDB),
		GetPaymentRecord:  queries.NewGetPaymentRecordQueryHandler(c.gormDB),
		GetAllCouriers:    queries.NewGetAllCouriersQueryHandler(c.gormDB),
	}
}

// JobManager builds the background job runner: courier movement plus
// automatic dispatch of boxed orders.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		commands.NewMoveCouriersCommandHandler(c.fullUoWFactory()),
		commands.NewDispatchOrderCommandHandler(c.fullUoWFactory(), c.dispatcher),
		queries.NewGetOrdersByStatusQueryHandler(c.gormDB),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

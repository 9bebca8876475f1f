package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pizzeria/internal/adapters/out/postgres/courierrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersIntegrationTestSuite exercises the read-side handlers against
// rows written through the repositories, so the SQL stays in lockstep with
// the write-side schema.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	payments  *orderrepo.GormPaymentRepository
	couriers  *courierrepo.GormCourierRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PaymentDTO{},
		&courierrepo.CourierDTO{},
	))

	suite.orders = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.payments = orderrepo.NewGormPaymentRepository(db, noopTracker{})
	suite.couriers = courierrepo.NewGormCourierRepository(db, noopTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, payments, couriers").Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder() *order.Order {
	dough, err := inventory.NewIngredient("Dough", "kg")
	suite.Require().NoError(err)
	doughReq, err := inventory.NewRequirement(dough, decimal.RequireFromString("0.250"))
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromString("10.00")
	suite.Require().NoError(err)
	pizza, err := product.NewPizza("pz-margherita", "Margherita", price, []inventory.Requirement{doughReq})
	suite.Require().NoError(err)

	m, err := menu.NewMenu([]product.Pizza{pizza}, nil)
	suite.Require().NoError(err)

	destination, err := kernel.NewLocation(30, 40)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), destination, false)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddItem(m, "pz-margherita", product.SizeMedium, nil, 2))
	suite.Require().NoError(suite.orders.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	aggregate := suite.seedOrder()

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("NEW", view.Status)
	suite.Equal("20.00", view.Subtotal.String())
	suite.Equal("20.00", view.Total.String())
	suite.Nil(view.CourierID)
	suite.InDelta(30, view.Destination.X(), 1e-9)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_Missing() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrdersByStatus() {
	ctx := context.Background()
	first := suite.seedOrder()
	second := suite.seedOrder()
	suite.Require().NoError(second.Accept())
	suite.Require().NoError(suite.orders.Update(ctx, second))

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)

	query, err := queries.NewGetOrdersByStatusQuery(order.New)
	suite.Require().NoError(err)
	pending, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID.IsEqual(first.ID()))
	suite.Equal("20.00", pending[0].Total.String())

	query, err = queries.NewGetOrdersByStatusQuery(order.Baking)
	suite.Require().NoError(err)
	baking, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(baking)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPaymentRecord() {
	ctx := context.Background()
	aggregate := suite.seedOrder()

	due, err := kernel.NewMoneyFromString("20.00")
	suite.Require().NoError(err)
	record, err := payment.NewRecord(kernel.NewUUID(), aggregate.ID(), payment.MethodOnline, due)
	suite.Require().NoError(err)

	now := time.Now()
	_, err = record.Authorize(now)
	suite.Require().NoError(err)
	_, err = record.Capture(due, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payments.Add(ctx, record))

	handler := queries.NewGetPaymentRecordQueryHandler(suite.db)
	query, err := queries.NewGetPaymentRecordQuery(aggregate.ID())
	suite.Require().NoError(err)

	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("ONLINE", view.Method)
	suite.Equal("CAPTURED", view.Status)
	suite.Equal("20.00", view.Captured.String())
	suite.Len(view.History, 2)

	query, err = queries.NewGetPaymentRecordQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllCouriers() {
	ctx := context.Background()

	vehicle, err := courier.NewVehicle(courier.VehicleCar, 8)
	suite.Require().NoError(err)
	location, err := kernel.NewLocation(1, 2)
	suite.Require().NoError(err)

	free, err := courier.NewCourier(kernel.NewUUID(), "Anna", vehicle, location)
	suite.Require().NoError(err)
	busy, err := courier.NewCourier(kernel.NewUUID(), "Boris", vehicle, location)
	suite.Require().NoError(err)
	orderID := kernel.NewUUID()
	suite.Require().NoError(busy.Take(orderID))

	suite.Require().NoError(suite.couriers.Add(ctx, free))
	suite.Require().NoError(suite.couriers.Add(ctx, busy))

	handler := queries.NewGetAllCouriersQueryHandler(suite.db)
	views, err := handler.Handle(ctx, queries.NewGetAllCouriersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.Equal("Anna", views[0].Name)
	suite.Equal("CAR", views[0].VehicleKind)
	suite.Nil(views[0].OrderID)
	suite.Equal("Boris", views[1].Name)
	suite.Require().NotNil(views[1].OrderID)
	suite.True(views[1].OrderID.IsEqual(orderID))
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}

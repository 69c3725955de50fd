package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusHistoryItemDTO{},
		&shipmentrepo.CheckpointDTO{},
		&shipmentrepo.NoteDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, shipment_status_history, shipment_checkpoints, shipment_notes").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment(trackingID string) *shipment.Shipment {
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		trackingID,
		kernel.NewUUID(),
		shipment.ServiceTypeAir,
		shipment.Details{
			PickupLocation:      "Munich Depot",
			DestinationLocation: "Vienna Airport Cargo",
			PackageType:         "box",
			Weight:              "8kg",
			Dimensions:          "40x30x20cm",
			Phone:               "+49 89 7654321",
		},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotNil(uow1)
	suite.NotNil(uow2)
	suite.NotSame(uow1, uow2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	aggregate := suite.createTestShipment("ST-UOW-0001")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	// Visible through a fresh unit of work
	restored, err := suite.factory.Create().ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("ST-UOW-0001", restored.TrackingID())
	suite.Require().Len(restored.StatusHistory(), 1)
	suite.Equal(shipment.StatusPending, restored.StatusHistory()[0].Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	aggregate := suite.createTestShipment("ST-UOW-0002")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransitions_SecondObservesFirst() {
	ctx := context.Background()
	aggregate := suite.createTestShipment("ST-UOW-0003")

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, aggregate))
	suite.Require().NoError(setup.Commit(ctx))

	// First caller cancels the shipment.
	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	loaded, err := first.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	_, err = loaded.ChangeStatus(shipment.StatusCancelled, "ada", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(first.ShipmentRepository().Update(ctx, loaded))
	suite.Require().NoError(first.Commit(ctx))

	// Second caller re-reads and sees the cancelled state; its originally
	// valid transition is now rejected by the aggregate.
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	reread, err := second.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	_, err = reread.ChangeStatus(shipment.StatusQuoted, "grace", "", time.Now().UTC())
	suite.Require().ErrorIs(err, shipment.ErrInvalidTransition)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransitions_OnlyOneSucceeds() {
	ctx := context.Background()
	aggregate := suite.createTestShipment("ST-UOW-0004")

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, aggregate))
	for _, target := range []shipment.Status{
		shipment.StatusQuoted, shipment.StatusAccepted, shipment.StatusPickedUp,
	} {
		_, err := aggregate.ChangeStatus(target, "ada", "", time.Now().UTC())
		suite.Require().NoError(err)
	}
	suite.Require().NoError(setup.ShipmentRepository().Update(ctx, aggregate))
	suite.Require().NoError(setup.Commit(ctx))

	// First writer reads the shipment, taking the row lock.
	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	// Second writer starts while the lock is held. Its read blocks until the
	// first commits, then sees the cancelled state, so the transition that
	// was valid against the stale status is rejected.
	secondDone := make(chan error, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			secondDone <- err
			return
		}
		defer func() {
			_ = second.Rollback(ctx)
		}()

		reread, err := second.ShipmentRepository().Get(ctx, aggregate.ID())
		if err != nil {
			secondDone <- err
			return
		}
		_, err = reread.ChangeStatus(shipment.StatusInTransit, "grace", "", time.Now().UTC())
		secondDone <- err
	}()

	// Let the competing reader reach the row lock before the cancellation
	// commits.
	time.Sleep(200 * time.Millisecond)
	_, err = locked.ChangeStatus(shipment.StatusCancelled, "ada", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(first.ShipmentRepository().Update(ctx, locked))
	suite.Require().NoError(first.Commit(ctx))

	suite.Require().ErrorIs(<-secondDone, shipment.ErrInvalidTransition)

	// Only the winner's transition is recorded; the history tail stays
	// unambiguous and matches the persisted status.
	final, err := suite.factory.Create().ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusCancelled, final.Status())
	history := final.StatusHistory()
	suite.Require().Len(history, 5)
	suite.Equal(shipment.StatusCancelled, history[len(history)-1].Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

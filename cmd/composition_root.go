package cmd

import (
	httpadapter "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/postgres"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAddCheckpointCommandHandler() commands.AddCheckpointCommandHandler {
	return commands.NewAddCheckpointCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAddNoteCommandHandler() commands.AddNoteCommandHandler {
	return commands.NewAddNoteCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAmountCommandHandler() commands.UpdateAmountCommandHandler {
	return commands.NewUpdateAmountCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerRollupQueryHandler() queries.CustomerRollupQueryHandler {
	return queries.NewCustomerRollupQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardCountersQueryHandler() queries.DashboardCountersQueryHandler {
	return queries.NewDashboardCountersQueryHandler(c.gormDB)
}

// CreateServer wires every command and query handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentStatusCommandHandler(),
		c.CreateAddCheckpointCommandHandler(),
		c.CreateAddNoteCommandHandler(),
		c.CreateUpdateAmountCommandHandler(),
		c.CreateDeleteShipmentCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateCustomerRollupQueryHandler(),
		c.CreateDashboardCountersQueryHandler(),
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

package cmd

import (
	"depot/internal/adapters/out/postgres"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeParcelWeightCommandHandler() commands.ChangeParcelWeightCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeParcelWeightCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignParcelCommandHandler() commands.AssignParcelCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkAssignParcelsCommandHandler() commands.BulkAssignParcelsCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkAssignParcelsCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDistributionCommandHandler() commands.StartDistributionCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDistributionCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateFailureReasonCommandHandler() commands.CreateFailureReasonCommandHandler {
	var f commands.FailureReasonUoWFactory = FuncFailureReasonUoWFactory(func() commands.FailureReasonUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFailureReasonCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignFailureReasonCommandHandler() commands.AssignFailureReasonCommandHandler {
	var f commands.DeliveryFailureUoWFactory = FuncDeliveryFailureUoWFactory(func() commands.DeliveryFailureUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignFailureReasonCommandHandler(f)
}

func (c *CompositionRoot) CreateGetManifestSummaryQueryHandler() queries.GetManifestSummaryQueryHandler {
	return queries.NewGetManifestSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDepotParcelsQueryHandler() queries.GetDepotParcelsQueryHandler {
	return queries.NewGetDepotParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFailureReasonsQueryHandler() queries.ListFailureReasonsQueryHandler {
	return queries.NewListFailureReasonsQueryHandler(c.gormDB)
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncFailureReasonUoWFactory func() commands.FailureReasonUoW

func (f FuncFailureReasonUoWFactory) Create() commands.FailureReasonUoW {
	return f()
}

type FuncDeliveryFailureUoWFactory func() commands.DeliveryFailureUoW

func (f FuncDeliveryFailureUoWFactory) Create() commands.DeliveryFailureUoW {
	return f()
}

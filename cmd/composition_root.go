package cmd

import (
	"subscriptions/internal/adapters/out/postgres"
	"subscriptions/internal/core/application/usecases/commands"
	"subscriptions/internal/core/application/usecases/queries"
	"subscriptions/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateSubscribeCommandHandler() commands.SubscribeCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubscribeCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePauseSubscriptionCommandHandler() commands.PauseSubscriptionCommandHandler {
	var f commands.PauseUoWFactory = FuncPauseUoWFactory(func() commands.PauseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPauseSubscriptionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateResumeSubscriptionCommandHandler() commands.ResumeSubscriptionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewResumeSubscriptionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelSubscriptionCommandHandler() commands.CancelSubscriptionCommandHandler {
	var f commands.SubscriptionUoWFactory = FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelSubscriptionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateExpireSubscriptionsCommandHandler() commands.ExpireSubscriptionsCommandHandler {
	var f commands.SubscriptionUoWFactory = FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireSubscriptionsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetCustomerSubscriptionQueryHandler() queries.GetCustomerSubscriptionQueryHandler {
	return queries.NewGetCustomerSubscriptionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignableAgentsQueryHandler() queries.GetAssignableAgentsQueryHandler {
	return queries.NewGetAssignableAgentsQueryHandler(c.gormDB)
}

type FuncSubscriptionUoWFactory func() commands.SubscriptionUoW

func (f FuncSubscriptionUoWFactory) Create() commands.SubscriptionUoW {
	return f()
}

type FuncPauseUoWFactory func() commands.PauseUoW

func (f FuncPauseUoWFactory) Create() commands.PauseUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

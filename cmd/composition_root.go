package cmd

import (
	"log/slog"
	"os"

	httpin "quickbite/internal/adapters/in/http"
	"quickbite/internal/adapters/out/catalog"
	"quickbite/internal/adapters/out/eventbus"
	"quickbite/internal/adapters/out/memory/orderrepo"
	"quickbite/internal/adapters/out/schedule"
	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/jobs"
)

// CompositionRoot owns the long-lived application objects: the in-memory
// order store, the menu catalog, the update broadcaster, and the pending
// transition queue. Everything else is built from these on demand.
type CompositionRoot struct {
	orders      *orderrepo.Repository
	menuCatalog *catalog.StaticCatalog
	broadcaster *eventbus.Broadcaster
	transitions *schedule.Queue
	logger      *slog.Logger
}

func NewCompositionRoot(_ Config) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		orders:      orderrepo.NewRepository(),
		menuCatalog: catalog.NewStaticCatalog(nil),
		broadcaster: eventbus.NewBroadcaster(logger),
		transitions: schedule.NewQueue(),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.menuCatalog, c.broadcaster, c.transitions)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orders, c.broadcaster)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.orders, c.broadcaster, c.transitions)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuCatalog)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.menuCatalog)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.menuCatalog)
}

// CreateHTTPServer builds the REST/SSE server over the application handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetMenuItemQueryHandler(),
		c.CreateListCategoriesQueryHandler(),
		c.broadcaster,
		c.logger,
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAdvanceOrdersCommandHandler(), c.logger)
}

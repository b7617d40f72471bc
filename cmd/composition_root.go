package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	httpin "sitta/internal/adapters/in/http"
	"sitta/internal/adapters/out/datafile"
	"sitta/internal/adapters/out/memory"
	"sitta/internal/adapters/out/notifier"
	"sitta/internal/core/application/usecases/commands"
	"sitta/internal/core/application/usecases/queries"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/ports"
	"sitta/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	clock      kernel.Clock
	catalog    *reference.Catalog
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	closers    []io.Closer
}

type Option func(*CompositionRoot)

// WithClock replaces the system clock, for tests.
func WithClock(clock kernel.Clock) Option {
	return func(c *CompositionRoot) { c.clock = clock }
}

// NewCompositionRoot seeds a fresh session store with dataset and wires the
// change notifiers selected by configs.
func NewCompositionRoot(
	ctx context.Context,
	configs Config,
	dataset datafile.Dataset,
	logger *slog.Logger,
	opts ...Option,
) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs: configs,
		logger:  logger,
		clock:   kernel.SystemClock{},
		catalog: dataset.Catalog,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.catalog == nil {
		c.catalog = reference.NewCatalog(nil, nil, nil, nil)
	}

	c.store = memory.NewStore(
		memory.WithNotifier(c.newChangeNotifier()),
		memory.WithClock(c.clock),
		memory.WithLogger(logger),
	)
	if err := c.store.Seed(ctx, dataset.Stock, dataset.Orders); err != nil {
		return nil, fmt.Errorf("seed session store: %w", err)
	}
	c.uowFactory = memory.NewUnitOfWorkFactory(c.store)

	logger.InfoContext(ctx, "Session store seeded",
		"stock_items", len(dataset.Stock),
		"delivery_orders", len(dataset.Orders),
	)
	return c, nil
}

func (c *CompositionRoot) newChangeNotifier() ports.ChangeNotifier {
	logNotifier := notifier.NewLogNotifier(c.logger)
	if len(c.configs.KafkaBrokers) == 0 {
		return logNotifier
	}

	kafkaNotifier := notifier.NewKafkaNotifier(c.configs.KafkaBrokers, c.configs.KafkaTopic, c.configs.ServiceName)
	c.closers = append(c.closers, kafkaNotifier)
	return notifier.Notifiers{logNotifier, kafkaNotifier}
}

// Close releases the notifier connections.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryOrderUoWFactory() commands.DeliveryOrderUoWFactory {
	return FuncDeliveryOrderUoWFactory(func() commands.DeliveryOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddStockItemCommandHandler() commands.AddStockItemCommandHandler {
	return commands.NewAddStockItemCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStockItemCommandHandler() commands.UpdateStockItemCommandHandler {
	return commands.NewUpdateStockItemCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStockItemCommandHandler() commands.DeleteStockItemCommandHandler {
	return commands.NewDeleteStockItemCommandHandler(c.stockUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	return commands.NewCreateDeliveryOrderCommandHandler(c.deliveryOrderUoWFactory(), c.catalog, c.clock)
}

func (c *CompositionRoot) CreateAppendProgressCommandHandler() commands.AppendProgressCommandHandler {
	return commands.NewAppendProgressCommandHandler(c.deliveryOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.deliveryOrderUoWFactory(), c.catalog, c.clock)
}

func (c *CompositionRoot) CreateListStockQueryHandler() queries.ListStockQueryHandler {
	return queries.NewListStockQueryHandler(c.store.StockRepository(), c.catalog)
}

func (c *CompositionRoot) CreateGetAvailableCategoriesQueryHandler() queries.GetAvailableCategoriesQueryHandler {
	return queries.NewGetAvailableCategoriesQueryHandler(c.store.StockRepository())
}

func (c *CompositionRoot) CreateGetBundleDetailQueryHandler() queries.GetBundleDetailQueryHandler {
	return queries.NewGetBundleDetailQueryHandler(c.store.StockRepository(), c.catalog)
}

func (c *CompositionRoot) CreateGetStockAlertsQueryHandler() queries.GetStockAlertsQueryHandler {
	return queries.NewGetStockAlertsQueryHandler(c.store.StockRepository(), c.catalog)
}

func (c *CompositionRoot) CreateSearchDeliveryOrdersQueryHandler() queries.SearchDeliveryOrdersQueryHandler {
	return queries.NewSearchDeliveryOrdersQueryHandler(c.store.DeliveryOrderRepository(), c.catalog)
}

func (c *CompositionRoot) CreateGetDeliveryOrderQueryHandler() queries.GetDeliveryOrderQueryHandler {
	return queries.NewGetDeliveryOrderQueryHandler(c.store.DeliveryOrderRepository(), c.catalog)
}

func (c *CompositionRoot) CreateGetNextOrderNumberQueryHandler() queries.GetNextOrderNumberQueryHandler {
	return queries.NewGetNextOrderNumberQueryHandler(c.store.DeliveryOrderRepository(), c.clock)
}

func (c *CompositionRoot) CreateGetSummaryQueryHandler() queries.GetSummaryQueryHandler {
	return queries.NewGetSummaryQueryHandler(c.store.StockRepository(), c.store.DeliveryOrderRepository())
}

func (c *CompositionRoot) CreateGetReferencesQueryHandler() queries.GetReferencesQueryHandler {
	return queries.NewGetReferencesQueryHandler(c.catalog)
}

// NewHTTPHandlers collects every use case the API exposes.
func (c *CompositionRoot) NewHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		AddStockItem:         c.CreateAddStockItemCommandHandler(),
		UpdateStockItem:      c.CreateUpdateStockItemCommandHandler(),
		DeleteStockItem:      c.CreateDeleteStockItemCommandHandler(),
		CreateDeliveryOrder:  c.CreateCreateDeliveryOrderCommandHandler(),
		AppendProgress:       c.CreateAppendProgressCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		SubmitOrder:          c.CreateSubmitOrderCommandHandler(),

		ListStock:              c.CreateListStockQueryHandler(),
		GetAvailableCategories: c.CreateGetAvailableCategoriesQueryHandler(),
		GetBundleDetail:        c.CreateGetBundleDetailQueryHandler(),
		SearchDeliveryOrders:   c.CreateSearchDeliveryOrdersQueryHandler(),
		GetDeliveryOrder:       c.CreateGetDeliveryOrderQueryHandler(),
		GetNextOrderNumber:     c.CreateGetNextOrderNumberQueryHandler(),
		GetSummary:             c.CreateGetSummaryQueryHandler(),
		GetReferences:          c.CreateGetReferencesQueryHandler(),
	}
}

// NewHTTPServer builds the echo instance serving the API.
func (c *CompositionRoot) NewHTTPServer(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(c.NewHTTPHandlers(), c.catalog)
	return httpin.NewRouter(ctx, server, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStockAlertsQueryHandler(), c.configs.StockAlertSchedule, c.logger)
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncDeliveryOrderUoWFactory func() commands.DeliveryOrderUoW

func (f FuncDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	return f()
}

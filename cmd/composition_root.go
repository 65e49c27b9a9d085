package cmd

import (
	"fmt"
	"log/slog"

	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/eventlog"
	natsadapter "kitchenpos/internal/adapters/out/nats"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/rabbitmq"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	closers    []func()
}

// NewCompositionRoot connects the configured event broker and builds the unit of
// work factory on top of it.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		logger:  logger,
	}

	publisher, err := root.createEventPublisher()
	if err != nil {
		return nil, err
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
	return root, nil
}

func (c *CompositionRoot) createEventPublisher() (ports.EventPublisher, error) {
	switch c.configs.EventBroker {
	case "", EventBrokerNone:
		return eventlog.NewEventPublisher(c.logger), nil
	case EventBrokerNats:
		conn, publisher, err := natsadapter.Connect(c.configs.NatsURL)
		if err != nil {
			return nil, fmt.Errorf("connect to nats: %w", err)
		}
		c.closers = append(c.closers, conn.Close)
		return publisher, nil
	case EventBrokerRabbitMQ:
		client, publisher, err := rabbitmq.Dial(c.configs.RabbitMQURL, c.configs.RabbitMQExchange)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		c.closers = append(c.closers, client.Close)
		return publisher, nil
	default:
		return nil, fmt.Errorf("unknown event broker %q", c.configs.EventBroker)
	}
}

// Close releases broker connections in reverse order of creation.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	return commands.NewCreateTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeTableGuestNumberCommandHandler() commands.ChangeTableGuestNumberCommandHandler {
	return commands.NewChangeTableGuestNumberCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeTableEmptyCommandHandler() commands.ChangeTableEmptyCommandHandler {
	return commands.NewChangeTableEmptyCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateListMenusQueryHandler() queries.ListMenusQueryHandler {
	return queries.NewListMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenLoadQueryHandler() queries.GetKitchenLoadQueryHandler {
	return queries.NewGetKitchenLoadQueryHandler(c.gormDB)
}

// CreateServer wires every HTTP operation to its handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateMenu:             c.CreateCreateMenuCommandHandler(),
		CreateTable:            c.CreateCreateTableCommandHandler(),
		ChangeTableEmpty:       c.CreateChangeTableEmptyCommandHandler(),
		ChangeTableGuestNumber: c.CreateChangeTableGuestNumberCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		ListMenus:              c.CreateListMenusQueryHandler(),
		ListTables:             c.CreateListTablesQueryHandler(),
		ListOrders:             c.CreateListOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetKitchenLoadQueryHandler(),
		c.configs.KitchenReportSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

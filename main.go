package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/fixturelab/seedgen/pkg/config"
	"github.com/fixturelab/seedgen/pkg/csvio"
	"github.com/fixturelab/seedgen/pkg/generate"
	"github.com/fixturelab/seedgen/pkg/logging"
	"github.com/fixturelab/seedgen/pkg/models"
	"github.com/fixturelab/seedgen/pkg/runner"
)

const usage = `Usage: seedgen <command> [flags]

Commands:
  customers   generate the customers seed file
  products    generate the products seed file
  orders      generate the orders and items seed files
  all         run all generators in sequence
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	switch os.Args[1] {
	case "customers":
		err = runCustomers(cfg, logger, os.Args[2:])
	case "products":
		err = runProducts(cfg, logger, os.Args[2:])
	case "orders":
		err = runOrders(cfg, logger, os.Args[2:])
	case "all":
		err = runAll(cfg, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func runCustomers(cfg *config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	numRecords := fs.Int("num-records", cfg.Counts.Customers, "number of base customers to generate")
	output := fs.String("output", cfg.Output.CustomersFile, "output file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen := generate.NewCustomerGenerator(cfg, time.Now().UnixNano(), logger)
	customers := gen.Generate(*numRecords)

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, c.Row())
	}
	if err := csvio.WriteFile(*output, models.CustomerHeader, rows); err != nil {
		return err
	}

	logger.Info("wrote customers seed",
		zap.String("path", *output),
		zap.Int("records", len(customers)),
		zap.Int("duplicates", len(customers)-*numRecords))
	return nil
}

func runProducts(cfg *config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	numRecords := fs.Int("num-records", cfg.Counts.Products, "number of products to generate")
	output := fs.String("output", cfg.Output.ProductsFile, "output file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen := generate.NewProductGenerator(cfg, time.Now().UnixNano(), logger)
	products := gen.Generate(*numRecords)

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, p.Row())
	}
	if err := csvio.WriteFile(*output, models.ProductHeader, rows); err != nil {
		return err
	}

	logger.Info("wrote products seed",
		zap.String("path", *output),
		zap.Int("records", len(products)))
	return nil
}

func runOrders(cfg *config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	numItems := fs.Int("num-items", cfg.Counts.Items, "target item volume (informational; actual count follows orders)")
	numOrders := fs.Int("num-orders", cfg.Counts.Orders, "number of orders to generate")
	ordersOutput := fs.String("orders-output", cfg.Output.OrdersFile, "orders output file path")
	itemsOutput := fs.String("items-output", cfg.Output.ItemsFile, "items output file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger.Info("generating orders",
		zap.Int("orders", *numOrders),
		zap.Int("item_target", *numItems))

	gen := generate.NewOrderItemGenerator(cfg, time.Now().UnixNano(), logger)
	orders, items := gen.Generate(*numOrders)

	itemRows := make([][]string, 0, len(items))
	for _, it := range items {
		itemRows = append(itemRows, it.Row())
	}
	if err := csvio.WriteFile(*itemsOutput, models.ItemHeader, itemRows); err != nil {
		return err
	}

	orderRows := make([][]string, 0, len(orders))
	for _, o := range orders {
		orderRows = append(orderRows, o.Row())
	}
	if err := csvio.WriteFile(*ordersOutput, models.OrderHeader, orderRows); err != nil {
		return err
	}

	logger.Info("wrote orders and items seeds",
		zap.String("orders_path", *ordersOutput),
		zap.Int("orders", len(orders)),
		zap.String("items_path", *itemsOutput),
		zap.Int("items", len(items)))
	return nil
}

func runAll(cfg *config.Config, logger *zap.Logger) error {
	bin, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve own binary path: %w", err)
	}

	steps := []runner.Step{
		{Name: "customers", Args: []string{"customers", "-num-records", strconv.Itoa(cfg.Counts.Customers)}},
		{Name: "products", Args: []string{"products", "-num-records", strconv.Itoa(cfg.Counts.Products)}},
		{Name: "orders", Args: []string{
			"orders",
			"-num-items", strconv.Itoa(cfg.Counts.Items),
			"-num-orders", strconv.Itoa(cfg.Counts.Orders),
		}},
	}

	_, ok := runner.New(bin, logger).Run(context.Background(), steps)
	if !ok {
		// Flush before the non-zero exit skips deferred syncs.
		logger.Sync()
		os.Exit(1)
	}
	return nil
}

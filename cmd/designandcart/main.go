// Command designandcart runs the demo commerce flow end to end: seed the
// demo data, show the cart, place an order, and print the order history.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/designandcart-afk/designandcart/cart"
	"github.com/designandcart-afk/designandcart/catalog"
	"github.com/designandcart-afk/designandcart/chat"
	"github.com/designandcart-afk/designandcart/checkout"
	"github.com/designandcart-afk/designandcart/core"
	"github.com/designandcart-afk/designandcart/order"
	"github.com/designandcart-afk/designandcart/profile"
	"github.com/designandcart-afk/designandcart/project"
	"github.com/designandcart-afk/designandcart/render"
	"github.com/designandcart-afk/designandcart/telemetry"
)

func main() {
	cfg, err := core.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := core.NewProductionLogger(cfg.Name)
	ids := core.UUIDSource{}

	storage, err := cfg.BuildStorage(logger)
	if err != nil {
		log.Fatal(err)
	}

	var tel core.Telemetry = &core.NoOpTelemetry{}
	if cfg.Telemetry.Enabled {
		provider, err := telemetry.NewOTelProvider(cfg.Telemetry.ServiceName, cfg.Telemetry.Endpoint)
		if err != nil {
			logger.Warn("Telemetry not available", map[string]interface{}{
				"error": err,
			})
		} else {
			tel = provider
			defer func() {
				if err := provider.Shutdown(context.Background()); err != nil {
					logger.Warn("Telemetry shutdown failed", map[string]interface{}{
						"error": err,
					})
				}
			}()
		}
	}

	products := catalog.Demo()
	carts := cart.NewStore(cart.StoreOptions{Storage: storage, IDs: ids, Logger: logger, Telemetry: tel})
	orders := order.NewStore(order.StoreOptions{Storage: storage, IDs: ids, Logger: logger, Telemetry: tel})
	projects := project.NewStore(project.StoreOptions{Storage: storage, IDs: ids, Logger: logger})
	chats := chat.NewStore(chat.StoreOptions{Storage: storage, IDs: ids, Logger: logger})
	renders := render.NewStore(render.StoreOptions{Storage: storage, IDs: ids, Logger: logger})
	profiles := profile.NewStore(profile.StoreOptions{Storage: storage, Logger: logger})

	ctx := context.Background()

	if cfg.Demo.Seed {
		if err := seedDemoData(ctx, carts, orders, projects, chats, renders); err != nil {
			log.Fatal(err)
		}
	}

	svc := checkout.NewService(checkout.ServiceOptions{
		Cart:      carts,
		Orders:    orders,
		Catalog:   products,
		Logger:    logger,
		Telemetry: tel,
	})

	if err := run(ctx, svc, carts, orders, profiles, products); err != nil {
		log.Fatal(err)
	}
}

func seedDemoData(ctx context.Context, carts *cart.Store, orders *order.Store, projects *project.Store, chats *chat.Store, renders *render.Store) error {
	now := time.Now()
	if err := carts.SeedIfEmpty(ctx, cart.DemoLines()); err != nil {
		return err
	}
	if err := orders.SeedIfEmpty(ctx, order.DemoOrders(now)); err != nil {
		return err
	}
	if err := projects.SeedIfEmpty(ctx, project.DemoProjects(now)); err != nil {
		return err
	}
	if err := projects.SeedLinksIfEmpty(ctx, project.DemoLinks()); err != nil {
		return err
	}
	if err := renders.SeedIfEmpty(ctx, render.DemoRenders()); err != nil {
		return err
	}
	seeded, err := projects.Load(ctx)
	if err != nil {
		return err
	}
	return chats.SeedWelcome(ctx, seeded)
}

func run(ctx context.Context, svc *checkout.Service, carts *cart.Store, orders *order.Store, profiles *profile.Store, products *catalog.Catalog) error {
	designer, err := profiles.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s • %s\n\n", designer.Name, designer.Studio)

	fmt.Fprintln(os.Stdout, "Catalog:")
	for _, p := range products.Products() {
		fmt.Fprintf(os.Stdout, "  %-10s %-22s ₹%d\n", p.ID, p.Title, p.Price)
	}

	lines, err := carts.Load(ctx)
	if err != nil {
		return err
	}
	subtotal, err := svc.Subtotal(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nCart (%d lines, subtotal ₹%d):\n", len(lines), subtotal)
	for _, l := range lines {
		title := l.ProductID
		if p, ok := products.ByID(l.ProductID); ok {
			title = p.Title
		}
		fmt.Fprintf(os.Stdout, "  %s × %d", title, l.Qty)
		if l.Area != "" {
			fmt.Fprintf(os.Stdout, " • %s", l.Area)
		}
		fmt.Fprintln(os.Stdout)
	}

	placed, err := svc.Checkout(ctx)
	if err != nil {
		return err
	}
	if placed == nil {
		fmt.Fprintln(os.Stdout, "\nCart is empty - nothing to check out.")
	} else {
		fmt.Fprintf(os.Stdout, "\nPlaced %s: ₹%d (%s)\n", placed.ID, placed.Total, placed.Status)
	}

	history, err := orders.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nOrder history (%d):\n", len(history))
	for _, o := range history {
		placedAt := time.UnixMilli(o.TS).Format(time.RFC3339)
		fmt.Fprintf(os.Stdout, "  %-12s ₹%-8d %-10s %s\n", o.ID, o.Total, o.Status, placedAt)
	}
	return nil
}

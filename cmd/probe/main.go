package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/Modeva-Ecommerce/modeva-storefront/views"
)

// main queries the upstream catalog the way the storefront does and prints one page.
// Usage: go run ./cmd/probe -category jewelery -search ring -page 1 -add 5,5,7
// This is a standalone CLI tool, not part of the main application
func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	category := flag.String("category", models.AllCategories, "category to filter by")
	search := flag.String("search", "", "case-insensitive title search")
	page := flag.Int("page", 1, "page number")
	pageSize := flag.Int("pageSize", cfg.PageSize, "items per page")
	add := flag.String("add", "", "comma separated product ids to put in a scratch cart")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA STOREFRONT - Catalog Probe")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	logger, err := config.NewLogger("warn")
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}

	ctx, cancel := config.WithCustomTimeout(cfg.UpstreamTimeout * 3)
	defer cancel()

	client := services.NewCatalogClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger)
	products := services.NewProductService(client, cfg.PageSize, logger)
	log.Printf("✓ Upstream: %s", client.BaseURL())

	state := models.FilterState{Category: *category, Search: *search, Page: *page, PageSize: *pageSize}
	res := products.GetProducts(ctx, state)
	if res.TotalCount == 0 {
		fmt.Printf("%s\n\n", views.EmptyMessage)
	}

	for _, p := range res.Products {
		fmt.Printf("  #%-3d %-40s %10s  %s\n", p.ID, views.Truncate(p.Title, 40), views.Price(p.Price), p.Category)
	}

	total := catalog.TotalPages(res.TotalCount, res.PageSize)
	fmt.Println()
	fmt.Printf("Page %d of %d (%d matching, categories: %s)\n",
		res.CurrentPage, total, res.TotalCount, strings.Join(res.Categories, ", "))

	if *add != "" {
		probeCart(ctx, products, *add)
	}
}

// probeCart adds each id to an in-memory cart and prints the stored payload.
func probeCart(ctx context.Context, products *services.ProductService, ids string) {
	storage := cart.NewMemoryStorage(nil)
	recorder := &cart.Recorder{}
	store := cart.Load(ctx, storage, recorder, nil)

	for _, raw := range strings.Split(ids, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Printf("❌ %q is not a product id\n", raw)
			continue
		}
		product, err := products.GetProductByID(ctx, id)
		if err != nil {
			fmt.Printf("❌ Product %d: %v\n", id, err)
			continue
		}
		if err := store.AddItem(ctx, product); err != nil {
			fmt.Printf("❌ Product %d not added: %v\n", id, err)
		}
	}

	fmt.Println()
	for _, line := range views.NewCartPanel(store.Cart()).Lines {
		fmt.Printf("  %-30s x%-3d %10s\n", line.Title, line.Quantity, line.LineTotal)
	}
	fmt.Printf("Cart: %d items, total %s (%d toasts)\n", store.TotalItemCount(), views.Money(store.Total()), len(recorder.Toasts))
	fmt.Printf("Stored: %s\n", storage.Bytes())
}

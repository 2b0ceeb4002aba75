package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/config"
	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	"github.com/devyassinepro/shopify-product-publisher/internal/service"
	"github.com/devyassinepro/shopify-product-publisher/internal/shopify"
	"github.com/devyassinepro/shopify-product-publisher/internal/source"
)

// One-shot tool: publish a single storefront product URL into the store
// configured via SHOPIFY_SHOP_DOMAIN / SHOPIFY_ACCESS_TOKEN.
//
// Usage: go run cmd/import-url/main.go <product-url>
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: import-url <product-url>")
		os.Exit(1)
	}
	productURL := strings.TrimSpace(os.Args[1])

	// .env is optional; env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Shopify.ShopDomain == "" || cfg.Shopify.AccessToken == "" {
		fmt.Fprintln(os.Stderr, "SHOPIFY_SHOP_DOMAIN and SHOPIFY_ACCESS_TOKEN are required")
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	store := &domain.Store{
		ID:          uuid.New(),
		ShopDomain:  cfg.Shopify.ShopDomain,
		AccessToken: cfg.Shopify.AccessToken,
		IsActive:    true,
	}

	storefront := source.NewStorefrontClient(cfg.App.StorefrontUserAgent, cfg.App.FetchTimeout, logger)
	adapter := source.NewRemoteProductAdapter(storefront, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resync := service.NewResyncQueue(1, nil, logger)
	go resync.Run(ctx)

	publisher := service.NewPublishService(shopify.NewClient(cfg.Shopify, logger), resync, logger)

	fmt.Printf("Fetching %s ...\n", productURL)
	product, err := adapter.Parse(ctx, productURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %q (%d variants, %d images)\n", product.Title, len(product.Variants), len(product.Images))

	outcome, err := publisher.PublishProduct(ctx, store, product)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Publish failed: %v\n", err)
		os.Exit(1)
	}

	switch outcome.Status {
	case domain.PublishCreated:
		fmt.Printf("✅ Product created: %s\n", outcome.ProductID)
	case domain.PublishRejected:
		fmt.Printf("⚠️  Rejected by platform: %s\n", strings.Join(outcome.Messages, ", "))
		os.Exit(1)
	default:
		fmt.Printf("❌ Transport failed: %s\n", outcome.Reason)
		os.Exit(1)
	}
}

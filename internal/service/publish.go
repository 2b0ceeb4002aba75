package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	"github.com/devyassinepro/shopify-product-publisher/internal/shopify"
)

// PublishService drives publish attempts through the gateway and interprets
// the two-layer response (HTTP transport result wrapping the GraphQL
// success/user-error result) into a single outcome per product.
type PublishService struct {
	gateway *shopify.Client
	resync  *ResyncQueue
	logger  *zap.Logger
}

// NewPublishService creates a publish service
func NewPublishService(gateway *shopify.Client, resync *ResyncQueue, logger *zap.Logger) *PublishService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublishService{
		gateway: gateway,
		resync:  resync,
		logger:  logger,
	}
}

// PublishProduct runs one attempt: build the mutation document, send it, and
// interpret the response. Build failures (malformed numerics, missing required
// fields) return an error before any gateway call; everything after the send
// is expressed as an outcome, never an error.
func (s *PublishService) PublishProduct(ctx context.Context, store *domain.Store, product *domain.CanonicalProduct) (*domain.PublishOutcome, error) {
	runID := uuid.New()

	input, err := shopify.BuildProductInput(product)
	if err != nil {
		return nil, err
	}
	query := shopify.ProductCreateMutation(input)
	s.logger.Debug("Built product mutation",
		zap.String("run_id", runID.String()),
		zap.String("title", product.Title),
	)

	resp, err := s.gateway.Send(ctx, store, query)
	if err != nil {
		s.logger.Warn("Gateway call failed",
			zap.String("run_id", runID.String()),
			zap.Error(err),
		)
		return &domain.PublishOutcome{
			Status: domain.PublishTransportFailed,
			Reason: err.Error(),
		}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return &domain.PublishOutcome{
			Status: domain.PublishTransportFailed,
			Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}, nil
	}
	if resp.DecodeErr != nil {
		return &domain.PublishOutcome{
			Status: domain.PublishTransportFailed,
			Reason: resp.DecodeErr.Error(),
		}, nil
	}

	result, err := shopify.ParseProductCreate(resp.Body)
	if err != nil {
		return &domain.PublishOutcome{
			Status: domain.PublishTransportFailed,
			Reason: err.Error(),
		}, nil
	}

	if messages := result.UserErrorMessages(); len(messages) > 0 {
		s.logger.Info("Product rejected by platform",
			zap.String("run_id", runID.String()),
			zap.String("title", product.Title),
			zap.Strings("messages", messages),
		)
		return &domain.PublishOutcome{
			Status:   domain.PublishRejected,
			Messages: messages,
		}, nil
	}

	productID := result.ProductID()
	if productID == "" {
		return &domain.PublishOutcome{
			Status: domain.PublishTransportFailed,
			Reason: "productCreate returned no product id",
		}, nil
	}

	s.logger.Info("Product created",
		zap.String("run_id", runID.String()),
		zap.String("title", product.Title),
		zap.String("product_id", productID),
	)
	s.resync.Enqueue(store)
	return &domain.PublishOutcome{
		Status:    domain.PublishCreated,
		ProductID: productID,
	}, nil
}

// PublishCatalog publishes a sequence of products one by one. Products are
// isolated from each other: a rejection or failure is recorded in the report
// and the loop continues.
func (s *PublishService) PublishCatalog(ctx context.Context, store *domain.Store, products []domain.CanonicalProduct) *domain.CatalogReport {
	report := &domain.CatalogReport{Total: len(products)}
	for i := range products {
		product := &products[i]
		outcome, err := s.PublishProduct(ctx, store, product)
		if err != nil {
			// Build-stage failure: nothing was sent for this product.
			outcome = &domain.PublishOutcome{
				Status: domain.PublishTransportFailed,
				Reason: err.Error(),
			}
			report.Failed++
		} else {
			switch outcome.Status {
			case domain.PublishCreated:
				report.Created++
			case domain.PublishRejected:
				report.Rejected++
			default:
				report.Failed++
			}
		}
		report.Outcomes = append(report.Outcomes, domain.ProductOutcome{
			Title:   product.Title,
			Outcome: *outcome,
		})
	}
	s.logger.Info("Catalog publish finished",
		zap.String("store_id", store.ID.String()),
		zap.Int("total", report.Total),
		zap.Int("created", report.Created),
		zap.Int("rejected", report.Rejected),
		zap.Int("failed", report.Failed),
	)
	return report
}

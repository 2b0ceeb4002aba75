package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devyassinepro/shopify-product-publisher/internal/api/middleware"
	"github.com/devyassinepro/shopify-product-publisher/internal/domain"
	"github.com/devyassinepro/shopify-product-publisher/internal/service"
	"github.com/devyassinepro/shopify-product-publisher/internal/source"
	apperrors "github.com/devyassinepro/shopify-product-publisher/pkg/errors"
)

// Deps bundles the services the product handlers need
type Deps struct {
	Directory *service.LocationDirectory
	Publisher *service.PublishService
	Manual    *source.ManualFormAdapter
	Remote    *source.RemoteProductAdapter
	Catalog   *source.RemoteCatalogAdapter
}

// HandlePublishProduct handles POST /v1/products (manual product form)
func HandlePublishProduct(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := middleware.GetStoreFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form submission"})
			return
		}

		locations, err := deps.Directory.ResolveLocations(c.Request.Context(), store)
		if err != nil {
			logger.Error("Failed to resolve locations", zap.Error(err), zap.String("store_id", store.ID.String()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		product, err := deps.Manual.Parse(c.Request.PostForm, locations)
		if err != nil {
			respondParseError(c, err)
			return
		}

		outcome, err := deps.Publisher.PublishProduct(c.Request.Context(), store, product)
		if err != nil {
			respondParseError(c, err)
			return
		}
		respondOutcome(c, outcome)
	}
}

// HandleImportProductURL handles POST /v1/products/import-url (single product
// scraped from another storefront)
func HandleImportProductURL(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := middleware.GetStoreFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		url := strings.TrimSpace(c.PostForm("url"))
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		product, err := deps.Remote.Parse(c.Request.Context(), url)
		if err != nil {
			respondParseError(c, err)
			return
		}

		outcome, err := deps.Publisher.PublishProduct(c.Request.Context(), store, product)
		if err != nil {
			respondParseError(c, err)
			return
		}
		respondOutcome(c, outcome)
	}
}

// HandleImportStoreURL handles POST /v1/products/import-store (bulk catalog
// import, first listing page only)
func HandleImportStoreURL(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := middleware.GetStoreFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		url := strings.TrimSpace(c.PostForm("url"))
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		products, err := deps.Catalog.Parse(c.Request.Context(), url)
		if err != nil {
			respondParseError(c, err)
			return
		}

		report := deps.Publisher.PublishCatalog(c.Request.Context(), store, products)
		c.JSON(http.StatusOK, catalogReportJSON(report))
	}
}

// respondOutcome maps a publish outcome to the response surface
func respondOutcome(c *gin.Context, outcome *domain.PublishOutcome) {
	switch outcome.Status {
	case domain.PublishCreated:
		c.JSON(http.StatusOK, gin.H{
			"status":     string(outcome.Status),
			"product_id": outcome.ProductID,
		})
	case domain.PublishRejected:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": string(outcome.Status),
			"errors": outcome.Messages,
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"status": string(outcome.Status),
			"reason": outcome.Reason,
		})
	}
}

// respondParseError maps the adapter/builder error taxonomy to HTTP statuses
func respondParseError(c *gin.Context, err error) {
	var validationErr *apperrors.ErrValidation
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}
	var fetchErr *apperrors.ErrFetch
	var decodeErr *apperrors.ErrDecode
	var schemaErr *apperrors.ErrSchema
	if errors.As(err, &fetchErr) || errors.As(err, &decodeErr) || errors.As(err, &schemaErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func catalogReportJSON(report *domain.CatalogReport) gin.H {
	outcomes := make([]gin.H, 0, len(report.Outcomes))
	for _, po := range report.Outcomes {
		entry := gin.H{
			"title":  po.Title,
			"status": string(po.Outcome.Status),
		}
		switch po.Outcome.Status {
		case domain.PublishCreated:
			entry["product_id"] = po.Outcome.ProductID
		case domain.PublishRejected:
			entry["errors"] = po.Outcome.Messages
		default:
			entry["reason"] = po.Outcome.Reason
		}
		outcomes = append(outcomes, entry)
	}
	return gin.H{
		"total":    report.Total,
		"created":  report.Created,
		"rejected": report.Rejected,
		"failed":   report.Failed,
		"outcomes": outcomes,
	}
}

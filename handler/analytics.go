package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AutoNateAI/insta-matrix-insights-flow/analyzer"
	"github.com/AutoNateAI/insta-matrix-insights-flow/metrics"
	"github.com/AutoNateAI/insta-matrix-insights-flow/model"
	"github.com/AutoNateAI/insta-matrix-insights-flow/store"
)

type InsightsHandler struct {
	store     *store.DataStore
	publisher *EventPublisher
}

func NewInsightsHandler(store *store.DataStore, publisher *EventPublisher) *InsightsHandler {
	return &InsightsHandler{store: store, publisher: publisher}
}

// LoadData ingests a raw JSON export from the request body. A bad upload
// never replaces previously loaded data.
func (h *InsightsHandler) LoadData(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	count, err := h.store.Load(raw)
	if err != nil {
		var parseErr *store.ParseError
		var schemaErr *store.SchemaError
		switch {
		case errors.As(err, &parseErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse data. Please check your JSON format."})
		case errors.As(err, &schemaErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": schemaErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.publisher.PublishDatasetLoaded(count)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Successfully loaded %d posts", count),
		"count":   count,
	})
}

// ClearData resets the corpus and all derived analytics.
func (h *InsightsHandler) ClearData(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All data cleared",
	})
}

// GetStatus reports the data lifecycle state.
func (h *InsightsHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hasData":   h.store.HasData(),
		"isLoading": h.store.IsLoading(),
		"postCount": len(h.store.Posts()),
	})
}

// GetPosts returns the raw corpus.
func (h *InsightsHandler) GetPosts(c *gin.Context) {
	posts := h.store.Posts()
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetSummary returns the dashboard headline metrics.
func (h *InsightsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Summary())
}

// GetTiming returns the timing analysis, or null when no data is loaded.
func (h *InsightsHandler) GetTiming(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Timing())
}

// GetContent returns the content analysis, or null when no data is loaded.
func (h *InsightsHandler) GetContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Content())
}

// GetTopKeywords ranks keywords for display, excluding common stop words.
func (h *InsightsHandler) GetTopKeywords(c *gin.Context) {
	limit := 20
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 {
		limit = l
	}
	c.JSON(http.StatusOK, gin.H{
		"keywords": analyzer.TopKeywords(h.store.Content(), limit),
	})
}

// GetHashtags returns the hashtag analysis, or null when no data is loaded.
func (h *InsightsHandler) GetHashtags(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Hashtags())
}

// GetNetwork returns the interaction graph, or null when no data is loaded.
func (h *InsightsHandler) GetNetwork(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Network())
}

// GetEngagement returns the flattened engagement records, optionally
// filtered by a search query and truncated to a limit.
func (h *InsightsHandler) GetEngagement(c *gin.Context) {
	records := analyzer.FilterEngagement(h.store.Engagement(), c.Query("search"))

	total := len(records)
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil && l > 0 && l < len(records) {
		records = records[:l]
	}
	c.JSON(http.StatusOK, gin.H{
		"engagement": records,
		"total":      total,
	})
}

// GetEngagementSummary ranks top commenters and most commented posts over
// the (optionally filtered) engagement slice.
func (h *InsightsHandler) GetEngagementSummary(c *gin.Context) {
	records := analyzer.FilterEngagement(h.store.Engagement(), c.Query("search"))
	c.JSON(http.StatusOK, analyzer.SummarizeEngagement(records))
}

// ExportReport assembles the full report snapshot. With a search query the
// engagement slice is the filtered subset the caller is looking at.
func (h *InsightsHandler) ExportReport(c *gin.Context) {
	var override []model.EngagementRecord
	if search := c.Query("search"); search != "" {
		override = analyzer.FilterEngagement(h.store.Engagement(), search)
	}

	report := h.store.Report(override)
	metrics.ReportsExported.WithLabelValues("full").Inc()
	h.publisher.PublishReportExported("full")
	c.JSON(http.StatusOK, report)
}

type partialExportRequest struct {
	DataType string      `json:"dataType" binding:"required"`
	Data     interface{} `json:"data" binding:"required"`
}

// ExportPartial wraps a caller-chosen slice in the partial export envelope.
func (h *InsightsHandler) ExportPartial(c *gin.Context) {
	var req partialExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics.ReportsExported.WithLabelValues("partial").Inc()
	h.publisher.PublishReportExported("partial")
	c.JSON(http.StatusOK, store.PartialReport(req.DataType, req.Data))
}

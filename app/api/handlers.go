package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dgavara/fightwire/app/database"
	"github.com/dgavara/fightwire/app/scheduler"
)

func NewHandler(articleRepo database.ArticleRepository, runRepo database.RunRepository,
	sched scheduler.SchedulerInterface, siteDir string, version string) *Handler {
	return &Handler{
		articleRepo: articleRepo,
		runRepo:     runRepo,
		scheduler:   sched,
		siteDir:     siteDir,
		version:     version,
	}
}

// GetSite serves the generated index page. Before the first completed run
// there is nothing to serve yet.
func (h *Handler) GetSite(c *gin.Context) {
	path := filepath.Join(h.siteDir, "index.html")
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Site not generated yet",
			"message": "The first pipeline run has not completed",
		})
		return
	}

	c.File(path)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	}

	if articleCount, err := h.articleRepo.GetArticleCount(); err == nil {
		health["articles"] = articleCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{}

	articleCount, err := h.articleRepo.GetArticleCount()
	if err != nil {
		slog.Error("Database error", "operation", "get_article_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	stats["articles"] = articleCount

	runs, err := h.runRepo.ListRuns(1)
	if err != nil {
		slog.Error("Database error", "operation", "list_runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if len(runs) > 0 {
		last := runs[0]
		stats["last_run"] = map[string]interface{}{
			"run_id":           last.RunID,
			"started_at":       last.StartedAt,
			"finished_at":      last.FinishedAt,
			"total_candidates": last.TotalCandidates,
			"stored_new":       last.StoredNew,
			"stored_updated":   last.StoredUpdated,
			"skipped_existing": last.SkippedExisting,
			"extract_ok":       last.ExtractOK,
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIListArticles(c *gin.Context) {
	days := queryInt(c, "days", 14)
	limit := queryInt(c, "limit", 200)

	articles, err := h.articleRepo.ListRecent(days, limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_recent", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(articles))
	for _, article := range articles {
		rows = append(rows, map[string]interface{}{
			"url":             article.URL,
			"final_url":       article.FinalURL,
			"title":           article.Title,
			"source":          article.Source,
			"published":       article.Published,
			"domain":          article.Domain,
			"fetched_at":      article.FetchedAt,
			"extracted_chars": article.ExtractedChars,
			"content_hash":    article.ContentHash,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"articles": rows,
		"total":    len(rows),
	})
}

func (h *Handler) APIListRuns(c *gin.Context) {
	limit := queryInt(c, "limit", 20)

	runs, err := h.runRepo.ListRuns(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, map[string]interface{}{
			"run_id":           run.RunID,
			"started_at":       run.StartedAt,
			"finished_at":      run.FinishedAt,
			"total_candidates": run.TotalCandidates,
			"stored_new":       run.StoredNew,
			"stored_updated":   run.StoredUpdated,
			"skipped_existing": run.SkippedExisting,
			"extract_ok":       run.ExtractOK,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"runs":  rows,
		"total": len(rows),
	})
}

func (h *Handler) APITriggerRefresh(c *gin.Context) {
	if err := h.scheduler.TriggerRun(); err != nil {
		slog.Warn("Refresh trigger rejected", "error", err)
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Failed to trigger refresh",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Pipeline run queued",
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

package scheduling

import (
	"net/http"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/logger"
)

// AnalyticsHandler serves aggregated statistics over a user's work items
type AnalyticsHandler struct {
	WorkItemRepository WorkItemRepositoryInterface
	Logger             logger.Interface
	ResponseManager    *communication.ResponseManager
}

// GetAnalytics is the route for a user's work item statistics
func (handler *AnalyticsHandler) GetAnalytics(writer http.ResponseWriter, request *http.Request) {
	userID := request.URL.Query().Get("userId")
	if userID == "" {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Missing userId", nil)
		return
	}

	counts, err := handler.WorkItemRepository.CountByStatus(request.Context(), userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem aggregating work items", err)
		return
	}

	averageScore, err := handler.WorkItemRepository.AverageScore(request.Context(), userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem computing the average priority score", err)
		return
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	completionRate := 0.0
	if total > 0 {
		completionRate = float64(counts[StatusCompleted]) / float64(total)
	}

	var response = map[string]interface{}{
		"totalItems":           total,
		"itemsByStatus":        counts,
		"completionRate":       completionRate,
		"averagePriorityScore": averageScore,
		"averagePriorityLabel": PriorityLabel(averageScore),
	}

	handler.ResponseManager.Respond(writer, response)
}

package scheduling

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ScheduleHandler handles all schedule related API calls
type ScheduleHandler struct {
	PlanningService *PlanningService
	Logger          logger.Interface
	ResponseManager *communication.ResponseManager
}

// ScheduleGenerateRequest is the payload for generating a schedule
type ScheduleGenerateRequest struct {
	UserID       string    `json:"userId" validate:"required"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
	IncludeItems []string  `json:"includeItems"`
}

// ScheduleGenerate is the route for generating a schedule over a planning window
func (handler *ScheduleHandler) ScheduleGenerate(writer http.ResponseWriter, request *http.Request) {
	generateRequest := ScheduleGenerateRequest{}

	err := json.NewDecoder(request.Body).Decode(&generateRequest)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := validator.New()
	err = v.Struct(generateRequest)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	// The window end date is inclusive, extend it to the end of its day
	window := date.Timespan{
		Start: generateRequest.Start,
		End:   endOfDay(generateRequest.End),
	}

	plan, err := handler.PlanningService.GenerateSchedule(request.Context(), generateRequest.UserID, window, generateRequest.IncludeItems)
	if err != nil {
		if IsValidationError(err) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Invalid scheduling input", err)
			return
		}

		if errors.Is(err, ErrInternalInconsistency) {
			handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
				"Scheduling aborted because it produced an inconsistent plan", err)
			return
		}

		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem generating the schedule", err)
		return
	}

	handler.ResponseManager.RespondWithStatus(writer, plan, http.StatusCreated)
}

// ScheduleLatest is the route for fetching the most recent plan of a user
func (handler *ScheduleHandler) ScheduleLatest(writer http.ResponseWriter, request *http.Request) {
	userID := request.URL.Query().Get("userId")
	if userID == "" {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Missing userId", nil)
		return
	}

	plan, err := handler.PlanningService.LatestPlan(request.Context(), userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "No schedule found", err)
		return
	}

	handler.ResponseManager.Respond(writer, plan)
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

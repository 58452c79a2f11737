package scheduling

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// WorkItemHandler handles all work item related API calls
type WorkItemHandler struct {
	WorkItemRepository WorkItemRepositoryInterface
	Logger             logger.Interface
	ResponseManager    *communication.ResponseManager
}

// WorkItemAdd is the route for adding a work item
func (handler *WorkItemHandler) WorkItemAdd(writer http.ResponseWriter, request *http.Request) {
	item := WorkItem{}

	err := json.NewDecoder(request.Body).Decode(&item)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	status, err := ParseStatus(string(item.Status))
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Unknown status", err)
		return
	}
	item.Status = status

	v := validator.New()
	err = v.Struct(item)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	item.PriorityScore = Score(&item, time.Now())

	err = handler.WorkItemRepository.Add(request.Context(), &item)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Persisting work item in database did not work", err)
		return
	}

	handler.ResponseManager.Respond(writer, &item)
}

// WorkItemUpdate is the route for updating a work item
func (handler *WorkItemHandler) WorkItemUpdate(writer http.ResponseWriter, request *http.Request) {
	userID := request.URL.Query().Get("userId")
	itemID := mux.Vars(request)["workItemID"]

	item, err := handler.WorkItemRepository.FindUpdatableByID(request.Context(), itemID, userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find work item", err)
		return
	}

	err = json.NewDecoder(request.Body).Decode(&item)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	status, err := ParseStatus(string(item.Status))
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Unknown status", err)
		return
	}
	item.Status = status

	v := validator.New()
	err = v.Struct(item)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	// Scoring inputs may have changed
	item.PriorityScore = Score((*WorkItem)(item), time.Now())

	err = handler.WorkItemRepository.Update(request.Context(), item)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Could not persist work item", err)
		return
	}

	handler.ResponseManager.Respond(writer, item)
}

// GetAllWorkItems is the route for getting all work items of a user, paginated
func (handler *WorkItemHandler) GetAllWorkItems(writer http.ResponseWriter, request *http.Request) {
	userID := request.URL.Query().Get("userId")
	if userID == "" {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Missing userId", nil)
		return
	}

	var page int
	var pageSize = 25
	var err error

	queryPage := request.URL.Query().Get("page")
	queryPageSize := request.URL.Query().Get("pageSize")
	queryLastModifiedAt := request.URL.Query().Get("lastModifiedAt")
	queryDueAt := request.URL.Query().Get("dueAt")

	var filters []Filter

	if queryLastModifiedAt != "" {
		timeValue, err := time.Parse(time.RFC3339, queryLastModifiedAt)
		if err != nil {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
				"Wrong date format in query string", err)
			return
		}
		filters = append(filters, Filter{Field: "lastModifiedAt", Operator: "$gte", Value: timeValue})
	}

	if queryDueAt != "" {
		timeValue, err := time.Parse(time.RFC3339, queryDueAt)
		if err != nil {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
				"Wrong date format in query string", err)
			return
		}
		filters = append(filters, Filter{Field: "dueAt", Operator: "$gte", Value: timeValue})
	}

	if queryPage != "" {
		page, err = strconv.Atoi(queryPage)
		if err != nil {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
				"Bad query parameter page", err)
			return
		}
	}

	if queryPageSize != "" {
		pageSize, err = strconv.Atoi(queryPageSize)
		if err != nil {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
				"Bad query parameter pageSize", err)
			return
		}

		if pageSize > 25 {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
				"Page size can't be more than 25", nil)
			return
		}
	}

	items, count, err := handler.WorkItemRepository.FindAll(request.Context(), userID, page, pageSize, filters)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem in query", err)
		return
	}

	pages := int(math.Ceil(float64(count) / float64(pageSize)))

	var response = map[string]interface{}{
		"results": items,
		"pagination": map[string]interface{}{
			"resultCount": count,
			"pageSize":    pageSize,
			"pageIndex":   page,
			"pages":       pages,
		},
	}

	handler.ResponseManager.Respond(writer, response)
}

// WorkItemDelete is the route for deleting a work item
func (handler *WorkItemHandler) WorkItemDelete(writer http.ResponseWriter, request *http.Request) {
	userID := request.URL.Query().Get("userId")
	itemID := mux.Vars(request)["workItemID"]

	err := handler.WorkItemRepository.Delete(request.Context(), itemID, userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find work item", err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

package scheduling

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// CommitmentHandler handles all fixed commitment related API calls
type CommitmentHandler struct {
	CommitmentRepository CommitmentRepositoryInterface
	Logger               logger.Interface
	ResponseManager      *communication.ResponseManager
}

// CommitmentAdd is the route for adding a fixed commitment
func (handler *CommitmentHandler) CommitmentAdd(writer http.ResponseWriter, request *http.Request) {
	commitment := FixedCommitment{}

	err := json.NewDecoder(request.Body).Decode(&commitment)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := validator.New()
	err = v.Struct(commitment)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	if !commitment.Date.IsStartBeforeEnd() {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Commitment must end after it starts", nil)
		return
	}

	err = handler.CommitmentRepository.Add(request.Context(), &commitment)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Persisting commitment in database did not work", err)
		return
	}

	handler.ResponseManager.Respond(writer, &commitment)
}

// GetAllCommitments is the route for getting all commitments of a user, paginated
func (handler *CommitmentHandler) GetAllCommitments(writer http.ResponseWriter, request *http.Request) {
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
	}

	commitments, count, err := handler.CommitmentRepository.FindAll(request.Context(), userID, page, pageSize)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Problem in query", err)
		return
	}

	pages := int(math.Ceil(float64(count) / float64(pageSize)))

	var response = map[string]interface{}{
		"results": commitments,
		"pagination": map[string]interface{}{
			"resultCount": count,
			"pageSize":    pageSize,
			"pageIndex":   page,
			"pages":       pages,
		},
	}

	handler.ResponseManager.Respond(writer, response)
}

// CommitmentDelete is the route for deleting a fixed commitment
func (handler *CommitmentHandler) CommitmentDelete(writer http.ResponseWriter, request *http.Request) {
	userID := request.URL.Query().Get("userId")
	commitmentID := mux.Vars(request)["commitmentID"]

	err := handler.CommitmentRepository.Delete(request.Context(), commitmentID, userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find commitment", err)
		return
	}

	handler.ResponseManager.RespondWithNoContent(writer)
}

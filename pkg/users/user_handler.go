package users

import (
	"encoding/json"
	"net/http"

	"github.com/allocator-app/allocator-backend/pkg/communication"
	"github.com/allocator-app/allocator-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler handles all user related API calls
type Handler struct {
	UserRepository  UserRepositoryInterface
	Logger          logger.Interface
	ResponseManager *communication.ResponseManager
}

// UserAdd is the route for adding a user
func (handler *Handler) UserAdd(writer http.ResponseWriter, request *http.Request) {
	user := User{}

	err := json.NewDecoder(request.Body).Decode(&user)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	if user.Preferences.MinimumBlockSize == 0 {
		user.Preferences = DefaultPreferences()
	}

	v := validator.New()
	err = v.Struct(user)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	err = handler.UserRepository.Add(request.Context(), &user)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Persisting user in database did not work", err)
		return
	}

	handler.ResponseManager.RespondWithStatus(writer, &user, http.StatusCreated)
}

// UserGet is the route for getting a user
func (handler *Handler) UserGet(writer http.ResponseWriter, request *http.Request) {
	userID := mux.Vars(request)["userID"]

	user, err := handler.UserRepository.FindByID(request.Context(), userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find user", err)
		return
	}

	handler.ResponseManager.Respond(writer, user)
}

// PreferencesUpdate is the route for updating a user's scheduling preferences
func (handler *Handler) PreferencesUpdate(writer http.ResponseWriter, request *http.Request) {
	userID := mux.Vars(request)["userID"]

	user, err := handler.UserRepository.FindByID(request.Context(), userID)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusNotFound, "Couldn't find user", err)
		return
	}

	preferences := user.Preferences

	err = json.NewDecoder(request.Body).Decode(&preferences)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	v := validator.New()
	err = v.Struct(preferences)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, e.Error(), e)
			return
		}
	}

	if !preferences.WorkDayStart.Before(preferences.WorkDayEnd) {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"Work day must end after it starts", nil)
		return
	}

	if len(preferences.ActiveWeekdays) == 0 {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest,
			"At least one weekday must be active", nil)
		return
	}

	user.Preferences = preferences

	err = handler.UserRepository.Update(request.Context(), user)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusInternalServerError,
			"Could not persist user", err)
		return
	}

	handler.ResponseManager.Respond(writer, user)
}

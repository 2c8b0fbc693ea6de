package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"goalapp/internal/credentials"
	"goalapp/internal/http/handler/middleware"
	"goalapp/internal/http/payload"

	"go.uber.org/zap"
)

var (
	CreateUser  = "POST /users"
	CurrentUser = "GET /users/me"
	Login       = "POST /session"
	Logout      = "DELETE /session"
)

const SessionTokenHeader = "Session-Token"

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	credentials      CredentialService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, credentialService CredentialService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		credentials:      credentialService,
	}
}

func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	user, err := h.credentials.CreateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		var validationErr *credentials.ValidationError
		if errors.As(err, &validationErr) {
			h.respond(w, Response{
				Message: "Could not create user",
				Errors:  validationErr.Errors,
			}, http.StatusUnprocessableEntity,
				requestId)
			h.logs.Infow("user rejected by validation",
				"error", err,
				"handler", CreateUser,
				"request_id", requestId)
			return
		}

		h.respond(w, Response{
			Message: "Could not create user",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to create user",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user signed up",
		"user_id", user.ID,
		"handler", CreateUser,
		"request_id", requestId)

	h.respond(w, Response{
		Data: userData{
			ID:           user.ID,
			Username:     user.Username,
			SessionToken: user.SessionToken,
		},
	}, http.StatusCreated, requestId)
}

// HandleLogin exchanges a username and password for a freshly rotated session token.
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, err := h.credentials.FindByCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		h.failLookup(w, err, Login, "Login failed", requestId)
		return
	}

	token, err := h.credentials.ResetSessionToken(r.Context(), user)
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to issue session token",
			"error", err,
			"user_id", user.ID,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user logged in",
		"user_id", user.ID,
		"handler", Login,
		"request_id", requestId)

	h.respond(w, Response{
		Data: sessionData{SessionToken: token},
	}, http.StatusOK, requestId)
}

// HandleLogout rotates the caller's session token so the presented one stops resolving.
func (h *UserHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, Logout, requestId)
	if !ok {
		return
	}

	if _, err := h.credentials.ResetSessionToken(r.Context(), user); err != nil {
		h.respond(w, Response{
			Message: "Logout failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to rotate session token",
			"error", err,
			"user_id", user.ID,
			"handler", Logout,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user logged out",
		"user_id", user.ID,
		"handler", Logout,
		"request_id", requestId)

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.currentUser(w, r, CurrentUser, requestId)
	if !ok {
		return
	}

	h.respond(w, Response{
		Data: userData{
			ID:       user.ID,
			Username: user.Username,
		},
	}, http.StatusOK, requestId)
}

func (h *UserHandler) currentUser(w http.ResponseWriter, r *http.Request, route, requestId string) (*credentials.User, bool) {
	token := r.Header.Get(SessionTokenHeader)
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   SessionTokenHeader + " header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing session token header", "handler", route, "request_id", requestId)
		return nil, false
	}

	user, err := h.credentials.FindBySessionToken(r.Context(), token)
	if err != nil {
		h.failLookup(w, err, route, "Authentication failed", requestId)
		return nil, false
	}

	return user, true
}

// failLookup answers a failed credential or session lookup. Unknown users and wrong passwords
// produce the same response.
func (h *UserHandler) failLookup(w http.ResponseWriter, err error, route, message, requestId string) {
	if errors.Is(err, credentials.ErrNotFound) {
		h.respond(w, Response{
			Message: message,
			Error:   invalidCredentialsErr,
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Infow("credential lookup failed",
			"handler", route,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: message,
		Error:   oopsErr,
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("credential lookup errored",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *UserHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

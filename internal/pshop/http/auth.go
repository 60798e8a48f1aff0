package http

import (
	"net/http"
	"time"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/service"
	"github.com/pshophq/pshop/pkg/httpx"
)

// AuthHandler serves every /auth?action=... operation. The action query
// parameter selects the operation; unknown actions are a validation error.
type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	AdminCode string `json:"adminCode"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
	AdminCode   string `json:"adminCode"`
}

type sessionResponse struct {
	User      domain.User `json:"user"`
	SessionID string      `json:"sessionId,omitempty"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
}

type checkSessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	Username      string `json:"username,omitempty"`
}

type hasUsersResponse struct {
	HasUsers bool `json:"hasUsers"`
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	switch r.Method {
	case http.MethodPost:
		switch action {
		case "register":
			h.handleRegister(w, r)
		case "login":
			h.handleLogin(w, r)
		case "reset-password":
			h.handleResetPassword(w, r)
		case "logout":
			h.handleLogout(w, r)
		case "check-session":
			h.handleCheckSession(w, r)
		default:
			httpx.Error(w, http.StatusBadRequest, httpx.ErrKindValidation, "Unknown action")
		}
	case http.MethodGet:
		switch action {
		case "check-session":
			h.handleCheckSession(w, r)
		case "has-users":
			h.handleHasUsers(w, r)
		case "logout":
			h.handleLogout(w, r)
		default:
			httpx.Error(w, http.StatusBadRequest, httpx.ErrKindValidation, "Unknown action")
		}
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	user, sess, err := h.AuthService.Register(r.Context(), req.Username, req.Name, req.Password, req.AdminCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := sessionResponse{User: user}
	if sess.ID != "" {
		resp.SessionID = sess.ID
		resp.ExpiresAt = &sess.ExpiresAt
	}
	httpx.OKMessage(w, "Account created", resp)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	user, sess, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.OK(w, sessionResponse{
		User:      user,
		SessionID: sess.ID,
		ExpiresAt: &sess.ExpiresAt,
	})
}

func (h *AuthHandler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Username, req.NewPassword, req.AdminCode); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Password updated", nil)
}

func (h *AuthHandler) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	token := httpx.TokenFromRequest(r)

	sess, ok := h.AuthService.CheckSession(r.Context(), token)
	if !ok {
		httpx.OK(w, checkSessionResponse{Authenticated: false})
		return
	}
	httpx.OK(w, checkSessionResponse{
		Authenticated: true,
		UserID:        sess.UserID,
		Username:      sess.Username,
	})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), httpx.TokenFromRequest(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OKMessage(w, "Logged out", nil)
}

func (h *AuthHandler) handleHasUsers(w http.ResponseWriter, r *http.Request) {
	has, err := h.AuthService.HasAnyUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.OK(w, hasUsersResponse{HasUsers: has})
}

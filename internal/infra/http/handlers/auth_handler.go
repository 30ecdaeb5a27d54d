package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/identity"
)

// AuthHandler é um proxy fino para o provedor de identidade: valida a
// presença dos campos, repassa a chamada e traduz o erro do provedor para
// o status do contrato. Nada de sessão local.
type AuthHandler struct {
	Identity    *identity.Client // nil quando o provedor não está configurado
	rateLimiter *RateLimiter
}

func NewAuthHandler(client *identity.Client) *AuthHandler {
	return &AuthHandler{
		Identity:    client,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	if h.Identity == nil {
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var body credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.Identity.SignIn(body.Email, body.Password)
	if err != nil {
		var provErr *identity.ProviderError
		if errors.As(err, &provErr) {
			// Credencial recusada pelo provedor vira 401, com a mensagem dele.
			writeError(w, http.StatusUnauthorized, provErr.Message)
			return
		}
		middleware.RecordIntegrationError("identity")
		writeError(w, http.StatusInternalServerError, "Sign in failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{
		"user":    result.User,
		"session": result.Session,
	})
}

func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	if h.Identity == nil {
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var body credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.Identity.SignUp(body.Email, body.Password)
	if err != nil {
		var provErr *identity.ProviderError
		if errors.As(err, &provErr) {
			if strings.Contains(provErr.Message, "already registered") {
				writeError(w, http.StatusConflict, "Email already registered")
				return
			}
			writeError(w, http.StatusBadRequest, provErr.Message)
			return
		}
		middleware.RecordIntegrationError("identity")
		writeError(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	session := result.Session
	if session == nil {
		session = json.RawMessage("null")
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{
		"user":    result.User,
		"session": session,
	})
}

func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if h.Identity == nil {
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusBadRequest, "No authorization token")
		return
	}

	// Valida o token antes do logout: token podre é 401, não 400.
	if _, err := h.Identity.GetUser(token); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.Identity.SignOut(token); err != nil {
		var provErr *identity.ProviderError
		if errors.As(err, &provErr) {
			writeError(w, http.StatusBadRequest, provErr.Message)
			return
		}
		middleware.RecordIntegrationError("identity")
		writeError(w, http.StatusInternalServerError, "Sign out failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleSession nunca devolve erro por token ausente ou inválido: a
// resposta é {session:null} e o front decide mandar para o login.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	if h.Identity == nil {
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]any{"session": nil})
		return
	}

	user, err := h.Identity.GetUser(token)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"session": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{"user": user})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

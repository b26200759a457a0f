package web

import (
	"errors"
	"net/http"

	"github.com/iparr-biocorellc/backoffice/internal/errs"
	"github.com/iparr-biocorellc/backoffice/internal/logging"
)

// Fixed credential flow messages. The UI renders these verbatim, so they form
// a closed set the client can rely on.
const (
	msgInvalidCredentials = "Invalid credentials."
	msgEmailExists        = "Email already exists."
	msgMissingCredentials = "Email and password are required."
	msgLoginFallback      = "Something went wrong."
	msgSignupFallback     = "Something went wrong during signup."
)

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badForm(w, r, err)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := s.auth.SignIn(r.Context(), email, password)
	if err != nil {
		s.writeAuthError(w, r, err, "login")
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	writeJSON(w, r, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badForm(w, r, err)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if err := s.auth.SignUp(r.Context(), email, password); err != nil {
		s.writeAuthError(w, r, err, "signup")
		return
	}

	w.Header().Set("HX-Redirect", "/login")
	w.WriteHeader(http.StatusCreated)
}

// writeAuthError maps credential failures to the fixed user-facing strings.
// Anything outside the known set is logged and collapsed to the flow's
// generic fallback so internals never leak to the login screen.
func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error, flow string) {
	var status int
	var msg string

	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, errs.ErrEmailExists):
		status, msg = http.StatusConflict, msgEmailExists
	case errors.Is(err, errs.ErrMissingCredentials):
		status, msg = http.StatusBadRequest, msgMissingCredentials
	default:
		logging.FromContext(r.Context()).Error("auth flow failed", "flow", flow, "error", err)
		status = http.StatusInternalServerError
		if flow == "signup" {
			msg = msgSignupFallback
		} else {
			msg = msgLoginFallback
		}
	}

	http.Error(w, msg, status)
}

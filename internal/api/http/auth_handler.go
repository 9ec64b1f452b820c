package http

import (
	"net/http"

	"firedept-backoffice/internal/domain"
	"firedept-backoffice/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// "user" (default) or "supplier"; suppliers also get a session cookie.
	Kind string `json:"kind"`
}

type loginResponse struct {
	Token     string         `json:"token"`
	Principal map[string]any `json:"principal"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, domain.NewValidationError("credentials", "email and password are required"))
		return
	}

	if req.Kind == string(domain.PrincipalKindSupplier) {
		token, supplier, err := h.authSvc.LoginSupplier(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     supplierSessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
		writeJSON(w, http.StatusOK, loginResponse{
			Token: token,
			Principal: map[string]any{
				"kind":         domain.PrincipalKindSupplier,
				"id":           supplier.ID,
				"company_name": supplier.CompanyName,
			},
		})
		return
	}

	token, user, err := h.authSvc.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		Principal: map[string]any{
			"kind":  domain.PrincipalKindUser,
			"id":    user.ID,
			"name":  user.Name,
			"roles": user.Roles,
		},
	})
}

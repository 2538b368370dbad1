package user

import (
	"errors"
	"net/http"

	"github.com/balanceu/balanceu/internal/rest"
	log "github.com/sirupsen/logrus"
)

const (
	loginPath     = "/login"
	dashboardPath = "/balanceu"
)

type UserDTO struct {
	Key         string `json:"key"`
	FirstName   string `json:"firstName"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	Id          string `json:"id"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Redirect string  `json:"redirect"`
	User     UserDTO `json:"user"`
}

type LoginScreenDTO struct {
	Logo                string `json:"logo"`
	UsernamePlaceholder string `json:"usernamePlaceholder"`
	PasswordPlaceholder string `json:"passwordPlaceholder"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

func (h *Handler) LoginScreen(w http.ResponseWriter, r *http.Request) {
	log.Trace("Rendering login screen")
	rest.WriteJSON(w, http.StatusOK, LoginScreenDTO{
		Logo:                "/BalanceU_White_Login.png",
		UsernamePlaceholder: "User Name",
		PasswordPlaceholder: "Password",
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log.Trace("Logging in")

	var request LoginRequest
	if !rest.DecodeBody(w, r, &request) {
		return
	}

	u, err := h.userService.Authenticate(r.Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			rest.WriteError(w, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		log.Errorf("login failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	rest.WriteJSON(w, http.StatusOK, LoginResponse{Redirect: dashboardPath, User: ToDTO(u)})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log.Trace("Logging out")

	if err := h.userService.Logout(r.Context()); err != nil {
		log.Errorf("logout failed: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	rest.WriteJSON(w, http.StatusOK, rest.RedirectResponse{Redirect: loginPath})
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting current user")
	u, err := CurrentUser(r.Context())
	if err != nil {
		u = h.userService.CurrentUser(r.Context())
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(u))
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		Key:         u.Key,
		FirstName:   u.FirstName(),
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
		Id:          u.Id,
		Email:       u.Email,
		Phone:       u.Phone,
	}
}

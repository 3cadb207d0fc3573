// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innohub/api/internal/platform/middleware"
	requestutil "github.com/innohub/api/internal/platform/request"
	"github.com/innohub/api/internal/platform/respond"
)

// # HTTP Transport

// Handler exposes the admin-account lifecycle over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AuthRoutes returns the public authentication surface, mounted under /auth.
//
// Token extraction happens in the global Authenticate middleware; these
// routes only add the per-handler authentication requirements.
func (handler *Handler) AuthRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/verify-token", handler.verifyToken)
	router.Post("/verify-password", handler.verifyPassword)

	return router
}

// AdminRoutes returns the authenticated admin surface, mounted under /admin.
//
// The admin-role and live-ban gates are applied by the parent router for the
// whole /admin tree; the account-management subtree additionally requires
// super_admin.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/profile", handler.getProfile)
	router.Put("/profile", handler.updateProfile)
	router.Post("/change-password", handler.changePassword)

	router.Group(func(superAdmin chi.Router) {
		superAdmin.Use(middleware.RequireSuperAdmin)

		superAdmin.Get("/admins", handler.listAdmins)
		superAdmin.Post("/admins", handler.createAdmin)
		superAdmin.Put("/admins/{id}", handler.updateAdmin)
		superAdmin.Delete("/admins/{id}", handler.deleteAdmin)
		superAdmin.Patch("/admins/{id}/ban", handler.banAdmin)
		superAdmin.Patch("/admins/{id}/unban", handler.unbanAdmin)
	})

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type profileUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

// # Authentication Handlers

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), payload.Email, payload.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Session(writer, session.Token, session.Account)
}

// logout exists for client symmetry. Tokens are stateless, so there is no
// server-side session to destroy; the client discards its copy.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	respond.Message(writer, "Logged out successfully")
}

func (handler *Handler) verifyToken(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.VerifyToken(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

func (handler *Handler) verifyPassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload verifyPasswordRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.VerifyPassword(request.Context(), claims.AccountID, payload.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Password verified")
}

// # Self-Service Handlers

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.VerifyToken(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload profileUpdateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.UpdateOwnProfile(request.Context(), claims.AccountID, ProfileUpdate{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload changePasswordRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.ChangePassword(request.Context(), claims.AccountID, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Password changed successfully")
}

// # Account Management Handlers

func (handler *Handler) listAdmins(writer http.ResponseWriter, request *http.Request) {
	accounts, err := handler.service.ListAdmins(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, accounts)
}

func (handler *Handler) createAdmin(writer http.ResponseWriter, request *http.Request) {
	var payload createAdminRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.CreateAdmin(request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}

func (handler *Handler) updateAdmin(writer http.ResponseWriter, request *http.Request) {
	targetID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload profileUpdateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.UpdateAdmin(request.Context(), targetID, ProfileUpdate{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

func (handler *Handler) deleteAdmin(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAdmin(request.Context(), claims.AccountID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Admin deleted successfully")
}

func (handler *Handler) banAdmin(writer http.ResponseWriter, request *http.Request) {
	handler.setBanned(writer, request, true)
}

func (handler *Handler) unbanAdmin(writer http.ResponseWriter, request *http.Request) {
	handler.setBanned(writer, request, false)
}

func (handler *Handler) setBanned(writer http.ResponseWriter, request *http.Request, banned bool) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var account *Account
	if banned {
		account, err = handler.service.BanAdmin(request.Context(), claims.AccountID, targetID)
	} else {
		account, err = handler.service.UnbanAdmin(request.Context(), claims.AccountID, targetID)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

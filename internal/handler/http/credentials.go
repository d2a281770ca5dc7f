// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/aegis-vault/internal/app"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/utils"
	"github.com/MKhiriev/aegis-vault/models"
)

func (h *Handler) getCredentials(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	credentials, err := h.services.VaultService.ListCredentials(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getCredentials")
		return
	}
	if credentials == nil {
		credentials = []models.Credential{}
	}

	utils.WriteJSON(w, models.CredentialsResponse{Credentials: credentials}, http.StatusOK)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	input, ok := decodeCredentialInput(w, r)
	if !ok {
		return
	}

	created, err := h.services.VaultService.CreateCredential(r.Context(), ownerID, input)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createCredential")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCredentialAdded, ID: created.ID}, http.StatusCreated)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := credentialIDFromRequest(w, r)
	if !ok {
		return
	}

	input, ok := decodeCredentialInput(w, r)
	if !ok {
		return
	}

	if _, err := h.services.VaultService.UpdateCredential(r.Context(), id, ownerID, input); err != nil {
		writeServiceError(w, r, err, "*Handler.updateCredential")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCredentialUpdated}, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := credentialIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.VaultService.DeleteCredential(r.Context(), id, ownerID); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteCredential")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCredentialDeleted}, http.StatusOK)
}

// ownerFromRequest returns the owner resolved by the auth middleware.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || ownerID <= 0 {
		logger.FromRequest(r).Error().Msg("no owner in request context")
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return 0, false
	}

	return ownerID, true
}

// credentialIDFromRequest parses the {id} URL parameter. Ids that are not
// positive integers cannot name a stored credential.
func credentialIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, app.MsgCredentialNotFound, http.StatusNotFound)
		return 0, false
	}

	return id, true
}

func decodeCredentialInput(w http.ResponseWriter, r *http.Request) (models.CredentialInput, bool) {
	var input models.CredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return models.CredentialInput{}, false
	}

	return input, true
}

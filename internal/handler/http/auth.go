package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aegis-vault/internal/app"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/utils"
	"github.com/MKhiriev/aegis-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registration, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.register")
		return
	}

	utils.WriteJSON(w, registration, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	log.Debug().Str("username", req.Username).Msg("login attempt")

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.login")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) verifySecondFactor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SecondFactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.verifySecondFactor").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.VerifySecondFactor(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.verifySecondFactor")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

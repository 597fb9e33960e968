// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/service"
	"github.com/dkotelnikov/fieldvault/internal/utils"
	"github.com/dkotelnikov/fieldvault/internal/validators"
	"github.com/dkotelnikov/fieldvault/models"
)

func isPolicyValidationError(err error) bool {
	return errors.Is(err, validators.ErrEmptyRecordType) ||
		errors.Is(err, validators.ErrEmptyFieldName) ||
		errors.Is(err, validators.ErrDuplicateField)
}

// globalToggleRequest is the payload of POST /api/encryption/global.
type globalToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// encryptionStatusResponse is the payload of GET /api/encryption/status.
// It carries key versions and states only; key bytes have no read
// surface anywhere in the API.
type encryptionStatusResponse struct {
	RotationState    string `json:"rotation_state"`
	GlobalEnabled    bool   `json:"global_enabled"`
	ActiveKeyVersion int64  `json:"active_key_version"`
	HasPreviousKey   bool   `json:"has_previous_key"`
}

func (h *Handler) getEncryptionConfig(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Configs.Settings(), http.StatusOK)
}

func (h *Handler) putEncryptionConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var policies map[string]models.ModelConfig
	if err := json.NewDecoder(r.Body).Decode(&policies); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Configs.ReplaceAll(ctx, policies); err != nil {
		if isPolicyValidationError(err) {
			log.Err(err).Msg("invalid encryption configuration")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error replacing encryption configuration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, h.services.Configs.Settings(), http.StatusOK)
}

func (h *Handler) putModelConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordType := chi.URLParam(r, "type")

	var mc models.ModelConfig
	if err := json.NewDecoder(r.Body).Decode(&mc); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Configs.Update(ctx, recordType, mc); err != nil {
		if isPolicyValidationError(err) {
			log.Err(err).Str("record_type", recordType).Msg("invalid model configuration")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Err(err).Str("record_type", recordType).Msg("error updating model configuration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, h.services.Configs.Settings(), http.StatusOK)
}

func (h *Handler) setGlobalToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req globalToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Configs.SetGlobalEnabled(ctx, req.Enabled); err != nil {
		log.Err(err).Msg("error setting global encryption toggle")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, globalToggleRequest{Enabled: req.Enabled}, http.StatusOK)
}

func (h *Handler) rotateKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	report, err := h.services.Rotation.Rotate(ctx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRotationInProgress):
			log.Err(err).Msg("rotation already running")
			http.Error(w, service.ErrRotationInProgress.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("key rotation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getEncryptionStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := encryptionStatusResponse{
		RotationState: h.services.Rotation.State().String(),
		GlobalEnabled: h.services.Configs.Settings().GlobalEnabled,
	}

	if active, err := h.services.Keyring.Active(); err == nil {
		status.ActiveKeyVersion = active.Version
	} else {
		log.Err(err).Msg("no active key material for status report")
	}
	_, status.HasPreviousKey = h.services.Keyring.Previous()

	utils.WriteJSON(w, status, http.StatusOK)
}

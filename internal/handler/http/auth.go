// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/service"
)

// loginRequest is the admin login payload. The password is verified
// against the configured argon2id digest and never logged.
type loginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.Auth.Login(ctx, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid admin credentials")
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

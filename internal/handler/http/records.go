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
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/internal/utils"
	"github.com/dkotelnikov/fieldvault/internal/validators"
	"github.com/dkotelnikov/fieldvault/models"
)

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordType := chi.URLParam(r, "type")

	var doc models.Record
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.Records.Create(ctx, recordType, doc)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyRecordType), errors.Is(err, validators.ErrEmptyDocument):
			log.Err(err).Str("record_type", recordType).Msg("invalid record payload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrEncryptionWriteFailed):
			log.Err(err).Str("record_type", recordType).Msg("record rejected, encryption failed")
			http.Error(w, service.ErrEncryptionWriteFailed.Error(), http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Str("record_type", recordType).Msg("error creating record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	stored, err := h.services.Records.Get(ctx, recordType, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			log.Err(err).Str("record_type", recordType).Str("id", id).Msg("record not found")
			http.Error(w, "record not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("record_type", recordType).Str("id", id).Msg("error fetching record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordType := chi.URLParam(r, "type")

	stored, err := h.services.Records.List(ctx, recordType)
	if err != nil {
		log.Err(err).Str("record_type", recordType).Msg("error listing records")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	var doc models.Record
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.Records.Update(ctx, recordType, id, doc)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyDocument):
			log.Err(err).Str("record_type", recordType).Msg("invalid record payload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRecordNotFound):
			log.Err(err).Str("record_type", recordType).Str("id", id).Msg("record not found")
			http.Error(w, "record not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrEncryptionWriteFailed):
			log.Err(err).Str("record_type", recordType).Msg("record rejected, encryption failed")
			http.Error(w, service.ErrEncryptionWriteFailed.Error(), http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Str("record_type", recordType).Str("id", id).Msg("error updating record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, stored, http.StatusOK)
}

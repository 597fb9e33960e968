// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/admin/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// admin-only encryption management
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/encryption/config", h.getEncryptionConfig)
		r.Put("/api/encryption/config", h.putEncryptionConfig)
		r.Put("/api/encryption/config/{type}", h.putModelConfig)
		r.Post("/api/encryption/global", h.setGlobalToggle)
		r.Post("/api/encryption/rotate", h.rotateKeys)
		r.Get("/api/encryption/status", h.getEncryptionStatus)
	})

	// record CRUD, every document passes through the encryption gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/records/{type}", h.createRecord)
		r.Get("/api/records/{type}", h.listRecords)
		r.Get("/api/records/{type}/{id}", h.getRecord)
		r.Put("/api/records/{type}/{id}", h.updateRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// Package api assembles the HTTP surface: one generic resource handler per
// record kind, health, uploads and the OpenAPI document, all registered
// through huma on a chi mux.
//
// GET    /api/v1/{kind}                        list (masked)
// POST   /api/v1/{kind}                        create
// GET    /api/v1/{kind}/{id}                   get (masked)
// PUT    /api/v1/{kind}/{id}                   update (partial merge)
// DELETE /api/v1/{kind}/{id}                   delete (idempotent)
// POST   /api/v1/{kind}/{id}/secret/{f}/copy   plaintext copy
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "secretarium/internal/app/server/api/http/health"
	"secretarium/internal/app/server/api/http/middleware"
	loggerMW "secretarium/internal/app/server/api/http/middleware/logger"
	"secretarium/internal/app/server/api/http/resources"
	uploadsAPI "secretarium/internal/app/server/api/http/uploads"
	"secretarium/internal/domain/catalog"
	"secretarium/internal/domain/resource"
	"secretarium/internal/infrastructure/kv"
)

// New builds the chi mux with every operation registered via huma.Register.
func New(store kv.Store, uploadDir string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Secretarium API", "1.0.0")
	config.OpenAPIPath = "/api/v1/openapi"
	config.DocsPath = "/api/v1/docs"

	API := humachi.New(mux, config)

	middlewares := middleware.NewContainer()
	requestLogger := loggerMW.New(log)

	middlewares.Add(requestLogger.Middleware())
	healthAPI.NewHandler(log, middlewares.GetAllAndClear()).SetupRoutes(API)

	service := func(def catalog.Definition) *resource.Service {
		return resource.NewService(store.Collection(def.Collection), def.Config, log)
	}

	middlewares.Add(requestLogger.Middleware())
	resources.NewHandler[catalog.WorkspaceCreate, catalog.WorkspaceUpdate](
		service(catalog.Workspaces), catalog.Workspaces, log, middlewares.GetAllAndClear(),
	).SetupRoutes(API)

	middlewares.Add(requestLogger.Middleware())
	resources.NewHandler[catalog.SecretCreate, catalog.SecretUpdate](
		service(catalog.Secrets), catalog.Secrets, log, middlewares.GetAllAndClear(),
	).SetupRoutes(API)

	middlewares.Add(requestLogger.Middleware())
	resources.NewHandler[catalog.APIKeyCreate, catalog.APIKeyUpdate](
		service(catalog.APIKeys), catalog.APIKeys, log, middlewares.GetAllAndClear(),
	).SetupRoutes(API)

	middlewares.Add(requestLogger.Middleware())
	resources.NewHandler[catalog.SSHKeyCreate, catalog.SSHKeyUpdate](
		service(catalog.SSHKeys), catalog.SSHKeys, log, middlewares.GetAllAndClear(),
	).SetupRoutes(API)

	middlewares.Add(requestLogger.Middleware())
	resources.NewHandler[catalog.BankCardCreate, catalog.BankCardUpdate](
		service(catalog.BankCards), catalog.BankCards, log, middlewares.GetAllAndClear(),
	).SetupRoutes(API)

	middlewares.Add(requestLogger.Middleware())
	resources.NewHandler[catalog.BankAccountCreate, catalog.BankAccountUpdate](
		service(catalog.BankAccounts), catalog.BankAccounts, log, middlewares.GetAllAndClear(),
	).SetupRoutes(API)

	uploads := uploadsAPI.NewHandler(uploadDir, log)
	mux.Post("/api/v1/uploads", uploads.Upload)
	mux.Get("/uploads/{filename}", uploads.ServeFile)

	return mux
}

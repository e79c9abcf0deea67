// Package resources exposes one record kind over HTTP. A single generic
// handler serves all six kinds; the create/update type parameters carry the
// per-kind validation schemas from the catalog.
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"secretarium/internal/domain/catalog"
	"secretarium/internal/domain/resource"
)

type Handler[C, U any] struct {
	service    *resource.Service
	def        catalog.Definition
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler[C, U any](service *resource.Service, def catalog.Definition, log *slog.Logger, mws huma.Middlewares) *Handler[C, U] {
	return &Handler[C, U]{
		service:    service,
		def:        def,
		log:        log.With("component", "resource_handler", "resource", def.Path),
		middleware: mws,
	}
}

func (h *Handler[C, U]) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	for _, field := range h.def.CopyFields {
		huma.Register(api, h.copyOp(field), h.copyField(field))
	}
}

func (h *Handler[C, U]) list(ctx context.Context, input *listInput) (*listOutput, error) {
	result, err := h.service.List(ctx, resource.ListParams{
		Page:        input.Page,
		Limit:       input.Limit,
		Sort:        input.Sort,
		Q:           input.Q,
		WorkspaceID: input.WorkspaceID,
		Tags:        splitTags(input.Tags),
	})
	if err != nil {
		return nil, h.translate(err)
	}
	return &listOutput{
		Body: listResponse{Success: true, Data: result.Data, Meta: result.Meta},
	}, nil
}

func (h *Handler[C, U]) get(ctx context.Context, input *idInput) (*itemOutput, error) {
	rec, err := h.service.GetByID(ctx, input.ID)
	if err != nil {
		return nil, h.translate(err)
	}
	return &itemOutput{Body: itemResponse{Success: true, Data: rec}}, nil
}

func (h *Handler[C, U]) create(ctx context.Context, input *createInput[C]) (*itemOutput, error) {
	rec, err := toRecord(input.Body)
	if err != nil {
		return nil, err
	}
	created, err := h.service.Create(ctx, rec)
	if err != nil {
		return nil, h.translate(err)
	}
	return &itemOutput{Body: itemResponse{Success: true, Data: created}}, nil
}

func (h *Handler[C, U]) update(ctx context.Context, input *updateInput[U]) (*itemOutput, error) {
	rec, err := toRecord(input.Body)
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, huma.Error400BadRequest("At least one field must be provided")
	}
	updated, err := h.service.Update(ctx, input.ID, rec)
	if err != nil {
		return nil, h.translate(err)
	}
	return &itemOutput{Body: itemResponse{Success: true, Data: updated}}, nil
}

func (h *Handler[C, U]) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	if err := h.service.Remove(ctx, input.ID); err != nil {
		return nil, h.translate(err)
	}
	return &deleteOutput{}, nil
}

func (h *Handler[C, U]) copyField(field string) func(context.Context, *idInput) (*copyOutput, error) {
	return func(ctx context.Context, input *idInput) (*copyOutput, error) {
		value, err := h.service.CopyField(ctx, input.ID, field)
		if err != nil {
			return nil, h.translate(err)
		}
		return &copyOutput{
			CacheControl: "no-store",
			Body:         copyResponse{Success: true, Value: value},
		}, nil
	}
}

// translate maps the engine's error taxonomy to transport status codes.
// Anything outside the taxonomy is a storage-layer failure and surfaces as
// an undifferentiated 500.
func (h *Handler[C, U]) translate(err error) error {
	var rerr *resource.Error
	if errors.As(err, &rerr) {
		switch rerr.Kind {
		case resource.KindNotFound:
			return huma.Error404NotFound(rerr.Message)
		case resource.KindBadRequest:
			return huma.Error400BadRequest(rerr.Message)
		}
	}
	h.log.Error("request failed", "error", err)
	return err
}

func toRecord(body any) (resource.Record, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var rec resource.Record
	if err := json.Unmarshal(encoded, &rec); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return rec, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

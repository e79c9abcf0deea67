package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"secretarium/internal/infrastructure/kv"
)

// timeLayout is a fixed-width ISO-8601 format with millisecond precision,
// so timestamps stay lexicographically sortable.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Service runs the five generic operations for one record kind against one
// kv collection. Reads are full collection scans followed by in-memory
// processing; there is no indexing by design, which bounds the engine to
// small-to-medium collections.
//
// The service holds no locks of its own. A concurrent update+update or
// update+delete on the same id is last-write-wins; per-key atomicity comes
// from the underlying store.
type Service struct {
	col   kv.Collection
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

func NewService(col kv.Collection, cfg Config, log *slog.Logger) *Service {
	return &Service{
		col:   col,
		cfg:   cfg,
		log:   log.With("component", "resource_service", "resource", cfg.Name),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Config exposes the kind configuration the service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// List returns one page of records: workspace filter, tag filter, free-text
// search, sort and pagination applied in that order, every returned record
// masked. Empty results are an empty page, never an error.
func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	var items []Record
	err := s.col.ForEach(ctx, func(key string, value []byte) error {
		var rec Record
		if err := json.Unmarshal(value, &rec); err != nil {
			return fmt.Errorf("decode record %s: %w", key, err)
		}
		items = append(items, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	filtered := applyWorkspaceFilter(items, s.cfg.WorkspaceScoped, params.WorkspaceID)
	filtered = applyTagFilter(filtered, params.Tags)
	filtered = applySearch(filtered, params.Q, s.cfg.SearchableFields)
	applySort(filtered, params.Sort, s.cfg.DefaultSort)

	result := paginate(filtered, params.Page, params.Limit)
	for i, rec := range result.Data {
		result.Data[i] = maskRecord(rec, s.cfg.SensitiveFields)
	}
	if result.Data == nil {
		result.Data = []Record{}
	}
	return &result, nil
}

// GetByID returns one masked record.
func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	rec, err := s.getRaw(ctx, id)
	if err != nil {
		return nil, err
	}
	return maskRecord(rec, s.cfg.SensitiveFields), nil
}

// Create assigns id and timestamps, normalizes tags, persists the plaintext
// record and returns a masked copy.
func (s *Service) Create(ctx context.Context, input Record) (Record, error) {
	entity := input.Clone()
	if entity == nil {
		entity = Record{}
	}
	normalizeTags(entity)

	if s.cfg.WorkspaceScoped {
		if ws, _ := entity["workspaceId"].(string); ws == "" {
			return nil, BadRequest("workspaceId is required")
		}
	}

	now := s.timestamp()
	entity["id"] = s.newID()
	entity["createdAt"] = now
	entity["updatedAt"] = now

	if err := s.persist(ctx, entity); err != nil {
		return nil, err
	}

	s.log.Debug("record created", "id", entity.ID())
	return maskRecord(entity, s.cfg.SensitiveFields), nil
}

// Update merges the partial input over the stored record. id and createdAt
// are immutable; updatedAt is re-stamped. Fields absent from the input stay
// as stored.
func (s *Service) Update(ctx context.Context, id string, input Record) (Record, error) {
	existing, err := s.getRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := existing.Clone()
	for k, v := range input {
		merged[k] = cloneValue(v)
	}
	if _, ok := input["tags"]; ok {
		normalizeTags(merged)
	}
	merged["id"] = existing["id"]
	merged["createdAt"] = existing["createdAt"]
	merged["updatedAt"] = s.timestamp()

	if err := s.persist(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Debug("record updated", "id", id)
	return maskRecord(merged, s.cfg.SensitiveFields), nil
}

// Remove deletes by id. Removing an absent id is a no-op, mirroring the
// store contract.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.col.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug("record removed", "id", id)
	return nil
}

// CopyField returns the plaintext value of one field from the stored
// record. This is the only path by which a sensitive value leaves the
// service unmasked.
func (s *Service) CopyField(ctx context.Context, id, field string) (string, error) {
	rec, err := s.getRaw(ctx, id)
	if err != nil {
		return "", err
	}
	value, ok := rec[field]
	if !ok || value == nil {
		return "", BadRequest("Field not available for copy")
	}
	plain := stringify(value)
	// Plaintext should never equal the placeholder; guarded anyway.
	if plain == Placeholder {
		return "", BadRequest("Field not available for copy")
	}
	return plain, nil
}

func (s *Service) getRaw(ctx context.Context, id string) (Record, error) {
	value, err := s.col.Get(ctx, id)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, NotFound(s.cfg.Name + " not found")
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(value, &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", id, err)
	}
	return rec, nil
}

func (s *Service) persist(ctx context.Context, rec Record) error {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return s.col.Put(ctx, rec.ID(), encoded)
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

func normalizeTags(rec Record) {
	if v, ok := rec["tags"]; !ok || v == nil {
		rec["tags"] = []any{}
	}
}

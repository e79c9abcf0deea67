package resource

import (
	"fmt"
	"sort"
	"strings"
)

// ListParams are the caller-facing list options. Zero Page and Limit take
// the defaults (1 and 25).
type ListParams struct {
	Page        int
	Limit       int
	Sort        string
	Q           string
	WorkspaceID string
	Tags        []string
}

type Meta struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type ListResult struct {
	Data []Record `json:"data"`
	Meta Meta     `json:"meta"`
}

const (
	defaultPage  = 1
	defaultLimit = 25
	fallbackSort = "-updatedAt"
	defaultField = "updatedAt"
)

type sortDescriptor struct {
	field string
	desc  bool
}

func parseSort(spec, defaultSpec string) []sortDescriptor {
	raw := spec
	if strings.TrimSpace(raw) == "" {
		raw = defaultSpec
	}
	if strings.TrimSpace(raw) == "" {
		raw = fallbackSort
	}

	segments := strings.Split(raw, ",")
	descriptors := make([]sortDescriptor, 0, len(segments))
	for _, segment := range segments {
		trimmed := strings.TrimSpace(segment)
		desc := strings.HasPrefix(trimmed, "-")
		field := strings.TrimLeft(trimmed, "-+")
		if field == "" {
			field = defaultField
		}
		descriptors = append(descriptors, sortDescriptor{field: field, desc: desc})
	}
	return descriptors
}

// applySort orders items in place by the comma-separated sort spec.
// Records missing a sort field order after records that have it, in both
// directions, so incomplete records never float to the top of a page.
func applySort(items []Record, spec, defaultSpec string) {
	descriptors := parseSort(spec, defaultSpec)
	sort.SliceStable(items, func(i, j int) bool {
		return compareRecords(items[i], items[j], descriptors) < 0
	})
}

func compareRecords(a, b Record, descriptors []sortDescriptor) int {
	for _, d := range descriptors {
		av, aok := a[d.field]
		if av == nil {
			aok = false
		}
		bv, bok := b[d.field]
		if bv == nil {
			bok = false
		}
		switch {
		case !aok && !bok:
			continue
		case !aok:
			return 1
		case !bok:
			return -1
		}
		c := compareValues(av, bv)
		if c == 0 {
			continue
		}
		if d.desc {
			c = -c
		}
		return c
	}
	return 0
}

func compareValues(a, b any) int {
	if af, aok := toNumber(a); aok {
		if bf, bok := toNumber(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(strings.ToLower(stringify(a)), strings.ToLower(stringify(b)))
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func applyWorkspaceFilter(items []Record, scoped bool, workspaceID string) []Record {
	if !scoped || workspaceID == "" {
		return items
	}
	filtered := items[:0:0]
	for _, item := range items {
		if v, ok := item["workspaceId"]; ok && stringify(v) == workspaceID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// applyTagFilter keeps records carrying every requested tag. Matching is
// case-sensitive and order-independent.
func applyTagFilter(items []Record, tags []string) []Record {
	if len(tags) == 0 {
		return items
	}
	filtered := items[:0:0]
	for _, item := range items {
		recTags, ok := stringSlice(item["tags"])
		if !ok {
			continue
		}
		if containsAll(recTags, tags) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func containsAll(haystack, needles []string) bool {
	for _, needle := range needles {
		found := false
		for _, hay := range haystack {
			if hay == needle {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// applySearch keeps records where any searchable field contains the term,
// case-insensitively. Sequence fields match if any element contains it.
func applySearch(items []Record, q string, searchable []string) []Record {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return items
	}
	filtered := items[:0:0]
	for _, item := range items {
		if matchesSearch(item, term, searchable) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matchesSearch(item Record, term string, searchable []string) bool {
	for _, field := range searchable {
		value, ok := item[field]
		if !ok || value == nil {
			continue
		}
		if entries, isSeq := sliceValues(value); isSeq {
			for _, entry := range entries {
				if strings.Contains(strings.ToLower(stringify(entry)), term) {
					return true
				}
			}
			continue
		}
		if strings.Contains(strings.ToLower(stringify(value)), term) {
			return true
		}
	}
	return false
}

// paginate clamps the requested page into [1, totalPages] and slices the
// ordered set. Meta.Total reflects the filtered, pre-pagination count.
func paginate(items []Record, page, limit int) ListResult {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListResult{
		Data: items[start:end],
		Meta: Meta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	}
}

func sliceValues(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []string:
		out := make([]any, len(seq))
		for i, s := range seq {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func stringSlice(v any) ([]string, bool) {
	entries, ok := sliceValues(v)
	if !ok {
		return nil, false
	}
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = stringify(entry)
	}
	return out, true
}

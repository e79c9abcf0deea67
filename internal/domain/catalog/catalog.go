// Package catalog declares the six record kinds. Each kind is a Definition
// value plus typed create/update payloads; all behavior lives in the
// generic resource engine.
package catalog

import "secretarium/internal/domain/resource"

// Definition binds one record kind to its URL segment, storage collection,
// engine configuration and the fields exposed through the copy endpoint.
type Definition struct {
	// Path is the URL segment under /api/v1, e.g. "secrets".
	Path string
	// Collection is the kv namespace holding the kind's records.
	Collection string
	// Tag groups the kind's operations in the OpenAPI document.
	Tag string
	// Config drives the resource engine.
	Config resource.Config
	// CopyFields each become a POST /{path}/{id}/secret/{field}/copy
	// operation returning the plaintext value.
	CopyFields []string
}

// All lists every kind, workspaces first so seeding can resolve workspace
// ids before creating scoped records.
func All() []Definition {
	return []Definition{Workspaces, Secrets, APIKeys, SSHKeys, BankCards, BankAccounts}
}

package catalog

import "secretarium/internal/domain/resource"

// APIKeys holds third-party provider credentials.
var APIKeys = Definition{
	Path:       "api-keys",
	Collection: "apiKeys",
	Tag:        "api-keys",
	Config: resource.Config{
		Name:             "API key",
		SearchableFields: []string{"name", "provider", "baseUrl", "notes", "environment", "scopes", "tags"},
		SensitiveFields:  []resource.SensitiveField{{Name: "apiKey"}},
		WorkspaceScoped:  true,
		DefaultSort:      "-updatedAt,name",
	},
	CopyFields: []string{"apiKey"},
}

type APIKeyCreate struct {
	WorkspaceID string   `json:"workspaceId" minLength:"1" doc:"Owning workspace id"`
	Name        string   `json:"name" minLength:"1"`
	Provider    string   `json:"provider" minLength:"1"`
	APIKey      string   `json:"apiKey" minLength:"1"`
	Environment string   `json:"environment" enum:"dev,stage,prod"`
	BaseURL     string   `json:"baseUrl,omitempty"`
	Scopes      []string `json:"scopes,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IconURL     string   `json:"iconUrl,omitempty"`
}

type APIKeyUpdate struct {
	WorkspaceID *string   `json:"workspaceId,omitempty" minLength:"1"`
	Name        *string   `json:"name,omitempty" minLength:"1"`
	Provider    *string   `json:"provider,omitempty" minLength:"1"`
	APIKey      *string   `json:"apiKey,omitempty" minLength:"1"`
	Environment *string   `json:"environment,omitempty" enum:"dev,stage,prod"`
	BaseURL     *string   `json:"baseUrl,omitempty"`
	Scopes      *[]string `json:"scopes,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	IconURL     *string   `json:"iconUrl,omitempty"`
}

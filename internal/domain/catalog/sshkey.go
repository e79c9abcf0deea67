package catalog

import "secretarium/internal/domain/resource"

// SSHKeys holds key pairs. Only the private half is sensitive.
var SSHKeys = Definition{
	Path:       "ssh-keys",
	Collection: "sshKeys",
	Tag:        "ssh-keys",
	Config: resource.Config{
		Name:             "SSH key",
		SearchableFields: []string{"name", "publicKey", "comment", "notes", "tags"},
		SensitiveFields:  []resource.SensitiveField{{Name: "privateKey"}},
		WorkspaceScoped:  true,
		DefaultSort:      "-updatedAt,name",
	},
	CopyFields: []string{"privateKey"},
}

type SSHKeyCreate struct {
	WorkspaceID string   `json:"workspaceId" minLength:"1" doc:"Owning workspace id"`
	Name        string   `json:"name" minLength:"1"`
	PublicKey   string   `json:"publicKey" minLength:"1"`
	PrivateKey  string   `json:"privateKey" minLength:"1"`
	Comment     string   `json:"comment,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IconURL     string   `json:"iconUrl,omitempty"`
}

type SSHKeyUpdate struct {
	WorkspaceID *string   `json:"workspaceId,omitempty" minLength:"1"`
	Name        *string   `json:"name,omitempty" minLength:"1"`
	PublicKey   *string   `json:"publicKey,omitempty" minLength:"1"`
	PrivateKey  *string   `json:"privateKey,omitempty" minLength:"1"`
	Comment     *string   `json:"comment,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	IconURL     *string   `json:"iconUrl,omitempty"`
}

package catalog

import "secretarium/internal/domain/resource"

// Secrets holds login credentials.
var Secrets = Definition{
	Path:       "secrets",
	Collection: "secrets",
	Tag:        "secrets",
	Config: resource.Config{
		Name:             "Secret",
		SearchableFields: []string{"name", "username", "notes", "url", "tags"},
		SensitiveFields:  []resource.SensitiveField{{Name: "password"}},
		WorkspaceScoped:  true,
		DefaultSort:      "-updatedAt,name",
	},
	CopyFields: []string{"password"},
}

type SecretCreate struct {
	WorkspaceID string   `json:"workspaceId" minLength:"1" doc:"Owning workspace id"`
	Name        string   `json:"name" minLength:"1"`
	Username    string   `json:"username" minLength:"1"`
	Password    string   `json:"password" minLength:"1"`
	OTPMethod   string   `json:"otpMethod" enum:"TOTP,SMS,Email,NONE" doc:"Second-factor method"`
	URL         string   `json:"url,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IconURL     string   `json:"iconUrl,omitempty"`
}

type SecretUpdate struct {
	WorkspaceID *string   `json:"workspaceId,omitempty" minLength:"1"`
	Name        *string   `json:"name,omitempty" minLength:"1"`
	Username    *string   `json:"username,omitempty" minLength:"1"`
	Password    *string   `json:"password,omitempty" minLength:"1"`
	OTPMethod   *string   `json:"otpMethod,omitempty" enum:"TOTP,SMS,Email,NONE"`
	URL         *string   `json:"url,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	IconURL     *string   `json:"iconUrl,omitempty"`
}

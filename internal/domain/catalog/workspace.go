package catalog

import "secretarium/internal/domain/resource"

// Workspaces is the namespace kind every other kind points into. It has no
// sensitive fields and is not scoped to itself. Deleting a workspace does
// not cascade: dependent records keep their workspaceId.
var Workspaces = Definition{
	Path:       "workspaces",
	Collection: "workspaces",
	Tag:        "workspaces",
	Config: resource.Config{
		Name:             "Workspace",
		SearchableFields: []string{"name", "description"},
		SensitiveFields:  []resource.SensitiveField{},
		DefaultSort:      "name",
	},
}

type WorkspaceCreate struct {
	Name        string `json:"name" minLength:"1" doc:"Workspace name"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

type WorkspaceUpdate struct {
	Name        *string `json:"name,omitempty" minLength:"1"`
	Description *string `json:"description,omitempty"`
}

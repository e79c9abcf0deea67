package resources

import "secretarium/internal/domain/resource"

type listInput struct {
	Page        int    `query:"page" minimum:"1" default:"1" doc:"Page number"`
	Limit       int    `query:"limit" minimum:"1" maximum:"10000" default:"25" doc:"Page size"`
	Sort        string `query:"sort" doc:"Comma-separated sort fields, '-' prefix for descending"`
	Q           string `query:"q" doc:"Case-insensitive search term"`
	WorkspaceID string `query:"workspaceId" doc:"Keep only records of this workspace"`
	Tags        string `query:"tags" doc:"Comma-separated tags; records must carry all of them"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Success bool              `json:"success"`
	Data    []resource.Record `json:"data"`
	Meta    resource.Meta     `json:"meta"`
}

type idInput struct {
	ID string `path:"id" doc:"Record id"`
}

type createInput[C any] struct {
	Body C
}

type updateInput[U any] struct {
	ID   string `path:"id" doc:"Record id"`
	Body U
}

type itemOutput struct {
	Body itemResponse
}

type itemResponse struct {
	Success bool            `json:"success"`
	Data    resource.Record `json:"data"`
}

type deleteOutput struct{}

type copyOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         copyResponse
}

type copyResponse struct {
	Success bool   `json:"success"`
	Value   string `json:"value"`
}

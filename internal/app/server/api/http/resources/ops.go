package resources

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler[C, U]) basePath() string {
	return "/api/v1/" + h.def.Path
}

func (h *Handler[C, U]) listOp() huma.Operation {
	return huma.Operation{
		OperationID: h.def.Path + "-list",
		Method:      http.MethodGet,
		Path:        h.basePath(),
		Summary:     "List " + h.def.Tag,
		Description: "Filter, search, sort and paginate. Sensitive fields are masked.",
		Tags:        []string{h.def.Tag},
		Middlewares: h.middleware,
	}
}

func (h *Handler[C, U]) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.def.Path + "-create",
		Method:        http.MethodPost,
		Path:          h.basePath(),
		Summary:       "Create " + h.def.Config.Name,
		DefaultStatus: http.StatusCreated,
		Tags:          []string{h.def.Tag},
		Middlewares:   h.middleware,
	}
}

func (h *Handler[C, U]) getOp() huma.Operation {
	return huma.Operation{
		OperationID: h.def.Path + "-get",
		Method:      http.MethodGet,
		Path:        h.basePath() + "/{id}",
		Summary:     "Get " + h.def.Config.Name,
		Tags:        []string{h.def.Tag},
		Middlewares: h.middleware,
	}
}

func (h *Handler[C, U]) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: h.def.Path + "-update",
		Method:      http.MethodPut,
		Path:        h.basePath() + "/{id}",
		Summary:     "Update " + h.def.Config.Name,
		Description: "Merges the supplied fields over the stored record.",
		Tags:        []string{h.def.Tag},
		Middlewares: h.middleware,
	}
}

func (h *Handler[C, U]) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.def.Path + "-delete",
		Method:        http.MethodDelete,
		Path:          h.basePath() + "/{id}",
		Summary:       "Delete " + h.def.Config.Name,
		Description:   "Deleting an absent id still returns 204.",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{h.def.Tag},
		Middlewares:   h.middleware,
	}
}

func (h *Handler[C, U]) copyOp(field string) huma.Operation {
	return huma.Operation{
		OperationID: fmt.Sprintf("%s-copy-%s", h.def.Path, field),
		Method:      http.MethodPost,
		Path:        fmt.Sprintf("%s/{id}/secret/%s/copy", h.basePath(), field),
		Summary:     fmt.Sprintf("Copy %s of %s", field, h.def.Config.Name),
		Description: "Returns the plaintext value. The response is marked non-cacheable.",
		Tags:        []string{h.def.Tag},
		Middlewares: h.middleware,
	}
}

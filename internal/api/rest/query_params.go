package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/revel-xyz/revel-gate/internal/domain"
)

const MAX_PAGE_SIZE = 100

// ListDropsQueryParams holds query parameters for GET /drops
type ListDropsQueryParams struct {
	// Filters
	Status  string `form:"status"`
	Creator string `form:"creator"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListDropsQuery parses query parameters for GET /drops
func ParseListDropsQuery(c *gin.Context) (*ListDropsQueryParams, error) {
	var params ListDropsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Creator != "" {
		params.Creator = domain.NormalizeAddress(params.Creator)
	}

	// Cap limits
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit < 0 {
		params.Limit = 0
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// Validate checks the filter values
func (p *ListDropsQueryParams) Validate() error {
	if p.Status != "" && !domain.IsValidDropStatus(domain.DropStatus(p.Status)) {
		return &invalidFilterError{field: "status", value: p.Status}
	}
	if p.Creator != "" && !domain.ValidAddress(p.Creator) {
		return &invalidFilterError{field: "creator", value: p.Creator}
	}
	return nil
}

// ListUnlocksQueryParams holds query parameters for GET /drops/:id/unlocks
type ListUnlocksQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListUnlocksQuery parses query parameters for GET /drops/:id/unlocks
func ParseListUnlocksQuery(c *gin.Context) (*ListUnlocksQueryParams, error) {
	var params ListUnlocksQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit < 0 {
		params.Limit = 0
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

type invalidFilterError struct {
	field string
	value string
}

func (e *invalidFilterError) Error() string {
	return "invalid " + e.field + ": " + e.value
}

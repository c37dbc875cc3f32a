package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/proptoken/proptoken-backend/internal/api/shared/constants"
	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
	"github.com/proptoken/proptoken-backend/internal/domain"
)

// PageQueryParams holds pagination parameters shared by list endpoints
type PageQueryParams struct {
	Limit  int `form:"limit,default=25"`
	Offset int `form:"offset,default=0"`
}

// ListPropertiesQueryParams holds query parameters for GET /properties
type ListPropertiesQueryParams struct {
	PageQueryParams
	Tokenized *bool `form:"tokenized"`
}

// ListSalesQueryParams holds query parameters for GET /properties/:id/sales
type ListSalesQueryParams struct {
	PageQueryParams
	Status string `form:"status"`
	Buyer  string `form:"buyer"`
}

// ListTokensQueryParams holds query parameters for GET /tokens
type ListTokensQueryParams struct {
	PageQueryParams
	PropertyID string `form:"propertyId"`
	Symbol     string `form:"symbol"`
}

// GetTokenQueryParams holds query parameters for GET /tokens/:tokenId
type GetTokenQueryParams struct {
	Refresh bool `form:"refresh,default=false"`
}

// MirrorQueryParams holds query parameters for endpoints backed by the mirror node
type MirrorQueryParams struct {
	Limit    int  `form:"limit,default=25"`
	UseCache bool `form:"useCache,default=true"`
}

// ParsePageQuery parses and caps pagination parameters
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid query parameters", err.Error())
	}
	params.normalize()
	return &params, nil
}

// ParseListPropertiesQuery parses query parameters for GET /properties
func ParseListPropertiesQuery(c *gin.Context) (*ListPropertiesQueryParams, error) {
	var params ListPropertiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid query parameters", err.Error())
	}
	params.normalize()
	return &params, nil
}

// ParseListSalesQuery parses query parameters for GET /properties/:id/sales
func ParseListSalesQuery(c *gin.Context) (*ListSalesQueryParams, error) {
	var params ListSalesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid query parameters", err.Error())
	}
	params.normalize()

	switch domain.SaleStatus(params.Status) {
	case "", domain.SaleStatusPending, domain.SaleStatusCompleted, domain.SaleStatusFailed:
	default:
		return nil, apierrors.NewValidationError("Invalid query parameters", map[string]string{
			"status": "must be PENDING, COMPLETED or FAILED",
		})
	}
	return &params, nil
}

// ParseListTokensQuery parses query parameters for GET /tokens
func ParseListTokensQuery(c *gin.Context) (*ListTokensQueryParams, error) {
	var params ListTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid query parameters", err.Error())
	}
	params.normalize()
	return &params, nil
}

// ParseGetTokenQuery parses query parameters for GET /tokens/:tokenId
func ParseGetTokenQuery(c *gin.Context) (*GetTokenQueryParams, error) {
	var params GetTokenQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid query parameters", err.Error())
	}
	return &params, nil
}

// ParseMirrorQuery parses query parameters for mirror node reads
func ParseMirrorQuery(c *gin.Context) (*MirrorQueryParams, error) {
	var params MirrorQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid query parameters", err.Error())
	}
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_PAGE_SIZE
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	return &params, nil
}

func (p *PageQueryParams) normalize() {
	if p.Limit <= 0 {
		p.Limit = constants.DEFAULT_PAGE_SIZE
	}
	if p.Limit > constants.MAX_PAGE_SIZE {
		p.Limit = constants.MAX_PAGE_SIZE
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revel-xyz/revel-gate/internal/api/shared/dto"
	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/gate"
	"github.com/revel-xyz/revel-gate/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateDrop creates a new gated drop (requires authentication)
	// POST /api/v1/drops
	CreateDrop(c *gin.Context)

	// ListDrops retrieves drops with optional filters
	// GET /api/v1/drops?status=<status>&creator=<address>&limit=<limit>&offset=<offset>
	ListDrops(c *gin.Context)

	// GetDrop retrieves a single drop by its ID
	// GET /api/v1/drops/:id
	GetDrop(c *gin.Context)

	// UpdateDropStatus transitions a drop's publication state (requires authentication)
	// PATCH /api/v1/drops/:id/status
	UpdateDropStatus(c *gin.Context)

	// GetAccess evaluates whether a wallet may see the drop's content
	// GET /api/v1/drops/:id/access?wallet=<address>
	GetAccess(c *gin.Context)

	// RecordView adds one view to the drop
	// POST /api/v1/drops/:id/views
	RecordView(c *gin.Context)

	// Unlock evaluates access and records the unlock when granted
	// POST /api/v1/drops/:id/unlocks
	Unlock(c *gin.Context)

	// GetUnlockStatus checks whether a wallet has unlocked the drop
	// GET /api/v1/drops/:id/unlocks/:wallet
	GetUnlockStatus(c *gin.Context)

	// ListUnlocks retrieves a drop's unlock ledger (requires authentication)
	// GET /api/v1/drops/:id/unlocks?limit=<limit>&offset=<offset>
	ListUnlocks(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service gate.Service
}

// NewHandler creates a new REST API handler backed by the gate service
func NewHandler(service gate.Service) Handler {
	return &handler{
		service: service,
	}
}

// CreateDrop creates a new gated drop
func (h *handler) CreateDrop(c *gin.Context) {
	var req dto.CreateDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	drop, err := h.service.CreateDrop(c.Request.Context(), gate.CreateDropParams{
		CreatorAddress: req.CreatorAddress,
		CreatorName:    req.CreatorName,
		CreatorImage:   req.CreatorImage,
		Title:          req.Title,
		Description:    req.Description,
		ContentType:    domain.ContentType(req.ContentType),
		ContentURL:     req.ContentURL,
		ThumbnailURL:   req.ThumbnailURL,
		CoinAddress:    req.CoinAddress,
		GatingMode:     domain.GatingMode(req.GatingMode),
		GatingAmount:   req.GatingAmount,
		Publish:        req.Publish,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to create drop")
		return
	}

	c.JSON(http.StatusCreated, dto.NewDropResponse(drop))
}

// ListDrops retrieves drops with optional filters
func (h *handler) ListDrops(c *gin.Context) {
	queryParams, err := ParseListDropsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	drops, err := h.service.ListDrops(c.Request.Context(), store.DropFilter{
		Status:         domain.DropStatus(queryParams.Status),
		CreatorAddress: queryParams.Creator,
		Limit:          queryParams.Limit,
		Offset:         queryParams.Offset,
	})
	if err != nil {
		respondDomainError(c, err, "Failed to list drops")
		return
	}

	response := dto.ListDropsResponse{Drops: make([]*dto.DropResponse, 0, len(drops))}
	for _, drop := range drops {
		response.Drops = append(response.Drops, dto.NewDropResponse(drop))
	}

	c.JSON(http.StatusOK, response)
}

// GetDrop retrieves a single drop by its ID
func (h *handler) GetDrop(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	drop, err := h.service.GetDrop(c.Request.Context(), dropID)
	if err != nil {
		respondDomainError(c, err, "Failed to get drop")
		return
	}

	c.JSON(http.StatusOK, dto.NewDropResponse(drop))
}

// UpdateDropStatus transitions a drop's publication state
func (h *handler) UpdateDropStatus(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	var req dto.UpdateDropStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.service.UpdateDropStatus(c.Request.Context(), dropID, domain.DropStatus(req.Status)); err != nil {
		respondDomainError(c, err, "Failed to update drop status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": dropID, "status": req.Status})
}

// GetAccess evaluates whether a wallet may see the drop's content
func (h *handler) GetAccess(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	wallet := c.Query("wallet")
	if wallet == "" {
		respondBadRequest(c, "wallet query parameter is required")
		return
	}
	if !domain.ValidAddress(wallet) {
		respondValidationError(c, fmt.Sprintf("invalid wallet: %s", wallet))
		return
	}

	decision, err := h.service.EvaluateAccess(c.Request.Context(), dropID, wallet)
	if err != nil {
		respondDomainError(c, err, "Failed to evaluate access")
		return
	}

	c.JSON(http.StatusOK, dto.NewAccessResponse(decision))
}

// RecordView adds one view to the drop
func (h *handler) RecordView(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	if err := h.service.RecordView(c.Request.Context(), dropID); err != nil {
		respondDomainError(c, err, "Failed to record view")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"id": dropID, "recorded": true})
}

// Unlock evaluates access and records the unlock when granted
func (h *handler) Unlock(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.service.Unlock(c.Request.Context(), dropID, req.WalletAddress)
	if err != nil {
		respondDomainError(c, err, "Failed to unlock drop")
		return
	}

	// A denied unlock attempt is a well-formed outcome, not an error
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	c.JSON(status, dto.NewUnlockResponse(result))
}

// GetUnlockStatus checks whether a wallet has unlocked the drop
func (h *handler) GetUnlockStatus(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	wallet := c.Param("wallet")
	if !domain.ValidAddress(wallet) {
		respondValidationError(c, fmt.Sprintf("invalid wallet: %s", wallet))
		return
	}

	unlocked, err := h.service.HasUnlocked(c.Request.Context(), dropID, domain.NormalizeAddress(wallet))
	if err != nil {
		respondDomainError(c, err, "Failed to get unlock status")
		return
	}

	c.JSON(http.StatusOK, dto.UnlockStatusResponse{
		DropID:        dropID,
		WalletAddress: domain.NormalizeAddress(wallet),
		Unlocked:      unlocked,
	})
}

// ListUnlocks retrieves a drop's unlock ledger
func (h *handler) ListUnlocks(c *gin.Context) {
	dropID := c.Param("id")
	if dropID == "" {
		respondBadRequest(c, "Drop ID is required")
		return
	}

	queryParams, err := ParseListUnlocksQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	records, err := h.service.ListUnlocks(c.Request.Context(), dropID, queryParams.Limit, queryParams.Offset)
	if err != nil {
		respondDomainError(c, err, "Failed to list unlocks")
		return
	}

	response := dto.ListUnlocksResponse{
		DropID:  dropID,
		Unlocks: make([]*dto.UnlockRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		response.Unlocks = append(response.Unlocks, &dto.UnlockRecordResponse{
			WalletAddress:   record.WalletAddress,
			BalanceAtUnlock: record.BalanceAtUnlock,
			RecordedAt:      record.RecordedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "revel-gate-api",
	})
}

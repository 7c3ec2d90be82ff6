package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gatherly/invitehub/internal/service"
	"gatherly/invitehub/pkg/response"
)

type InviteHandler struct {
	inviteService service.InviteService
}

func NewInviteHandler(inviteService service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

type CreateInviteRequest struct {
	InviteID      string    `json:"invite_id"`
	Title         string    `json:"title" binding:"required"`
	WhenAt        time.Time `json:"when_at" binding:"required"`
	WhenHasTime   bool      `json:"when_has_time"`
	ConfirmBy     time.Time `json:"confirm_by" binding:"required"`
	CapacityMin   *int      `json:"capacity_min"`
	CapacityMax   *int      `json:"capacity_max"`
	OrganizerName string    `json:"organizer_name" binding:"required"`
}

type SubmitResponseRequest struct {
	AnonDeviceID string `json:"anon_device_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Choice       string `json:"choice" binding:"required"`
}

type RecordViewRequest struct {
	AnonDeviceID string `json:"anon_device_id" binding:"required"`
}

// Create proposes a new invitation and auto-admits the organizer's YES.
func (h *InviteHandler) Create(c *gin.Context) {
	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.inviteService.CreateInvitation(c.Request.Context(), service.CreateInvitationInput{
		ID:            req.InviteID,
		Title:         req.Title,
		WhenAt:        req.WhenAt,
		WhenHasTime:   req.WhenHasTime,
		ConfirmBy:     req.ConfirmBy,
		CapacityMin:   req.CapacityMin,
		CapacityMax:   req.CapacityMax,
		OrganizerName: req.OrganizerName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, 503, "store unavailable, retry")
		default:
			response.InternalError(c, "create invitation failed")
		}
		return
	}

	response.Success(c, gin.H{
		"invite":   result.Invitation,
		"warnings": result.Warnings,
	})
}

// SubmitResponse records a participant's YES/NO/MAYBE.
func (h *InviteHandler) SubmitResponse(c *gin.Context) {
	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	err := h.inviteService.SubmitResponse(
		c.Request.Context(), c.Param("id"), req.AnonDeviceID, req.Name, req.Choice,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInviteNotFound):
			response.NotFound(c, "invitation not found")
		case errors.Is(err, service.ErrInviteClosed):
			response.Conflict(c, "CLOSED")
		case errors.Is(err, service.ErrAlreadyResponded):
			response.Conflict(c, "ALREADY_RESPONDED")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, 503, "store unavailable, retry")
		default:
			response.InternalError(c, "submit response failed")
		}
		return
	}

	response.Success(c, gin.H{"ok": true})
}

// RecordView idempotently records a first-seen view for a device.
func (h *InviteHandler) RecordView(c *gin.Context) {
	var req RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	recorded, err := h.inviteService.RecordView(c.Request.Context(), c.Param("id"), req.AnonDeviceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInviteNotFound):
			response.NotFound(c, "invitation not found")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, 503, "store unavailable, retry")
		default:
			response.InternalError(c, "record view failed")
		}
		return
	}

	response.Success(c, gin.H{"recorded": recorded})
}

// Events exports the invitation's audit trail. Organizer identity is the same
// client-asserted flag the snapshot endpoint trusts.
func (h *InviteHandler) Events(c *gin.Context) {
	if c.Query("is_organizer") != "1" {
		response.Forbidden(c, "organizer only")
		return
	}

	events, err := h.inviteService.ListEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInviteNotFound):
			response.NotFound(c, "invitation not found")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, 503, "store unavailable, retry")
		default:
			response.InternalError(c, "list events failed")
		}
		return
	}

	response.Success(c, gin.H{"events": events})
}

// Snapshot returns the invitation read model under the visibility rules.
func (h *InviteHandler) Snapshot(c *gin.Context) {
	deviceID := c.Query("anon_device_id")
	isOrganizer := c.Query("is_organizer") == "1"

	snap, err := h.inviteService.GetSnapshot(c.Request.Context(), c.Param("id"), deviceID, isOrganizer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInviteNotFound):
			response.NotFound(c, "invitation not found")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, 503, "store unavailable, retry")
		default:
			response.InternalError(c, "get snapshot failed")
		}
		return
	}

	response.Success(c, snap)
}

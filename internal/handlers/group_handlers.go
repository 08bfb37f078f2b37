package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GroupHandler holds the group service.
type GroupHandler struct {
	groupService services.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(gs services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: gs}
}

// CreateGroup handles the creation of a new group.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req services.CreateGroupRequest
	if !bindJSON(c, &req, "CreateGroup") {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
			return
		}
		respondInternal(c, err, "CreateGroup: Error from groupService.CreateGroup", "Failed to create group.")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GetGroups returns every group ordered by id.
func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.groupService.GetGroups(c.Request.Context())
	if err != nil {
		respondInternal(c, err, "GetGroups: Error from groupService.GetGroups", "Failed to fetch groups.")
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) GetGroupByID(c *gin.Context) {
	groupID, ok := parseIDParam(c, "group")
	if !ok {
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			utils.RespondNotFound(c, "Group not found", err.Error())
			return
		}
		respondInternal(c, err, "GetGroupByID: Error from groupService.GetGroupByID", "Failed to fetch group.")
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateGroup applies the fields present in the body to a group.
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "group")
	if !ok {
		return
	}
	var req services.UpdateGroupRequest
	if !bindJSON(c, &req, "UpdateGroup") {
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), groupID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGroupNotFound):
			utils.RespondNotFound(c, "Group not found", err.Error())
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			respondInternal(c, err, "UpdateGroup: Error from groupService.UpdateGroup", "Failed to update group.")
		}
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "group")
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), groupID); err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			utils.RespondNotFound(c, "Group not found", err.Error())
			return
		}
		respondInternal(c, err, "DeleteGroup: Error from groupService.DeleteGroup", "Failed to delete group.")
		return
	}
	respondDeleted(c, "Group deleted successfully")
}

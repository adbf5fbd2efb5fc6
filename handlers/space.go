package handlers

import (
	"errors"
	"net/http"

	"venuehub/middleware"
	"venuehub/models"
	spaceService "venuehub/services/space"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func spaceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, spaceService.ErrSpaceNotFound):
		return http.StatusNotFound, "Space not found"
	case errors.Is(err, spaceService.ErrNotOwner):
		return http.StatusForbidden, "Only the owning host may modify this space"
	case errors.Is(err, spaceService.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// ListSpacesHandler returns all listed spaces.
func ListSpacesHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		spaces, err := svc.List()
		if err != nil {
			logger.Error("Failed to list spaces", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list spaces"})
			return
		}
		c.JSON(http.StatusOK, spaces)
	}
}

// GetSpaceHandler returns a single space by id.
func GetSpaceHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		sp, err := svc.Get(c.Param("id"))
		if err != nil {
			status, msg := spaceErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to fetch space", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, sp)
	}
}

// CreateSpaceHandler lists a new space owned by the authenticated user.
func CreateSpaceHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		host := middleware.AuthenticatedUser(c)
		if host == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input models.Space
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		sp, err := svc.Create(host, input)
		if err != nil {
			status, msg := spaceErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to create space", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, sp)
	}
}

// UpdateSpaceHandler replaces the mutable fields of an owned space.
func UpdateSpaceHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		host := middleware.AuthenticatedUser(c)
		if host == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input models.Space
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		sp, err := svc.Update(host, c.Param("id"), input)
		if err != nil {
			status, msg := spaceErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to update space", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, sp)
	}
}

// DeleteSpaceHandler removes an owned listing.
func DeleteSpaceHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		host := middleware.AuthenticatedUser(c)
		if host == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.Delete(host, c.Param("id")); err != nil {
			status, msg := spaceErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to delete space", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Space deleted"})
	}
}

type availabilityRequest struct {
	Dates []string `json:"dates" binding:"required"`
}

// SetAvailabilityHandler replaces the availability allow-list of an owned space.
func SetAvailabilityHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		host := middleware.AuthenticatedUser(c)
		if host == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req availabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.SetAvailability(host, c.Param("id"), req.Dates); err != nil {
			status, msg := spaceErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to set availability", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
	}
}

// MySpacesHandler lists the authenticated host's own spaces.
func MySpacesHandler(svc spaceService.SpaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		host := middleware.AuthenticatedUser(c)
		if host == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		spaces, err := svc.ListByHost(host.ID)
		if err != nil {
			logger.Error("Failed to list host spaces", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list spaces"})
			return
		}
		c.JSON(http.StatusOK, spaces)
	}
}

package api

import (
	"net/http"

	reqdto "emy-orders/internal/handler/dto/request"
	resdto "emy-orders/internal/handler/dto/response"
	"emy-orders/internal/handler/middleware"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationsHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationsHandler(
	notificationCommands commands.NotificationCommands,
	notificationQueries queries.NotificationQueries,
) *NotificationsHandler {
	return &NotificationsHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary Fetch notifications
// @Description Get the caller's unread notifications, newest first. Returned notifications are marked read: a second call returns an empty list.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationsHandler) Fetch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	unread, err := h.notificationCommands.FetchAndConsume(c.Request.Context(), userID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	response := make([]resdto.NotificationResponse, len(unread))
	for i, n := range unread {
		response[i] = resdto.FromNotificationView(n)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Count unread notifications
// @Description Get the caller's unread notification count without marking anything read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /notifications/count [get]
func (h *NotificationsHandler) Count(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	count, err := h.notificationQueries.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary Send notification
// @Description Send a message to a customer (staff only)
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddNotificationRequest true "Notification"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /notifications [post]
func (h *NotificationsHandler) Send(c *gin.Context) {
	var req reqdto.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.notificationCommands.Notify(c.Request.Context(), req.UserID, req.Message); err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Notification sent"})
}

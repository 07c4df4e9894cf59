package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	lang := middleware.GetLang(c)

	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	notifications, err := h.notificationService.ListUnread(c.Request.Context(), requesterID)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListNotifications, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	lang := middleware.GetLang(c)

	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	var req dto.MarkNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationPayload, lang),
		)
		return
	}

	notificationID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNotificationPayload, lang),
		)
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), requesterID, notificationID, *req.Read)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotificationNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNotificationNotFound, lang),
			)
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgNotificationForbidden, lang),
			)
		default:
			zap.L().Error("failed to update notification", zap.String("notification_id", notificationID.Hex()), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateNotification, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItem(notification))
}

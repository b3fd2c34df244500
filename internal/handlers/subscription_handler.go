package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/repositories"
)

// SubscriptionHandler handles HTTP requests related to subscriptions
type SubscriptionHandler struct {
	subscriptionRepository repositories.SubscriptionRepository
	userRepository         repositories.UserRepository
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionRepo repositories.SubscriptionRepository, userRepo repositories.UserRepository) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionRepository: subscriptionRepo,
		userRepository:         userRepo,
	}
}

// RegisterSubscriptionRoutes registers subscription-related routes
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.POST("/subscriptions/", h.CreateSubscription)
	g.GET("/subscriptions/", h.GetSubscriptions)
	g.GET("/users/:id/subscriptions", h.GetUserSubscriptions)
	g.GET("/users/:id/subscribers", h.GetUserSubscribers)
	g.DELETE("/subscriptions/:subscriber_id/:target_id", h.DeleteSubscription)
}

// CreateSubscription subscribes one user to another. Both users must exist
// and self-subscription is rejected.
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	var req models.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.userRepository.GetUserByID(req.SubscriberID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Subscriber not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if _, err := h.userRepository.GetUserByID(req.TargetUserID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Target user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if req.SubscriberID == req.TargetUserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot subscribe to yourself")
	}

	subscription, err := h.subscriptionRepository.PutSubscription(req.SubscriberID, req.TargetUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, subscription)
}

// GetSubscriptions retrieves all subscriptions
func (h *SubscriptionHandler) GetSubscriptions(c echo.Context) error {
	subscriptions, err := h.subscriptionRepository.GetSubscriptions()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, subscriptions)
}

// GetUserSubscriptions retrieves the subscriptions a user holds
func (h *SubscriptionHandler) GetUserSubscriptions(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	subscriptions, err := h.subscriptionRepository.GetSubscriptionsBySubscriber(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, subscriptions)
}

// GetUserSubscribers retrieves the subscriptions pointing at a user
func (h *SubscriptionHandler) GetUserSubscribers(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	subscribers, err := h.subscriptionRepository.GetSubscriptionsByTarget(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, subscribers)
}

// DeleteSubscription removes a subscription by its composite key
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	subscriberID, err := strconv.Atoi(c.Param("subscriber_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subscriber ID")
	}
	targetID, err := strconv.Atoi(c.Param("target_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid target user ID")
	}

	if err := h.subscriptionRepository.DeleteSubscription(subscriberID, targetID); err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Subscription not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Subscription deleted successfully"})
}

package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const serviceName = "MedReserve Multilingual Chatbot"

// apologyText is sent as fulfillment on every error path so the agent never
// relays a raw fault to the end user.
const apologyText = "Sorry, I encountered an error. Please try again."

type Handler struct {
	dispatcher *Dispatcher
	config     *Config
	logger     *zap.Logger
}

func NewHandler(dispatcher *Dispatcher, cfg *Config, logger *zap.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		config:     cfg,
		logger:     logger,
	}
}

// Webhook is the main fulfillment endpoint called by the Dialogflow agent.
func (h *Handler) Webhook(c *fiber.Ctx) error {
	req := &WebhookRequest{}
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if req.QueryResult == nil {
		h.logger.Warn("No queryResult found in request",
			zap.String("requestId", requestID(c)))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}

	if h.config.DebugMode {
		h.logger.Debug("Incoming Dialogflow request",
			zap.String("requestId", requestID(c)),
			zap.Any("queryResult", req.QueryResult))
	}

	return c.JSON(h.dispatcher.Dispatch(req))
}

// Test bypasses the webhook envelope and takes intent and language as query
// parameters. It runs the same resolution path as Webhook and echoes the
// resolved category and language, not the raw parameters, so callers see
// exactly what the webhook would have dispatched.
func (h *Handler) Test(c *fiber.Ctx) error {
	category, language, text := h.dispatcher.Respond(c.Query("intent"), c.Query("language", "en"))

	return c.JSON(&TestResponse{
		Intent:   string(category),
		Language: language,
		Response: text,
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(&HealthResponse{
		Status:             "healthy",
		Service:            serviceName,
		SupportedLanguages: h.config.SupportedLanguages,
		Timestamp:          time.Now().UnixMilli(),
	})
}

// errorHandler turns every error into the apology payload: client errors
// keep their status, anything else is a 500 and is logged for operator
// visibility.
func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "internal server error: " + err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		detail = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		h.logger.Error("Error processing webhook request",
			zap.String("requestId", requestID(c)),
			zap.Error(err))
	}

	return c.Status(code).JSON(&ErrorResponse{
		FulfillmentText: apologyText,
		Error:           detail,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

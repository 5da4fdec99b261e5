package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"plate-check-service/internal/http/middleware"
	"plate-check-service/internal/service"
)

type Handler struct {
	recognitionService *service.RecognitionService
	maxImageBytes      int64
	log                zerolog.Logger
}

func NewHandler(recognitionService *service.RecognitionService, maxImageBytes int64, log zerolog.Logger) *Handler {
	return &Handler{
		recognitionService: recognitionService,
		maxImageBytes:      maxImageBytes,
		log:                log,
	}
}

const recognizePath = "/api/ocr"

func (h *Handler) Register(r *gin.Engine, corsMiddleware, authMiddleware gin.HandlerFunc) {
	// Все методы регистрируются, чтобы вернуть 405 с JSON телом до CORS и проверки ключа
	r.Any(recognizePath, h.requirePost, corsMiddleware, authMiddleware, h.recognizePlate)
}

// noRoute also receives methods outside gin's standard set (PROPFIND, ...),
// which r.Any does not register.
func (h *Handler) noRoute(c *gin.Context) {
	if c.Request.URL.Path == recognizePath {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, errorResponse("Only POST allowed"))
		return
	}
	c.AbortWithStatusJSON(http.StatusNotFound, errorResponse("not found"))
}

func (h *Handler) requirePost(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, errorResponse("Only POST allowed"))
		return
	}
	c.Next()
}

func (h *Handler) recognizePlate(c *gin.Context) {
	body := c.Request.Body
	if h.maxImageBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.maxImageBytes)
	}

	image, err := io.ReadAll(body)
	if err != nil {
		h.serverError(c, fmt.Errorf("read image: %w", err))
		return
	}

	result, err := h.recognitionService.Recognize(c.Request.Context(), image)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.log.Debug().
		Str("request_id", middleware.GetRequestID(c)).
		Int("image_bytes", len(image)).
		Str("plate", result.Plate).
		Bool("allowed", result.Allowed).
		Msg("plate recognized")

	c.JSON(http.StatusOK, result)
}

func (h *Handler) serverError(c *gin.Context, err error) {
	h.log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Msg("OCR error")
	c.JSON(http.StatusInternalServerError, errorResponse("Server error: "+err.Error()))
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.serverError(c, fmt.Errorf("%v", recovered))
	c.Abort()
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"media-service/internal/domain/dto"
	"media-service/internal/usecases"
	"media-service/pkg/errors"
)

// CallbackHandler receives out-of-band completion reports from the chunker
// worker.
type CallbackHandler struct {
	dispatcher usecases.TranscodeDispatcher
}

func NewCallbackHandler(dispatcher usecases.TranscodeDispatcher) *CallbackHandler {
	return &CallbackHandler{
		dispatcher: dispatcher,
	}
}

// ProcessVideoCallback
//
// @Summary      Transcoding Completion Callback
// @Description  Reconciles a finished (or failed) transcode job into the episode record
// @Tags         Chunker
// @Accept       json
// @Produce      json
// @Param        callback  body      dto.ProcessVideoCallback true "Completion report"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /v1/chunker/callback [post]
func (h *CallbackHandler) ProcessVideoCallback(c *fiber.Ctx) error {
	var callback dto.ProcessVideoCallback
	if err := c.BodyParser(&callback); err != nil {
		return errors.HandleError(c, errors.ErrValidation("Invalid callback body"))
	}

	if callback.Error != "" {
		log.Printf("Chunker reported failure for job %s: %s", callback.JobID, callback.Error)
	}

	if err := h.dispatcher.OnCompletion(c.UserContext(), callback); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

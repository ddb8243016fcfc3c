package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the wire shape every failed request returns.
type ErrorBody struct {
	Body ErrorDetail `json:"body"`
}

type ErrorDetail struct {
	Detail string `json:"detail"`
}

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if me, ok := err.(*MediaError); ok {
		if me.Err != nil {
			log.Printf("Media error [%s]: %v", me.Code, me.Err)
		}

		var status int
		switch me.Code {
		case "not_found":
			status = fiber.StatusNotFound
		case "validation_failed":
			status = fiber.StatusBadRequest
		case "unauthorized":
			status = fiber.StatusUnauthorized
		case "forbidden":
			status = fiber.StatusForbidden
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(ErrorBody{Body: ErrorDetail{Detail: me.Message}})
	}

	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Body: ErrorDetail{Detail: "Internal server error"}})
}

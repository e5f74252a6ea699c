package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := err.(*PipelineError); ok {
		// Log the wrapped cause, the client only gets Code + Message
		if pe.Err != nil {
			log.Printf("Pipeline error [%s]: %v", pe.Code, pe.Err)
		}

		var status int
		switch pe.Code {
		case "not_found":
			status = fiber.StatusNotFound
		case "validation_error":
			status = fiber.StatusBadRequest
		default:
			status = fiber.StatusInternalServerError
		}

		body := fiber.Map{
			"error":   pe.Code,
			"message": pe.Message,
		}
		// Pipeline faults carry the cause so the admin tooling can show it;
		// caller faults stay at Code + Message
		if status == fiber.StatusInternalServerError && pe.Err != nil {
			body["details"] = pe.Err.Error()
		}
		return c.Status(status).JSON(body)
	}

	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Internal server error",
	})
}

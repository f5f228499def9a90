package handler

import (
	"errors"
	"log"

	"github.com/yoshihide-okabe/deploy-back/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// SubmitPurchase records the cart and returns the computed total. Partial
// failures never leave rows behind; the service rolls everything back.
func (h *PurchaseHandler) SubmitPurchase(c *fiber.Ctx) error {
	var req service.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	result, err := h.service.SubmitPurchase(&req)
	if err != nil {
		var unknown *service.UnknownProductError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": unknown.Error()})
		}
		var invalid *service.ValidationError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": invalid.Error()})
		}
		// Persistence faults: log the detail, return a redacted message.
		log.Printf("purchase failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "取引の登録に失敗しました"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"total_amount": result.TotalAmount,
	})
}

package handler

import (
	"errors"

	"github.com/yoshihide-okabe/deploy-back/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProduct looks a product up by its code for the register display.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	code := c.Params("code")

	product, err := h.service.GetProductByCode(code)
	if err != nil {
		var unknown *service.UnknownProductError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "商品が見つかりません"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal Server Error"})
	}

	return c.JSON(product)
}

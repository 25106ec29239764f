package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/models"
)

func (s *Server) handleCreateVendor(c *fiber.Ctx) error {
	var vendor models.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	created, err := s.svc.Vendors.Create(c.Context(), &vendor)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Vendor created",
		"vendor":  created,
	})
}

func (s *Server) handleGetVendor(c *fiber.Ctx) error {
	vendor, err := s.svc.Vendors.Get(c.Context(), c.Params("vendor_id"))
	if err != nil {
		return err
	}
	return c.JSON(vendor)
}

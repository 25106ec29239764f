package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/service"
)

func (s *Server) handleCreateBill(c *fiber.Ctx) error {
	var req service.CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	bill, splits, err := s.svc.Bills.Create(c.Context(), req)
	if err != nil {
		return err
	}

	if req.ManualSplit {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Bill created, waiting for manual splits",
			"bill":    bill,
			"splits":  splits,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Bill created with auto-generated splits",
		"bill":    bill,
		"splits":  splits,
	})
}

func (s *Server) handleGetBill(c *fiber.Ctx) error {
	bill, err := s.svc.Bills.Get(c.Context(), c.Params("bill_id"))
	if err != nil {
		return err
	}
	return c.JSON(bill)
}

func (s *Server) handleListBillsForSession(c *fiber.Ctx) error {
	bills, err := s.svc.Bills.ListBySession(c.Context(), c.Params("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(bills)
}

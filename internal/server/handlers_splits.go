package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/service"
)

type approveSplitRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) handleListSplitsForBill(c *fiber.Ctx) error {
	splits, err := s.svc.Splits.ListByBill(c.Context(), c.Params("bill_id"))
	if err != nil {
		return err
	}
	return c.JSON(splits)
}

func (s *Server) handleCreateManualSplits(c *fiber.Ctx) error {
	var entries []service.ManualSplitEntry
	if err := c.BodyParser(&entries); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	billID := c.Params("bill_id")
	splits, err := s.svc.Splits.ManualCreate(c.Context(), billID, entries)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Manual splits created",
		"bill_id": billID,
		"splits":  splits,
	})
}

func (s *Server) handleApproveSplit(c *fiber.Ctx) error {
	var req approveSplitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	split, err := s.svc.Splits.Approve(c.Context(), c.Params("split_id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Split approved successfully",
		"split":   split,
	})
}

package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/service"
)

func (s *Server) handleCreatePayment(c *fiber.Ctx) error {
	var req service.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Wrap(apperr.InvalidInput, "invalid body", err)
	}

	payment, err := s.svc.Payments.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Payment created",
		"payment": payment,
	})
}

func (s *Server) handleProcessPayment(c *fiber.Ctx) error {
	payment, err := s.svc.Payments.Process(c.Context(), c.Params("payment_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Payment processed successfully",
		"payment": payment,
	})
}

func (s *Server) handleListPaymentsForSession(c *fiber.Ctx) error {
	payments, err := s.svc.Payments.ListBySession(c.Context(), c.Params("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

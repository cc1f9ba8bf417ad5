package handlers

import (
	"github.com/Alidiabb/quickcounsel/internal/services"
	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CasesHandler struct {
	Cases   *services.CaseService
	Metrics *metrics.Manager
}

func NewCasesHandler(cases *services.CaseService, m *metrics.Manager) *CasesHandler {
	return &CasesHandler{Cases: cases, Metrics: m}
}

type addCaseRequest struct {
	LawyerUserID utils.Lenient `json:"lawyer_user_id"`
	Title        utils.Lenient `json:"title"`
	Details      utils.Lenient `json:"details"`
}

func (h *CasesHandler) Add(c *fiber.Ctx) error {
	var req addCaseRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, "case_add", err)
	}

	lawyerCase, err := h.Cases.Add(c.UserContext(), services.AddCaseInput{
		LawyerUserID: req.LawyerUserID.String(),
		Title:        req.Title.String(),
		Details:      req.Details.String(),
	})
	if err != nil {
		return respondError(c, "case_add", err)
	}

	h.Metrics.RecordCaseAdded()

	return utils.MessageWith(c, fiber.StatusCreated, "Case added", fiber.Map{"case_id": lawyerCase.ID})
}

func (h *CasesHandler) List(c *fiber.Ctx) error {
	cases, err := h.Cases.List(c.UserContext(), c.Query("user_id"))
	if err != nil {
		return respondError(c, "case_list", err)
	}
	return utils.JSON(c, fiber.StatusOK, cases)
}

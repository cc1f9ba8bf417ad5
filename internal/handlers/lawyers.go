package handlers

import (
	"github.com/Alidiabb/quickcounsel/internal/services"
	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type LawyersHandler struct {
	Lawyers *services.LawyerService
	Reviews *services.ReviewService
	Metrics *metrics.Manager
}

func NewLawyersHandler(lawyers *services.LawyerService, reviews *services.ReviewService, m *metrics.Manager) *LawyersHandler {
	return &LawyersHandler{Lawyers: lawyers, Reviews: reviews, Metrics: m}
}

type rateRequest struct {
	LawyerUserID utils.Lenient `json:"lawyer_user_id"`
	ClientUserID utils.Lenient `json:"client_user_id"`
	Rating       utils.Lenient `json:"rating"`
}

type descriptionRequest struct {
	UserID      utils.Lenient `json:"user_id"`
	Description utils.Lenient `json:"description"`
}

func (h *LawyersHandler) Search(c *fiber.Ctx) error {
	lawyers, err := h.Lawyers.Search(c.UserContext(), c.Query("specialization"))
	if err != nil {
		return respondError(c, "lawyer_search", err)
	}
	return utils.JSON(c, fiber.StatusOK, lawyers)
}

func (h *LawyersHandler) Rate(c *fiber.Ctx) error {
	var req rateRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, "rate", err)
	}

	_, err := h.Reviews.Rate(c.UserContext(), services.RateInput{
		LawyerUserID: req.LawyerUserID.String(),
		ClientUserID: req.ClientUserID.String(),
		Rating:       req.Rating.String(),
	})
	if err != nil {
		return respondError(c, "rate", err)
	}

	h.Metrics.RecordRating()

	return utils.Message(c, fiber.StatusOK, "Rated")
}

func (h *LawyersHandler) Profile(c *fiber.Ctx) error {
	profile, err := h.Lawyers.Profile(c.UserContext(), c.Query("user_id"))
	if err != nil {
		return respondError(c, "lawyer_profile", err)
	}
	return utils.JSON(c, fiber.StatusOK, profile)
}

func (h *LawyersHandler) UpdateDescription(c *fiber.Ctx) error {
	var req descriptionRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, "lawyer_description", err)
	}

	if err := h.Lawyers.UpdateDescription(c.UserContext(), req.UserID.String(), req.Description.String()); err != nil {
		return respondError(c, "lawyer_description", err)
	}

	return utils.Message(c, fiber.StatusOK, "Description updated")
}

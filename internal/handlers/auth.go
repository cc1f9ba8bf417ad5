package handlers

import (
	"github.com/Alidiabb/quickcounsel/internal/models"
	"github.com/Alidiabb/quickcounsel/internal/services"
	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Accounts *services.AccountService
	Metrics  *metrics.Manager
}

func NewAuthHandler(accounts *services.AccountService, m *metrics.Manager) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Metrics: m}
}

type registerRequest struct {
	Name            utils.Lenient `json:"name"`
	Email           utils.Lenient `json:"email"`
	Password        utils.Lenient `json:"password"`
	DateOfBirth     utils.Lenient `json:"date_of_birth"`
	Gender          utils.Lenient `json:"gender"`
	Role            utils.Lenient `json:"role"`
	BarNumber       utils.Lenient `json:"bar_number"`
	MemberSince     utils.Lenient `json:"member_since"`
	Specialization1 utils.Lenient `json:"specialization_1"`
	Specialization2 utils.Lenient `json:"specialization_2"`
}

type loginRequest struct {
	Email    utils.Lenient `json:"email"`
	Password utils.Lenient `json:"password"`
}

type loginUser struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, "register", err)
	}

	user, err := h.Accounts.Register(c.UserContext(), services.RegisterInput{
		Name:            req.Name.String(),
		Email:           req.Email.String(),
		Password:        req.Password.String(),
		DateOfBirth:     req.DateOfBirth.String(),
		Gender:          req.Gender.String(),
		Role:            req.Role.String(),
		BarNumber:       req.BarNumber.String(),
		MemberSince:     req.MemberSince.String(),
		Specialization1: req.Specialization1.String(),
		Specialization2: req.Specialization2.String(),
	})
	if err != nil {
		return respondError(c, "register", err)
	}

	h.Metrics.RecordRegistration(string(user.Role))

	message := "Registered"
	if user.Role == models.UserRoleLawyer {
		message = "Lawyer registered"
	}
	return utils.MessageWith(c, fiber.StatusCreated, message, fiber.Map{"user_id": user.ID})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := decodeBody(c, &req); err != nil {
		return invalidBody(c, "login", err)
	}

	user, err := h.Accounts.Login(c.UserContext(), services.LoginInput{
		Email:    req.Email.String(),
		Password: req.Password.String(),
	})
	if err != nil {
		if services.KindOf(err) == services.KindAuth {
			h.Metrics.RecordLogin(metrics.LoginFailed)
		}
		return respondError(c, "login", err)
	}

	h.Metrics.RecordLogin(metrics.LoginSuccess)

	return utils.MessageWith(c, fiber.StatusOK, "Logged in", fiber.Map{
		"user": loginUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

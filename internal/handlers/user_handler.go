package handlers

import (
	"log"

	"musicstore/internal/authz"
	"musicstore/internal/middleware"
	"musicstore/internal/models"
	"musicstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service  *services.UserService
	policy   *authz.Policy
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, policy *authz.Policy) *UserHandler {
	return &UserHandler{
		service:  service,
		policy:   policy,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. All routes
// here require an authenticated caller.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	// "/me" must come before "/:id" or the param route swallows it
	userRoutes.Get("/me", h.HandleGetMe)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Put("/:id/password", h.HandleChangePassword)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
	userRoutes.Post("/me/balance", h.HandleAddBalance)
	userRoutes.Get("/me/purchases", h.HandleGetPurchases)
	userRoutes.Get("/me/reviews", h.HandleGetReviews)
	userRoutes.Get("/me/subscriptions", h.HandleGetSubscriptions)
}

// HandleGetUsers retrieves all users. Admin only.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.HasAnyRole(identity, models.RoleAdmin) {
		return forbidden(c)
	}

	if email := c.Query("email"); email != "" {
		user, err := h.service.GetUserByEmail(email)
		if err != nil {
			return handleError(c, err)
		}
		user.Password = ""
		return c.JSON(user)
	}

	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return handleError(c, err)
	}
	// For security, do not return password hashes
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// HandleGetMe returns the caller's own account view, including whether an
// artist profile exists for them.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	info, err := h.service.GetUserInfo(identity)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(info)
}

// HandleGetUserByID retrieves a single user. Callers may only read their
// own record unless they are admins.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	userID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsSameUser(identity, userID) {
		return forbidden(c)
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		return handleError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

// UserUpdateRequest represents the request body for a profile update.
type UserUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// HandleUpdateUser updates a user's profile fields.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsSameUser(identity, userID) {
		return forbidden(c)
	}

	var req UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.service.UpdateProfile(userID, services.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return handleError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

// PasswordChangeRequest represents the request body for a password change.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	Confirmation    string `json:"confirmation" validate:"required"`
}

// HandleChangePassword changes a user's password after verifying the
// current one.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	userID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsSameUser(identity, userID) {
		return forbidden(c)
	}

	var req PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.service.ChangePassword(userID, services.PasswordChange{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		Confirmation:    req.Confirmation,
	})
	if err != nil {
		return handleError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleDeleteUser removes a user account.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	identity, _ := middleware.IdentityFromCtx(c)
	if !h.policy.IsSameUser(identity, userID) {
		return forbidden(c)
	}

	if err := h.service.DeleteUser(userID); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddBalanceRequest represents the request body for a balance top-up.
type AddBalanceRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// HandleAddBalance tops up the caller's balance.
func (h *UserHandler) HandleAddBalance(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	var req AddBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.service.AddBalance(identity, req.Amount)
	if err != nil {
		return handleError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleGetPurchases lists the caller's purchases.
func (h *UserHandler) HandleGetPurchases(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	purchases, err := h.service.GetUserPurchases(identity)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(purchases)
}

// HandleGetReviews lists the caller's reviews.
func (h *UserHandler) HandleGetReviews(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	reviews, err := h.service.GetUserReviews(identity)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(reviews)
}

// HandleGetSubscriptions lists the caller's subscriptions.
func (h *UserHandler) HandleGetSubscriptions(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return forbidden(c)
	}

	subscriptions, err := h.service.GetUserSubscriptions(identity)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(subscriptions)
}

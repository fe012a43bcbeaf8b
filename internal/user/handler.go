package user

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"user-actions-backend/internal/notifier"
)

type Handler struct {
	service  *Service
	notifier notifier.Notifier
	topic    string
}

func NewHandler(service *Service, n notifier.Notifier, topic string) *Handler {
	return &Handler{service: service, notifier: n, topic: topic}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/users", h.apiInfo)
	app.Post("/users/create", h.createUser)
	// register /users/all before /users/:id so "all" is not read as an id
	app.Get("/users/all", h.getUsers)
	app.Get("/users/:id", h.getUser)
	app.Put("/users/update/:id", h.updateUser)
	app.Delete("/users/delete/:id", h.deleteUser)
}

func (h *Handler) apiInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"find_user_by_id": "/users/{id}",
		"find_all_users":  "/users/all",
	})
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	view := new(UserView)
	if err := c.BodyParser(view); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if violations := Validate(*view); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"violations": violations})
	}

	created, err := h.service.Create(*view)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	h.notifier.Publish(h.topic, "CREATE "+created.Email)

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return badID(c)
	}

	view, err := h.service.GetByID(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(view)
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return badID(c)
	}

	view := new(UserView)
	if err := c.BodyParser(view); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if violations := Validate(*view); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"violations": violations})
	}

	updated, err := h.service.Update(userID, *view)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(updated)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	userID, ok := parseID(c)
	if !ok {
		return badID(c)
	}

	// best-effort lookup so the notification can carry the email; a missing
	// record skips the publish but never blocks the delete itself
	if view, err := h.service.GetByID(userID); err == nil {
		h.notifier.Publish(h.topic, "DELETE "+view.Email)
	}

	if err := h.service.Delete(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"violations": []Violation{{Field: "id", Message: "id must be at least 1"}},
	})
}

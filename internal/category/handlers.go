package category

import (
	"strings"
	"unicode/utf8"

	"github.com/Ultro163/city-guide/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

const maxNameLen = 50

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Category
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validateName(req.Name); err != nil {
			return err
		}
		created, err := svc.Create(c.Context(), req)
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
		}
		found, err := svc.Get(c.Context(), int64(id))
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.JSON(found)
	})

	r.Patch("/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
		}
		var req Patch
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name != nil {
			if err := validateName(*req.Name); err != nil {
				return err
			}
		}
		updated, err := svc.Update(c.Context(), int64(id), req)
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.JSON(updated)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
		}
		if err := svc.Delete(c.Context(), int64(id)); err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fiber.NewError(fiber.StatusBadRequest, "name must be at most 50 characters")
	}
	return nil
}

package user

import (
	"strings"
	"unicode/utf8"

	"github.com/Ultro163/city-guide/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req User
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validateName(req.Name); err != nil {
			return err
		}
		if err := validateEmail(req.Email); err != nil {
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
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
		if req.Email != nil {
			if err := validateEmail(*req.Email); err != nil {
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}
		if err := svc.Delete(c.Context(), int64(id)); err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func validateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < 2 || n > 250 {
		return fiber.NewError(fiber.StatusBadRequest, "name must be between 2 and 250 characters")
	}
	return nil
}

func validateEmail(email string) error {
	n := utf8.RuneCountInString(email)
	at := strings.Index(email, "@")
	if n < 6 || n > 254 || at <= 0 || at == len(email)-1 {
		return fiber.NewError(fiber.StatusBadRequest, "email must be a valid address between 6 and 254 characters")
	}
	return nil
}

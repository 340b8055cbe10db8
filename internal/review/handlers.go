package review

import (
	"strconv"

	"github.com/Ultro163/city-guide/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/user/:userId/attraction/:attId", func(c *fiber.Ctx) error {
		userID, err := c.ParamsInt("userId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}
		attID, err := c.ParamsInt("attId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid attraction id")
		}
		var req createRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		if err := validateRating(req.Rating); err != nil {
			return err
		}
		created, err := svc.Create(c.Context(), NewReview{
			AuthorID:     int64(userID),
			AttractionID: int64(attID),
			Comment:      req.Comment,
			Rating:       req.Rating,
		})
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/attraction/:attId", func(c *fiber.Ctx) error {
		attID, err := c.ParamsInt("attId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid attraction id")
		}
		list, err := svc.ForAttraction(c.Context(), int64(attID), c.Query("sortDirection", "desc"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.JSON(list)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid review id")
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid review id")
		}
		var req UpdateReview
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.AuthorID <= 0 || req.AttractionID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "author_id and attraction_id required")
		}
		if err := validateRating(req.Rating); err != nil {
			return err
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid review id")
		}
		var actor *int64
		if raw := c.Query("author_id"); raw != "" {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid author_id")
			}
			actor = &v
		}
		if err := svc.Delete(c.Context(), int64(id), actor); err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}
	return nil
}

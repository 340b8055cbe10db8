package attraction

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Ultro163/city-guide/internal/shared/apperr"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultLimit         = 10
	defaultSortBy        = "distance"
	defaultSortDirection = "asc"
	maxNameLen           = 255
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/nearby", func(c *fiber.Ctx) error {
		lat, lon, err := userPosition(c)
		if err != nil {
			return err
		}
		radius, err := requiredFloat(c, "radius")
		if err != nil {
			return err
		}
		params, err := searchParams(c, lat, lon)
		if err != nil {
			return err
		}
		found, err := svc.Nearby(c.Context(), NearbyQuery{SearchParams: params, RadiusKm: radius})
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.JSON(found)
	})

	r.Get("/city", func(c *fiber.Ctx) error {
		cityID, err := strconv.ParseInt(c.Query("cityId"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "cityId required")
		}
		lat, lon, err := userPosition(c)
		if err != nil {
			return err
		}
		params, err := searchParams(c, lat, lon)
		if err != nil {
			return err
		}
		found, err := svc.InCity(c.Context(), CityQuery{SearchParams: params, CityID: cityID})
		if err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.JSON(found)
	})

	r.Post("/", func(c *fiber.Ctx) error {
		var req NewAttraction
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if strings.TrimSpace(req.Name) == "" || utf8.RuneCountInString(req.Name) > maxNameLen {
			return fiber.NewError(fiber.StatusBadRequest, "name required, at most 255 characters")
		}
		if req.CategoryID == 0 || req.CityID == 0 || req.Location == nil {
			return fiber.NewError(fiber.StatusBadRequest, "category_id, city_id and location required")
		}
		if !validLat(req.Location.Lat) || !validLon(req.Location.Lon) {
			return fiber.NewError(fiber.StatusBadRequest, "location out of range")
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid attraction id")
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid attraction id")
		}
		var req Patch
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name != nil && (strings.TrimSpace(*req.Name) == "" || utf8.RuneCountInString(*req.Name) > maxNameLen) {
			return fiber.NewError(fiber.StatusBadRequest, "name must be 1 to 255 characters")
		}
		if req.Location != nil &&
			((req.Location.Lat != nil && !validLat(*req.Location.Lat)) || (req.Location.Lon != nil && !validLon(*req.Location.Lon))) {
			return fiber.NewError(fiber.StatusBadRequest, "location out of range")
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
			return fiber.NewError(fiber.StatusBadRequest, "invalid attraction id")
		}
		if err := svc.Delete(c.Context(), int64(id)); err != nil {
			return fiber.NewError(apperr.Status(err), err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func userPosition(c *fiber.Ctx) (float64, float64, error) {
	lat, err := requiredFloat(c, "userLat")
	if err != nil {
		return 0, 0, err
	}
	lon, err := requiredFloat(c, "userLon")
	if err != nil {
		return 0, 0, err
	}
	if !validLat(lat) || !validLon(lon) {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "userLat/userLon out of range")
	}
	return lat, lon, nil
}

func searchParams(c *fiber.Ctx, lat, lon float64) (SearchParams, error) {
	p := SearchParams{
		UserLat:       lat,
		UserLon:       lon,
		Limit:         defaultLimit,
		SortBy:        c.Query("sortBy", defaultSortBy),
		SortDirection: c.Query("sortDirection", defaultSortDirection),
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return SearchParams{}, fiber.NewError(fiber.StatusBadRequest, "invalid categoryId")
		}
		p.CategoryID = &id
	}
	if raw := c.Query("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return SearchParams{}, fiber.NewError(fiber.StatusBadRequest, "invalid minRating")
		}
		p.MinRating = &v
	}
	if raw := c.Query("limitCount"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return SearchParams{}, fiber.NewError(fiber.StatusBadRequest, "invalid limitCount")
		}
		p.Limit = v
	}
	return p, nil
}

func requiredFloat(c *fiber.Ctx, key string) (float64, error) {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" required")
	}
	return v, nil
}

func validLat(v float64) bool { return v >= -90 && v <= 90 }

func validLon(v float64) bool { return v >= -180 && v <= 180 }

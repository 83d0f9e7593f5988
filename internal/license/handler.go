package license

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/httperr"
	"zimlicense-backend/internal/models"
)

// ListLicensesHandler applies at most one filter. Precedence: type, then
// companyName, then an issue-date range (both bounds required), else the
// unfiltered set.
func ListLicensesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			licenses []dto.LicenseDTO
			err      error
		)
		switch {
		case c.Query("type") != "":
			t, ok := models.ParseLicenseType(c.Query("type"))
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "type must be one of: CTL, PRSL")
			}
			licenses, err = svc.GetByType(t)
		case c.Query("companyName") != "":
			licenses, err = svc.SearchByCompanyName(c.Query("companyName"))
		case c.Query("from") != "" && c.Query("to") != "":
			var from, to time.Time
			if from, err = time.Parse("2006-01-02", c.Query("from")); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from must be a date in YYYY-MM-DD format")
			}
			if to, err = time.Parse("2006-01-02", c.Query("to")); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to must be a date in YYYY-MM-DD format")
			}
			licenses, err = svc.GetByIssueDateRange(from, to)
		default:
			licenses, err = svc.GetAll()
		}
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(licenses)
	}
}

func GetLicenseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		license, err := svc.GetByID(c.Params("id"))
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(license)
	}
}

func CreateLicenseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LicenseDTO
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := dto.Validate(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		created, err := svc.Create(body)
		if err != nil {
			return httperr.From(err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

func UpdateLicenseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LicenseDTO
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := dto.Validate(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		updated, err := svc.Update(c.Params("id"), body)
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(updated)
	}
}

func DeleteLicenseHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("id")); err != nil {
			return httperr.From(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

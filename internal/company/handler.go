package company

import (
	"github.com/gofiber/fiber/v2"

	"zimlicense-backend/internal/dto"
	"zimlicense-backend/internal/httperr"
)

func ListCompaniesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			companies []dto.CompanyDTO
			err       error
		)
		if name := c.Query("name"); name != "" {
			companies, err = svc.Search(name)
		} else {
			companies, err = svc.GetAll()
		}
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(companies)
	}
}

func GetCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.GetByID(c.Params("id"))
		if err != nil {
			return httperr.From(err)
		}
		return c.JSON(company)
	}
}

func CreateCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CompanyDTO
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

func UpdateCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CompanyDTO
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

func DeleteCompanyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("id")); err != nil {
			return httperr.From(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

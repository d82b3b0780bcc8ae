// internals/middlewares/features/role_middleware.go
package features

import (
	"github.com/gofiber/fiber/v2"

	"zarfuel_backend/internals/constants"
	helper "zarfuel_backend/internals/helpers"
)

// RequirePage gates a route group on the pure page-permission evaluator.
func RequirePage(page string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if !constants.CanViewPage(role, page) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSpecial(page))
		}
		return c.Next()
	}
}

func RequireSpecial(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !constants.IsSpecialOrAbove(helper.GetUserRole(c)) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSpecial(feature))
		}
		return c.Next()
	}
}

func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !constants.IsAdmin(helper.GetUserRole(c)) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

func RequireSuperAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !constants.IsSuperAdmin(helper.GetUserRole(c)) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSuperAdmin(feature))
		}
		return c.Next()
	}
}

package controller

import (
	"dinedesk-be/internal/dto"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/serverutils"
	"dinedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRestaurantController interface {
	RegisterRoutes(r fiber.Router)
	Popular(ctx *fiber.Ctx) error
	Cuisines(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Menu(ctx *fiber.Ctx) error
}

type restaurantController struct {
	restaurantService service.IRestaurantService
	auth              fiber.Handler
}

func NewRestaurantController(restaurantService service.IRestaurantService, jwtSecret string) IRestaurantController {
	return &restaurantController{
		restaurantService: restaurantService,
		auth:              serverutils.JwtMiddleware(jwtSecret),
	}
}

func (c *restaurantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/restaurants")
	h.Use(c.auth)
	h.Get("/popular", c.Popular)
	h.Get("/cuisines", c.Cuisines)
	h.Get("/search", c.Search)
	h.Get("/:id", c.Show)
	h.Get("/:id/menu", c.Menu)
}

func (c *restaurantController) Popular(ctx *fiber.Ctx) error {
	res, err := c.restaurantService.Popular(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get popular restaurants", res))
}

func (c *restaurantController) Cuisines(ctx *fiber.Ctx) error {
	res, err := c.restaurantService.Cuisines(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cuisines", res))
}

func (c *restaurantController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRestaurantsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.Validation("Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.restaurantService.Search(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search restaurants", res))
}

func (c *restaurantController) Show(ctx *fiber.Ctx) error {
	id, err := restaurantId(ctx)
	if err != nil {
		return err
	}

	res, err := c.restaurantService.Details(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get restaurant", res))
}

func (c *restaurantController) Menu(ctx *fiber.Ctx) error {
	id, err := restaurantId(ctx)
	if err != nil {
		return err
	}

	res, err := c.restaurantService.Menu(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get menu", res))
}

func restaurantId(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperror.NotFound("restaurant", ctx.Params("id"))
	}
	return uint(id), nil
}

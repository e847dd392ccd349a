package controller

import (
	"path/filepath"

	"dinedesk-be/internal/pkg/serverutils"
	"dinedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Signup(ctx *fiber.Ctx) error
}

type pageController struct {
	chatService service.IChatService
	webDir      string
	auth        fiber.Handler
}

func NewPageController(chatService service.IChatService, webDir, jwtSecret string) IPageController {
	return &pageController{
		chatService: chatService,
		webDir:      webDir,
		auth:        serverutils.PageAuthMiddleware(jwtSecret, "/login"),
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.auth, c.Index)
	r.Get("/login", c.Login)
	r.Get("/signup", c.Signup)
	r.Get("/dashboard", func(ctx *fiber.Ctx) error {
		return ctx.Redirect("/")
	})
}

// Index serves the chat page after making sure the visitor has an active
// chat to land in.
func (c *pageController) Index(ctx *fiber.Ctx) error {
	userId, userName, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return ctx.Redirect("/login")
	}

	if _, err := c.chatService.EnsureActiveSession(ctx.UserContext(), userId, userName); err != nil {
		return err
	}
	return ctx.SendFile(filepath.Join(c.webDir, "index.html"))
}

func (c *pageController) Login(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.webDir, "login.html"))
}

func (c *pageController) Signup(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(c.webDir, "signup.html"))
}

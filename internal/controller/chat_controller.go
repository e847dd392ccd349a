package controller

import (
	"strings"

	"dinedesk-be/internal/dto"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/serverutils"
	"dinedesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	QuickReply(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	NewChat(ctx *fiber.Ctx) error
	ChatHistory(ctx *fiber.Ctx) error
	LoadChat(ctx *fiber.Ctx) error
	DeleteChat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	auth        fiber.Handler
}

func NewChatController(chatService service.IChatService, jwtSecret string) IChatController {
	return &chatController{
		chatService: chatService,
		auth:        serverutils.JwtMiddleware(jwtSecret),
	}
}

// RegisterRoutes expects the application root; the chat routes keep their
// historical paths, some of which live outside /api.
func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/new-chat", c.auth, c.NewChat)

	h := r.Group("/api")
	h.Post("/send_message", c.auth, c.SendMessage)
	h.Post("/quick_reply", c.auth, c.QuickReply)
	h.Get("/get_history", c.auth, c.GetHistory)
	h.Get("/chat-history", c.auth, c.ChatHistory)
	h.Post("/load-chat/:chatId", c.auth, c.LoadChat)
	h.Delete("/delete-chat/:chatId", c.auth, c.DeleteChat)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	return c.send(ctx, req.Message)
}

// QuickReply handles a button press; the button text is sent as a message.
func (c *chatController) QuickReply(ctx *fiber.Ctx) error {
	var req dto.QuickReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Text) == "" {
		return apperror.Validation("Empty reply")
	}
	return c.send(ctx, req.Text)
}

func (c *chatController) send(ctx *fiber.Ctx, message string) error {
	userId, userName, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.UserContext(), userId, userName, message)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId, userName, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	messages, err := c.chatService.GetHistory(ctx.UserContext(), userId, userName)
	if err != nil {
		return err
	}
	return ctx.JSON(messages)
}

func (c *chatController) NewChat(ctx *fiber.Ctx) error {
	userId, userName, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.NewChat(ctx.UserContext(), userId, userName)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) ChatHistory(ctx *fiber.Ctx) error {
	userId, _, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	sessions, err := c.chatService.ListChats(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.ChatHistoryResponse{Success: true, ChatSessions: sessions})
}

func (c *chatController) LoadChat(ctx *fiber.Ctx) error {
	userId, _, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}
	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return apperror.NotFound("chat session", ctx.Params("chatId"))
	}

	res, err := c.chatService.LoadChat(ctx.UserContext(), userId, chatId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	userId, _, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}
	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return apperror.Validation("Failed to delete chat")
	}

	if err := c.chatService.DeleteChat(ctx.UserContext(), userId, chatId); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Chat deleted successfully",
	})
}

package controller

import (
	"bufio"
	"fmt"

	"helix_backend/internals/features/assistant/dto"
	"helix_backend/internals/features/assistant/service"
	configModel "helix_backend/internals/features/content/siteconfig/model"
	helper "helix_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"
)

type AssistantController struct {
	DB     *gorm.DB
	Client *service.GeminiClient
}

func NewAssistantController(db *gorm.DB, client *service.GeminiClient) *AssistantController {
	return &AssistantController{DB: db, Client: client}
}

var validate = validator.New()

// Chat streams an assistant reply over SSE. Whatever goes wrong upstream, the
// visitor always gets an answer that includes the workshop phone number.
func (ctrl *AssistantController) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	systemPrompt, fallback := ctrl.buildPrompt()

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	client := ctrl.Client
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		wrote := false
		err := client.StreamChat(systemPrompt, req.History, req.Message, func(text string) error {
			wrote = true
			return writeEvent(w, text)
		})
		if err != nil || !wrote {
			_ = writeEvent(w, fallback)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		_ = w.Flush()
	}))
	return nil
}

func writeEvent(w *bufio.Writer, text string) error {
	payload, err := sonic.MarshalString(fiber.Map{"text": text})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}

// buildPrompt assembles the business facts the assistant may answer from and
// the fallback line used when the upstream model is unavailable.
func (ctrl *AssistantController) buildPrompt() (string, string) {
	phone := ""
	facts := ""

	if cfg, err := configModel.FirstConfig(ctrl.DB); err == nil {
		phone = cfg.Phone
		facts = fmt.Sprintf(
			"Business name: Helix Motorcycles. Owner: %s. Phone: %s. Email: %s. Address: %s. Opening hours: %s. Current offer: %s.",
			cfg.Owner, cfg.Phone, cfg.Email, cfg.Address, cfg.Hours, cfg.Offer,
		)
	}

	systemPrompt := "You are the assistant for Helix Motorcycles, a motorcycle garage specialising in cerakote coating, engine rebuilds, servicing and custom builds. " +
		"Answer questions about the workshop using only the facts below. Keep replies short and friendly. " +
		"If you do not know something, say so and suggest calling the workshop. " + facts

	fallback := "Sorry, I'm having trouble answering right now."
	if phone != "" {
		fallback = fmt.Sprintf("Sorry, I'm having trouble answering right now. Please give us a call on %s and we'll help you directly.", phone)
	}
	return systemPrompt, fallback
}

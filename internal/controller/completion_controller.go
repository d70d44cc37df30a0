package controller

import (
	"encoding/json"

	"notepad-be/internal/dto"
	"notepad-be/internal/pkg/apperror"
	"notepad-be/internal/pkg/serverutils"
	"notepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICompletionController interface {
	RegisterRoutes(r fiber.Router)
	GenerateAIResponse(ctx *fiber.Ctx) error
}

type completionController struct {
	completionService service.ICompletionService
	auth              *serverutils.JwtAuth
}

func NewCompletionController(completionService service.ICompletionService, auth *serverutils.JwtAuth) ICompletionController {
	return &completionController{
		completionService: completionService,
		auth:              auth,
	}
}

// RegisterRoutes mounts the callable. Auth is optional at the middleware level
// so an anonymous caller gets the callable UNAUTHENTICATED envelope rather
// than the REST error body.
func (c *completionController) RegisterRoutes(r fiber.Router) {
	r.Post("/callable/generateAIResponse", c.auth.Optional, c.GenerateAIResponse)
}

func (c *completionController) GenerateAIResponse(ctx *fiber.Ctx) error {
	res, err := c.generate(ctx)
	if err != nil {
		status, body := serverutils.CallableFailure(err)
		return ctx.Status(status).JSON(body)
	}

	return ctx.JSON(serverutils.CallableSuccess(res))
}

func (c *completionController) generate(ctx *fiber.Ctx) (*dto.CompletionResponse, error) {
	userId := serverutils.UserId(ctx)
	if userId == "" {
		return nil, apperror.NewUnauthenticatedError("You must be logged in to use AI features")
	}

	var envelope serverutils.CallableRequest
	if err := json.Unmarshal(ctx.Body(), &envelope); err != nil {
		return nil, apperror.NewInvalidArgumentError("The function must be called with a valid prompt")
	}

	var req dto.CompletionRequest
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &req); err != nil {
			return nil, apperror.NewInvalidArgumentError("The function must be called with a valid prompt")
		}
	}

	return c.completionService.GenerateResponse(ctx.UserContext(), userId, &req)
}

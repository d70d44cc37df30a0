package controller

import (
	"strings"

	"notepad-be/internal/dto"
	"notepad-be/internal/pkg/apperror"
	"notepad-be/internal/pkg/serverutils"
	"notepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	FetchUserNotes(ctx *fiber.Ctx) error
	SaveNote(ctx *fiber.Ctx) error
	CreateNewNote(ctx *fiber.Ctx) error
	LoadNote(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	auth        *serverutils.JwtAuth
}

func NewNoteController(noteService service.INoteService, auth *serverutils.JwtAuth) INoteController {
	return &noteController{
		noteService: noteService,
		auth:        auth,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(c.auth.Required)
	h.Get("", c.FetchUserNotes)
	h.Post("", c.SaveNote)
	h.Post("new", c.CreateNewNote)
	h.Get(":id", c.LoadNote)
	h.Put(":id", c.SaveNote)
}

func (c *noteController) FetchUserNotes(ctx *fiber.Ctx) error {
	res, err := c.noteService.FetchUserNotes(ctx.UserContext(), serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch notes", res))
}

// SaveNote handles both POST "" and PUT ":id". On PUT the path id wins over
// any id in the body.
func (c *noteController) SaveNote(ctx *fiber.Ctx) error {
	var req dto.SaveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewInvalidArgumentError("Invalid request body")
	}

	if idParam := ctx.Params("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return apperror.NewInvalidArgumentError("Invalid note id")
		}
		req.Id = &id
	}
	req.Title = strings.TrimSpace(req.Title)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.SaveNote(ctx.UserContext(), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save note", res))
}

func (c *noteController) CreateNewNote(ctx *fiber.Ctx) error {
	res, err := c.noteService.CreateNewNote(ctx.UserContext(), serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create note", res))
}

func (c *noteController) LoadNote(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewInvalidArgumentError("Invalid note id")
	}

	res, err := c.noteService.LoadNote(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	// another user's note is reported exactly like a missing one
	if res == nil || res.OwnerId != serverutils.UserId(ctx) {
		return apperror.NewNotFoundError("Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success load note", res))
}

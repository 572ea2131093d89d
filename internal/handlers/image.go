package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	authmw "github.com/closetdev/wardrobe/internal/middleware/auth"
	"github.com/closetdev/wardrobe/internal/repo"
)

type ImageHandler struct {
	Repo *repo.GormRepo
}

type imageRequest struct {
	ItemID    uint     `json:"item_id"   form:"item_id"`
	ImageURLs []string `json:"image_url" form:"image_url"`
}

func (h *ImageHandler) GetImages(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	images, err := h.Repo.ImagesByOwner(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("list images error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, images)
}

func (h *ImageHandler) CreateImages(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	var req imageRequest
	if err := c.Bind(&req); err != nil || req.ItemID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Item id and image urls are required"})
	}

	images, err := h.Repo.AddImages(c.Request().Context(), userID, req.ItemID, req.ImageURLs)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		}
		c.Logger().Errorf("create images error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, images)
}

func (h *ImageHandler) DeleteImage(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid image id"})
	}

	if err := h.Repo.DeleteImage(c.Request().Context(), userID, uint(id)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Image not found"})
		}
		c.Logger().Errorf("delete image error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.NoContent(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/closetdev/wardrobe/internal/models"
	"github.com/closetdev/wardrobe/internal/repo"
)

// Categories are shared reference data, not per-user records. Reads are
// public, mutations sit behind RequireAuth.
type CategoryHandler struct {
	Repo *repo.GormRepo
}

type categoryRequest struct {
	CategoryName string `json:"category_name" form:"category_name"`
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.Repo.Categories(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list categories error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
	}

	category, err := h.Repo.CategoryByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Category not found"})
		}
		c.Logger().Errorf("get category error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil || req.CategoryName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Category name is required"})
	}

	category := models.Category{CategoryName: req.CategoryName}
	if err := h.Repo.CreateCategory(c.Request().Context(), &category); err != nil {
		if errors.Is(err, repo.ErrDuplicateCategory) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Category already exists"})
		}
		c.Logger().Errorf("create category error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) PatchCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil || req.CategoryName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Category name is required"})
	}

	category, err := h.Repo.CategoryByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Category not found"})
		}
		c.Logger().Errorf("patch category error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	category.CategoryName = req.CategoryName
	if err := h.Repo.SaveCategory(c.Request().Context(), category); err != nil {
		if errors.Is(err, repo.ErrDuplicateCategory) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Category already exists"})
		}
		c.Logger().Errorf("patch category error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
	}

	if err := h.Repo.DeleteCategory(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Category not found"})
		}
		c.Logger().Errorf("delete category error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.NoContent(http.StatusNoContent)
}

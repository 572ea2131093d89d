package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	authmw "github.com/closetdev/wardrobe/internal/middleware/auth"
	"github.com/closetdev/wardrobe/internal/models"
	"github.com/closetdev/wardrobe/internal/mykafka"
	"github.com/closetdev/wardrobe/internal/repo"
	"github.com/closetdev/wardrobe/internal/service/search"
	"github.com/closetdev/wardrobe/internal/util"
)

type ItemHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

type itemRequest struct {
	Name       string `json:"name"        form:"name"`
	Brand      string `json:"brand"       form:"brand"`
	Size       int    `json:"size"        form:"size"`
	Color      string `json:"color"       form:"color"`
	Fit        string `json:"fit"         form:"fit"`
	CategoryID uint   `json:"category_id" form:"category_id"`
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *ItemHandler) publish(c echo.Context, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "item_events", fmt.Sprint(event["itemID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *ItemHandler) indexItem(c echo.Context, item *models.Item) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexItem(ctx, h.ES, h.Index, item); err != nil {
		c.Logger().Errorf("ES index error: %v", err)
	}
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	items, total, err := h.Repo.ItemsByOwner(c.Request().Context(), userID, offset, limit)
	if err != nil {
		c.Logger().Errorf("list items error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid item id"})
	}

	item, err := h.Repo.ItemByID(c.Request().Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		}
		c.Logger().Errorf("get item error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	item := models.Item{
		Name:       req.Name,
		Brand:      req.Brand,
		Size:       req.Size,
		Color:      req.Color,
		Fit:        req.Fit,
		CategoryID: req.CategoryID,
		UserID:     userID,
	}
	if err := h.Repo.CreateItem(c.Request().Context(), &item); err != nil {
		c.Logger().Errorf("create item error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	h.indexItem(c, &item)
	h.publish(c, map[string]interface{}{
		"type":   "item_created",
		"itemID": item.ID,
		"userID": userID,
		"name":   item.Name,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) PatchItem(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid item id"})
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	item, err := h.Repo.ItemByID(c.Request().Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		}
		c.Logger().Errorf("patch item error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	// Partial update: absent fields arrive as zero values and keep the
	// stored value.
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Brand != "" {
		item.Brand = req.Brand
	}
	if req.Size != 0 {
		item.Size = req.Size
	}
	if req.Color != "" {
		item.Color = req.Color
	}
	if req.Fit != "" {
		item.Fit = req.Fit
	}
	if req.CategoryID != 0 {
		item.CategoryID = req.CategoryID
	}

	if err := h.Repo.SaveItem(c.Request().Context(), item); err != nil {
		c.Logger().Errorf("patch item error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	h.indexItem(c, item)
	h.publish(c, map[string]interface{}{
		"type":   "item_updated",
		"itemID": item.ID,
		"userID": userID,
		"name":   item.Name,
	})

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	userID, ok := authmw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid item id"})
	}

	if err := h.Repo.DeleteItem(c.Request().Context(), userID, uint(id)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Item not found"})
		}
		c.Logger().Errorf("delete item error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	if h.ES != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := search.DeleteItem(ctx, h.ES, h.Index, uint(id)); err != nil {
			c.Logger().Errorf("ES delete error: %v", err)
		}
	}

	h.publish(c, map[string]interface{}{
		"type":   "item_deleted",
		"itemID": uint(id),
		"userID": userID,
	})

	return c.NoContent(http.StatusNoContent)
}

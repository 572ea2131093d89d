package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Authentication token missing", env.body(rec)["error"])

	rec = env.doJSON(http.MethodGet, "/items", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token", env.body(rec)["error"])
}

func TestItemListIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signupAndLogin("alice@x.com", "pw1")
	bobToken := env.signupAndLogin("bob@x.com", "pw2")

	rec := env.doJSON(http.MethodPost, "/items", aliceToken, map[string]interface{}{
		"name": "Loose-fit Jeans", "brand": "HOPE", "size": 34, "color": "Mid Grey Stone", "fit": "very baggy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodGet, "/items", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.body(rec)["data"].([]interface{})
	require.Len(t, data, 1)
	item := data[0].(map[string]interface{})
	require.Equal(t, "Loose-fit Jeans", item["name"])

	rec = env.doJSON(http.MethodGet, "/items", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, env.body(rec)["data"], "a fresh account must see an empty list")
}

func TestForeignItemLooksMissing(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signupAndLogin("alice@x.com", "pw1")
	bobToken := env.signupAndLogin("bob@x.com", "pw2")

	rec := env.doJSON(http.MethodPost, "/items", aliceToken, map[string]interface{}{"name": "Jeans"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(env.body(rec)["id"].(float64))

	path := fmt.Sprintf("/items/%d", id)

	rec = env.doJSON(http.MethodGet, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodGet, path, bobToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code, "foreign items must 404, not 403")

	rec = env.doJSON(http.MethodPatch, path, bobToken, map[string]interface{}{"name": "Stolen"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(http.MethodDelete, path, bobToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(http.MethodGet, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Jeans", env.body(rec)["name"])
}

func TestItemLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin("alice@x.com", "pw1")

	rec := env.doJSON(http.MethodPost, "/categories", token, map[string]string{"category_name": "Pants"})
	require.Equal(t, http.StatusCreated, rec.Code)
	categoryID := int(env.body(rec)["id"].(float64))

	rec = env.doJSON(http.MethodPost, "/items", token, map[string]interface{}{
		"name": "Jeans", "brand": "HOPE", "size": 34, "category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(env.body(rec)["id"].(float64))

	rec = env.doJSON(http.MethodPost, "/images", token, map[string]interface{}{
		"item_id": id, "image_url": []string{"http://img/1", "http://img/2"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	path := fmt.Sprintf("/items/%d", id)
	rec = env.doJSON(http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := env.body(rec)
	require.Equal(t, "Pants", body["category"].(map[string]interface{})["category_name"])
	require.Len(t, body["images"], 2)

	rec = env.doJSON(http.MethodPatch, path, token, map[string]interface{}{
		"name": "Baggy Jeans", "brand": "HOPE", "size": 36, "category_id": categoryID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Baggy Jeans", env.body(rec)["name"])

	rec = env.doJSON(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.doJSON(http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchItemPartialBody(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin("alice@x.com", "pw1")

	rec := env.doJSON(http.MethodPost, "/items", token, map[string]interface{}{
		"name": "Jeans", "brand": "HOPE", "size": 34, "color": "Grey", "fit": "baggy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(env.body(rec)["id"].(float64))

	rec = env.doJSON(http.MethodPatch, fmt.Sprintf("/items/%d", id), token, map[string]interface{}{
		"name": "Baggy Jeans",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := env.body(rec)
	require.Equal(t, "Baggy Jeans", body["name"])
	require.Equal(t, "HOPE", body["brand"], "fields absent from the body must keep their value")
	require.Equal(t, float64(34), body["size"])
	require.Equal(t, "Grey", body["color"])
	require.Equal(t, "baggy", body["fit"])
}

func TestCategoriesPublicReadAuthWrite(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodPost, "/categories", "", map[string]string{"category_name": "Shirts"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.signupAndLogin("alice@x.com", "pw1")
	rec = env.doJSON(http.MethodPost, "/categories", token, map[string]string{"category_name": "Shirts"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(http.MethodPost, "/categories", token, map[string]string{"category_name": "Shirts"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Category already exists", env.body(rec)["message"])
}

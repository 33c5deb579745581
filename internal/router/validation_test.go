package router

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categorySchema = validators.Schema{
	"category_name": validators.String{Required: true, MinLength: validators.Ptr(4)},
}

var idParamSchema = validators.Schema{
	"id": validators.String{Required: true, Pattern: regexp.MustCompile(`^[0-9]+$`)},
}

var paginationSchema = validators.Schema{
	"limit": validators.String{Pattern: regexp.MustCompile(`^[0-9]+$`)},
}

func TestValidateBody(t *testing.T) {
	type category struct {
		Name string `json:"category_name"`
	}

	newRouter := func(calls *int, bound *category) *Router {
		rt := newTestRouter()
		rt.Post("/categories", ValidateBody(categorySchema), func(c *Context) (*Response, error) {
			*calls++
			if err := c.Bind(bound); err != nil {
				return nil, err
			}
			return JSON(http.StatusCreated, c.Body), nil
		})
		return rt
	}

	t.Run("valid body reaches handler", func(t *testing.T) {
		calls := 0
		var bound category

		rec, envelope := serve(t, newRouter(&calls, &bound), http.MethodPost, "/categories", `{"category_name":"Books"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, calls)
		assert.Equal(t, map[string]any{"category_name": "Books"}, envelope["message"])
		assert.Equal(t, "Books", bound.Name)
	})

	t.Run("validation failure", func(t *testing.T) {
		calls := 0

		rec, envelope := serve(t, newRouter(&calls, &category{}), http.MethodPost, "/categories", `{"category_name":"abc"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, calls)
		assert.Equal(t, "Wrong input data", envelope["message"])
		assert.Equal(t, []any{
			map[string]any{"field": "category_name", "message": "Must have at least 4 characters"},
		}, envelope["details"])
	})

	t.Run("null body reports required fields", func(t *testing.T) {
		calls := 0

		rec, envelope := serve(t, newRouter(&calls, &category{}), http.MethodPost, "/categories", `null`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []any{
			map[string]any{"field": "category_name", "message": "Required field"},
		}, envelope["details"])
	})

	t.Run("malformed json", func(t *testing.T) {
		calls := 0

		rec, envelope := serve(t, newRouter(&calls, &category{}), http.MethodPost, "/categories", `{"category_name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, calls)
		assert.Equal(t, "Invalid JSON", envelope["message"])
		assert.NotEmpty(t, envelope["error"])
		assert.NotContains(t, envelope, "details")
	})

	t.Run("empty body", func(t *testing.T) {
		calls := 0

		rec, envelope := serve(t, newRouter(&calls, &category{}), http.MethodPost, "/categories", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid JSON", envelope["message"])
	})
}

func TestValidateParams(t *testing.T) {
	rt := newTestRouter()
	rt.Get("/categories/:id", ValidateParams(idParamSchema), func(c *Context) (*Response, error) {
		return JSON(http.StatusOK, c.Params["id"]), nil
	})

	rec, envelope := serve(t, rt, http.MethodGet, "/categories/12", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12", envelope["message"])

	rec, envelope = serve(t, rt, http.MethodGet, "/categories/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid route params", envelope["message"])
	assert.Equal(t, []any{
		map[string]any{"field": "id", "message": "Doesn't match the specified format"},
	}, envelope["details"])
}

func TestValidateQuery(t *testing.T) {
	rt := newTestRouter()
	rt.Get("/categories", ValidateQuery(paginationSchema), reply("list"))

	rec, _ := serve(t, rt, http.MethodGet, "/categories?limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, rt, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := serve(t, rt, http.MethodGet, "/categories?limit=ten", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid query params", envelope["message"])
}

func TestContext_BindWithoutValidation(t *testing.T) {
	rt := newTestRouter()
	rt.Post("/echo", func(c *Context) (*Response, error) {
		var payload map[string]int
		if err := c.Bind(&payload); err != nil {
			return Error(http.StatusBadRequest, "bad", err), nil
		}
		return JSON(http.StatusOK, payload["n"]), nil
	})

	_, envelope := serve(t, rt, http.MethodPost, "/echo", `{"n":3}`)
	assert.Equal(t, float64(3), envelope["message"])

	rec, envelope := serve(t, rt, http.MethodPost, "/echo", `nope`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad", envelope["message"])
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	categoriesPath  = "/api/categories"
	departmentsPath = "/api/locations/departments"
	citiesPath      = "/api/locations/cities"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the REST implementation of
// [CatalogAdapter]. address may omit the scheme, "http" is assumed then.
// A zero timeout keeps the client default.
func NewHTTPCatalogAdapter(address string, timeout time.Duration, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAdapter) Token() string {
	return h.token
}

// Register POSTs the user to /api/users/register. The server answers with a
// bearer token in the Authorization header which is stored as well.
func (h *httpCatalogAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/users/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	registered, err := decode[models.User](resp)
	if err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	h.SetToken(token)

	return registered, nil
}

func (h *httpCatalogAdapter) Login(ctx context.Context, username, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Username: username, Password: password}).
		Post("/api/users/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	login, err := decode[models.LoginResponse](resp)
	if err != nil {
		return err
	}
	if login.Token == "" {
		return fmt.Errorf("login response has no token")
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("username", username).Msg("logged in")
	return nil
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	return decode[models.AppBuildInfo](resp)
}

func (h *httpCatalogAdapter) ListCategories(ctx context.Context, page models.Page) ([]models.Category, error) {
	return list[models.Category](h.paged(ctx, page), categoriesPath)
}

func (h *httpCatalogAdapter) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return get[models.Category](h.client.R().SetContext(ctx), categoriesPath, id)
}

func (h *httpCatalogAdapter) CreateCategory(ctx context.Context, category models.CategoryCreate) (models.Category, error) {
	return create[models.Category](h.authedRequest(ctx), categoriesPath, category)
}

func (h *httpCatalogAdapter) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error) {
	return patch[models.Category](h.authedRequest(ctx), categoriesPath, id, update)
}

func (h *httpCatalogAdapter) DeleteCategory(ctx context.Context, id int64) error {
	return remove(h.authedRequest(ctx), categoriesPath, id)
}

func (h *httpCatalogAdapter) ListDepartments(ctx context.Context, page models.Page) ([]models.Department, error) {
	return list[models.Department](h.paged(ctx, page), departmentsPath)
}

func (h *httpCatalogAdapter) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	return get[models.Department](h.client.R().SetContext(ctx), departmentsPath, id)
}

func (h *httpCatalogAdapter) ListDepartmentCities(ctx context.Context, departmentID int64, page models.Page) ([]models.City, error) {
	return list[models.City](h.paged(ctx, page), resourcePath(departmentsPath, departmentID)+"/cities")
}

func (h *httpCatalogAdapter) CreateDepartment(ctx context.Context, department models.DepartmentCreate) (models.Department, error) {
	return create[models.Department](h.authedRequest(ctx), departmentsPath, department)
}

func (h *httpCatalogAdapter) UpdateDepartment(ctx context.Context, id int64, update models.DepartmentUpdate) (models.Department, error) {
	return patch[models.Department](h.authedRequest(ctx), departmentsPath, id, update)
}

func (h *httpCatalogAdapter) DeleteDepartment(ctx context.Context, id int64) error {
	return remove(h.authedRequest(ctx), departmentsPath, id)
}

func (h *httpCatalogAdapter) ListCities(ctx context.Context, page models.Page) ([]models.City, error) {
	return list[models.City](h.paged(ctx, page), citiesPath)
}

func (h *httpCatalogAdapter) GetCity(ctx context.Context, id int64) (models.City, error) {
	return get[models.City](h.client.R().SetContext(ctx), citiesPath, id)
}

func (h *httpCatalogAdapter) CreateCity(ctx context.Context, city models.CityCreate) (models.City, error) {
	return create[models.City](h.authedRequest(ctx), citiesPath, city)
}

func (h *httpCatalogAdapter) UpdateCity(ctx context.Context, id int64, update models.CityUpdate) (models.City, error) {
	return patch[models.City](h.authedRequest(ctx), citiesPath, id, update)
}

func (h *httpCatalogAdapter) DeleteCity(ctx context.Context, id int64) error {
	return remove(h.authedRequest(ctx), citiesPath, id)
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// paged sets offset and limit. Zero values are left to the server default.
func (h *httpCatalogAdapter) paged(ctx context.Context, page models.Page) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if page.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(page.Offset, 10))
	}
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(page.Limit, 10))
	}
	return req
}

func resourcePath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

// envelope mirrors the server response body, data lives under "message".
type envelope[T any] struct {
	Message T `json:"message"`
}

func decode[T any](resp *resty.Response) (T, error) {
	var env envelope[T]
	if err := mapHTTPError(resp); err != nil {
		return env.Message, err
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return env.Message, fmt.Errorf("decode %s %s response: %w", resp.Request.Method, resp.Request.URL, err)
	}
	return env.Message, nil
}

func list[T any](req *resty.Request, path string) ([]T, error) {
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	return decode[[]T](resp)
}

func get[T any](req *resty.Request, collection string, id int64) (T, error) {
	resp, err := req.Get(resourcePath(collection, id))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s/%d: %w", collection, id, err)
	}
	return decode[T](resp)
}

func create[T any](req *resty.Request, collection string, body any) (T, error) {
	resp, err := req.SetBody(body).Post(collection)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", collection, err)
	}
	return decode[T](resp)
}

func patch[T any](req *resty.Request, collection string, id int64, body any) (T, error) {
	resp, err := req.SetBody(body).Patch(resourcePath(collection, id))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("update %s/%d: %w", collection, id, err)
	}
	return decode[T](resp)
}

func remove(req *resty.Request, collection string, id int64) error {
	resp, err := req.Delete(resourcePath(collection, id))
	if err != nil {
		return fmt.Errorf("delete %s/%d: %w", collection, id, err)
	}
	return mapHTTPError(resp)
}

package http

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/models"
)

// idParam reads the ":id" route segment. ValidateParams(idParamsSchema) has
// already checked that it is made of digits.
func idParam(c *router.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Params["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing id %q: %w", c.Params["id"], err)
	}
	return id, nil
}

// pageFromQuery reads "offset" and "limit". Absent values stay zero and are
// defaulted by the service layer.
func pageFromQuery(c *router.Context) (models.Page, error) {
	var page models.Page

	for key, dst := range map[string]*uint64{"offset": &page.Offset, "limit": &page.Limit} {
		raw, ok := c.Query[key]
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, fmt.Errorf("error parsing %s %q: %w", key, raw, err)
		}
		*dst = v
	}

	return page, nil
}

package payload

import (
	"bucketlist/internal/core"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
)

type BucketlistRequest struct {
	Name string `json:"name"`
}

func (b BucketlistRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required, validation.Length(1, 256)),
	)
}

// ParseListQuery reads the q/page/limit parameters. Absent page and limit
// default to 1 and 20; values that are not integers are a validation error.
// Range handling (negative limits, oversized limits, page < 1) is left to the
// query engine.
func ParseListQuery(values url.Values) (core.ListQuery, error) {
	query := core.ListQuery{
		Query: values.Get("q"),
		Page:  1,
		Limit: 20,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return core.ListQuery{}, fmt.Errorf("page must be an integer, got %q", raw)
		}
		query.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return core.ListQuery{}, fmt.Errorf("limit must be an integer, got %q", raw)
		}
		query.Limit = limit
	}

	return query, nil
}

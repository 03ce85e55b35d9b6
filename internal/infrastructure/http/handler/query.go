package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rezkam/taskhub/internal/domain"
	"github.com/rezkam/taskhub/internal/ptr"
)

// searchDateLayout is the wire format for the created-date criteria.
const searchDateLayout = "2006-01-02"

// parseSearchFilter reads the optional search criteria from query
// parameters. Absent parameters stay nil so they impose no constraint;
// blank strings are dropped later by the service.
func parseSearchFilter(q url.Values) (domain.SearchFilter, error) {
	var filter domain.SearchFilter

	if keyword := q.Get("keyword"); keyword != "" {
		filter.Keyword = ptr.To(keyword)
	}
	if nickname := q.Get("nickname"); nickname != "" {
		filter.CollaboratorNickname = ptr.To(nickname)
	}

	if raw := q.Get("start_date"); raw != "" {
		from, err := time.ParseInLocation(searchDateLayout, raw, time.UTC)
		if err != nil {
			return filter, fmt.Errorf("start_date: %w", err)
		}
		filter.CreatedFrom = &from
	}
	if raw := q.Get("end_date"); raw != "" {
		to, err := time.ParseInLocation(searchDateLayout, raw, time.UTC)
		if err != nil {
			return filter, fmt.Errorf("end_date: %w", err)
		}
		filter.CreatedTo = &to
	}

	return filter, nil
}

// parsePageRequest reads offset and page_size query parameters.
// Missing or unparseable values fall back to zero; the service applies
// defaults and clamps.
func parsePageRequest(q url.Values) domain.PageRequest {
	var page domain.PageRequest

	if raw := q.Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page.Offset = v
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page.Limit = v
		}
	}

	return page
}

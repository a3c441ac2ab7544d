package console

import (
	"github.com/umalmyha/customers-console/internal/ui"
	"net/url"
)

type searchFilter struct {
	field string
	param string
}

// search filters in priority order
var searchFilters = []searchFilter{
	{field: ui.FieldFirstName, param: "first_name"},
	{field: ui.FieldLastName, param: "last_name"},
	{field: ui.FieldEmail, param: "email"},
	{field: ui.FieldAddress, param: "address"},
	{field: ui.FieldActive, param: "active"},
}

// searchQuery builds query for customers search, nil means no filter
func searchQuery(mode SearchMode, b ui.Binding) url.Values {
	if mode == SearchModeAll {
		return nil
	}

	for _, f := range searchFilters {
		if v := b.Field(f.field); v != "" {
			return url.Values{f.param: []string{v}}
		}
	}
	return nil
}

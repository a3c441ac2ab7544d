package console

import errs "github.com/umalmyha/customers-console/internal/errors"

type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionSuspend  Action = "suspend"
	ActionRetrieve Action = "retrieve"
	ActionDelete   Action = "delete"
	ActionClear    Action = "clear"
	ActionSearch   Action = "search"
)

var Actions = []Action{ActionCreate, ActionUpdate, ActionSuspend, ActionRetrieve, ActionDelete, ActionClear, ActionSearch}

func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errs.NewUnknownActionErr(s)
}

const (
	FlashSuccess     = "Success"
	FlashSuspended   = "Customer has been Suspended!"
	FlashDeleted     = "Customer has been Deleted!"
	FlashServerError = "Server error!"
)

type SearchMode string

const (
	// SearchModeAll lists all customers ignoring form content
	SearchModeAll SearchMode = "all"
	// SearchModeFirstFilter sends the first non-empty field as the only filter
	SearchModeFirstFilter SearchMode = "first-filter"
)

type Config struct {
	SearchMode SearchMode
}

package session

import (
	"context"
	"github.com/umalmyha/customers-console/internal/ui"
)

type FormStore interface {
	FindByID(context.Context, string) (*ui.Snapshot, error)
	Save(context.Context, string, ui.Snapshot) error
	DeleteByID(context.Context, string) error
}

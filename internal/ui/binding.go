package ui

import "github.com/umalmyha/customers-console/internal/model"

const (
	FieldID        = "customer_id"
	FieldFirstName = "customer_first_name"
	FieldLastName  = "customer_last_name"
	FieldEmail     = "customer_email"
	FieldAddress   = "customer_address"
	FieldActive    = "customer_active"
)

// LegacyFieldActive is the older name of active flag field, accepted on form posts
const LegacyFieldActive = "active_customer"

var Fields = []string{FieldID, FieldFirstName, FieldLastName, FieldEmail, FieldAddress, FieldActive}

var DataFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldAddress, FieldActive}

// Binding binds controller to form fields, results container and flash message area
type Binding interface {
	Field(name string) string
	SetField(name, value string)
	RenderTable(rows []*model.Customer)
	SetFlash(text string)
}

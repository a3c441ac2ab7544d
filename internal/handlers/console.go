package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/client"
	"github.com/umalmyha/customers-console/internal/console"
	"github.com/umalmyha/customers-console/internal/middleware"
	"github.com/umalmyha/customers-console/internal/session"
	"github.com/umalmyha/customers-console/internal/ui"
	"html/template"
	"net/http"
	"strings"
)

const consoleTemplate = "console.html"

type actionRequest struct {
	Action       string `param:"action" validate:"required,oneof=create update suspend retrieve delete clear search"`
	ID           string `form:"customer_id" json:"customer_id"`
	FirstName    string `form:"customer_first_name" json:"customer_first_name"`
	LastName     string `form:"customer_last_name" json:"customer_last_name"`
	Email        string `form:"customer_email" json:"customer_email"`
	Address      string `form:"customer_address" json:"customer_address"`
	Active       string `form:"customer_active" json:"customer_active"`
	LegacyActive string `form:"active_customer" json:"active_customer"`
}

// apply copies posted values into the form the way browser keeps them in inputs
func (r *actionRequest) apply(form *ui.Form) {
	active := r.Active
	if active == "" {
		active = r.LegacyActive
	}

	form.SetField(ui.FieldID, r.ID)
	form.SetField(ui.FieldFirstName, r.FirstName)
	form.SetField(ui.FieldLastName, r.LastName)
	form.SetField(ui.FieldEmail, r.Email)
	form.SetField(ui.FieldAddress, r.Address)
	form.SetField(ui.FieldActive, active)
}

type consolePage struct {
	Fields  map[string]string
	Flash   string
	Table   template.HTML
	Actions []console.Action
}

type ConsoleHTTPHandler struct {
	api    client.CustomerAPI
	store  session.FormStore
	cfg    console.Config
	logger logrus.FieldLogger
}

func NewConsoleHTTPHandler(api client.CustomerAPI, store session.FormStore, cfg console.Config, logger logrus.FieldLogger) *ConsoleHTTPHandler {
	return &ConsoleHTTPHandler{
		api:    api,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

func (h *ConsoleHTTPHandler) Page(c echo.Context) error {
	form, err := h.form(c)
	if err != nil {
		return err
	}
	return h.respond(c, form.Snapshot())
}

func (h *ConsoleHTTPHandler) Act(c echo.Context) error {
	var req actionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	action, err := console.ParseAction(req.Action)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	form, err := h.form(c)
	if err != nil {
		return err
	}
	req.apply(form)

	sessionID := middleware.SessionID(c)
	ctrl := console.NewController(h.api, form, h.cfg, h.logger.WithField("session", sessionID))
	defer ctrl.Close()

	if err := ctrl.Do(c.Request().Context(), action); err != nil {
		return err
	}

	snap := form.Snapshot()
	if err := h.store.Save(c.Request().Context(), sessionID, snap); err != nil {
		return err
	}

	return h.respond(c, snap)
}

func (h *ConsoleHTTPHandler) Reset(c echo.Context) error {
	if err := h.store.DeleteByID(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ConsoleHTTPHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    "Customer Console",
		"version": "1.0",
	})
}

func (h *ConsoleHTTPHandler) form(c echo.Context) (*ui.Form, error) {
	snap, err := h.store.FindByID(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return nil, err
	}

	if snap == nil {
		return ui.NewForm(), nil
	}
	return ui.FromSnapshot(*snap), nil
}

func (h *ConsoleHTTPHandler) respond(c echo.Context, snap ui.Snapshot) error {
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, snap)
	}

	var table template.HTML
	if snap.Rendered {
		var err error
		if table, err = ui.TableHTML(snap.Results); err != nil {
			return err
		}
	}

	return c.Render(http.StatusOK, consoleTemplate, &consolePage{
		Fields:  snap.Fields,
		Flash:   snap.Flash,
		Table:   table,
		Actions: console.Actions,
	})
}

package console

import (
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/client"
	errs "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/ui"
	"strconv"
)

var ErrControllerClosed = errors.New("form controller is closed")

// step is prepared on UI queue, call runs outside of it and apply is posted back to the queue
type step struct {
	call  func(context.Context) error
	apply func(error)
}

type Controller struct {
	api    client.CustomerAPI
	ui     ui.Binding
	queue  *ui.Queue
	cfg    Config
	logger logrus.FieldLogger
}

// NewController builds Controller, Close must be called once it is not needed anymore
func NewController(api client.CustomerAPI, binding ui.Binding, cfg Config, logger logrus.FieldLogger) *Controller {
	return &Controller{
		api:    api,
		ui:     binding,
		queue:  ui.NewQueue(),
		cfg:    cfg,
		logger: logger,
	}
}

// Close stops UI queue, results of requests still in flight are discarded
func (c *Controller) Close() {
	c.queue.Stop()
}

// Trigger starts action, returned channel is closed once result is applied to the form
func (c *Controller) Trigger(ctx context.Context, a Action) (<-chan struct{}, error) {
	switch a {
	case ActionCreate:
		return c.Create(ctx), nil
	case ActionUpdate:
		return c.Update(ctx), nil
	case ActionSuspend:
		return c.Suspend(ctx), nil
	case ActionRetrieve:
		return c.Retrieve(ctx), nil
	case ActionDelete:
		return c.Delete(ctx), nil
	case ActionClear:
		return c.Clear(), nil
	case ActionSearch:
		return c.Search(ctx), nil
	default:
		return nil, errs.NewUnknownActionErr(string(a))
	}
}

func (c *Controller) Do(ctx context.Context, a Action) error {
	done, err := c.Trigger(ctx, a)
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.queue.Stopped():
		return ErrControllerClosed
	}
}

func (c *Controller) Create(ctx context.Context) <-chan struct{} {
	return c.dispatch(ctx, ActionCreate, func(logger logrus.FieldLogger) step {
		nc := c.newCustomer()

		var res *model.Customer
		return step{
			call: func(ctx context.Context) (err error) {
				res, err = c.api.Create(ctx, nc)
				return err
			},
			apply: func(err error) {
				if err != nil {
					c.fail(logger, err)
					return
				}
				c.fill(res)
				c.ui.SetFlash(FlashSuccess)
			},
		}
	})
}

func (c *Controller) Update(ctx context.Context) <-chan struct{} {
	return c.dispatch(ctx, ActionUpdate, func(logger logrus.FieldLogger) step {
		id := c.ui.Field(ui.FieldID)
		nc := c.newCustomer()

		var res *model.Customer
		return step{
			call: func(ctx context.Context) (err error) {
				res, err = c.api.Update(ctx, id, nc)
				return err
			},
			apply: func(err error) {
				if err != nil {
					c.fail(logger, err)
					return
				}
				c.fill(res)
				c.ui.SetFlash(FlashSuccess)
			},
		}
	})
}

func (c *Controller) Suspend(ctx context.Context) <-chan struct{} {
	return c.dispatch(ctx, ActionSuspend, func(logger logrus.FieldLogger) step {
		id := c.ui.Field(ui.FieldID)

		var res *model.Customer
		return step{
			call: func(ctx context.Context) (err error) {
				res, err = c.api.Suspend(ctx, id)
				return err
			},
			apply: func(err error) {
				if err != nil {
					c.fail(logger, err)
					return
				}
				c.fill(res)
				c.ui.SetFlash(FlashSuspended)
			},
		}
	})
}

// Retrieve loads customer with id from the form, on failure data fields are cleared and id is kept
func (c *Controller) Retrieve(ctx context.Context) <-chan struct{} {
	return c.dispatch(ctx, ActionRetrieve, func(logger logrus.FieldLogger) step {
		id := c.ui.Field(ui.FieldID)

		var res *model.Customer
		return step{
			call: func(ctx context.Context) (err error) {
				res, err = c.api.FindByID(ctx, id)
				return err
			},
			apply: func(err error) {
				if err != nil {
					c.clearData()
					c.fail(logger, err)
					return
				}
				c.fill(res)
				c.ui.SetFlash(FlashSuccess)
			},
		}
	})
}

// Delete deletes customer with id from the form.
// Failure message from server is logged only, the form shows generic server error.
func (c *Controller) Delete(ctx context.Context) <-chan struct{} {
	return c.dispatch(ctx, ActionDelete, func(logger logrus.FieldLogger) step {
		id := c.ui.Field(ui.FieldID)

		return step{
			call: func(ctx context.Context) error {
				return c.api.DeleteByID(ctx, id)
			},
			apply: func(err error) {
				if err != nil {
					logger.Warnf("failed to delete customer %q - %s", id, message(err))
					c.ui.SetFlash(FlashServerError)
					return
				}
				c.ui.SetField(ui.FieldID, "")
				c.clearData()
				c.ui.SetFlash(FlashDeleted)
			},
		}
	})
}

func (c *Controller) Clear() <-chan struct{} {
	return c.dispatch(context.Background(), ActionClear, func(_ logrus.FieldLogger) step {
		return step{
			apply: func(error) {
				c.ui.SetField(ui.FieldID, "")
				c.clearData()
			},
		}
	})
}

func (c *Controller) Search(ctx context.Context) <-chan struct{} {
	return c.dispatch(ctx, ActionSearch, func(logger logrus.FieldLogger) step {
		query := searchQuery(c.cfg.SearchMode, c.ui)
		logger.Debugf("searching customers with query %q", query.Encode())

		var res []*model.Customer
		return step{
			call: func(ctx context.Context) (err error) {
				res, err = c.api.Search(ctx, query)
				return err
			},
			apply: func(err error) {
				if err != nil {
					c.fail(logger, err)
					return
				}

				res = compact(res)
				c.ui.RenderTable(res)
				if len(res) > 0 {
					c.fill(res[0])
				}
				c.ui.SetFlash(FlashSuccess)
			},
		}
	})
}

func (c *Controller) dispatch(ctx context.Context, a Action, prepare func(logrus.FieldLogger) step) <-chan struct{} {
	done := make(chan struct{})
	logger := c.logger.WithField("action", a)

	c.queue.Post(func() {
		s := prepare(logger)
		if s.call == nil {
			s.apply(nil)
			close(done)
			return
		}

		go func() {
			err := s.call(ctx)
			c.queue.Post(func() {
				s.apply(err)
				if err == nil {
					logger.Debug("action completed")
				}
				close(done)
			})
		}()
	})

	return done
}

func (c *Controller) newCustomer() model.NewCustomer {
	return model.NewCustomer{
		FirstName: c.ui.Field(ui.FieldFirstName),
		LastName:  c.ui.Field(ui.FieldLastName),
		Email:     c.ui.Field(ui.FieldEmail),
		Address:   c.ui.Field(ui.FieldAddress),
		Active:    c.ui.Field(ui.FieldActive) == "true",
	}
}

func (c *Controller) fill(res *model.Customer) {
	if res == nil {
		res = &model.Customer{}
	}

	c.ui.SetField(ui.FieldID, res.ID)
	c.ui.SetField(ui.FieldFirstName, res.FirstName)
	c.ui.SetField(ui.FieldLastName, res.LastName)
	c.ui.SetField(ui.FieldEmail, res.Email)
	c.ui.SetField(ui.FieldAddress, res.Address)
	c.ui.SetField(ui.FieldActive, strconv.FormatBool(res.Active))
}

func (c *Controller) clearData() {
	for _, name := range ui.DataFields {
		c.ui.SetField(name, "")
	}
}

func (c *Controller) fail(logger logrus.FieldLogger, err error) {
	msg := message(err)
	logger.Warnf("action failed - %v", err)
	c.ui.SetFlash(msg)
}

func compact(rows []*model.Customer) []*model.Customer {
	res := make([]*model.Customer, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			res = append(res, r)
		}
	}
	return res
}

func message(err error) string {
	var reqErr *errs.RequestFailedErr
	if errors.As(err, &reqErr) {
		return reqErr.Message()
	}
	return err.Error()
}

package client

import (
	"context"
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	errs "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	"net/url"
	"time"
)

const (
	customersPath       = "/customers"
	customerPath        = "/customers/{id}"
	suspendCustomerPath = "/customers/{id}/suspend"
	customerIDPathParam = "id"
	mimeApplicationJSON = "application/json"
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"
)

type CustomerAPI interface {
	Create(context.Context, model.NewCustomer) (*model.Customer, error)
	Update(context.Context, string, model.NewCustomer) (*model.Customer, error)
	Suspend(context.Context, string) (*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	DeleteByID(context.Context, string) error
	Search(context.Context, url.Values) ([]*model.Customer, error)
}

type Cfg struct {
	BaseURL string
	Timeout time.Duration
}

type failure struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type restCustomerAPI struct {
	client *resty.Client
}

// NewRestCustomerAPI builds CustomerAPI on top of resty, zero timeout means no timeout
func NewRestCustomerAPI(cfg Cfg, logger logrus.FieldLogger) CustomerAPI {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader(headerAccept, mimeApplicationJSON).
		SetLogger(logger)

	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}

	return &restCustomerAPI{client: c}
}

func (a *restCustomerAPI) Create(ctx context.Context, nc model.NewCustomer) (*model.Customer, error) {
	var c model.Customer
	req := a.request(ctx).
		SetHeader(headerContentType, mimeApplicationJSON).
		SetBody(nc).
		SetResult(&c)

	if err := a.execute(req.Post(customersPath)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *restCustomerAPI) Update(ctx context.Context, id string, nc model.NewCustomer) (*model.Customer, error) {
	var c model.Customer
	req := a.request(ctx).
		SetHeader(headerContentType, mimeApplicationJSON).
		SetPathParam(customerIDPathParam, id).
		SetBody(nc).
		SetResult(&c)

	if err := a.execute(req.Put(customerPath)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *restCustomerAPI) Suspend(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	req := a.request(ctx).
		SetPathParam(customerIDPathParam, id).
		SetResult(&c)

	if err := a.execute(req.Put(suspendCustomerPath)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *restCustomerAPI) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	req := a.request(ctx).
		SetPathParam(customerIDPathParam, id).
		SetResult(&c)

	if err := a.execute(req.Get(customerPath)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *restCustomerAPI) DeleteByID(ctx context.Context, id string) error {
	req := a.request(ctx).SetPathParam(customerIDPathParam, id)
	return a.execute(req.Delete(customerPath))
}

func (a *restCustomerAPI) Search(ctx context.Context, query url.Values) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)
	req := a.request(ctx).SetResult(&customers)

	if len(query) > 0 {
		req.SetQueryString(query.Encode())
	}

	if err := a.execute(req.Get(customersPath)); err != nil {
		return nil, err
	}
	return customers, nil
}

func (a *restCustomerAPI) request(ctx context.Context) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetError(&failure{})
}

// execute converts resty outcome to error, any non-2xx response becomes RequestFailedErr
func (a *restCustomerAPI) execute(res *resty.Response, err error) error {
	if res != nil && res.RawResponse != nil && !res.IsSuccess() {
		msg := ""
		if f, ok := res.Error().(*failure); ok && f != nil {
			msg = f.Message
		}
		return errs.NewRequestFailedErr(res.StatusCode(), msg)
	}

	if err != nil {
		return fmt.Errorf("failed to send request to customers api - %w", err)
	}
	return nil
}

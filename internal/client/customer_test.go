package client

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	errs "github.com/umalmyha/customers-console/internal/errors"
	"github.com/umalmyha/customers-console/internal/model"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
	ctype  string
}

type customerAPITestSuite struct {
	suite.Suite
	server *httptest.Server
	api    CustomerAPI
	last   recordedRequest
}

func (s *customerAPITestSuite) SetupTest() {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, _ := io.ReadAll(c.Request().Body)
			s.last = recordedRequest{
				method: c.Request().Method,
				path:   c.Request().URL.EscapedPath(),
				query:  c.Request().URL.RawQuery,
				body:   string(body),
				ctype:  c.Request().Header.Get(echo.HeaderContentType),
			}
			return next(c)
		}
	})

	e.POST("/customers", func(c echo.Context) error {
		return c.JSONBlob(http.StatusCreated, []byte(`{"id":"507f1f77bcf86cd799439011","first_name":"Jo","last_name":"Doe","email":"jo@x.com","address":"1 Rd","active":true}`))
	})
	e.PUT("/customers/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return c.JSONBlob(http.StatusNotFound, []byte(`{"status":404,"error":"Not Found","message":"Customer with id 'missing' was not found."}`))
		}
		return c.JSONBlob(http.StatusOK, []byte(`{"id":7,"first_name":"Ann","last_name":"Lee","email":"ann@x.com","address":"2 Rd","active":true}`))
	})
	e.PUT("/customers/:id/suspend", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"id":7,"first_name":"Ann","last_name":"Lee","email":"ann@x.com","address":"2 Rd","active":false}`))
	})
	e.GET("/customers/:id", func(c echo.Context) error {
		switch c.Param("id") {
		case "empty":
			return c.NoContent(http.StatusNotFound)
		case "broken":
			return c.String(http.StatusInternalServerError, "boom")
		}
		return c.JSONBlob(http.StatusOK, []byte(`{"id":"`+c.Param("id")+`","first_name":"Jo","active":false}`))
	})
	e.DELETE("/customers/:id", func(c echo.Context) error {
		if c.Param("id") == "locked" {
			return c.JSONBlob(http.StatusConflict, []byte(`{"message":"customer is locked"}`))
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/customers", func(c echo.Context) error {
		if c.QueryParam("email") == "bad" {
			return c.JSONBlob(http.StatusBadRequest, []byte(`{"message":"invalid email filter"}`))
		}
		return c.JSONBlob(http.StatusOK, []byte(`[{"_id":"1","first_name":"Ana"},{"id":"2","first_name":"Bob"}]`))
	})

	s.server = httptest.NewServer(e)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.api = NewRestCustomerAPI(Cfg{BaseURL: s.server.URL}, logger)
}

func (s *customerAPITestSuite) TearDownTest() {
	s.server.Close()
}

func (s *customerAPITestSuite) TestCreate() {
	require := s.Require()

	c, err := s.api.Create(context.Background(), model.NewCustomer{
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@x.com",
		Address:   "1 Rd",
		Active:    true,
	})
	require.NoError(err, "customer must be created")
	require.Equal("507f1f77bcf86cd799439011", c.ID)
	require.True(c.Active)

	require.Equal(http.MethodPost, s.last.method)
	require.Equal("/customers", s.last.path)
	require.Contains(s.last.ctype, "application/json")
	require.JSONEq(`{"first_name":"Jo","last_name":"Doe","email":"jo@x.com","address":"1 Rd","active":true}`, s.last.body)
}

func (s *customerAPITestSuite) TestUpdate() {
	require := s.Require()

	s.T().Log("existing customer")
	{
		c, err := s.api.Update(context.Background(), "7", model.NewCustomer{FirstName: "Ann", Email: "ann@x.com"})
		require.NoError(err, "customer must be updated")
		require.Equal("7", c.ID)
		require.Equal(http.MethodPut, s.last.method)
		require.Equal("/customers/7", s.last.path)
		require.JSONEq(`{"first_name":"Ann","last_name":"","email":"ann@x.com","address":"","active":false}`, s.last.body)
	}

	s.T().Log("missing customer")
	{
		_, err := s.api.Update(context.Background(), "missing", model.NewCustomer{})
		require.Error(err, "not found must be raised")

		var reqErr *errs.RequestFailedErr
		require.True(errors.As(err, &reqErr), "error must be RequestFailedErr")
		require.Equal(http.StatusNotFound, reqErr.StatusCode())
		require.Equal("Customer with id 'missing' was not found.", reqErr.Message())
	}
}

func (s *customerAPITestSuite) TestSuspend() {
	require := s.Require()

	c, err := s.api.Suspend(context.Background(), "7")
	require.NoError(err, "customer must be suspended")
	require.False(c.Active)
	require.Equal(http.MethodPut, s.last.method)
	require.Equal("/customers/7/suspend", s.last.path)
	require.Empty(s.last.body, "suspend must be sent without body")
}

func (s *customerAPITestSuite) TestFindByID() {
	require := s.Require()

	s.T().Log("found")
	{
		c, err := s.api.FindByID(context.Background(), "abc")
		require.NoError(err)
		require.Equal("abc", c.ID)
		require.Equal("/customers/abc", s.last.path)
	}

	s.T().Log("id is escaped")
	{
		_, err := s.api.FindByID(context.Background(), "a b")
		require.NoError(err)
		require.Equal("/customers/a%20b", s.last.path)
	}

	s.T().Log("not found without body")
	{
		_, err := s.api.FindByID(context.Background(), "empty")

		var reqErr *errs.RequestFailedErr
		require.True(errors.As(err, &reqErr), "error must be RequestFailedErr")
		require.Equal(http.StatusText(http.StatusNotFound), reqErr.Message())
	}

	s.T().Log("non-json failure")
	{
		_, err := s.api.FindByID(context.Background(), "broken")

		var reqErr *errs.RequestFailedErr
		require.True(errors.As(err, &reqErr), "error must be RequestFailedErr")
		require.Equal(http.StatusInternalServerError, reqErr.StatusCode())
		require.Equal(http.StatusText(http.StatusInternalServerError), reqErr.Message())
	}
}

func (s *customerAPITestSuite) TestDeleteByID() {
	require := s.Require()

	err := s.api.DeleteByID(context.Background(), "1")
	require.NoError(err)
	require.Equal(http.MethodDelete, s.last.method)
	require.Equal("/customers/1", s.last.path)

	err = s.api.DeleteByID(context.Background(), "locked")
	var reqErr *errs.RequestFailedErr
	require.True(errors.As(err, &reqErr), "error must be RequestFailedErr")
	require.Equal(http.StatusConflict, reqErr.StatusCode())
}

func (s *customerAPITestSuite) TestSearch() {
	require := s.Require()

	s.T().Log("no filter")
	{
		customers, err := s.api.Search(context.Background(), nil)
		require.NoError(err)
		require.Len(customers, 2)
		require.Equal("1", customers[0].ID, "_id must be accepted")
		require.Equal("2", customers[1].ID)
		require.Empty(s.last.query)
	}

	s.T().Log("single filter")
	{
		_, err := s.api.Search(context.Background(), url.Values{"first_name": {"Ana Maria"}})
		require.NoError(err)
		require.Equal("first_name=Ana+Maria", s.last.query)
	}

	s.T().Log("failed")
	{
		_, err := s.api.Search(context.Background(), url.Values{"email": {"bad"}})

		var reqErr *errs.RequestFailedErr
		require.True(errors.As(err, &reqErr), "error must be RequestFailedErr")
		require.Equal("invalid email filter", reqErr.Message())
	}
}

func (s *customerAPITestSuite) TestTransportFailure() {
	require := s.Require()

	s.server.Close()

	_, err := s.api.FindByID(context.Background(), "1")
	require.Error(err, "closed server must produce error")

	var reqErr *errs.RequestFailedErr
	require.False(errors.As(err, &reqErr), "transport failure is not a server response")
}

// start customers api client test suite
func TestCustomerAPITestSuite(t *testing.T) {
	suite.Run(t, new(customerAPITestSuite))
}

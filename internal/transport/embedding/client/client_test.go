package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestEmbed() {
	vector := []float64{0.1, -0.2, 0.3}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteEmbeddings, r.URL.Path)
		// ключ передается в заголовке, модель - в теле.
		s.Equal("Bearer test-api-key", r.Header.Get("Authorization"))

		var req EmbeddingRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal(DefaultModel, req.Model)
		s.Equal("golang mentor", req.Input)

		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{"data":[{"embedding":[0.1,-0.2,0.3]}]}`))
		s.NoError(wErr)
	}))

	client := New(s.server.URL, "test-api-key", "")
	got, err := client.Embed(s.T().Context(), "golang mentor")

	s.Require().NoError(err)
	s.Equal(vector, got)
}

func (s *ClientTestSuite) TestEmbed_StatusCodes() {
	cases := []struct {
		name       string
		httpStatus int
	}{
		{name: "unauthorized", httpStatus: http.StatusUnauthorized},
		{name: "rate limited", httpStatus: http.StatusTooManyRequests},
		{name: "internal error", httpStatus: http.StatusInternalServerError},
	}

	var status int
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))

	client := New(s.server.URL, "test-api-key", "")

	for _, t := range cases {
		s.Run(t.name, func() {
			status = t.httpStatus

			_, err := client.Embed(s.T().Context(), "golang mentor")

			var statusCodeError *StatusCodeError
			s.Require().ErrorAs(err, &statusCodeError)
			s.Equal(t.httpStatus, statusCodeError.Code)
		})
	}
}

func (s *ClientTestSuite) TestEmbed_EmptyData() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{"data":[]}`))
		s.NoError(wErr)
	}))

	client := New(s.server.URL, "test-api-key", "")
	_, err := client.Embed(s.T().Context(), "golang mentor")

	s.Require().ErrorIs(err, ErrEmptyEmbedding)
}

func (s *ClientTestSuite) TestEmbed_CustomModel() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req EmbeddingRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("text-embedding-3-large", req.Model)

		_, wErr := w.Write([]byte(`{"data":[{"embedding":[0.5]}]}`))
		s.NoError(wErr)
	}))

	client := New(s.server.URL, "test-api-key", "text-embedding-3-large")
	_, err := client.Embed(s.T().Context(), "golang mentor")

	s.Require().NoError(err)
}

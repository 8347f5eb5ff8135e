package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MailerTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestMailerSuite(t *testing.T) {
	suite.Run(t, new(MailerTestSuite))
}

func (s *MailerTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *MailerTestSuite) TestSend() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteSend, r.URL.Path)
		s.Equal("Bearer test-api-key", r.Header.Get("Authorization"))

		var msg Message
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&msg))
		// отправитель подставлен из конфигурации клиента.
		s.Equal("MentorLink <no-reply@mentorlink.io>", msg.From)
		s.Equal("mentor@example.com", msg.To)

		w.WriteHeader(http.StatusAccepted)
	}))

	client := New(s.server.URL, "test-api-key", "MentorLink <no-reply@mentorlink.io>")
	err := client.Send(s.T().Context(), Message{
		To:      "mentor@example.com",
		Subject: "New session request",
		HTML:    "<p>hello</p>",
	})

	s.Require().NoError(err)
}

func (s *MailerTestSuite) TestSend_ExplicitFrom() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg Message
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&msg))
		s.Equal("support@mentorlink.io", msg.From)

		w.WriteHeader(http.StatusOK)
	}))

	client := New(s.server.URL, "test-api-key", "MentorLink <no-reply@mentorlink.io>")
	err := client.Send(s.T().Context(), Message{
		From: "support@mentorlink.io",
		To:   "mentor@example.com",
	})

	s.Require().NoError(err)
}

func (s *MailerTestSuite) TestSend_ProviderError() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	client := New(s.server.URL, "test-api-key", "")
	err := client.Send(s.T().Context(), Message{To: "mentor@example.com"})

	var statusCodeError *StatusCodeError
	s.Require().ErrorAs(err, &statusCodeError)
	s.Equal(http.StatusBadGateway, statusCodeError.Code)
}

// Package mailer содержит клиент внешнего провайдера транзакционных писем.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"net/http"
)

const RouteSend = "/v1/email/send"

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// HTTPClient реализация клиента почтового провайдера.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func New(baseURL, apiKey, from string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: http.DefaultClient,
	}
}

// Send отправляет письмо. Отправитель подставляется из конфигурации клиента,
// если в сообщении не задан свой.
//
//nolint:nonamedreturns
func (c HTTPClient) Send(ctx context.Context, msg Message) (err error) {
	if msg.From == "" {
		msg.From = c.from
	}

	payload, marshalErr := json.Marshal(msg)
	if marshalErr != nil {
		return fmt.Errorf("marshal message: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RouteSend, bytes.NewReader(payload))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return NewStatusCodeError(resp.StatusCode)
	}
	return nil
}

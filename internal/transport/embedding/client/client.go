package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"io"
	"net/http"
)

const RouteEmbeddings = "/v1/embeddings"

const DefaultModel = "text-embedding-3-small"

type EmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingData struct {
	Embedding []float64 `json:"embedding"`
}

type embeddingResponse struct {
	Data []embeddingData `json:"data"`
}

// HTTPClient клиент внешнего провайдера эмбеддингов.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func New(baseURL, apiKey, model string) HTTPClient {
	if model == "" {
		model = DefaultModel
	}
	return HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: http.DefaultClient,
	}
}

// Embed запрашивает векторное представление текста. При ответе сервера со статусом
// отличным от http.StatusOK возвращает ошибку StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) Embed(ctx context.Context, text string) (vector []float64, err error) {
	// Формируем тело запроса.
	payload, marshalErr := json.Marshal(EmbeddingRequest{Model: c.model, Input: text})
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+RouteEmbeddings, bytes.NewReader(payload),
	)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}

	var response embeddingResponse
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	if len(response.Data) == 0 || len(response.Data[0].Embedding) == 0 {
		return nil, ErrEmptyEmbedding
	}

	return response.Data[0].Embedding, nil
}

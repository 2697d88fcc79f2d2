package cloutjetclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/cloutjet/admin-dashboard/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o formato de todas as respostas da API: { "data": ..., "message": "..." }
type envelope struct {
	Data    jsoniter.RawMessage `json:"data"`
	Message string              `json:"message"`
}

// do executa a requisição e decodifica envelope.data em out (quando out != nil)
func (c *CloutJetClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "cloutjet: error encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "cloutjet: error creating request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Path: path, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Path: path}
		if decodeErr == nil {
			apiErr.Message = env.Message
		}

		logrus.WithFields(logrus.Fields{
			"method":      method,
			"path":        path,
			"status_code": resp.StatusCode,
			"message":     apiErr.Message,
		}).Debug("cloutjet: request failed")

		return apiErr
	}

	if out == nil {
		return nil
	}

	if decodeErr != nil {
		logrus.Debugf("cloutjet: unexpected payload from %s: %s", path, utils.PrettyJson(raw))
		return errors.Wrapf(decodeErr, "cloutjet: error decoding response from %s", path)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		logrus.Debugf("cloutjet: unexpected data from %s: %s", path, utils.PrettyJson([]byte(env.Data)))
		return errors.Wrapf(err, "cloutjet: error decoding data from %s", path)
	}

	return nil
}

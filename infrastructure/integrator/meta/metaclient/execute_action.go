package metaclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExecuteAction envia o payload de ação preparado para a conta de anúncios.
// A resposta da plataforma é um array de resultados; o chamador extrai o
// campo data do primeiro item.
func (c *MetaClient) ExecuteAction(accountID string, accessToken string, payload domain.ActionPayload) ([]metadomain.ActionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload de ação: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/automations", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("access_token", accessToken)

	req, err := http.NewRequest(http.MethodPost, baseURL+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da plataforma: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResponse metadomain.ErrorResponse
		if err := json.Unmarshal(respBody, &errResponse); err == nil && errResponse.Error.Message != "" {
			return nil, fmt.Errorf(
				"erro da plataforma (%d, código %d): %s",
				resp.StatusCode, errResponse.Error.Code, errResponse.Error.Message,
			)
		}
		return nil, fmt.Errorf("erro da plataforma (%d): %s", resp.StatusCode, string(respBody))
	}

	var results []metadomain.ActionResult
	if err := json.Unmarshal(respBody, &results); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return results, nil
}

package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-automation-api/internal/config"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

type Client interface {
	ExecuteAction(accountID string, accessToken string, payload domain.ActionPayload) ([]metadomain.ActionResult, error)
}

// HTTPDoer permite substituir o transporte HTTP nos testes
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient HTTPDoer
}

func NewClient(cfg *config.Config) Client {
	client := &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
	return client
}

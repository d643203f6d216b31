package meta

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-automation-api/internal/config"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

// Integrator é o colaborador externo que executa ações na plataforma de
// anúncios. O motor apenas delega; não implementa o protocolo de rede.
type Integrator interface {
	ExecuteAction(accountID string, accessToken string, payload domain.ActionPayload) ([]metadomain.ActionResult, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) Integrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ExecuteAction(accountID string, accessToken string, payload domain.ActionPayload) ([]metadomain.ActionResult, error) {
	results, err := s.Client.ExecuteAction(accountID, accessToken, payload)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("actions: falha ao executar ação na plataforma")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"results":    len(results),
	}).Debug("actions: ação executada na plataforma")

	return results, nil
}

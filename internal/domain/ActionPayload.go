package domain

// ActionPayload é o payload específico da plataforma para executar uma ação
// sobre um ativo, chaveado pela forma singular do escopo
// (ex.: {"campaign": {"params": {...}}})
type ActionPayload map[string]ActionPayloadEntry

// ActionPayloadEntry envolve os parâmetros da ação
type ActionPayloadEntry struct {
	Params ActionParams `json:"params"`
}

// ActionParams são os parâmetros da ação preparada. O id do ativo alvo é
// serializado no campo derivado do escopo (campaign_id, adset_id ou ad_id).
// Ações de orçamento carregam TimeRange/Type/Value; pausa carrega Status.
type ActionParams struct {
	CampaignID string     `json:"campaign_id,omitempty"`
	AdSetID    string     `json:"adset_id,omitempty"`
	AdID       string     `json:"ad_id,omitempty"`
	Action     string     `json:"action"`
	TimeRange  *TimeRange `json:"time_range,omitempty"`
	Type       string     `json:"type,omitempty"`
	Value      float64    `json:"value,omitempty"`
	Status     string     `json:"status,omitempty"`
}

// TimeRange é a janela de datas de uma ação de orçamento (mesmo dia, no
// fuso de referência da plataforma)
type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// SetAssetID grava o id do ativo no campo correspondente ao escopo
func (p *ActionParams) SetAssetID(scope Scope, assetID string) {
	switch scope {
	case ScopeCampaigns:
		p.CampaignID = assetID
	case ScopeAdSets:
		p.AdSetID = assetID
	case ScopeAds:
		p.AdID = assetID
	}
}

// AssetID lê o id do ativo do campo correspondente ao escopo
func (p ActionParams) AssetID(scope Scope) string {
	switch scope {
	case ScopeCampaigns:
		return p.CampaignID
	case ScopeAdSets:
		return p.AdSetID
	case ScopeAds:
		return p.AdID
	}
	return ""
}

package domain

// AssetStats é o registro unificado de um ativo para um intervalo de datas:
// somas dos registros por escopo mais as somas atribuídas a clientes,
// reconciliadas em um único mapeamento plano por asset_id.
// Calculado a cada avaliação, nunca persistido.
type AssetStats struct {
	AssetID   string  `json:"asset_id"`
	AssetName string  `json:"asset_name"`
	Spend     float64 `json:"spend"`
	Leads     int     `json:"leads"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
	Clicks    int     `json:"clicks"`

	CustomerRevenue float64 `json:"customer_revenue"`
	CustomerSales   int     `json:"customer_sales"`

	// ROAS = CustomerRevenue / Spend, sempre finito e >= 0
	ROAS float64 `json:"roas"`
}

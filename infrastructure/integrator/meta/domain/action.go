package metadomain

// ActionResult é um item da resposta da plataforma à execução de uma ação.
// O campo Data do primeiro item é o resultado significativo.
type ActionResult struct {
	Data map[string]any `json:"data"`
}

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

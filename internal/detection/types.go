package detection

import "encoding/json"

// SubmitRequest - тело POST /api/v1/detecciones
type SubmitRequest struct {
	QueryID  string `json:"uuid_consulta"`
	ImageURL string `json:"url_imagen"`
}

// SubmitResponse - подтверждение приема задания
type SubmitResponse struct {
	Status    string `json:"estado"`
	QueryID   string `json:"uuid_consulta"`
	Message   string `json:"message,omitempty"`
	Success   bool   `json:"success,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Outcome - блок "resultado" ответа сервиса
type Outcome struct {
	Category       string          `json:"categoria"`
	Confidence     float64         `json:"confianza"`
	Details        json.RawMessage `json:"detalles"`
	DetectionCount int             `json:"num_detecciones"`
	Timestamp      string          `json:"timestamp"`
	ResultURL      string          `json:"url_resultado"`
}

// Envelope - полный ответ GET /api/v1/detecciones/{uuid}
type Envelope struct {
	ClientID  string   `json:"client_id"`
	CreatedAt string   `json:"created_at"`
	Status    string   `json:"estado"`
	Outcome   *Outcome `json:"resultado"`
	UpdatedAt string   `json:"updated_at"`
	ImageURL  string   `json:"url_imagen"`
	QueryID   string   `json:"uuid_consulta"`
}

// Result - готовый результат распознавания
type Result struct {
	Category       string
	Confidence     float64
	DetectionCount int
	ResultURL      string
	Details        json.RawMessage
	// Raw - ответ сервиса без изменений, хранится для аудита
	Raw json.RawMessage
}

// Credentials - ответ GET /api/v1/clients/verify
type Credentials struct {
	Success bool `json:"success"`
	Client  struct {
		ClientID string `json:"client_id"`
		IsActive bool   `json:"is_active"`
		Name     string `json:"name"`
	} `json:"client"`
}

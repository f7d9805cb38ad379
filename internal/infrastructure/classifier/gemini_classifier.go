package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sumee_intake/internal/config"
	"sumee_intake/internal/domain/entities"
	"sumee_intake/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrEmptyClassificationInput = errors.New("classification needs a description or an image")

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// disciplineLabels maps the client-side discipline slugs to the display names
// the model is instructed to echo back.
var disciplineLabels = map[string]string{
	"electricidad":       "Electricidad",
	"plomeria":           "Plomería",
	"cctv":               "CCTV y Seguridad",
	"construccion":       "Construcción",
	"jardineria":         "Jardinería",
	"aire-acondicionado": "HVAC",
	"carpinteria":        "Carpintería",
	"pintura":            "Pintura",
	"limpieza":           "Limpieza",
	"wifi":               "Redes WiFi",
	"fumigacion":         "Fumigación",
	"tablaroca":          "Tablaroca",
	"cerrajeria":         "Cerrajería",
}

// GeminiClassifier classifies service requests through the Gemini REST API.
// In mock mode it answers deterministically without network access, which is
// what local compose and CI use.
type GeminiClassifier struct {
	apiKey      string
	model       string
	visionModel string
	httpClient  *http.Client
	mockMode    bool
	log         zerolog.Logger
}

var _ interfaces.IServiceClassifier = (*GeminiClassifier)(nil)

func NewGeminiClassifier(cfg config.ClassifierConfig, log zerolog.Logger) (*GeminiClassifier, error) {
	if cfg.MockMode {
		log.Info().Msg("classifier mock mode enabled")
		return &GeminiClassifier{mockMode: true, log: log}, nil
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	return &GeminiClassifier{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		visionModel: cfg.VisionModel,
		httpClient:  &http.Client{},
		log:         log,
	}, nil
}

func (c *GeminiClassifier) Classify(ctx context.Context, input entities.ClassificationInput) (entities.ClassificationResult, error) {
	description := strings.TrimSpace(input.Description)
	imageURL := strings.TrimSpace(input.ImageURL)
	if description == "" && imageURL == "" {
		return entities.ClassificationResult{}, ErrEmptyClassificationInput
	}

	if c.mockMode {
		return c.mockResult(input, description), nil
	}

	model := c.model
	parts := []geminiPart{{Text: c.userPrompt(input, description, imageURL != "")}}

	if imageURL != "" {
		model = c.visionModel
		if part, err := c.imagePart(ctx, imageURL); err != nil {
			// A broken image should not sink the whole classification.
			c.log.Warn().Err(err).Str("image_url", imageURL).Msg("image fetch failed, classifying text only")
		} else {
			parts = append(parts, part)
		}
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Role:  "system",
			Parts: []geminiPart{{Text: systemPrompt(input.Role, input.Discipline)}},
		},
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.2,
		},
	}

	raw, err := c.generateContent(ctx, model, payload)
	if err != nil {
		return entities.ClassificationResult{}, err
	}
	return normalizeResult(raw, description), nil
}

func (c *GeminiClassifier) generateContent(ctx context.Context, model string, payload geminiRequest) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s:generateContent", geminiEndpoint, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error().Int("status", resp.StatusCode).Str("body", string(errBody)).Msg("gemini api error")
		return nil, fmt.Errorf("gemini api returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	text := envelope.Candidates[0].Content.Parts[0].Text
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var parsed map[string]any
	if err := dec.Decode(&parsed); err != nil {
		c.log.Error().Err(err).Str("text", text).Msg("gemini response is not valid json")
		return nil, fmt.Errorf("gemini response is not valid json: %w", err)
	}
	return parsed, nil
}

func (c *GeminiClassifier) imagePart(ctx context.Context, imageURL string) (geminiPart, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return geminiPart{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geminiPart{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return geminiPart{}, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return geminiPart{}, err
	}
	return geminiPart{
		InlineData: &geminiInlineData{
			MimeType: mimeTypeFromURL(imageURL),
			Data:     base64.StdEncoding.EncodeToString(data),
		},
	}, nil
}

func (c *GeminiClassifier) mockResult(input entities.ClassificationInput, description string) entities.ClassificationResult {
	disciplina := entities.DisciplinaOtros
	if label, ok := disciplineLabels[strings.ToLower(input.Discipline)]; ok {
		disciplina = label
	}
	return entities.ClassificationResult{
		Disciplina:       disciplina,
		Urgencia:         5,
		Diagnostico:      "Clasificación simulada",
		DescripcionFinal: description,
	}
}

func (c *GeminiClassifier) userPrompt(input entities.ClassificationInput, description string, hasImage bool) string {
	var b strings.Builder
	if hasImage {
		b.WriteString("Analiza esta imagen y el siguiente problema descrito por el cliente. ")
	}
	if label, ok := disciplineLabels[strings.ToLower(input.Discipline)]; ok && input.Role != "" {
		fmt.Fprintf(&b, "El cliente ya seleccionó la disciplina %q y tú eres un %s. ", label, input.Role)
		fmt.Fprintf(&b, "La disciplina debe ser %q. ", label)
	} else {
		b.WriteString("Clasifica este problema siguiendo las reglas de clasificación. ")
	}
	fmt.Fprintf(&b, "\n\nProblema del cliente: %s\n\n", description)
	b.WriteString("Proporciona un diagnóstico sugerido (máx. 15 palabras), la urgencia (1-10), una descripción final completa del problema, ")
	b.WriteString("y un rango de precio estimado en MXN (precio_min, precio_max) con una breve justificación.")
	if input.Zone != "" {
		fmt.Fprintf(&b, " El trabajo es en la zona %s.", input.Zone)
	}
	return b.String()
}

func systemPrompt(role, discipline string) string {
	if role != "" && discipline != "" {
		return fmt.Sprintf("Eres un %s, especialista en %s. Analiza el problema del cliente y proporciona un diagnóstico técnico preciso y una descripción detallada del problema.", role, discipline)
	}
	return "Actúa como un clasificador de servicios de mantenimiento muy preciso. " +
		"Analiza el problema del cliente (texto e imagen si está disponible) y clasifícalo en una de las siguientes disciplinas: " +
		"Electricidad, Plomería, HVAC (Aire Acondicionado), Carpintería, Albañilería, Pintura, Limpieza, Jardinería, Otros.\n\n" +
		"REGLAS IMPORTANTES DE CLASIFICACIÓN:\n" +
		"- Si menciona 'lámpara', 'bombilla', 'foco', 'luz', 'cable', 'interruptor', 'contacto', 'enchufe' o cualquier trabajo eléctrico → Electricidad\n" +
		"- Si menciona 'electricista' → SIEMPRE Electricidad\n" +
		"- Si menciona 'agua', 'fuga', 'llave', 'tubería', 'drenaje' → Plomería\n" +
		"- Si menciona 'aire acondicionado', 'clima', 'refrigeración' → HVAC\n" +
		"- Si menciona 'madera', 'mueble', 'carpintero' → Carpintería\n" +
		"- Si menciona 'pintar', 'pintor', 'pintura' → Pintura\n\n" +
		"Tu respuesta debe ser SOLO un objeto JSON con esta estructura exacta: " +
		`{ "disciplina": "nombre exacto de la disciplina", "urgencia": "número del 1 al 10", ` +
		`"diagnostico": "descripción breve (máx. 15 palabras)", "descripcion_final": "descripción completa y detallada del problema", ` +
		`"precio_min": "precio mínimo estimado en MXN", "precio_max": "precio máximo estimado en MXN", ` +
		`"justificacion_precio": "justificación breve del rango" }.`
}

// normalizeResult maps the model's loose JSON onto a typed result. Models
// drift between field names and between strings and numbers, so every field
// is picked from a list of aliases and coerced.
func normalizeResult(parsed map[string]any, fallbackDescription string) entities.ClassificationResult {
	result := entities.ClassificationResult{
		Disciplina:       pickString(parsed, "disciplina", "discipline"),
		Urgencia:         pickInt(parsed, "urgencia", "urgency", "urgencia_ia"),
		Diagnostico:      pickString(parsed, "diagnostico", "diagnosis", "diagnostico_ia"),
		DescripcionFinal: pickString(parsed, "descripcion_final", "description", "descripcion_proyecto"),
		RawSuggestedMin:  pickDecimal(parsed, "precio_min", "precio_minimo", "ai_suggested_price_min", "price_min"),
		RawSuggestedMax:  pickDecimal(parsed, "precio_max", "precio_maximo", "ai_suggested_price_max", "price_max"),
		PriceRationale:   pickString(parsed, "justificacion_precio", "price_rationale", "justificacion"),
	}
	if result.Disciplina == "" {
		result.Disciplina = entities.DisciplinaOtros
	}
	if result.Urgencia < 1 || result.Urgencia > 10 {
		result.Urgencia = 5
	}
	if result.DescripcionFinal == "" {
		result.DescripcionFinal = fallbackDescription
	}
	return result
}

func pickString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func pickInt(m map[string]any, keys ...string) int {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return int(i)
			}
			if f, err := n.Float64(); err == nil {
				return int(f)
			}
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return i
			}
		}
	}
	return 0
}

func pickDecimal(m map[string]any, keys ...string) *decimal.Decimal {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		var s string
		switch n := v.(type) {
		case json.Number:
			s = n.String()
		case string:
			s = strings.TrimSpace(n)
		default:
			continue
		}
		if d, err := decimal.NewFromString(s); err == nil && d.IsPositive() {
			return &d
		}
	}
	return nil
}

func mimeTypeFromURL(imageURL string) string {
	lower := strings.ToLower(imageURL)
	for _, ext := range []string{"jpg", "jpeg", "png", "gif", "webp"} {
		if strings.HasSuffix(lower, "."+ext) {
			if ext == "jpg" {
				ext = "jpeg"
			}
			return "image/" + ext
		}
	}
	return "image/jpeg"
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces"
)

var (
	ErrMissingGeminiAPIKey     = errors.New("missing GEMINI_API_KEY")
	ErrExtractorNotConfigured  = errors.New("gemini extractor not configured")
	ErrUnparsableModelResponse = errors.New("unparsable model response")
)

const defaultGeminiModel = "gemini-2.0-flash"

const extractionPrompt = `You are given the OCR text of a bank fixed deposit receipt (FDR).
Return only a JSON object with these keys:
"bank_name" (string), "fdr_number" (string), "amount" (number),
"issue_date" ("YYYY-MM-DD"), "maturity_date" ("YYYY-MM-DD").
Use an empty string or 0 for anything not present in the text.
No prose, no markdown.

OCR text:
`

// fdrPayload is the wire shape expected back from the model.
type fdrPayload struct {
	BankName     string  `json:"bank_name"`
	FDRNumber    string  `json:"fdr_number"`
	Amount       float64 `json:"amount"`
	IssueDate    string  `json:"issue_date"`
	MaturityDate string  `json:"maturity_date"`
}

// GeminiFDRExtractor pulls structured fields out of OCR'd fixed-deposit
// receipts using the Gemini API.
//
// FDR_EXTRACTOR_MOCK enables a canned response for local runs without an
// API key, same switch semantics as the rest of the env config.
type GeminiFDRExtractor struct {
	client   *genai.Client
	model    string
	log      *zap.Logger
	mockMode bool
}

var _ interfaces.IFDRExtractor = (*GeminiFDRExtractor)(nil)

func NewGeminiFDRExtractor(ctx context.Context, apiKey string, log *zap.Logger) (*GeminiFDRExtractor, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if isExtractorMockEnabled() {
		log.Info("fdr extractor mock mode enabled")
		return &GeminiFDRExtractor{mockMode: true, log: log}, nil
	}

	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiFDRExtractor{client: client, model: model, log: log}, nil
}

func (g *GeminiFDRExtractor) ExtractFDRDetails(ctx context.Context, ocrText string) (entities.FDRDetails, error) {
	if g != nil && g.mockMode {
		now := time.Now().UTC()
		return entities.FDRDetails{
			BankName:     "STATE BANK OF INDIA",
			FDRNumber:    "FDR-MOCK-0001",
			Amount:       100000,
			IssueDate:    now,
			MaturityDate: now.AddDate(1, 0, 0),
		}, nil
	}
	if g == nil || g.client == nil {
		return entities.FDRDetails{}, ErrExtractorNotConfigured
	}

	contents := []*genai.Content{
		genai.NewContentFromText(extractionPrompt+ocrText, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return entities.FDRDetails{}, err
	}

	raw := cleanModelJSON(resp.Text())
	if raw == "" {
		return entities.FDRDetails{}, ErrUnparsableModelResponse
	}

	var payload fdrPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		g.log.Warn("model returned invalid json", zap.Error(err))
		return entities.FDRDetails{}, ErrUnparsableModelResponse
	}

	return entities.FDRDetails{
		BankName:     strings.TrimSpace(payload.BankName),
		FDRNumber:    strings.TrimSpace(payload.FDRNumber),
		Amount:       payload.Amount,
		IssueDate:    parseDate(payload.IssueDate),
		MaturityDate: parseDate(payload.MaturityDate),
	}, nil
}

// cleanModelJSON tolerates markdown fences and surrounding prose in the
// model output by cutting the text down to its outermost JSON object.
func cleanModelJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}

func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", strings.TrimSpace(s))
	return t
}

func isExtractorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("FDR_EXTRACTOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"go-inventory-dash/internal/model"

	"google.golang.org/genai"
)

const (
	chatModel   = "gemini-2.5-flash"
	avatarModel = "imagen-4.0-generate-001"

	avatarCacheKey = "admin_avatar_v1"

	systemInstruction = "You are an intelligent assistant specializing in inventory data analysis. " +
		"Your name is 'Nabeeh'. Analyze the provided context data and provide clear, concise, and " +
		"helpful answers and insights based on the user's question. Format your response for " +
		"readability, using markdown for lists or bold text where appropriate."

	avatarPrompt = "A modern, minimalist logo for a user avatar. The logo features the Arabic " +
		"letter 'ح' (Ha) in an abstract, elegant style. Use a sophisticated color palette of deep " +
		"navy blue and silver on a clean white background. The style should be a flat 2D vector " +
		"graphic, professional and clean."
)

// ErrDisabled is returned by every call on an assistant constructed without
// a credential. Callers surface it as a degraded-mode indicator.
var ErrDisabled = errors.New("ai assistant is not configured")

// Snapshot is the point-in-time copy of the four collections handed to the
// model alongside a question. It is read-only; the assistant has no
// write-back path into the store.
type Snapshot struct {
	Items        []model.Item        `json:"items"`
	Suppliers    []model.Supplier    `json:"suppliers"`
	Customers    []model.Customer    `json:"customers"`
	Transactions []model.Transaction `json:"transactions"`
}

// Assistant wraps the optional Gemini client. A missing or broken credential
// yields a disabled handle rather than a startup failure.
type Assistant struct {
	client *genai.Client

	mu          sync.Mutex
	avatarCache map[string][]byte
}

func New(ctx context.Context, apiKey string) *Assistant {
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI assistant disabled")
		return &Assistant{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Warning: failed to initialize AI client, assistant disabled: %v", err)
		return &Assistant{}
	}

	return &Assistant{
		client:      client,
		avatarCache: make(map[string][]byte),
	}
}

func (a *Assistant) Enabled() bool {
	return a.client != nil
}

// Chat answers a natural-language question about the inventory using the
// snapshot as context.
func (a *Assistant) Chat(ctx context.Context, question string, snap Snapshot) (string, error) {
	if !a.Enabled() {
		return "", ErrDisabled
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshal inventory snapshot: %w", err)
	}

	prompt := fmt.Sprintf("User question: %q\n\nHere is the inventory data in JSON format for your analysis:\n%s", question, data)

	resp, err := a.client.Models.GenerateContent(ctx, chatModel, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return resp.Text(), nil
}

// Avatar returns the generated admin avatar as jpeg bytes. The image is
// generated once per process and cached under a fixed key after that.
func (a *Assistant) Avatar(ctx context.Context) ([]byte, error) {
	if !a.Enabled() {
		return nil, ErrDisabled
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if img, ok := a.avatarCache[avatarCacheKey]; ok {
		return img, nil
	}

	resp, err := a.client.Models.GenerateImages(ctx, avatarModel, avatarPrompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, fmt.Errorf("generate avatar: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, errors.New("avatar generation returned no image")
	}

	img := resp.GeneratedImages[0].Image.ImageBytes
	a.avatarCache[avatarCacheKey] = img
	return img, nil
}

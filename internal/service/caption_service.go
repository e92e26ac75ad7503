package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/h2non/filetype"
	config "github.com/maheshrc27/contentflow/configs"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/transfer"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

const maxCaptionImageSize = 10 << 20

// CaptionModel produces text from a prompt and an optional image.
type CaptionModel interface {
	Generate(ctx context.Context, prompt string, image []byte, imageFormat string) (string, error)
}

type CaptionService interface {
	Generate(ctx context.Context, userID string, req *transfer.CaptionRequest) (string, error)
}

type captionService struct {
	model    CaptionModel
	resolver repository.PostResolver
	p        repository.PostRepository
	sp       repository.CalendarPostRepository
	c        repository.ClientRepository
	http     *http.Client
}

func NewCaptionService(
	model CaptionModel,
	resolver repository.PostResolver,
	p repository.PostRepository,
	sp repository.CalendarPostRepository,
	c repository.ClientRepository) CaptionService {
	return &captionService{
		model:    model,
		resolver: resolver,
		p:        p,
		sp:       sp,
		c:        c,
		http:     &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *captionService) Generate(ctx context.Context, userID string, req *transfer.CaptionRequest) (string, error) {
	imageURL := req.ImageURL
	if req.PostID != "" {
		url, err := s.postImage(ctx, userID, req.PostID)
		if err != nil {
			return "", err
		}
		imageURL = url
	}
	if imageURL == "" {
		return "", apperror.BadRequest("image_url or post_id is required")
	}

	image, err := s.fetchImage(ctx, imageURL)
	if err != nil {
		return "", err
	}
	kind, _ := filetype.Match(image)
	if _, ok := imageTypes[kind.Extension]; !ok {
		return "", apperror.BadRequest("URL does not point at a supported image")
	}

	format := kind.Extension
	if format == "jpg" {
		format = "jpeg"
	}

	caption, err := s.model.Generate(ctx, captionPrompt(req), image, format)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", apperror.WrapWithCode(err, "unavailable", "Caption generation is temporarily unavailable")
		}
		return "", apperror.Wrap(err, "Failed to generate caption")
	}
	return strings.TrimSpace(caption), nil
}

func (s *captionService) postImage(ctx context.Context, userID, postID string) (string, error) {
	if err := requireUUID(postID, "post_id"); err != nil {
		return "", err
	}
	resolved, err := s.resolver.Resolve(ctx, postID)
	if err != nil {
		return "", apperror.Wrap(err, "Failed to load post")
	}
	if resolved == nil {
		return "", apperror.NotFound("Post not found")
	}
	if _, err := ownedClient(ctx, s.c, userID, resolved.ClientID); err != nil {
		return "", err
	}

	if resolved.Kind == repository.PostKindCalendar {
		sp, err := s.sp.GetByID(ctx, postID)
		if err != nil || sp == nil {
			return "", apperror.NotFound("Post not found")
		}
		return sp.ImageURL, nil
	}
	post, err := s.p.GetByID(ctx, postID)
	if err != nil || post == nil {
		return "", apperror.NotFound("Post not found")
	}
	return post.ImageURL, nil
}

func (s *captionService) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.BadRequest("Invalid image_url")
	}
	resp, err := s.http.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperror.Wrap(err, "Failed to fetch image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.BadRequest(fmt.Sprintf("Image fetch returned status %d", resp.StatusCode))
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxCaptionImageSize))
}

func captionPrompt(req *transfer.CaptionRequest) string {
	var b strings.Builder
	b.WriteString("Write one engaging social media caption for this image.")
	if req.Platform != "" {
		fmt.Fprintf(&b, " It will be posted on %s, follow that platform's conventions for length and hashtags.", req.Platform)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, " Use a %s tone.", req.Tone)
	}
	if req.Context != "" {
		fmt.Fprintf(&b, " Context from the brand: %s.", req.Context)
	}
	b.WriteString(" Reply with the caption text only.")
	return b.String()
}

// GeminiCaptionModel calls Gemini behind a rate limiter and circuit breaker.
type GeminiCaptionModel struct {
	client  *genai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

func NewGeminiCaptionModel(ctx context.Context, cfg config.Gemini) (*GeminiCaptionModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GeminiAPI",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &GeminiCaptionModel{
		client:  client,
		model:   cfg.Model,
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(10.0/60.0), 2),
	}, nil
}

func (g *GeminiCaptionModel) Generate(ctx context.Context, prompt string, image []byte, imageFormat string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		model := g.client.GenerativeModel(g.model)
		model.SetTemperature(0.8)
		model.SetMaxOutputTokens(512)

		parts := []genai.Part{genai.Text(prompt)}
		if len(image) > 0 {
			parts = append(parts, genai.ImageData(imageFormat, image))
		}

		resp, err := model.GenerateContent(ctx, parts...)
		if err != nil {
			return nil, err
		}
		return responseText(resp), nil
	})
	if err != nil {
		return "", err
	}

	text := result.(string)
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

func (g *GeminiCaptionModel) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		break
	}
	return b.String()
}

// Package anthropicclient implementa a chamada ao modelo hospedado usada pelas narrativas
package anthropicclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
)

var (
	ErrNotConfigured = errors.New("chave da API do modelo não configurada")
	ErrNoTextContent = errors.New("resposta do modelo sem conteúdo de texto")
)

type Client struct {
	client     anthropic.Client
	model      anthropic.Model
	maxTokens  int64
	configured bool
}

// NewClient cria o cliente a partir da configuração. Sem chave, Complete sempre
// retorna ErrNotConfigured e as narrativas usam a resposta padrão.
func NewClient(cfg *config.Config, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.Anthropic.APIKey)}, opts...)

	return &Client{
		client:     anthropic.NewClient(opts...),
		model:      anthropic.Model(cfg.Anthropic.Model),
		maxTokens:  cfg.Anthropic.MaxTokens,
		configured: cfg.Anthropic.APIKey != "",
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}

	start := time.Now()
	log := logrus.WithFields(logrus.Fields{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"prompt_len": len(prompt),
	})

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.WithError(err).WithField("duration", time.Since(start)).Error("Erro na chamada ao modelo")
		return "", fmt.Errorf("erro ao chamar o modelo: %w", err)
	}

	log.WithFields(logrus.Fields{
		"duration":    time.Since(start),
		"stop_reason": msg.StopReason,
	}).Debug("Chamada ao modelo concluída")

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", ErrNoTextContent
}

package providerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/marketing-automation-api/internal/config"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

// DeliveryRequest é a carga enviada ao provedor do canal
type DeliveryRequest struct {
	CustomerID int64  `json:"customer_id"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject,omitempty"`
	Content    string `json:"content"`
	CampaignID int64  `json:"campaign_id"`
}

// DeliveryResponse é a resposta normalizada do provedor
type DeliveryResponse struct {
	ProviderMessageID string `json:"provider_message_id"`
	Status            string `json:"status"`
	StatusCode        int    `json:"-"`
	RawBody           []byte `json:"-"`
}

type Client interface {
	Send(ctx context.Context, channel domain.CampaignType, request *DeliveryRequest) (*DeliveryResponse, error)
}

type ProviderClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ProviderClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

func (c *ProviderClient) Send(ctx context.Context, channel domain.CampaignType, request *DeliveryRequest) (*DeliveryResponse, error) {
	endpoint, token, err := c.channelEndpoint(channel)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	response := &DeliveryResponse{
		StatusCode: resp.StatusCode,
		RawBody:    raw,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, response); err != nil {
			return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
	}

	return response, nil
}

// channelEndpoint resolve o provedor configurado para o canal; campanhas de
// anúncio não têm entrega direta
func (c *ProviderClient) channelEndpoint(channel domain.CampaignType) (string, string, error) {
	switch channel {
	case domain.CampaignTypeEmail:
		return c.config.Provider.EmailURL, c.config.Provider.EmailToken, nil
	case domain.CampaignTypeSMS:
		return c.config.Provider.SMSURL, c.config.Provider.SMSToken, nil
	case domain.CampaignTypeSocial:
		return c.config.Provider.SocialURL, c.config.Provider.SocialToken, nil
	}

	return "", "", fmt.Errorf("no delivery provider for channel %s", channel)
}

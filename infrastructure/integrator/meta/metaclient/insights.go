package metaclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type timeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// GetInsights faz um único GET no endpoint de insights da conta configurada.
// Não há retry: erros de transporte, corpo inválido e status de erro da Meta
// são devolvidos ao chamador.
func (c *MetaClient) GetInsights(ctx context.Context, req InsightsRequest) (*metadomain.InsightsResponse, error) {
	endpoint := c.endpoint()

	params, err := c.buildParams(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "metaclient: build insights request")
	}
	httpReq.Header.Set("Accept", "application/json")

	logger := logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"level":    req.Level,
		"since":    req.TimeRange.SinceString(),
		"until":    req.TimeRange.UntilString(),
	})
	logger.Debug("insights: requesting meta insights")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(ctx, err)
	}

	if !json.Valid(body) {
		logger.WithField("status_code", resp.StatusCode).Error("insights: meta response is not valid JSON")
		return nil, errors.Wrapf(domain.ErrUpstreamInvalid, "status %d", resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		fields := logrus.Fields{"status_code": resp.StatusCode}
		if metaErr := metadomain.ParseErrorResponse(body); metaErr != nil {
			fields["meta_error_code"] = metaErr.Error.Code
			fields["meta_error_type"] = metaErr.Error.Type
			fields["fbtrace_id"] = metaErr.Error.FBTraceID
			fields["token_expired"] = metaErr.IsTokenExpired()
		}
		logger.WithFields(fields).Warn("insights: meta returned an error status")

		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	var response metadomain.InsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.WithError(err).Error("insights: failed to decode meta insights")
		return nil, errors.Wrap(domain.ErrUpstreamInvalid, err.Error())
	}

	if response.HasNextPage() {
		logger.WithField("rows", len(response.Data)).Warn("insights: meta has more pages; only the first page is used")
	}

	logger.WithField("rows", len(response.Data)).Debug("insights: meta insights received")

	return &response, nil
}

func (c *MetaClient) endpoint() string {
	return fmt.Sprintf("%s/%s/%s/insights",
		strings.TrimSuffix(c.Cfg.Meta.BaseURL, "/"),
		strings.Trim(c.Cfg.Meta.Version, "/"),
		NormalizeAccountID(c.Cfg.Meta.AdAccountID),
	)
}

func (c *MetaClient) buildParams(req InsightsRequest) (url.Values, error) {
	rangeJSON, err := json.Marshal(timeRange{
		Since: req.TimeRange.SinceString(),
		Until: req.TimeRange.UntilString(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "metaclient: encode time_range")
	}

	params := url.Values{}
	params.Set("time_range", string(rangeJSON))
	params.Set("fields", strings.Join(req.Fields, ","))
	if req.Level != "" {
		params.Set("level", req.Level)
	}
	params.Set("access_token", req.AccessToken)
	if c.Cfg.Meta.AppSecret != "" && req.AccessToken != "" {
		params.Set("appsecret_proof", AppSecretProof(req.AccessToken, c.Cfg.Meta.AppSecret))
	}

	return params, nil
}

// transportError classifica falhas antes de haver um corpo de resposta
func transportError(ctx context.Context, err error) error {
	// url.Error carrega a URL com o access_token; fica só a causa
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		logrus.WithError(err).Error("insights: meta request timed out")
		return errors.Wrap(domain.ErrUpstreamTimeout, err.Error())
	}

	logrus.WithError(err).Error("insights: meta request failed")
	return errors.Wrap(domain.ErrUpstreamUnavailable, err.Error())
}

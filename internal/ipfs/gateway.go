package ipfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

// NormalizeCID strips ipfs:// and /ipfs/ prefixes, including full gateway URLs
func NormalizeCID(ref string) string {
	ref = strings.TrimSpace(ref)
	if len(ref) >= len("ipfs://") && strings.EqualFold(ref[:len("ipfs://")], "ipfs://") {
		ref = ref[len("ipfs://"):]
	}
	if _, after, ok := strings.Cut(ref, "/ipfs/"); ok {
		ref = after
	}
	return strings.Trim(ref, "/")
}

// GatewayURL builds the content URL of cid on a gateway
func GatewayURL(gateway, cid string) string {
	return fmt.Sprintf("%s/ipfs/%s", strings.TrimRight(gateway, "/"), cid)
}

// ErrNoGateways is returned when a probe has nowhere to look
var ErrNoGateways = errors.New("no IPFS gateways configured")

// ProbeGateways answers the accessibility half of Store.VerifyPin. Each gateway
// gets a concurrent HEAD for cid; the first 2xx answer wins and cancels the
// probes still in flight. On failure the error joins every gateway's reason.
func ProbeGateways(ctx context.Context, httpClient adapter.HTTPClient, cid string, gateways []string) (string, error) {
	if len(gateways) == 0 {
		return "", ErrNoGateways
	}

	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type probe struct {
		url string
		err error
	}

	probes := make(chan probe, len(gateways))
	for _, gateway := range gateways {
		url := GatewayURL(gateway, cid)
		go func() {
			probes <- probe{url: url, err: headOK(probeCtx, httpClient, url)}
		}()
	}

	var failures []error
	for range gateways {
		p := <-probes
		if p.err == nil {
			return p.url, nil
		}
		failures = append(failures, fmt.Errorf("%s: %w", p.url, p.err))
	}

	return "", fmt.Errorf("content %s not reachable on any gateway: %w", cid, errors.Join(failures...))
}

func headOK(ctx context.Context, httpClient adapter.HTTPClient, url string) error {
	resp, err := httpClient.Head(ctx, url)
	if err != nil {
		return err
	}
	if err := resp.Body.Close(); err != nil {
		logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

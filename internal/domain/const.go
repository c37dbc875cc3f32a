package domain

import "time"

const (
	// Mirror node constants
	DEFAULT_MIRROR_NODE_URL   = "https://testnet.mirrornode.hedera.com"
	MIRROR_NODE_DEFAULT_LIMIT = 25
	MIRROR_NODE_MAX_LIMIT     = 100
	MIRROR_NODE_MAX_ATTEMPTS  = 3
	MIRROR_NODE_RETRY_DELAY   = time.Second
	MIRROR_NODE_TIMEOUT       = 10 * time.Second

	// Cache TTLs per mirror node resource
	CACHE_TTL_BALANCES  = 30 * time.Second
	CACHE_TTL_TRANSFERS = 60 * time.Second
	CACHE_TTL_MESSAGES  = 60 * time.Second
	CACHE_TTL_ACCOUNT   = 120 * time.Second
	CACHE_TTL_TOKEN     = 300 * time.Second

	// Cache key prefixes
	CACHE_PREFIX_BALANCES  = "balances"
	CACHE_PREFIX_TRANSFERS = "transfers"
	CACHE_PREFIX_MESSAGES  = "messages"
	CACHE_PREFIX_ACCOUNT   = "account"
	CACHE_PREFIX_TOKEN     = "token"

	// Purchase constants
	MIN_PURCHASE_QUANTITY   = 1
	MAX_PURCHASE_QUANTITY   = 10000
	DEFAULT_PRICE_PER_TOKEN = "100"
	DEFAULT_CURRENCY        = "USD"

	// IPFS gateways, tried in order
	GATEWAY_PINATA     = "https://gateway.pinata.cloud"
	GATEWAY_IPFS_IO    = "https://ipfs.io"
	GATEWAY_DWEB       = "https://dweb.link"
	GATEWAY_CLOUDFLARE = "https://cf-ipfs.com"

	DEFAULT_PINATA_API_URL = "https://api.pinata.cloud"
	DEFAULT_IPFS_NODE_URL  = "http://127.0.0.1:5001"
)

// DefaultIPFSGateways returns the gateway fallback order
func DefaultIPFSGateways() []string {
	return []string{GATEWAY_PINATA, GATEWAY_IPFS_IO, GATEWAY_DWEB, GATEWAY_CLOUDFLARE}
}

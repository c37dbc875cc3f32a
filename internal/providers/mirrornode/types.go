package mirrornode

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexInt decodes integers the mirror node sends either as numbers or strings
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

type links struct {
	Next *string `json:"next"`
}

type balancesResponse struct {
	Balances []struct {
		Account  string  `json:"account"`
		Balance  flexInt `json:"balance"`
		Decimals flexInt `json:"decimals"`
	} `json:"balances"`
	Links links `json:"links"`
}

type tokenTransfer struct {
	TokenID string  `json:"token_id"`
	Account string  `json:"account"`
	Amount  flexInt `json:"amount"`
}

type transactionsResponse struct {
	Transactions []struct {
		TransactionID      string          `json:"transaction_id"`
		ConsensusTimestamp string          `json:"consensus_timestamp"`
		Name               string          `json:"name"`
		Result             string          `json:"result"`
		MemoBase64         string          `json:"memo_base64"`
		TokenTransfers     []tokenTransfer `json:"token_transfers"`
	} `json:"transactions"`
	Links links `json:"links"`
}

type topicMessagesResponse struct {
	Messages []struct {
		ConsensusTimestamp string  `json:"consensus_timestamp"`
		Message            string  `json:"message"`
		RunningHash        string  `json:"running_hash"`
		RunningHashVersion flexInt `json:"running_hash_version"`
		SequenceNumber     flexInt `json:"sequence_number"`
		TopicID            string  `json:"topic_id"`
	} `json:"messages"`
	Links links `json:"links"`
}

type accountTokensResponse struct {
	Tokens []struct {
		TokenID  string  `json:"token_id"`
		Balance  flexInt `json:"balance"`
		Decimals flexInt `json:"decimals"`
	} `json:"tokens"`
	Links links `json:"links"`
}

type tokenInfoResponse struct {
	TokenID           string  `json:"token_id"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Decimals          flexInt `json:"decimals"`
	TotalSupply       flexInt `json:"total_supply"`
	TreasuryAccountID string  `json:"treasury_account_id"`
	Type              string  `json:"type"`
	Memo              string  `json:"memo"`
}

// decodeMessage parses a base64 topic payload as JSON, falling back to the raw text
func decodeMessage(payload []byte) interface{} {
	var parsed interface{}
	if err := json.Unmarshal(payload, &parsed); err == nil {
		return parsed
	}
	return string(payload)
}

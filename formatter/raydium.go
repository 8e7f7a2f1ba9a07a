package formatter

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

var _ Formatter = (*RaydiumSwapFormatter)(nil)

const raydiumSwapScheme = "raydium-swap"

// Raydium AMM v4 instruction discriminators.
const (
	raydiumSwapBaseIn  = 9
	raydiumSwapBaseOut = 11
)

// raydiumSwapDataLen is the discriminator followed by two little-endian u64.
const raydiumSwapDataLen = 1 + 8 + 8

var ErrNotRaydiumSwap = errors.New("not a raydium swap instruction")

// SwapTransaction is a decoded Raydium AMM v4 swap. Account fields are base58
// public keys, empty when no accounts were given.
type SwapTransaction struct {
	Instruction string
	InAmount    uint64
	OutAmount   uint64

	AMM                     string
	SourceTokenAccount      string
	DestinationTokenAccount string
	Owner                   string
}

// DecodeRaydiumSwap reads a SwapBaseIn or SwapBaseOut instruction. For
// SwapBaseIn the amounts are `amount_in` and `minimum_amount_out`, for
// SwapBaseOut `max_amount_in` and `amount_out`. Accounts, when present, are
// the 17 or 18 instruction accounts in program order.
func DecodeRaydiumSwap(data []byte, accounts [][]byte) (*SwapTransaction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrNotRaydiumSwap)
	}

	out := &SwapTransaction{}
	switch data[0] {
	case raydiumSwapBaseIn:
		out.Instruction = "SwapBaseIn"
	case raydiumSwapBaseOut:
		out.Instruction = "SwapBaseOut"
	default:
		return nil, fmt.Errorf("%w: discriminator %d", ErrNotRaydiumSwap, data[0])
	}

	if len(data) < raydiumSwapDataLen {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrNotRaydiumSwap, out.Instruction, raydiumSwapDataLen, len(data))
	}

	out.InAmount = binary.LittleEndian.Uint64(data[1:9])
	out.OutAmount = binary.LittleEndian.Uint64(data[9:17])

	if len(accounts) == 0 {
		return out, nil
	}

	if len(accounts) != 17 && len(accounts) != 18 {
		return nil, fmt.Errorf("%s expects 17 or 18 accounts, got %d", out.Instruction, len(accounts))
	}

	// amm_target_orders is the optional fifth account, the user accounts are
	// always the last three.
	count := len(accounts)
	out.AMM = base58.Encode(accounts[1])
	out.SourceTokenAccount = base58.Encode(accounts[count-3])
	out.DestinationTokenAccount = base58.Encode(accounts[count-2])
	out.Owner = base58.Encode(accounts[count-1])

	return out, nil
}

type RaydiumSwapFormatter struct {
	accounts [][]byte
}

// newRaydiumSwapFormatter accepts `raydium-swap` or
// `raydium-swap://<account>,<account>,...` with base58 account keys.
func newRaydiumSwapFormatter(scheme string) (*RaydiumSwapFormatter, error) {
	rest := strings.TrimPrefix(scheme, raydiumSwapScheme)
	if rest == "" {
		return &RaydiumSwapFormatter{}, nil
	}

	if !strings.HasPrefix(rest, "://") || len(rest) == 3 {
		return nil, fmt.Errorf("invalid scheme %q, expected 'raydium-swap' or 'raydium-swap://<account>,...'", scheme)
	}

	var accounts [][]byte
	for _, key := range strings.Split(rest[3:], ",") {
		account, err := base58.Decode(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid account %q: %w", key, err)
		}
		if len(account) != 32 {
			return nil, fmt.Errorf("invalid account %q: expected 32 bytes, got %d", key, len(account))
		}
		accounts = append(accounts, account)
	}

	if len(accounts) != 17 && len(accounts) != 18 {
		return nil, fmt.Errorf("expected 17 or 18 accounts, got %d", len(accounts))
	}

	return &RaydiumSwapFormatter{accounts: accounts}, nil
}

func (f *RaydiumSwapFormatter) Format(data []byte) string {
	swap, err := DecodeRaydiumSwap(data, f.accounts)
	if err != nil {
		return fmt.Sprintf("Error decoding raydium swap: %s", err)
	}

	var amounts string
	if swap.Instruction == "SwapBaseIn" {
		amounts = fmt.Sprintf("AmountIn [%d] MinimumAmountOut [%d]", swap.InAmount, swap.OutAmount)
	} else {
		amounts = fmt.Sprintf("MaxAmountIn [%d] AmountOut [%d]", swap.InAmount, swap.OutAmount)
	}

	if swap.AMM == "" {
		return fmt.Sprintf("%s %s", swap.Instruction, amounts)
	}

	return fmt.Sprintf("%s %s AMM [%s] Source [%s] Destination [%s] Owner [%s]", swap.Instruction, amounts, swap.AMM, swap.SourceTokenAccount, swap.DestinationTokenAccount, swap.Owner)
}

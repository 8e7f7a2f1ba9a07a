package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/streamingfast/hexints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHex = "45a4d25992d6ad43c024c09e0c000000c652200f00000000a199f90e0000000001000000c024c09e0c0000000100000001000000010000002e010000006440420f00000000000032b6010000000000 "

func testAccounts(count int) [][]byte {
	out := make([][]byte, count)
	for i := range out {
		out[i] = bytes.Repeat([]byte{byte(i + 1)}, 32)
	}
	return out
}

func TestDecodeRaydiumSwap(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		accounts [][]byte
		expected *SwapTransaction
		err      string
	}{
		{
			name:     "swap base in",
			data:     "0940420f0000000000de03000000000000",
			expected: &SwapTransaction{Instruction: "SwapBaseIn", InAmount: 1000000, OutAmount: 990},
		},
		{
			name:     "swap base out",
			data:     "0b7b00000000000000c800000000000000",
			expected: &SwapTransaction{Instruction: "SwapBaseOut", InAmount: 123, OutAmount: 200},
		},
		{
			name:     "trailing bytes ignored",
			data:     "0901000000000000000200000000000000ff",
			expected: &SwapTransaction{Instruction: "SwapBaseIn", InAmount: 1, OutAmount: 2},
		},
		{
			name:     "18 accounts",
			data:     "0901000000000000000200000000000000",
			accounts: testAccounts(18),
			expected: &SwapTransaction{
				Instruction:             "SwapBaseIn",
				InAmount:                1,
				OutAmount:               2,
				AMM:                     base58.Encode(bytes.Repeat([]byte{2}, 32)),
				SourceTokenAccount:      base58.Encode(bytes.Repeat([]byte{16}, 32)),
				DestinationTokenAccount: base58.Encode(bytes.Repeat([]byte{17}, 32)),
				Owner:                   base58.Encode(bytes.Repeat([]byte{18}, 32)),
			},
		},
		{
			name:     "17 accounts",
			data:     "0901000000000000000200000000000000",
			accounts: testAccounts(17),
			expected: &SwapTransaction{
				Instruction:             "SwapBaseIn",
				InAmount:                1,
				OutAmount:               2,
				AMM:                     base58.Encode(bytes.Repeat([]byte{2}, 32)),
				SourceTokenAccount:      base58.Encode(bytes.Repeat([]byte{15}, 32)),
				DestinationTokenAccount: base58.Encode(bytes.Repeat([]byte{16}, 32)),
				Owner:                   base58.Encode(bytes.Repeat([]byte{17}, 32)),
			},
		},
		{name: "empty", data: "", err: "not a raydium swap instruction: empty data"},
		{name: "sample literal", data: sampleHex, err: "not a raydium swap instruction: discriminator 69"},
		{name: "truncated", data: "090100", err: "not a raydium swap instruction: SwapBaseIn needs 17 bytes, got 3"},
		{name: "wrong account count", data: "0901000000000000000200000000000000", accounts: testAccounts(3), err: "SwapBaseIn expects 17 or 18 accounts, got 3"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			swap, err := DecodeRaydiumSwap(hexints.MustDecode(test.data), test.accounts)
			if test.err != "" {
				require.Error(t, err)
				assert.Equal(t, test.err, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, swap)
		})
	}
}

func TestDecodeRaydiumSwap_NotSwapIsSentinel(t *testing.T) {
	_, err := DecodeRaydiumSwap([]byte{69}, nil)
	assert.True(t, errors.Is(err, ErrNotRaydiumSwap))
}

func TestRaydiumSwapFormatter(t *testing.T) {
	f, err := New("raydium-swap")
	require.NoError(t, err)

	assert.Equal(t, "SwapBaseIn AmountIn [1000000] MinimumAmountOut [990]", f.Format(hexints.MustDecode("0940420f0000000000de03000000000000")))
	assert.Equal(t, "SwapBaseOut MaxAmountIn [123] AmountOut [200]", f.Format(hexints.MustDecode("0b7b00000000000000c800000000000000")))
	assert.Equal(t, "Error decoding raydium swap: not a raydium swap instruction: discriminator 69", f.Format(hexints.MustDecode(sampleHex)))
}

func TestRaydiumSwapFormatter_Accounts(t *testing.T) {
	var keys []string
	for _, account := range testAccounts(18) {
		keys = append(keys, base58.Encode(account))
	}

	f, err := New("raydium-swap://" + strings.Join(keys, ","))
	require.NoError(t, err)

	out := f.Format(hexints.MustDecode("0901000000000000000200000000000000"))
	assert.Equal(t, "SwapBaseIn AmountIn [1] MinimumAmountOut [2] AMM ["+keys[1]+"] Source ["+keys[15]+"] Destination ["+keys[16]+"] Owner ["+keys[17]+"]", out)
}

func TestRaydiumSwapFormatter_InvalidScheme(t *testing.T) {
	tests := []string{
		"raydium-swap:",
		"raydium-swap://",
		"raydium-swap://" + base58.Encode([]byte{1, 2, 3}),
		"raydium-swap://0OIl",
		"raydium-swap://" + base58.Encode(bytes.Repeat([]byte{1}, 32)),
	}

	for _, scheme := range tests {
		t.Run(scheme, func(t *testing.T) {
			_, err := New(scheme)
			require.Error(t, err)
		})
	}
}

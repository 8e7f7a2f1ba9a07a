package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streamingfast/hexints/decoder"
	"github.com/streamingfast/hexints/formatter"
	"github.com/streamingfast/logging"

	. "github.com/streamingfast/cli"
	_ "github.com/streamingfast/hexints/store/badger"
	_ "github.com/streamingfast/hexints/store/badger3"
)

// Commit sha1 value, injected via go build `ldflags` at build time
var commit = ""

// Version value, injected via go build `ldflags` at build time
var version = "dev"

// Date value, injected via go build `ldflags` at build time
var date = ""

var zlog, tracer = logging.RootLogger("hexints", "github.com/streamingfast/hexints/cmd/hexints")

// sampleHex is decoded when no input is given, trailing space included.
const sampleHex = "45a4d25992d6ad43c024c09e0c000000c652200f00000000a199f90e0000000001000000c024c09e0c0000000100000001000000010000002e010000006440420f00000000000032b6010000000000 "

func init() {
	logging.InstantiateLoggers()
}

func main() {
	Run("hexints [<hex>...]", "Decodes hexadecimal text and prints the byte values as decimal integers", rootOptions()...)
}

func rootOptions() []CommandOption {
	return []CommandOption{
		ConfigureViper("HEXINTS"),
		ConfigureVersion(),

		Group("fixture", "Pin decoded byte sequences as regression fixtures and verify them later",
			FixturePinCmd,
			FixtureGetCmd,
			FixtureVerifyCmd,
			FixtureVerifyAllCmd,
			FixtureListCmd,
			FixtureDeleteCmd,

			PersistentFlags(
				func(flags *pflag.FlagSet) {
					flags.String("dsn", "badger3://./hexints-fixtures.db", "URL of the KV store holding fixtures. Supported schemes: 'badger3', 'badger'. Add '?compression=none' to store values uncompressed")
				},
			),
		),

		PersistentFlags(
			func(flags *pflag.FlagSet) {
				flags.String("format", formatter.DefaultScheme, "Output format. Supported schemes: 'go', 'list', 'json', 'hex', 'base58', 'ascii', 'raydium-swap[://<account>,...]', 'proto:///<path_to_proto>@<message_type>'")
				flags.String("decoder", decoder.DefaultScheme, "Input decoding. Supported schemes: 'hex', 'base58', 'ascii'")
				flags.String("whitespace", "trim", "Whitespace handling for hex input: 'trim' (leading and trailing only), 'ignore' (anywhere) or 'reject'")
				flags.String("input-file", "", "Read the input from this file instead of the positional arguments, '-' reads standard input")
			},
		),
		Execute(decodeRunE),
		ArbitraryArgs(),
	}
}

func ConfigureVersion() CommandOption {
	return CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Version = versionString(version)
	})
}

func versionString(version string) string {
	var labels []string
	if len(commit) >= 7 {
		labels = append(labels, fmt.Sprintf("Commit %s", commit[0:7]))
	}

	if date != "" {
		labels = append(labels, fmt.Sprintf("Built %s", date))
	}

	if len(labels) == 0 {
		return version
	}

	return fmt.Sprintf("%s (%s)", version, strings.Join(labels, ", "))
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/streamingfast/hexints/fixture"
	"github.com/streamingfast/hexints/store"
	"go.uber.org/zap"

	. "github.com/streamingfast/cli"
)

var FixturePinCmd = Command(fixturePinRunE,
	"pin <name> [<hex>...]",
	"Decode the input and pin the resulting bytes under <name>",
	MinimumNArgs(1),
)

var FixtureGetCmd = Command(fixtureGetRunE,
	"get <name>",
	"Show a pinned fixture",
	ExactArgs(1),
)

var FixtureVerifyCmd = Command(fixtureVerifyRunE,
	"verify <name> [<hex>...]",
	"Decode the input and check it matches the bytes pinned under <name>",
	MinimumNArgs(1),
)

var FixtureVerifyAllCmd = Command(fixtureVerifyAllRunE,
	"verify-all",
	"Decode the source of every pinned fixture again, with the decoder and whitespace policy it was pinned with, and check it still matches its pinned bytes",
	ExactArgs(0),
)

var FixtureListCmd = Command(fixtureListRunE,
	"list",
	"List pinned fixture names",
	ExactArgs(0),
	Flags(func(flags *pflag.FlagSet) {
		flags.Uint64("limit", 100, "Number of names to return, 0 is unbounded")
		flags.String("from", "", "First fixture name to list, inclusive")
		flags.String("to", "", "Fixture name where listing stops, exclusive")
	}),
)

var FixtureDeleteCmd = Command(fixtureDeleteRunE,
	"delete <name>...",
	"Delete pinned fixtures",
	MinimumNArgs(1),
)

func fixturePinRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	name := args[0]
	scheme, policy, err := getDecoding()
	if err != nil {
		return err
	}

	source, data, err := decodeSource(args[1:], cmd.InOrStdin())
	if err != nil {
		return err
	}

	registry, err := getRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	f, err := registry.Pin(ctx, name, source, data, fixture.WithDecoding(scheme, policy))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Pinned fixture %q (%d bytes)\n", f.Name, len(f.Bytes))
	return nil
}

func fixtureGetRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	outputFormatter, err := getFormatter()
	if err != nil {
		return err
	}

	registry, err := getRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	f, err := registry.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Name\t->\t%s\n", f.Name)
	fmt.Fprintf(out, "Source\t->\t%q\n", f.Source)
	fmt.Fprintf(out, "Decoder\t->\t%s (whitespace %s)\n", f.Scheme, f.Whitespace)
	fmt.Fprintf(out, "Pinned\t->\t%s\n", f.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Length\t->\t%d\n", len(f.Bytes))
	fmt.Fprintf(out, "Value\t->\t%s\n", outputFormatter.Format(f.Bytes))
	return nil
}

func fixtureVerifyRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	name := args[0]
	_, data, err := decodeSource(args[1:], cmd.InOrStdin())
	if err != nil {
		return err
	}

	registry, err := getRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	if err := registry.Verify(ctx, name, data); err != nil {
		return err
	}

	fmt.Fprintf(out, "Fixture %q matches (%d bytes)\n", name, len(data))
	return nil
}

func fixtureVerifyAllRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	registry, err := getRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	checked, err := registry.VerifyAll(ctx, fixture.NewDecoder)
	zlog.Info("verified fixtures", zap.Int("checked", checked), zap.Bool("success", err == nil))
	if err != nil {
		return fmt.Errorf("fixture verification failed: %w", err)
	}

	fmt.Fprintf(out, "Verified %d fixtures\n", checked)
	return nil
}

func fixtureListRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	registry, err := getRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	limit := viper.GetUint64("fixture-list-limit")
	names, err := registry.List(ctx, viper.GetString("fixture-list-from"), viper.GetString("fixture-list-to"), int(limit))
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Found %d fixtures (limit %s)\n", len(names), store.Limit(limit))
	return nil
}

func fixtureDeleteRunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	registry, err := getRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	if err := registry.Delete(ctx, args...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted %d fixtures\n", len(args))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streamingfast/hexints/store"
	"go.uber.org/zap"
)

func decodeRunE(cmd *cobra.Command, args []string) error {
	f, err := getFormatter()
	if err != nil {
		return err
	}

	_, data, err := decodeSource(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	zlog.Debug("decoded input", zap.Int("byte_count", len(data)))
	if tracer.Enabled() {
		zlog.Debug("decoded bytes", zap.Stringer("hex", store.Key(data)))
	}

	fmt.Fprintln(cmd.OutOrStdout(), f.Format(data))
	return nil
}

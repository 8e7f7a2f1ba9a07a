package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/spf13/viper"
	"github.com/streamingfast/hexints"
	"github.com/streamingfast/hexints/decoder"
	"github.com/streamingfast/hexints/fixture"
	"github.com/streamingfast/hexints/formatter"
	"github.com/streamingfast/hexints/store"
	"go.uber.org/zap"
)

func getDecoding() (scheme string, policy hexints.WhitespacePolicy, err error) {
	policy, err = hexints.ParseWhitespacePolicy(viper.GetString("global-whitespace"))
	if err != nil {
		return "", 0, err
	}

	return viper.GetString("global-decoder"), policy, nil
}

func getDecoder() (decoder.Decoder, error) {
	scheme, policy, err := getDecoding()
	if err != nil {
		return nil, err
	}

	d, err := fixture.NewDecoder(scheme, policy)
	if err != nil {
		return nil, fmt.Errorf("decoder: %w", err)
	}
	return d, nil
}

func getFormatter() (formatter.Formatter, error) {
	f, err := formatter.New(viper.GetString("global-format"))
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}
	return f, nil
}

func getRegistry() (*fixture.Registry, error) {
	dsn := viper.GetString("fixture-global-dsn")
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	cleanDSN, err := store.RemoveDSNOptions(dsn, "compression")
	if err != nil {
		return nil, fmt.Errorf("invalid dsn: %w", err)
	}
	zlog.Info("setting up fixture store", zap.String("dsn", cleanDSN))

	s, err := store.New(dsn, store.WithLogger(zlog))
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return fixture.New(s), nil
}

// readSource picks the text to decode: the positional arguments concatenated,
// otherwise the content of `inputFile` ('-' being `stdin`), otherwise the
// embedded sample.
func readSource(args []string, inputFile string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ""), nil
	}

	if inputFile == "" {
		return sampleHex, nil
	}

	if inputFile == "-" {
		cnt, err := ioutil.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(cnt), nil
	}

	cnt, err := ioutil.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(cnt), nil
}

func decodeSource(args []string, stdin io.Reader) (source string, data []byte, err error) {
	source, err = readSource(args, viper.GetString("global-input-file"), stdin)
	if err != nil {
		return "", nil, err
	}

	d, err := getDecoder()
	if err != nil {
		return "", nil, err
	}

	data, err = d.Decode(source)
	if err != nil {
		return "", nil, fmt.Errorf("decode input: %w", err)
	}

	return source, data, nil
}

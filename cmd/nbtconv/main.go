// nbtconv converts storage tags between binary NBT, the suffix-tagged JSON
// form used by kit's stash and data files, and SNBT.
//
// Usage:
//
//	nbtconv [--from nbt|nbt-le|nbt-net|json] [--to json|snbt|nbt|nbt-le|nbt-net]
//	        [--gzip] [--compact] [file]
//
// Input is read from file, or from standard input when no file is given, and
// the result is written to standard output. Gzip compressed NBT input is
// detected automatically.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/spf13/pflag"

	"github.com/oriumgames/kit/tag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// encodings maps the binary format names to their NBT encodings.
var encodings = map[string]nbt.Encoding{
	"nbt":     nbt.BigEndian,
	"nbt-le":  nbt.LittleEndian,
	"nbt-net": nbt.NetworkLittleEndian,
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		from    string
		to      string
		gzipped bool
		compact bool
		verbose bool
	)

	flagSet := pflag.NewFlagSet("nbtconv", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&from, "from", "f", "nbt", "input format: nbt, nbt-le, nbt-net or json")
	flagSet.StringVarP(&to, "to", "t", "json", "output format: json, snbt, nbt, nbt-le or nbt-net")
	flagSet.BoolVarP(&gzipped, "gzip", "z", false, "gzip binary output")
	flagSet.BoolVar(&compact, "compact", false, "write JSON without indentation")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log conversion details to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rest := flagSet.Args()
	if len(rest) > 1 {
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}

	input := stdin
	source := "stdin"
	if len(rest) == 1 {
		file, err := os.Open(rest[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		input = file
		source = rest[0]
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}

	c, err := decode(data, from)
	if err != nil {
		return fmt.Errorf("decode %s: %w", source, err)
	}
	logger.Debug("decoded input", "source", source, "format", from, "bytes", len(data), "keys", c.Len())

	out, err := encode(c, to, gzipped, compact)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	logger.Debug("encoded output", "format", to, "bytes", len(out))

	_, err = stdout.Write(out)
	return err
}

func decode(data []byte, format string) (*tag.Compound, error) {
	if format == "json" {
		return tag.UnmarshalJSON(bytes.TrimSpace(data))
	}
	enc, ok := encodings[format]
	if !ok {
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	return tag.UnmarshalNBT(data, enc)
}

func encode(c *tag.Compound, format string, gzipped, compact bool) ([]byte, error) {
	switch format {
	case "json":
		indent := "  "
		if compact {
			indent = ""
		}
		data, err := tag.MarshalJSON(c, indent)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "snbt":
		return []byte(c.String() + "\n"), nil
	}
	enc, ok := encodings[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if gzipped {
		return tag.MarshalNBTGzip(c, enc)
	}
	return tag.MarshalNBT(c, enc)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `nbtconv converts storage tags between binary NBT, suffix-tagged JSON and SNBT.

Usage: nbtconv [flags] [file]

Reads file, or standard input when no file is given, and writes the
converted tag to standard output.

Flags:
%s`, flagSet.FlagUsages())
}

// Command huffman builds Huffman codes for text and reports how the text
// packs.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/bpol9/huffman"
)

var log = logging.MustGetLogger("huffman")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

var plainLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type Options struct {
	LogLevel string `short:"l" long:"loglevel" env:"HUFFMAN_LOGLEVEL" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	NoColor  bool   `long:"nocolor" env:"HUFFMAN_NOCOLOR" description:"disable colored log output"`
}

type Freq struct{}
type Table struct{}
type Encode struct {
	Verify bool `short:"v" long:"verify" description:"decode the packed bits and compare with the input"`
}

var options Options
var freqCommand Freq
var tableCommand Table
var encodeCommand Encode

var parser = flags.NewParser(&options, flags.Default)

var stdin io.Reader = os.Stdin
var stdout io.Writer = os.Stdout

func main() {
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := setupLogging(os.Stderr); err != nil {
			return err
		}
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	parser.AddCommand("freq",
		"print symbol frequencies",
		"The freq command counts the occurrences of each character of the text",
		&freqCommand)
	parser.AddCommand("table",
		"print the code table",
		"The table command builds the Huffman code for the text and prints it",
		&tableCommand)
	parser.AddCommand("encode",
		"pack the text",
		"The encode command packs the text with its Huffman code and prints the packed words",
		&encodeCommand)

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func setupLogging(w io.Writer) error {
	level, err := logging.LogLevel(options.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", options.LogLevel, err)
	}
	format := stdoutLogFormat
	if options.NoColor {
		format = plainLogFormat
	}
	backend := logging.NewLogBackend(w, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return nil
}

// readText joins the arguments with spaces, or reads stdin when there are no
// arguments.
func readText(args []string) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(bufio.NewReader(stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(raw), nil
}

func debugDump(what string, dump func(io.Writer) (int64, error)) {
	if !log.IsEnabledFor(logging.DEBUG) {
		return
	}
	var buf bytes.Buffer
	if _, err := dump(&buf); err != nil {
		log.Warningf("failed to dump %s: %v", what, err)
		return
	}
	log.Debugf("%s:\n%s", what, buf.String())
}

func (x *Freq) Execute(args []string) error {
	text, err := readText(args)
	if err != nil {
		log.Error(err)
		return err
	}
	freqs := huffman.CountString(text)
	log.Infof("counted %d distinct symbols in %d", freqs.Len(), freqs.Total())
	_, err = freqs.Dump(stdout)
	return err
}

func (x *Table) Execute(args []string) error {
	text, err := readText(args)
	if err != nil {
		log.Error(err)
		return err
	}
	tree, err := huffman.NewTree([]rune(text))
	if err != nil {
		log.Error(err)
		return err
	}
	debugDump("tree", tree.Dump)
	table, err := huffman.NewCodeTable(tree)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("built %d codes, tree depth %d", table.Len(), tree.Depth())
	_, err = table.Dump(stdout)
	return err
}

func (x *Encode) Execute(args []string) error {
	text, err := readText(args)
	if err != nil {
		log.Error(err)
		return err
	}
	enc, err := huffman.EncodeString(text)
	if err != nil {
		log.Error(err)
		return err
	}
	debugDump("code table", enc.Table.Dump)

	numSymbols := len([]rune(text))
	log.Infof("packed %d symbols into %d bits (%d words)", numSymbols, enc.Buffer.Len(), len(enc.Buffer.Words()))
	for _, word := range enc.Buffer.Words() {
		fmt.Fprintf(stdout, "0x%016x\n", word)
	}

	if !x.Verify {
		return nil
	}
	decoded, err := huffman.DecodeString(enc)
	if err != nil {
		log.Error(err)
		return err
	}
	if decoded != text {
		err = fmt.Errorf("round trip mismatch: got %q, want %q", decoded, text)
		log.Error(err)
		return err
	}
	log.Notice("round trip verified")
	return nil
}

// Command serlogsift re-filters captured serlog output. It reads console
// lines produced by serlog, applies a fresh filter spec to each record's
// level and target, and writes the surviving lines out — useful when a boot
// log was captured at trace verbosity and only a slice of it is wanted.
//
//	serlogsift -f "warn,acpi=trace" boot.log
//	qemu-system-x86_64 ... | serlogsift -f uart=debug --strip-color
//
// Lines that do not parse as serlog records (panics, firmware chatter) pass
// through unchanged.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/serlog"
	"pkt.systems/serlog/ansi"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type siftConfig struct {
	Filter     string `toml:"filter"`
	StripColor bool   `toml:"strip_color"`
}

func newRootCmd() *cobra.Command {
	var (
		filterSpec string
		stripColor bool
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "serlogsift [file ...]",
		Short: "Re-filter captured serlog output",
		Long: `serlogsift applies a serlog filter spec ("info,uart=debug") to previously
captured serlog console output and keeps only the records the spec enables.
Without file arguments it reads stdin. Non-record lines pass through.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := siftConfig{Filter: filterSpec, StripColor: stripColor}
			if configPath != "" {
				if err := applyConfigFile(&cfg, configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			filter := serlog.ParseFilter(cfg.Filter, cmd.ErrOrStderr())
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return sift(cmd.InOrStdin(), out, filter, cfg.StripColor)
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				err = sift(f, out, filter, cfg.StripColor)
				_ = f.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filterSpec, "filter", "f", "trace", "filter spec applied to each record")
	cmd.Flags().BoolVar(&stripColor, "strip-color", false, "remove ANSI color sequences from output")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file (filter, strip_color)")
	return cmd
}

// applyConfigFile loads path and fills cfg fields whose flags were not
// explicitly set on the command line, so CLI arguments keep precedence.
func applyConfigFile(cfg *siftConfig, path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fileCfg siftConfig
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	if !flags.Changed("filter") && fileCfg.Filter != "" {
		cfg.Filter = fileCfg.Filter
	}
	if !flags.Changed("strip-color") {
		cfg.StripColor = fileCfg.StripColor
	}
	return nil
}

func sift(r io.Reader, w io.Writer, filter serlog.Filter, strip bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		plain := ansi.Strip(line)
		if level, target, ok := parseRecord(plain); ok && !filter.Enabled(level, target) {
			continue
		}
		if strip {
			line = plain
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseRecord extracts (level, target) from a plain serlog console line:
// an optional right-justified counter, "[LEVEL] - target: message".
func parseRecord(line string) (serlog.Level, string, bool) {
	rest := strings.TrimLeft(line, " ")
	rest = strings.TrimLeft(rest, "0123456789")
	rest = strings.TrimLeft(rest, " ")
	if !strings.HasPrefix(rest, "[") {
		return serlog.Off, "", false
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return serlog.Off, "", false
	}
	level, ok := serlog.ParseLevel(strings.TrimSpace(rest[1:end]))
	if !ok || level == serlog.Off {
		return serlog.Off, "", false
	}
	rest = rest[end+1:]
	if !strings.HasPrefix(rest, " - ") {
		return serlog.Off, "", false
	}
	rest = rest[len(" - "):]
	colon := strings.Index(rest, ": ")
	if colon <= 0 {
		return serlog.Off, "", false
	}
	return level, rest[:colon], true
}

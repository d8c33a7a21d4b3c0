package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ldconv/ldconv/internal/cliconfig"
	"github.com/ldconv/ldconv/logging"
	"github.com/ldconv/ldconv/watch"
)

const longHelp = `Convert AiM data-logger CSV exports into MoTeC .ld files.

Source logs may be compressed (.zst, .s2, .lz4, .gz). Session metadata can be
given as flags, as AIM2LD_* environment variables, or in a TOML config file
(default ~/.aim2ld/config.toml), in that order of precedence.`

var exampleUsage = strings.TrimSpace(`
  aim2ld session.csv
  aim2ld convert session.csv.zst --frequency 50 --output out/session.ld
  aim2ld watch ./exports --output-dir ./ld
`)

var errMissingInput = errors.New("missing input log")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  logging.Logger
}

// resolve layers the config file and environment under the explicitly set flags.
func (a *app) resolve(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && (a.cfgPath != "" || cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewConsoleAdapter(cmd.ErrOrStderr(), level)

	return nil
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errMissingInput
	}
	if err := a.resolve(cmd); err != nil {
		return err
	}

	src := args[0]
	dst := resolveOutput(src, a.cfg.Output)

	return convertFile(cmd.Context(), src, dst, a.cfg, a.logger)
}

func (a *app) runWatch(cmd *cobra.Command, args []string) error {
	if err := a.resolve(cmd); err != nil {
		return err
	}

	dir := args[0]
	convert := func(ctx context.Context, src string) error {
		dst := defaultOutput(src)
		if a.cfg.OutputDir != "" {
			dst = outputIn(a.cfg.OutputDir, src)
		}

		return convertFile(ctx, src, dst, a.cfg, a.logger)
	}

	w, err := watch.New(dir, convert, watch.WithLogger(a.logger))
	if err != nil {
		return err
	}

	return w.Run(cmd.Context())
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "aim2ld [log]",
		Short:         "Convert AiM CSV exports into MoTeC .ld files",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runConvert,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to TOML config file (default ~/.aim2ld/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	pf.IntVar(&a.cfg.Frequency, "frequency", 0, "sample frequency in Hz, overrides the log's Sample Rate")
	pf.StringVar(&a.cfg.Driver, "driver", "", "driver name")
	pf.StringVar(&a.cfg.VehicleID, "vehicle-id", "", "vehicle identifier")
	pf.StringVar(&a.cfg.VehicleType, "vehicle-type", "", "vehicle type")
	pf.IntVar(&a.cfg.VehicleWeight, "vehicle-weight", 0, "vehicle weight")
	pf.StringVar(&a.cfg.VehicleComment, "vehicle-comment", "", "vehicle comment")
	pf.StringVar(&a.cfg.Venue, "venue", "", "venue name")
	pf.StringVar(&a.cfg.Event, "event", "", "event name")
	pf.StringVar(&a.cfg.Session, "session", "", "session name")
	pf.StringVar(&a.cfg.ShortComment, "short-comment", "", "short comment")
	pf.StringVar(&a.cfg.LongComment, "long-comment", "", "long comment")

	root.Flags().StringVarP(&a.cfg.Output, "output", "o", "", "output path, its extension is replaced by .ld")

	convertCmd := &cobra.Command{
		Use:   "convert <log>",
		Short: "Convert one source log",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runConvert,
	}
	convertCmd.Flags().StringVarP(&a.cfg.Output, "output", "o", "", "output path, its extension is replaced by .ld")

	watchCmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Convert source logs as they are written into a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runWatch,
	}
	watchCmd.Flags().StringVar(&a.cfg.OutputDir, "output-dir", "", "directory for converted files (default: next to the source)")

	root.AddCommand(convertCmd, watchCmd)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

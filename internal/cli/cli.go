package cli

import (
	"context"
	"fmt"
	"planesteg/internal/logging"
	"planesteg/pkg/config"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PLANESTEG"

	configFlag        = "config"
	logLevelFlag      = "log-level"
	cpuProfileFlag    = "cpu-profile"
	memProfileDirFlag = "mem-profile-dir"
	workersFlag       = "workers"
	rowsPerChunkFlag  = "rows-per-chunk"
	pngCompressionKey = "png-compression"
	portKey           = "port"
)

// app holds the state shared by every command of one invocation. Settings are resolved through vip, so a value can
// come from a flag, a PLANESTEG_ environment variable or the config file, in that order of priority
type app struct {
	vip        *viper.Viper
	configFile string
	profiler   *profiler
}

func newApp() *app {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	return &app{vip: vip}
}

// Execute builds the command tree, runs it with args and stops any profiler started by the run, even if the command
// failed or ctx was cancelled
func Execute(ctx context.Context, args []string) error {
	a := newApp()
	root := RootCommand(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if stopErr := a.stopProfiling(); err == nil {
		err = stopErr
	}
	return err
}

func RootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "planesteg",
		Short:         "Hides images inside the low bit-planes of other images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd.Flags()); err != nil {
				return err
			}
			logging.SetLevel(a.vip.GetString(logLevelFlag))
			logging.BuildLogger().Debug("Loaded configuration", "config_file", a.vip.ConfigFileUsed(),
				"workers", a.vip.GetInt(workersFlag), "rows_per_chunk", a.vip.GetInt(rowsPerChunkFlag))
			return a.startProfiling(a.vip.GetString(cpuProfileFlag), a.vip.GetString(memProfileDirFlag))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, configFlag, "", "Config file (json, yaml, toml...) with default values for any flag")
	flags.String(logLevelFlag, config.DefaultLogLevel, "Log level, one of debug, info, warn, error")
	flags.String(cpuProfileFlag, "", "Dump CPU profile into the supplied file")
	flags.String(memProfileDirFlag, "", "Dump memory profiles into the supplied directory")
	flags.Int(workersFlag, 0, "Max goroutines sweeping an image at once, 0 uses one per CPU")
	flags.Int(rowsPerChunkFlag, config.DefaultRowsPerChunk, "Image rows handled by a goroutine before picking up the next chunk")

	root.AddCommand(ImageCommands(a), ServeAppCommand(a))
	return root
}

func (a *app) loadConfig(flags *pflag.FlagSet) error {
	if err := a.vip.BindPFlags(flags); err != nil {
		return err
	}
	if a.configFile == "" {
		return nil
	}

	a.vip.SetConfigFile(a.configFile)
	if err := a.vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// codecConfig builds the codec config from the resolved settings. png-compression is only bound for the commands that
// write images, the rest get the png default
func (a *app) codecConfig() config.CodecConfig {
	iConfig := config.CodecConfig{
		Workers:             a.vip.GetInt(workersFlag),
		RowsPerChunk:        a.vip.GetInt(rowsPerChunkFlag),
		PngCompressionLevel: config.ParsePngCompression(a.vip.GetString(pngCompressionKey), config.DefaultPngCompression),
	}
	iConfig.PopulateUnsetConfigVars()
	return iConfig
}

func (a *app) serverConfig() config.ServerConfig {
	sConfig := config.ServerConfig{
		Port:     a.vip.GetString(portKey),
		LogLevel: a.vip.GetString(logLevelFlag),
		Codec:    a.codecConfig(),
	}
	sConfig.PopulateUnsetConfigVars()
	return sConfig
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	width      uint
	highlight  bool

	rootCmd = &cobra.Command{
		Use:   "fmtt",
		Short: "Transform text streams, with pizzazz!",
		Long: paragraph(
			fmt.Sprintf("\nRewrite and join text %s: input streams through in constant memory, no matter its size.", keyword("as it flows by")),
		),
		SilenceErrors: false,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
	}
)

// environmentConfig holds settings that are only reachable through the
// environment.
type environmentConfig struct {
	LogFile        string `env:"FMTT_LOGFILE"`
	HighlightColor string `env:"FMTT_HIGHLIGHT_COLOR" envDefault:"212"`
}

var envConfig environmentConfig

// source provides a readable text input.
type source struct {
	reader io.ReadCloser
	name   string
}

// sources resolves file arguments into readable inputs, falling back to
// stdin when no files are given.
func sources(args []string) ([]*source, error) {
	if len(args) == 0 {
		return []*source{{reader: os.Stdin, name: "stdin"}}, nil
	}

	srcs := make([]*source, 0, len(args))
	for _, arg := range args {
		src, err := sourceFromArg(arg)
		if err != nil {
			for _, s := range srcs {
				_ = s.reader.Close()
			}
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}

func sourceFromArg(arg string) (*source, error) {
	// from stdin
	if arg == "-" {
		return &source{reader: os.Stdin, name: "stdin"}, nil
	}

	path := expandPath(arg)
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", arg, err)
	}
	abs, _ := filepath.Abs(path)
	return &source{reader: r, name: abs}, nil
}

// expandPath expands tilde and all environment variables from the given path.
func expandPath(path string) string {
	s, err := homedir.Expand(path)
	if err == nil {
		return os.ExpandEnv(s)
	}
	return os.ExpandEnv(path)
}

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	width = viper.GetUint("width")
	highlight = viper.GetBool("highlight")

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	// Highlighting writes escape sequences; keep them out of pipes unless
	// explicitly requested.
	if !isTerminal && !cmd.Flags().Changed("highlight") {
		highlight = false
	}

	// Detect terminal width
	if isTerminal && width == 0 && !cmd.Flags().Changed("width") {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil {
			width = uint(w)
		}

		if width > 120 {
			width = 120
		}
	}
	if width == 0 {
		width = 80
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()

	if cfg, err := env.ParseAs[environmentConfig](); err == nil {
		envConfig = cfg
	} else {
		log.Warn("Could not parse environment configuration", "err", err)
	}

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().UintVarP(&width, "width", "w", 0, "word-wrap at width")

	// Config bindings
	_ = viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	viper.SetDefault("width", 0)

	rootCmd.AddCommand(replaceCmd, joinCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "fmtt")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "fmtt")}, dirs...)
	}

	if c := os.Getenv("FMTT_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("fmtt")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("fmtt")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
	}
}

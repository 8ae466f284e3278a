package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rohmanhakim/msgrender/internal/build"
	"github.com/rohmanhakim/msgrender/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile         string
	allowRawHTML    bool
	maxMessageLen   int
	maxNestingDepth int
	noCache         bool
	logPath         string
	listenAddr      string
	requestsPerMin  int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "msgrender [message]",
	Short: "Render a chat message to direction-aware HTML.",
	Long: `msgrender converts Markdown chat messages into HTML with explicit
direction markers around right-to-left script runs, so mixed Arabic/Latin
messages display in the correct visual order.

The message is taken from the arguments, or from stdin when no argument
is given. Output is a JSON object with "html" and "direction" fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		message, err := readMessage(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p := buildPipeline(cfg)
		rendered := p.Render(message)

		out, err := sonic.MarshalString(struct {
			HTML      string `json:"html"`
			Direction string `json:"direction"`
		}{
			HTML:      rendered.HTML(),
			Direction: rendered.Direction().String(),
		})
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// readMessage joins the args into one message, falling back to stdin.
func readMessage(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}
	return string(raw), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = build.FullVersion()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().BoolVar(&allowRawHTML, "allow-raw-html", false, "let literal HTML in messages pass through the renderer")
	rootCmd.PersistentFlags().IntVar(&maxMessageLen, "max-message-len", 0, "message size ceiling in bytes before direction wrapping is skipped (0 for default)")
	rootCmd.PersistentFlags().IntVar(&maxNestingDepth, "max-nesting-depth", 0, "element nesting ceiling for reconstruction (0 for default)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable the rendered-message cache")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "log file path (empty for stderr)")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", "", "listen address for the serve command")
	rootCmd.PersistentFlags().IntVar(&requestsPerMin, "rpm", 0, "per-client request ceiling per minute for the serve command (0 for default)")
}

// loadConfig builds the effective config from the config file when given,
// otherwise from defaults overridden by CLI flags.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	configBuilder := config.WithDefault()

	if allowRawHTML {
		configBuilder = configBuilder.WithAllowRawHTML(true)
	}
	if maxMessageLen > 0 {
		configBuilder = configBuilder.WithMaxMessageLen(maxMessageLen)
	}
	if maxNestingDepth > 0 {
		configBuilder = configBuilder.WithMaxNestingDepth(maxNestingDepth)
	}
	if noCache {
		configBuilder = configBuilder.WithCacheEnabled(false)
	}
	if logPath != "" {
		configBuilder = configBuilder.WithLogPath(logPath)
	}
	if listenAddr != "" {
		configBuilder = configBuilder.WithListenAddr(listenAddr)
	}
	if requestsPerMin > 0 {
		configBuilder = configBuilder.WithRequestsPerMinute(requestsPerMin)
	}

	return configBuilder.Build()
}

func ResetFlags() {
	cfgFile = ""
	allowRawHTML = false
	maxMessageLen = 0
	maxNestingDepth = 0
	noCache = false
	logPath = ""
	listenAddr = ""
	requestsPerMin = 0
}

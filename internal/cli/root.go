package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/engine"
	"github.com/outfitkit/outfitkit/internal/version"
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "outfitkit",
	Short: "Outfit colour analysis and matching",
	Long: `Outfitkit analyses clothing photos, names their dominant colours and
suggests what to wear them with.

Point it at a garment photo and it extracts the dominant colour with
k-means clustering, maps it to the nearest named colour, and produces
pairing suggestions from colour compatibility, harmony, seasonal and
style rules. Feed it several photos and it assembles a complete outfit.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.Bool("no-colour", false, "disable ANSI colour output")
	bindFlags(flags, "log-level", "verbose", "no-colour")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(outfitCmd)
	rootCmd.AddCommand(coloursCmd)
	rootCmd.AddCommand(statsCmd)
}

// bindFlags registers flags with viper so environment variables and any
// future config file can override their defaults.
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig wires environment variables into viper. OUTFITKIT_LOG_LEVEL
// overrides --log-level and so on for every bound flag.
func initConfig() {
	viper.SetEnvPrefix("outfitkit")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if viper.GetBool("no-colour") {
		colour.DisableColourOutput = true
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger builds the process logger from the configured log level.
func newLogger() hclog.Logger {
	level := hclog.LevelFromString(viper.GetString("log-level"))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	if viper.GetBool("verbose") && level > hclog.Debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "outfitkit",
		Level:  level,
		Output: os.Stderr,
		Color:  hclog.AutoColor,
	})
}

// newEngine builds an engine with an in-memory wardrobe for the current run.
func newEngine(algorithm string, colourCount int) (*engine.Engine, error) {
	cfg := colour.DefaultExtractorConfig()
	if algorithm != "" {
		cfg.Algorithm = colour.Algorithm(algorithm)
	}
	if colourCount > 0 {
		cfg.ColourCount = colourCount
	}
	eng, err := engine.New(engine.Config{
		Logger:    newLogger(),
		Store:     wardrobe.NewMemoryStore(),
		Extractor: cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise engine: %w", err)
	}
	return eng, nil
}

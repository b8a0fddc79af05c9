package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sharkinsspatial/stactools"
	_ "github.com/sharkinsspatial/stactools/backend/httpio"
	_ "github.com/sharkinsspatial/stactools/backend/memory"
	_ "github.com/sharkinsspatial/stactools/backend/oci"
	_ "github.com/sharkinsspatial/stactools/backend/s3"
)

var rootCmd = &cobra.Command{
	Use:   "stac",
	Short: "Href-addressed text I/O CLI",
	Long:  "CLI for reading and copying text content across storage backends (local, http, s3, oci).",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		stactools.UseBackendIO()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/stac/config.yaml)")
	rootCmd.PersistentFlags().StringArrayP("param", "p", nil, "backend open parameter as key=value (repeatable)")
	rootCmd.PersistentFlags().String("compression", "", "stream compression: gzip or zstd")
	rootCmd.PersistentFlags().IntP("jobs", "j", 4, "parallel transfers for multi-href commands")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.BindPFlag("compression", rootCmd.PersistentFlags().Lookup("compression"))
	viper.BindPFlag("jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("STAC")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stac")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "stac")
	}
	return ".stac"
}

// backendParams assembles open parameters from config and --param flags.
func backendParams() stactools.Params {
	params := stactools.Params{}

	for key, value := range viper.GetStringMapString("params") {
		params[key] = value
	}
	if alg := viper.GetString("compression"); alg != "" {
		params["compression"] = alg
	}

	raw, _ := rootCmd.PersistentFlags().GetStringArray("param")
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Warn("ignoring malformed --param, want key=value", "param", kv)
			continue
		}
		params[key] = value
	}
	return params
}

func getJobs() int {
	jobs := viper.GetInt("jobs")
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}

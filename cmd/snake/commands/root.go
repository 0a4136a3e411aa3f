package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake is a single player snake game for the terminal",
	Version:           version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error { return loadConfig(c) },
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	cfgFile string
	cfg     = config.Default()

	// Flag values, applied over the config file when set.
	logLevel    = cfg.LogLevel
	logFile     = ""
	backendName = cfg.Backend
	backendArgs = ""
	apiListen   = ""
	promEnable  = false
	promListen  = cfg.Prometheus.Listen
	tickMS      = cfg.TickMS
)

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&cfgFile, "config", "c", "", "yaml config file")
	f.StringVar(&logLevel, "log-level", logLevel, "log level, one of: [debug, info, warn, error]")
	f.StringVar(&logFile, "log-file", logFile, "file to write logs to, the terminal client defaults to ~/.snake/snake.log")
	f.StringVarP(&backendName, "backend", "b", backendName, "high score backend, as one of: [inmem, file, redis, postgres, sqlite]")
	f.StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	f.StringVar(&apiListen, "api-listen", apiListen, "serve the status api on this address, off when empty")
	f.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	f.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	f.IntVar(&tickMS, "tick-ms", tickMS, "milliseconds between snake moves")
}

// loadConfig reads the config file and lays the flags the user set on top.
func loadConfig(c *cobra.Command) error {
	flags := c.Flags()
	o := config.Overrides{}
	if flags.Changed("log-level") {
		o.LogLevel = &logLevel
	}
	if flags.Changed("log-file") {
		o.LogFile = &logFile
	}
	if flags.Changed("backend") {
		o.Backend = &backendName
	}
	if flags.Changed("backend-args") {
		o.BackendArgs = &backendArgs
	}
	if flags.Changed("api-listen") {
		o.APIListen = &apiListen
	}
	if flags.Changed("prometheus") {
		o.PrometheusEnabled = &promEnable
	}
	if flags.Changed("prometheus-listen") {
		o.PrometheusListen = &promListen
	}
	if flags.Changed("tick-ms") {
		o.TickMS = &tickMS
	}

	resolved, err := config.Resolve(cfgFile, o)
	if err != nil {
		return err
	}
	cfg = resolved

	level, _ := cfg.Level()
	log.SetLevel(level)
	return nil
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

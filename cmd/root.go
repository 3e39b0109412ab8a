/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/ctryrisk/internal/iofs"
	"github.com/gnames/ctryrisk/internal/iologger"
	app "github.com/gnames/ctryrisk/pkg"
	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

// getRootCmd returns the root command without subcommands.
func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "ctryrisk",
		Short:   "Ingests counterparty data and reports country risk",
		Long: `ctryrisk reads a table of counterparties, cleans it, classifies
countries by continent and stores the result in a relational database
(SQLite or PostgreSQL). Charts of expired reviews, active trade status
and ratings are built from the stored data.

Commands:
  - run: import the source and replace the stored tables
  - report: build charts from the stored tables

Configuration precedence (highest to lowest):
  1. CLI flags (--source, --db, etc.)
  2. Environment variables (CTRYRISK_*)
  3. Config file (~/.config/ctryrisk/config.yaml)
  4. Built-in defaults

Nested fields use underscores (database.path -> CTRYRISK_DATABASE_PATH).
Variables can also be kept in a .env file of the working directory.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "ctryrisk version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for ctryrisk")
	return res
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// .env is optional
	_ = godotenv.Load()

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureContinentsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(getRunCmd(), getReportCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("CTRYRISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Source configuration
	v.BindEnv("source.path", "CTRYRISK_SOURCE_PATH")
	v.BindEnv("source.delimiter", "CTRYRISK_SOURCE_DELIMITER")

	// Database configuration
	v.BindEnv("database.driver", "CTRYRISK_DATABASE_DRIVER")
	v.BindEnv("database.path", "CTRYRISK_DATABASE_PATH")
	v.BindEnv("database.host", "CTRYRISK_DATABASE_HOST")
	v.BindEnv("database.port", "CTRYRISK_DATABASE_PORT")
	v.BindEnv("database.user", "CTRYRISK_DATABASE_USER")
	v.BindEnv("database.password", "CTRYRISK_DATABASE_PASSWORD")
	v.BindEnv("database.database", "CTRYRISK_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "CTRYRISK_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "CTRYRISK_DATABASE_BATCH_SIZE")

	// Pipeline and report configuration
	v.BindEnv("pipeline.keep_singleton_ids", "CTRYRISK_PIPELINE_KEEP_SINGLETON_IDS")
	v.BindEnv("report.cutoff", "CTRYRISK_REPORT_CUTOFF")
	v.BindEnv("report.sink", "CTRYRISK_REPORT_SINK")

	// Log configuration
	v.BindEnv("log.level", "CTRYRISK_LOG_LEVEL")
	v.BindEnv("log.format", "CTRYRISK_LOG_FORMAT")
	v.BindEnv("log.destination", "CTRYRISK_LOG_DESTINATION")

	// General configuration
	v.BindEnv("with_progress", "CTRYRISK_WITH_PROGRESS")

	v.AutomaticEnv()
}

package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Wattsy2020/cpp-learning/internal/model"
)

// resetConfigBindings rebinds every flag-backed key to an unchanged flag
// carrying the built-in default once the test finishes.
func resetConfigBindings(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		flags := pflag.NewFlagSet("defaults", pflag.ContinueOnError)
		flags.String(modeFlagName, string(defaultMode), "")
		flags.Int(parallelFlagName, defaultParallel, "")
		flags.Bool(keepGoingFlagName, defaultKeepGoing, "")
		flags.String(reportFlagName, defaultReport, "")
		flags.String(logFlagName, defaultLogFilename, "")
		flags.Bool(verboseFlagName, defaultLogVerbose, "")

		bindings := map[string]string{
			modeConfigKey:      modeFlagName,
			parallelConfigKey:  parallelFlagName,
			keepGoingConfigKey: keepGoingFlagName,
			reportConfigKey:    reportFlagName,
			logFilenameKey:     logFlagName,
			logVerboseKey:      verboseFlagName,
		}
		for key, name := range bindings {
			require.NoError(t, viper.BindPFlag(key, flags.Lookup(name)))
		}
	})
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "ctestfmt", configBaseName)
	assert.Equal(t, "ctestfmt.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "mode", modeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "keep-going", keepGoingFlagName)
	assert.Equal(t, "report", reportFlagName)
	assert.Equal(t, "dry-run", dryRunFlagName)
	assert.Equal(t, "rewrite.mode", modeConfigKey)
	assert.Equal(t, "rewrite.parallel", parallelConfigKey)
	assert.Equal(t, "rewrite.keep_going", keepGoingConfigKey)
	assert.Equal(t, "rewrite.report", reportConfigKey)
	assert.Equal(t, m.MatchGreedy, defaultMode)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "CTESTFMT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, currentConfigVersion, viper.GetInt(configVersionKey))
	assert.Equal(t, defaultLogMaxSize, viper.GetInt(logMaxSizeKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
	assert.Equal(t, defaultLogMaxAge, viper.GetInt(logMaxAgeKey))
	assert.Equal(t, defaultLogCompress, viper.GetBool(logCompressKey))
	assert.Equal(t, defaultLogLevel, viper.GetString(logLevelKey))
}

func TestReadConfig_MissingFileIsIgnored(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, readConfig())
}

func TestReadConfig_MalformedFileIsReported(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("rewrite: [mode: balanced\n"), 0o644))

	err := readConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
	assert.Contains(t, err.Error(), configFileName)
	assert.Equal(t, string(defaultMode), viper.GetString(modeConfigKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error with spaces", "  error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_VerboseEnablesDebug(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "ctestfmt.log"), true)

	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

func TestConfigureLogger_DefaultsToInfo(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "ctestfmt.log"), false)

	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
}

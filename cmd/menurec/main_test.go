package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCommonFlags(t *testing.T) {
	flags := commonFlags()

	t.Run("db is required", func(t *testing.T) {
		var dbFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "db" {
				dbFlag = f
				break
			}
		}
		require.NotNil(t, dbFlag)
		assert.True(t, dbFlag.Required)
		assert.Contains(t, dbFlag.Aliases, "d")
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		var hostFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "embedding-host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})

	t.Run("embedding-model has default value", func(t *testing.T) {
		var modelFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "embedding-model" {
				modelFlag = f
				break
			}
		}
		require.NotNil(t, modelFlag)
		assert.Equal(t, "embeddinggemma", modelFlag.Value)
	})
}

func TestIngestCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "menurec",
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Action: ingestCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Required: true,
					},
				),
			},
		},
	}

	t.Run("missing db flag fails", func(t *testing.T) {
		err := app.Run([]string{"menurec", "ingest", "--catalog", "/tmp/catalog.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("missing catalog flag fails", func(t *testing.T) {
		err := app.Run([]string{"menurec", "ingest", "--db", "/tmp/test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog")
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

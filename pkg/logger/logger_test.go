package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sales-ledger/pkg/logger"
)

func TestNew_LevelFiltersAndJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Debug().Msg("oculto")
	log.Info().Int64("product_id", 7).Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "oculto")
	assert.Contains(t, out, `"product_id":7`)
	assert.Contains(t, out, `"message":"visible"`)
}

func TestNew_UnknownLevelDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Out: &buf})

	log.Info().Msg("info")
	log.Warn().Msg("warn")

	assert.NotContains(t, buf.String(), `"message":"info"`)
	assert.Contains(t, buf.String(), `"message":"warn"`)
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := logger.Nop()
	log.Error().Msg("nada")
	assert.NotNil(t, log)
}

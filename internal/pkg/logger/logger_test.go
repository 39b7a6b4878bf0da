package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Debug("não deve aparecer", nil)
	log.Info("requisição concluída", map[string]interface{}{"status": 200, "path": "/"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "requisição concluída", entry["msg"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "/", entry["path"])
}

func TestLogger_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "text")

	log.Error("falha no backend", errors.New("connection refused"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json").(*SlogLogger)

	code := -1
	log.exit = func(c int) { code = c }

	log.Fatal("configuração inválida", errors.New("CSRF_SECRET_KEY ausente"))

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "CSRF_SECRET_KEY ausente")
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("verbose"))
}

package tasks

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCommands = []models.BotCommand{
	{Command: "food", Description: "узнать про правильное питание"},
	{Command: "help", Description: "показать список команд"},
	{Command: "start", Description: "начать работу"},
	{Command: "train", Description: "получить тренировочный план"},
}

type commandsRecorder struct {
	mu    sync.Mutex
	calls int
	got   []models.BotCommand
	ok    bool
}

func (c *commandsRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !strings.HasSuffix(r.URL.Path, "/setMyCommands") {
		http.NotFound(w, r)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	_ = json.Unmarshal([]byte(r.FormValue("commands")), &c.got)
	if c.ok {
		_, _ = io.WriteString(w, `{"ok":true,"result":true}`)
		return
	}
	_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: commands are invalid"}`)
}

func newTestDeps(t *testing.T, h http.Handler) TaskDeps {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	b, err := bot.New("123456:test-token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	return TaskDeps{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Bot:      b,
		Commands: testCommands,
	}
}

func TestRegisterAllTasks(t *testing.T) {
	t.Parallel()

	registered := RegisterAllTasks(newTestDeps(t, &commandsRecorder{ok: true}))

	require.Len(t, registered, 1)
	assert.Contains(t, registered, CommandsSyncTask)
}

func TestCommandsSyncTask(t *testing.T) {
	t.Parallel()

	rec := &commandsRecorder{ok: true}
	task := RegisterAllTasks(newTestDeps(t, rec))[CommandsSyncTask]

	require.NoError(t, task(context.Background()))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, testCommands, rec.got)
}

func TestCommandsSyncTaskFailure(t *testing.T) {
	t.Parallel()

	rec := &commandsRecorder{ok: false}
	task := RegisterAllTasks(newTestDeps(t, rec))[CommandsSyncTask]

	err := task(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commands sync failed")
}

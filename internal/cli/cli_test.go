package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go_4_vocab_scan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	dbPath        string
	translatorURL string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		fmt.Fprintf(w, `{"responseData":{"translatedText":%q,"match":1},"responseStatus":200,"responseDetails":""}`, q+"-pl")
	}))
	t.Cleanup(srv.Close)
	return &cliEnv{
		dbPath:        filepath.Join(t.TempDir(), "vocab.db"),
		translatorURL: srv.URL,
	}
}

// run はコマンドを実行して標準出力を返す
func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{
		"--config", t.TempDir(),
		"--db-driver", "sqlite",
		"--db-url", e.dbPath,
		"--translator-url", e.translatorURL,
	}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_Flow(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date.")

	out, err = env.run(t, "user", "add", "cli-user", "--name", "Ola")
	require.NoError(t, err)
	assert.Equal(t, "User cli-user ready (0 words)\n", out)

	doc := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(doc, []byte("dog cat dog bird"), 0o600))

	out, err = env.run(t, "ingest", "file", "-u", "cli-user", doc)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt: 3 created, 0 merged, 0 untranslated\n", out)

	// 同じ文書をもう一度取り込むと既存単語にマージされる
	out, err = env.run(t, "ingest", "file", "-u", "cli-user", doc)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt: 0 created, 3 merged, 0 untranslated\n", out)

	out, err = env.run(t, "stats", "cli-user", "--json")
	require.NoError(t, err)
	var profile model.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, "cli-user", profile.UID)
	assert.Equal(t, "Ola", profile.Name)
	assert.EqualValues(t, 3, profile.WordsAmount)
	assert.EqualValues(t, 0, profile.TestsAmount)

	out, err = env.run(t, "stats", "cli-user")
	require.NoError(t, err)
	assert.Contains(t, out, "Words:       3")
	assert.Contains(t, out, "Recently learnt: 0")
}

func TestCLI_Errors(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run(t, "migrate")
	require.NoError(t, err)

	t.Run("異常系: 未登録ユーザーへの取り込み", func(t *testing.T) {
		doc := filepath.Join(t.TempDir(), "a.txt")
		require.NoError(t, os.WriteFile(doc, []byte("house tree"), 0o600))
		_, err := env.run(t, "ingest", "file", "-u", "ghost", doc)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("異常系: 未対応の形式", func(t *testing.T) {
		_, err := env.run(t, "user", "add", "u2")
		require.NoError(t, err)
		doc := filepath.Join(t.TempDir(), "scan.png")
		require.NoError(t, os.WriteFile(doc, []byte{0x89, 'P', 'N', 'G'}, 0o600))
		_, err = env.run(t, "ingest", "file", "-u", "u2", doc)
		assert.ErrorIs(t, err, model.ErrUnsupportedMedia)
	})

	t.Run("異常系: --user 未指定", func(t *testing.T) {
		_, err := env.run(t, "ingest", "url", "https://example.com")
		assert.Error(t, err)
	})

	t.Run("異常系: 存在しないユーザーの統計", func(t *testing.T) {
		_, err := env.run(t, "stats", "nobody")
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

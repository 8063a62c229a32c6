package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"whisperctl/internal/config"
)

type fakeWhisperServer struct {
	mu              sync.Mutex
	status          string
	progress        int
	transcribeCode  int
	resetCalls      int
	transcribeCalls int
	lastModel       string
}

func (f *fakeWhisperServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		status, progress := f.status, f.progress
		f.mu.Unlock()
		if status == "" {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":%q,"memory_usage_mb":256.5,"current_model":"base","progress":%d,"model_loaded":true,"timestamp":1}`, status, progress)
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"healthy","server_status":"Ready","memory_usage_mb":256.5,"timestamp":1}`)
	})
	mux.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.resetCalls++
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"message":"Server state reset successfully"}`)
	})
	mux.HandleFunc("/transcribe", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.transcribeCalls++
		f.lastModel = r.FormValue("model")
		code := f.transcribeCode
		f.mu.Unlock()
		if code != 0 {
			http.Error(w, `{"error":"unavailable"}`, code)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="speech_transcript.txt"`)
		fmt.Fprint(w, "hello from whisper")
	})
	return mux
}

type cliTestEnv struct {
	server      *fakeWhisperServer
	httpServer  *httptest.Server
	configPath  string
	downloadDir string
	baseDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv(config.ServerURLEnv, "")

	fake := &fakeWhisperServer{status: "Ready"}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	env := &cliTestEnv{
		server:      fake,
		httpServer:  srv,
		configPath:  filepath.Join(base, "whisperctl.toml"),
		downloadDir: filepath.Join(base, "downloads"),
		baseDir:     base,
	}
	writeTestConfig(t, env.configPath, srv.URL, env.downloadDir, filepath.Join(base, "logs"))
	return env
}

func writeTestConfig(t *testing.T, path, serverURL, downloadDir, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[server]\nbase_url = %q\n\n[ui]\nnotification_ms = 5000\n\n[paths]\ndownload_dir = %q\nlog_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		serverURL,
		downloadDir,
		logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", want, output)
	}
}

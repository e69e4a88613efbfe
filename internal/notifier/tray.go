package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

var ErrTrayNotRunning = errors.New("lifeboost-tray is not running")

// WebhookPayload is the JSON body the tray app accepts.
type WebhookPayload struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	DurationMs uint32 `json:"duration_ms"`
}

// Tray posts notifications to the desktop tray companion. The tray advertises
// itself through a lockfile holding "port|pid|secret"; the pid is checked
// against the running process table before anything is sent.
type Tray struct {
	client *http.Client
}

func NewTray() *Tray {
	return &Tray{client: &http.Client{Timeout: 3 * time.Second}}
}

func (t *Tray) Notify(kind models.NotificationKind, message string) {
	if err := t.Send(kind, message); err != nil {
		logger.Debug("tray notification failed", "kind", kind, "error", err)
	}
}

// Send delivers one notification and reports why it could not.
func (t *Tray) Send(kind models.NotificationKind, message string) error {
	dir, err := TrayConfigDir()
	if err != nil {
		return err
	}
	port, secret, err := readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	return t.post(port, secret, WebhookPayload{
		Title:      kind.Title(),
		Text:       message,
		Kind:       string(kind),
		DurationMs: constants.NotificationDurationMs,
	})
}

// TrayConfigDir returns where the tray app keeps its lockfile. The tray's
// settings.json may point it somewhere else.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if json.Unmarshal(data, &store) == nil && store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
		return *store.Settings.LockfileDir, nil
	}
	return dir, nil
}

func readLockfile(path string) (string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}
	port, pidStr, secret := parts[0], parts[1], parts[2]

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}
	return port, secret, nil
}

func (t *Tray) post(port, secret string, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, "http://127.0.0.1:"+port, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lifeboost-Secret", secret)

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(msg))
}

package discord

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"soundbridge/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IPC opcodes
const (
	opHandshake = 0
	opFrame     = 1
	opClose     = 2
)

// maxFrameSize bounds a single response frame; presence acks are tiny
const maxFrameSize = 64 * 1024

// IPC is the presence connection to the local Discord client over its
// unix-socket IPC. It keeps the last pushed Activity as the snapshot the
// orchestrator's fast path reads, and owns the auto-clear timer.
type IPC struct {
	logger   *zap.Logger
	clientID string

	mu         sync.Mutex
	conn       net.Conn
	connected  bool
	last       *domain.Activity
	clearTimer *time.Timer
}

// NewIPC creates a presence connection for the given application client id.
// It does not connect; call Connect from the daemon lifecycle.
func NewIPC(logger *zap.Logger, clientID string) *IPC {
	return &IPC{
		logger:   logger,
		clientID: clientID,
	}
}

// Connect dials the local Discord IPC socket and performs the handshake.
// Safe to call again after a failure; an existing connection is kept.
func (c *IPC) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	conn, err := dialSocket(ctx)
	if err != nil {
		return fmt.Errorf("discord ipc dial failed: %w", err)
	}

	handshake := map[string]any{"v": 1, "client_id": c.clientID}
	if err := writeFrame(conn, opHandshake, handshake); err != nil {
		conn.Close()
		return fmt.Errorf("discord ipc handshake failed: %w", err)
	}
	if _, _, err := readFrame(conn); err != nil {
		conn.Close()
		return fmt.Errorf("discord ipc handshake response failed: %w", err)
	}

	c.conn = conn
	c.connected = true
	c.logger.Info("discord ipc connected", zap.String("clientID", c.clientID))
	return nil
}

// Close tears down the connection and cancels any scheduled clear
func (c *IPC) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
	if c.conn == nil {
		return nil
	}

	_ = writeFrame(c.conn, opClose, map[string]any{})
	err := c.conn.Close()
	c.conn = nil
	c.connected = false
	c.last = nil
	c.logger.Info("discord ipc closed")
	return err
}

// Status reports whether the connection is established
func (c *IPC) Status() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Activity returns a copy of the last pushed payload, or nil
func (c *IPC) Activity() *domain.Activity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return nil
	}
	snapshot := *c.last
	return &snapshot
}

// SetActivity pushes the payload over IPC and records it as the snapshot
func (c *IPC) SetActivity(ctx context.Context, act *domain.Activity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.send(act); err != nil {
		return err
	}

	snapshot := *act
	c.last = &snapshot
	return nil
}

// SetActivityTimeout schedules a fire-and-forget clear of the presence at the
// given epoch second, replacing any earlier schedule. The clear's own failure
// is only logged; nobody awaits it.
func (c *IPC) SetActivityTimeout(epochSeconds int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clearTimer != nil {
		c.clearTimer.Stop()
	}

	delay := time.Until(time.Unix(epochSeconds, 0))
	if delay < 0 {
		delay = 0
	}

	c.clearTimer = time.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.connected {
			return
		}
		if err := c.send(nil); err != nil {
			c.logger.Warn("failed to clear activity", zap.Error(err))
			return
		}
		c.last = nil
		c.logger.Debug("activity cleared after track end")
	})

	c.logger.Debug("activity clear scheduled", zap.Int64("at", epochSeconds))
}

// send writes a SET_ACTIVITY frame and reads the ack. A nil activity clears
// the presence. Callers hold c.mu.
func (c *IPC) send(act *domain.Activity) error {
	if !c.connected || c.conn == nil {
		return domain.ErrNotConnected
	}

	payload := map[string]any{
		"cmd":   "SET_ACTIVITY",
		"nonce": uuid.NewString(),
		"args": map[string]any{
			"pid":      os.Getpid(),
			"activity": encodeActivity(act),
		},
	}

	if err := writeFrame(c.conn, opFrame, payload); err != nil {
		c.dropConnection()
		return fmt.Errorf("activity push failed: %w", err)
	}
	if _, _, err := readFrame(c.conn); err != nil {
		c.dropConnection()
		return fmt.Errorf("activity ack failed: %w", err)
	}
	return nil
}

// dropConnection marks the transport dead after an IO failure so subsequent
// updates fail fast with NotConnected until a reconnect. Callers hold c.mu.
func (c *IPC) dropConnection() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn = nil
	c.connected = false
	c.logger.Warn("discord ipc connection lost")
}

// encodeActivity maps the domain payload onto the IPC activity shape
func encodeActivity(act *domain.Activity) map[string]any {
	if act == nil {
		return nil
	}

	buttons := make([]map[string]any, 0, len(act.Buttons))
	for _, b := range act.Buttons {
		buttons = append(buttons, map[string]any{"label": b.Label, "url": b.URL})
	}

	return map[string]any{
		"details": act.Details,
		"state":   act.State,
		"timestamps": map[string]any{
			"start": act.StartTimestamp,
			"end":   act.EndTimestamp,
		},
		"assets": map[string]any{
			"large_image": act.LargeImageKey,
			"large_text":  act.LargeImageText,
			"small_image": act.SmallImageKey,
			"small_text":  act.SmallImageText,
		},
		"buttons": buttons,
	}
}

// dialSocket tries the ten well-known IPC socket paths in order
func dialSocket(ctx context.Context) (net.Conn, error) {
	base := os.Getenv("XDG_RUNTIME_DIR")
	if base == "" {
		base = os.TempDir()
	}

	var dialer net.Dialer
	var lastErr error
	for i := 0; i < 10; i++ {
		path := filepath.Join(base, fmt.Sprintf("discord-ipc-%d", i))
		conn, err := dialer.DialContext(ctx, "unix", path)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no ipc socket found: %w", lastErr)
}

// writeFrame encodes payload as JSON behind the 8-byte little-endian
// opcode/length header
func writeFrame(conn net.Conn, opcode uint32, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], opcode)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(body)))

	if _, err := conn.Write(header); err != nil {
		return err
	}
	_, err = conn.Write(body)
	return err
}

// readFrame reads one opcode/length-framed JSON message
func readFrame(conn net.Conn) (uint32, []byte, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(conn, header); err != nil {
		return 0, nil, err
	}

	opcode := binary.LittleEndian.Uint32(header[0:4])
	length := binary.LittleEndian.Uint32(header[4:8])
	if length > maxFrameSize {
		return 0, nil, fmt.Errorf("ipc frame too large: %d bytes", length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(conn, body); err != nil {
		return 0, nil, err
	}
	return opcode, body, nil
}

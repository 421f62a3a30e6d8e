package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/username/goviet-ime/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from Fcitx5. It
// adapts the bridge's (keysym, modifiers, preedit-string) contract onto the
// core's diff-based Engine.OnKey, tracking the preedit string itself since
// the bridge still wants GetPreedit() rather than a backspace/chars pair.
type InputEngine struct {
	engine  *engine.Engine
	preedit []rune
	logger  *log.Logger
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{
		engine: engine.New(),
		logger: logger,
	}
}

// ProcessKey handles key events from Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state)
// Output: handled (was key consumed), commitText (text to commit), preeditText (composition)
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	key, caps, ctrl, shift := translateKeysym(keysym, modifiers)
	res := e.engine.OnKey(key, caps, ctrl, shift)

	handled := res.Action == engine.ActionSend
	commitText := ""

	if handled {
		keep := len(e.preedit) - int(res.Backspace)
		if keep < 0 {
			keep = 0
		}
		e.preedit = append(append([]rune{}, e.preedit[:keep]...), res.Chars...)

		// A terminator's own character (or ESC's revert) was already folded
		// into res.Chars above; once that happens the result belongs to the
		// document, not the live preedit, so it is reported as a commit and
		// the tracked preedit resets.
		if res.Flags&engine.FlagKeyConsumed != 0 {
			commitText = string(e.preedit)
			e.preedit = e.preedit[:0]
		}
	}

	if e.logger != nil {
		e.logger.Printf("Type: 0x%-8x Mods: 0x%-2x | Preedit: %-15q | Commit: %-15q | Handled: %v",
			keysym, modifiers, string(e.preedit), commitText, handled)
	}

	return handled, commitText, string(e.preedit), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Clear()
	e.preedit = e.preedit[:0]
	fmt.Println(">>> [GoViet] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	fmt.Printf(">>> [GoViet] Engine enabled: %v\n", enabled)
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return string(e.preedit), nil
}

func main() {
	// 1. Connect to Session Bus
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	// 2. Register Service Name
	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	// 3. Setup Logging
	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	// 4. Create and export the engine
	inputEngine := NewInputEngine(logger)

	err = conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	// 5. Print startup banner
	fmt.Println("================================================")
	fmt.Println("âœ… GoViet-IME Backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Input Method: Telex\n")
	fmt.Printf("  Output Format: Unicode\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	// 6. Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [GoViet] Shutting down...")
}

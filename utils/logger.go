package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	logFile    *os.File
	logger     *log.Logger
	mu         sync.Mutex
	clients    = make(map[*websocket.Conn]bool)
	clientsMux sync.Mutex
)

const maxLogSize = 10 * 1024 * 1024

// InitLogger opens logs/app.log and starts the rotation check. Log lines go
// to stdout, the file and every connected WebSocket client.
func InitLogger() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return nil
	}

	if err := openLogFile(); err != nil {
		return err
	}

	go checkLogRotation()

	return nil
}

// openLogFile opens logs/app.log and points the logger at it. The caller must
// hold mu.
func openLogFile() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "app.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	logFile = file
	mw := io.MultiWriter(os.Stdout, file)
	logger = log.New(mw, "", 0)

	return nil
}

// writeLine prints one line through the logger, initializing it lazily. The
// logger is read and written under mu so rotation never exposes a nil logger.
func writeLine(line string) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		if err := openLogFile(); err != nil {
			return
		}
		go checkLogRotation()
	}
	logger.Println(line)
}

// LogError records an error line.
func LogError(message string, err error) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	errMsg := fmt.Sprintf("[%s] [ERROR] %s", timestamp, message)
	if err != nil {
		errMsg += fmt.Sprintf(": %v", err)
	}
	writeLine(errMsg)
	BroadcastLog(errMsg)
}

// LogInfo records an informational line.
func LogInfo(message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] [INFO] %s", timestamp, message)
	writeLine(logMessage)
	BroadcastLog(logMessage)
}

func checkLogRotation() {
	for {
		time.Sleep(time.Hour)
		if needRotation() {
			rotateLog()
		}
	}
}

func needRotation() bool {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return false
	}

	info, err := logFile.Stat()
	if err != nil {
		return false
	}

	return info.Size() > maxLogSize
}

// rotateLog renames the current file away and reopens a fresh one in the same
// critical section, so the logger stays valid for concurrent writers.
func rotateLog() {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}

	logFile.Close()

	oldPath := filepath.Join("logs", "app.log")
	newPath := filepath.Join("logs", fmt.Sprintf("app.%s.log",
		time.Now().Format("20060102150405")))

	os.Rename(oldPath, newPath)

	openLogFile()
}

// BroadcastLog pushes a log line to every connected WebSocket client,
// dropping clients whose connection has gone away.
func BroadcastLog(message string) {
	clientsMux.Lock()
	defer clientsMux.Unlock()

	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}

// AddClient registers a WebSocket client for log broadcasts.
func AddClient(conn *websocket.Conn) {
	clientsMux.Lock()
	clients[conn] = true
	clientsMux.Unlock()
}

// RemoveClient unregisters a WebSocket client.
func RemoveClient(conn *websocket.Conn) {
	clientsMux.Lock()
	delete(clients, conn)
	clientsMux.Unlock()
}

// Builder compila o cliente em bin/. CGO é obrigatório: raylib e o driver SQLite são C.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

func main() {
	start := time.Now()

	output := filepath.Join("bin", "virtuaracing")
	ldflags := "-s -w"
	if runtime.GOOS == "windows" {
		output += ".exe"
		ldflags += " -H=windowsgui"
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		fatal(err)
	}

	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", output, "./cliente")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fatal(fmt.Errorf("falha ao compilar o cliente: %w", err))
	}

	fmt.Printf("%s compilado em %v\n", output, time.Since(start).Round(time.Millisecond))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[ERRO] %v\n", err)
	os.Exit(1)
}

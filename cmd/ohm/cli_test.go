package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/hpungsan/ohm/internal/config"
	"github.com/hpungsan/ohm/internal/logbook"
)

// setupTestLog creates an in-memory logbook and default config for testing.
func setupTestLog(t *testing.T) (*logbook.Logbook, *config.Config) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return logbook.New(fs, "/ohm_log.txt"), config.DefaultConfig("/")
}

func TestCLIApp_DefaultActionRunsMenu(t *testing.T) {
	log, cfg := setupTestLog(t)

	in := strings.NewReader("7\n")
	var out bytes.Buffer
	app := newCLIApp(in, &out, log, cfg)

	if err := app.Run([]string{"ohm"}); err != nil {
		t.Fatalf("app.Run() error: %v", err)
	}

	if !strings.Contains(out.String(), "====== EEE Helper CLI ======") {
		t.Errorf("expected menu banner, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Errorf("expected quit message, got:\n%s", out.String())
	}
}

func TestCLIApp_UnknownCommand(t *testing.T) {
	log, cfg := setupTestLog(t)

	var out bytes.Buffer
	app := newCLIApp(strings.NewReader(""), &out, log, cfg)

	err := app.Run([]string{"ohm", "frobnicate"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error should name the command, got: %v", err)
	}
}

func TestCLIApp_LogCommandEmpty(t *testing.T) {
	log, cfg := setupTestLog(t)

	var out bytes.Buffer
	app := newCLIApp(strings.NewReader(""), &out, log, cfg)

	if err := app.Run([]string{"ohm", "log"}); err != nil {
		t.Fatalf("app.Run() error: %v", err)
	}

	if !strings.Contains(out.String(), "No saved calculations yet.") {
		t.Errorf("expected empty-log message, got:\n%s", out.String())
	}
}

func TestCLIApp_LogCommandAfterCalculation(t *testing.T) {
	log, cfg := setupTestLog(t)

	// A calculation through the menu, then the log subcommand.
	var menuOut bytes.Buffer
	app := newCLIApp(strings.NewReader("5\n1\n12\n0.5\nb\n7\n"), &menuOut, log, cfg)
	if err := app.Run([]string{"ohm"}); err != nil {
		t.Fatalf("menu run error: %v", err)
	}

	var logOut bytes.Buffer
	app = newCLIApp(strings.NewReader(""), &logOut, log, cfg)
	if err := app.Run([]string{"ohm", "log"}); err != nil {
		t.Fatalf("log run error: %v", err)
	}

	want := "Power: V=12.000000 V, I=0.500000 A -> P=6.000000 W"
	if !strings.Contains(logOut.String(), want) {
		t.Errorf("expected log line %q, got:\n%s", want, logOut.String())
	}
}

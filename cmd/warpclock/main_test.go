package main

import (
	"os"
	"testing"
)

func TestApplyColorMode_Truecolor(t *testing.T) {
	t.Setenv("COLORTERM", "")
	t.Setenv("TCELL_TRUECOLOR", "disable")

	applyColorMode("truecolor")
	if got := os.Getenv("COLORTERM"); got != "truecolor" {
		t.Errorf("Expected COLORTERM=truecolor, got %q", got)
	}
	if _, set := os.LookupEnv("TCELL_TRUECOLOR"); set {
		t.Error("Expected TCELL_TRUECOLOR cleared when forcing truecolor")
	}
}

func TestApplyColorMode_256(t *testing.T) {
	t.Setenv("TCELL_TRUECOLOR", "")

	applyColorMode("256")
	if got := os.Getenv("TCELL_TRUECOLOR"); got != "disable" {
		t.Errorf("Expected TCELL_TRUECOLOR=disable, got %q", got)
	}
}

func TestApplyColorMode_AutoLeavesEnvAlone(t *testing.T) {
	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TCELL_TRUECOLOR", "")

	applyColorMode("auto")
	if got := os.Getenv("COLORTERM"); got != "truecolor" {
		t.Errorf("Expected COLORTERM untouched, got %q", got)
	}
	if got := os.Getenv("TCELL_TRUECOLOR"); got != "" {
		t.Errorf("Expected TCELL_TRUECOLOR untouched, got %q", got)
	}
}

// ABOUTME: Tests for the whoami command
// ABOUTME: Verifies session display and logged-out handling

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunWhoami_NotLoggedIn(t *testing.T) {
	useTempState(t)

	var buf bytes.Buffer
	code := runWhoami(&buf)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not logged in.") {
		t.Errorf("expected not-logged-in message, got: %s", buf.String())
	}
}

func TestRunWhoami_LoggedIn(t *testing.T) {
	dir := useTempState(t)
	seedSession(t, dir, staffProfile())

	var buf bytes.Buffer
	code := runWhoami(&buf)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "Ada Lovelace") {
		t.Error("expected full name in output")
	}
	if !strings.Contains(out, "staff") {
		t.Error("expected role in output")
	}
	if !strings.Contains(out, "agency-1") {
		t.Error("expected agency id in output")
	}
}

func TestRunWhoami_JSON(t *testing.T) {
	dir := useTempState(t)
	seedSession(t, dir, staffProfile())

	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	code := runWhoami(&buf)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	user, ok := parsed["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in JSON output")
	}
	if user["email"] != "staff@coastal.example" {
		t.Errorf("expected email in JSON, got %v", user["email"])
	}
}

// ABOUTME: Build constraint file to pin TUI dependencies in go.mod.
// ABOUTME: Keeps the Charm libraries resolvable for editor tooling.

//go:build tools

package tools

import (
	_ "github.com/charmbracelet/bubbles"
	_ "github.com/charmbracelet/bubbletea"
	_ "github.com/charmbracelet/huh"
	_ "github.com/charmbracelet/lipgloss"
)

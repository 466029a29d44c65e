package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles resolves file-based review prompts into their inline
// fields. Inline values win over files so a config file can override a
// shared prompt file locally.
func (c *Config) loadPromptsFromFiles() error {
	if c.AI.CustomPrompts.SystemPrompt == "" && c.AI.CustomPrompts.SystemPromptFile != "" {
		content, err := loadPromptFromFile(c.AI.CustomPrompts.SystemPromptFile, "system")
		if err != nil {
			return err
		}
		c.AI.CustomPrompts.SystemPrompt = content
	}

	if c.AI.CustomPrompts.UserPrompt == "" && c.AI.CustomPrompts.UserPromptFile != "" {
		content, err := loadPromptFromFile(c.AI.CustomPrompts.UserPromptFile, "user")
		if err != nil {
			return err
		}
		c.AI.CustomPrompts.UserPrompt = content
	}

	return nil
}

// loadPromptFromFile reads and validates a prompt file.
func loadPromptFromFile(filePath, promptType string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s prompt file '%s': %w", promptType, filePath, err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s prompt file not found: %s", promptType, absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s prompt file '%s': %w", promptType, absPath, err)
	}

	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return "", fmt.Errorf("%s prompt file '%s' is empty", promptType, absPath)
	}

	return trimmed, nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPromptsFromFiles(t *testing.T) {
	tempDir := t.TempDir()

	systemPromptContent := "Test system prompt for reviewing"
	userPromptContent := "Test user prompt template: %s and %s"

	systemPromptFile := filepath.Join(tempDir, "system.review.md")
	userPromptFile := filepath.Join(tempDir, "user.review.md")

	if err := os.WriteFile(systemPromptFile, []byte(systemPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test system prompt file: %v", err)
	}
	if err := os.WriteFile(userPromptFile, []byte(userPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test user prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				SystemPromptFile: systemPromptFile,
				UserPromptFile:   userPromptFile,
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	if config.AI.CustomPrompts.SystemPrompt != systemPromptContent {
		t.Errorf("Expected loaded system prompt content '%s', got '%s'",
			systemPromptContent, config.AI.CustomPrompts.SystemPrompt)
	}
	if config.AI.CustomPrompts.UserPrompt != userPromptContent {
		t.Errorf("Expected loaded user prompt content '%s', got '%s'",
			userPromptContent, config.AI.CustomPrompts.UserPrompt)
	}

	// File paths stay in place next to the resolved content
	if config.AI.CustomPrompts.SystemPromptFile != systemPromptFile {
		t.Error("Expected system prompt file path to be preserved")
	}
}

func TestLoadPromptsInlineWinsOverFile(t *testing.T) {
	tempDir := t.TempDir()

	promptFile := filepath.Join(tempDir, "system.md")
	if err := os.WriteFile(promptFile, []byte("file content"), 0600); err != nil {
		t.Fatalf("Failed to create prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				SystemPrompt:     "inline content",
				SystemPromptFile: promptFile,
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts: %v", err)
	}

	if config.AI.CustomPrompts.SystemPrompt != "inline content" {
		t.Errorf("Inline prompt must win over file, got '%s'", config.AI.CustomPrompts.SystemPrompt)
	}
}

func TestLoadPromptFromFileErrors(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := loadPromptFromFile(filepath.Join(tempDir, "missing.md"), "system")
		if err == nil {
			t.Fatal("Expected error for missing prompt file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("Expected not-found error, got: %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		emptyFile := filepath.Join(tempDir, "empty.md")
		if err := os.WriteFile(emptyFile, []byte("   \n\t\n"), 0600); err != nil {
			t.Fatalf("Failed to create empty file: %v", err)
		}

		_, err := loadPromptFromFile(emptyFile, "user")
		if err == nil {
			t.Fatal("Expected error for empty prompt file")
		}
		if !strings.Contains(err.Error(), "is empty") {
			t.Errorf("Expected empty-file error, got: %v", err)
		}
	})

	t.Run("content is trimmed", func(t *testing.T) {
		file := filepath.Join(tempDir, "padded.md")
		if err := os.WriteFile(file, []byte("\n  prompt text  \n\n"), 0600); err != nil {
			t.Fatalf("Failed to create prompt file: %v", err)
		}

		content, err := loadPromptFromFile(file, "system")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if content != "prompt text" {
			t.Errorf("Expected trimmed content 'prompt text', got '%s'", content)
		}
	})
}

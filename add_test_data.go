//go:build ignore
// +build ignore

// Helper script to add sample tasks to a store
// Run with: go run add_test_data.go [path]

package main

import (
	"context"
	"log"
	"os"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	location := cfg.DatabasePath
	if len(os.Args) > 1 {
		location = os.Args[1]
	}

	a, err := app.Open(ctx, location)
	if err != nil {
		log.Fatalf("Failed to open task store: %v", err)
	}
	defer a.Close()

	samples := []struct {
		description string
		done        bool
	}{
		{"Buy milk", true},
		{"Pay bills", false},
		{"Book dentist appointment", false},
		{"Renew library card", true},
		{"Water the plants", false},
	}

	for _, s := range samples {
		task, err := a.TaskService.AddTask(ctx, s.description)
		if err != nil {
			log.Fatalf("Failed to add %q: %v", s.description, err)
		}
		if s.done {
			if _, err := a.TaskService.MarkCompleted(ctx, task.ID); err != nil {
				log.Fatalf("Failed to complete %q: %v", s.description, err)
			}
		}
		log.Printf("Added task %d: %s", task.ID, s.description)
	}
}

// Package domain holds reminder ports
package domain

import "context"

// SenderPort delivers one reminder message to a chat
type SenderPort interface {
	Send(ctx context.Context, chatID, message string) error
}

// WorkerPort runs the reminder loop
type WorkerPort interface {
	Run(ctx context.Context) error
	Sweep(ctx context.Context) (int, error)
}

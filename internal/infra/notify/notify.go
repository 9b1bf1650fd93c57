// Package notify hands notifications produced by request handlers to the
// configured sink once the originating transaction has committed.
package notify

import (
	"sync"

	"commission-app/database"
	"commission-app/internal/domain/notifications"
)

var (
	mu   sync.RWMutex
	sink notifications.Sink
)

// Use replaces the sink. Passing nil restores the database sink.
func Use(s notifications.Sink) {
	mu.Lock()
	defer mu.Unlock()
	sink = s
}

func current() notifications.Sink {
	mu.RLock()
	defer mu.RUnlock()
	if sink != nil {
		return sink
	}
	return notifications.DBSink{DB: database.DB}
}

func Send(ns ...notifications.Notification) {
	s := current()
	for _, n := range ns {
		if n.UserID == 0 {
			continue
		}
		s.Notify(n)
	}
}

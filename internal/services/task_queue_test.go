package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestTaskTypeNotification_Constant(t *testing.T) {
	if TaskTypeNotification != "notification:deliver" {
		t.Errorf("TaskTypeNotification = %q, expected %q", TaskTypeNotification, "notification:deliver")
	}
}

func TestNotificationTask_Structure(t *testing.T) {
	task := NotificationTask{
		UserID:    7,
		Type:      "decision",
		Title:     "Your change was approved",
		Message:   "Approved editor change to \"Chapter One\"",
		ProjectID: 3,
	}

	if task.UserID != 7 {
		t.Errorf("UserID = %d, expected 7", task.UserID)
	}
	if task.Type != "decision" {
		t.Errorf("Type = %q, expected %q", task.Type, "decision")
	}
	if task.Title != "Your change was approved" {
		t.Errorf("Title = %q, expected %q", task.Title, "Your change was approved")
	}
	if task.ProjectID != 3 {
		t.Errorf("ProjectID = %d, expected 3", task.ProjectID)
	}
}

func TestSyncQueue_New(t *testing.T) {
	queue := NewSyncQueue()
	if queue == nil {
		t.Error("NewSyncQueue should not return nil")
	}
}

func TestSyncQueue_IsAsync(t *testing.T) {
	queue := NewSyncQueue()
	if queue.IsAsync() {
		t.Error("SyncQueue.IsAsync() should return false")
	}
}

func TestSyncQueue_Close(t *testing.T) {
	queue := NewSyncQueue()
	err := queue.Close()
	if err != nil {
		t.Errorf("SyncQueue.Close() should return nil, got %v", err)
	}
}

func TestSyncQueue_EnqueueWithoutProcessor(t *testing.T) {
	queue := NewSyncQueue()
	task := &NotificationTask{
		UserID: 1,
		Type:   "decision",
	}

	err := queue.Enqueue(task)
	if err != nil {
		t.Errorf("Enqueue without processor should not error, got %v", err)
	}
}

func TestSyncQueue_ProcessorReceivesTask(t *testing.T) {
	queue := NewSyncQueue()

	var mu sync.Mutex
	var got *NotificationTask
	done := make(chan struct{})

	queue.SetProcessor(func(ctx context.Context, task *NotificationTask) error {
		mu.Lock()
		got = task
		mu.Unlock()
		close(done)
		return nil
	})

	if err := queue.Enqueue(&NotificationTask{UserID: 9, Type: "decision"}); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processor was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if got == nil || got.UserID != 9 {
		t.Error("processor should receive the enqueued task")
	}
}

func TestAsyncQueue_IsAsync(t *testing.T) {
	queue := &AsyncQueue{}
	if !queue.IsAsync() {
		t.Error("AsyncQueue.IsAsync() should return true")
	}
}

package session

import (
	"testing"
	"time"
)

func TestChatAppendKeepsOrder(t *testing.T) {
	var log ChatLog
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		if _, err := log.Append(RolePatient, text, base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("append %q: %v", text, err)
		}
	}

	msgs := log.Messages()
	for i, text := range texts {
		if msgs[i].Text != text {
			t.Fatalf("position %d holds %q, want %q", i, msgs[i].Text, text)
		}
	}
}

func TestChatAppendAssignsUniqueIDs(t *testing.T) {
	var log ChatLog
	now := time.Now()

	a, _ := log.Append(RolePatient, "one", now)
	b, _ := log.Append(RolePatient, "two", now)

	if a.ID == "" || b.ID == "" {
		t.Fatal("messages must get IDs")
	}
	if a.ID == b.ID {
		t.Fatalf("both messages got ID %q", a.ID)
	}
}

func TestChatRejectsBlankText(t *testing.T) {
	var log ChatLog
	now := time.Now()

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := log.Append(RolePatient, text, now); err == nil {
			t.Errorf("append(%q) must fail", text)
		}
	}
	if log.Len() != 0 {
		t.Fatalf("rejected sends left %d messages in the log", log.Len())
	}
}

func TestChatTimestampsNeverRegress(t *testing.T) {
	var log ChatLog
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	first, _ := log.Append(RolePractitioner, "one", base)
	// Clock stepped backwards; timestamp must clamp to the previous one.
	second, _ := log.Append(RolePatient, "two", base.Add(-time.Minute))
	third, _ := log.Append(RolePatient, "three", base.Add(time.Second))

	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("second message at %v predates first at %v", second.CreatedAt, first.CreatedAt)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("clamped timestamp = %v, want %v", second.CreatedAt, first.CreatedAt)
	}
	if third.CreatedAt.Before(second.CreatedAt) {
		t.Fatalf("third message at %v predates second at %v", third.CreatedAt, second.CreatedAt)
	}
}

func TestChatMessagesReturnsCopy(t *testing.T) {
	var log ChatLog
	log.Append(RolePatient, "original", time.Now())

	msgs := log.Messages()
	msgs[0].Text = "tampered"

	if log.Messages()[0].Text != "original" {
		t.Fatal("caller mutation leaked into the log")
	}
}

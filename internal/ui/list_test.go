package ui

import (
	"testing"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

func TestMatchesListFilters(t *testing.T) {
	pendingTask := todotxt.New("Feed the horse @stable +care")
	doneTask := todotxt.New("x 2025-04-01 Polish the armor @workshop")

	tests := []struct {
		name       string
		task       *todotxt.Task
		showAll    bool
		doneOnly   bool
		contextTag string
		projectTag string
		want       bool
	}{
		{name: "pending shown by default", task: pendingTask, want: true},
		{name: "done hidden by default", task: doneTask, want: false},
		{name: "done shown with all", task: doneTask, showAll: true, want: true},
		{name: "done shown with done flag", task: doneTask, doneOnly: true, want: true},
		{name: "pending hidden with done flag", task: pendingTask, doneOnly: true, want: false},
		{name: "context match", task: pendingTask, contextTag: "@stable", want: true},
		{name: "context match bare word", task: pendingTask, contextTag: "stable", want: true},
		{name: "context mismatch", task: pendingTask, contextTag: "@home", want: false},
		{name: "project match", task: pendingTask, projectTag: "+care", want: true},
		{name: "project mismatch", task: pendingTask, projectTag: "+armor", want: false},
		{name: "both tags must match", task: pendingTask, contextTag: "@stable", projectTag: "+armor", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesListFilters(tt.task, tt.showAll, tt.doneOnly, tt.contextTag, tt.projectTag)
			if got != tt.want {
				t.Errorf("matchesListFilters = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	tags := []string{"@home", "@phone"}

	if !hasTag(tags, "@home", "@") {
		t.Error("expected @home to match")
	}
	if !hasTag(tags, "phone", "@") {
		t.Error("expected bare word phone to match @phone")
	}
	if hasTag(tags, "@work", "@") {
		t.Error("did not expect @work to match")
	}
	if hasTag(nil, "@home", "@") {
		t.Error("did not expect a match against no tags")
	}
}

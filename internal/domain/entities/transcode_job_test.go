package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	consts "media-service/pkg/constants"
)

func TestTranscodeJobTransitions(t *testing.T) {
	tests := []struct {
		from string
		to   string
		ok   bool
	}{
		{consts.JobStatusSubmitted, consts.JobStatusProcessing, true},
		{consts.JobStatusSubmitted, consts.JobStatusCancelled, true},
		{consts.JobStatusSubmitted, consts.JobStatusFailed, true},
		{consts.JobStatusSubmitted, consts.JobStatusCompleted, false},
		{consts.JobStatusProcessing, consts.JobStatusCompleted, true},
		{consts.JobStatusProcessing, consts.JobStatusFailed, true},
		{consts.JobStatusProcessing, consts.JobStatusCancelled, true},
		{consts.JobStatusProcessing, consts.JobStatusSubmitted, false},
		{consts.JobStatusCompleted, consts.JobStatusCancelled, false},
		{consts.JobStatusFailed, consts.JobStatusProcessing, false},
		{consts.JobStatusCancelled, consts.JobStatusCompleted, false},
	}

	for _, tt := range tests {
		job := &TranscodeJob{Status: tt.from}
		assert.Equal(t, tt.ok, job.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTranscodeJobIsTerminal(t *testing.T) {
	for _, status := range []string{consts.JobStatusCompleted, consts.JobStatusFailed, consts.JobStatusCancelled} {
		job := &TranscodeJob{Status: status}
		assert.True(t, job.IsTerminal(), status)
	}
	for _, status := range []string{consts.JobStatusSubmitted, consts.JobStatusProcessing} {
		job := &TranscodeJob{Status: status}
		assert.False(t, job.IsTerminal(), status)
	}
}

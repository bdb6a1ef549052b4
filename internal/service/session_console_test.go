// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/mock"
	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sequenceID struct{ n int }

func (s *sequenceID) Generate() string {
	s.n++
	return "entry-" + strconv.Itoa(s.n)
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestConsoleSvc(t *testing.T, ctrl *gomock.Controller) (*consoleSession, *mock.MockInvoker) {
	t.Helper()
	mockInvoker := mock.NewMockInvoker(ctrl)
	svc := NewConsoleSession(mockInvoker, &sequenceID{}, logger.Nop()).(*consoleSession)
	svc.now = func() time.Time { return fixedNow }
	return svc, mockInvoker
}

type entry struct {
	kind models.EntryKind
	text string
}

func entries(transcript []models.TranscriptEntry) []entry {
	out := make([]entry, 0, len(transcript))
	for _, e := range transcript {
		out = append(out, entry{kind: e.Kind, text: e.Text})
	}
	return out
}

func TestConsoleSession_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	mockInvoker.EXPECT().RunOnce(gomock.Any(), "echo hi").
		Return(models.CommandResult{Success: true, Output: "hi"})

	require.NoError(t, svc.Submit(context.Background(), "  echo hi "))

	transcript := svc.Transcript()
	assert.Equal(t, []entry{
		{models.EntryCommand, "> echo hi"},
		{models.EntryOutput, "hi"},
	}, entries(transcript))
	assert.Equal(t, "entry-1", transcript[0].ID)
	assert.Equal(t, "entry-2", transcript[1].ID)
	assert.Equal(t, fixedNow, transcript[0].Timestamp)
	assert.False(t, svc.Executing())
}

func TestConsoleSession_Submit_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	mockInvoker.EXPECT().RunOnce(gomock.Any(), "false").
		Return(models.CommandResult{Success: false, Output: "partial", Error: "exit status 1"})

	require.NoError(t, svc.Submit(context.Background(), "false"))
	assert.Equal(t, []entry{
		{models.EntryCommand, "> false"},
		{models.EntryOutput, "partial"},
		{models.EntryError, "exit status 1"},
	}, entries(svc.Transcript()))
}

func TestConsoleSession_Submit_FailureWithoutMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	mockInvoker.EXPECT().RunOnce(gomock.Any(), gomock.Any()).Return(models.CommandResult{Success: false})

	require.NoError(t, svc.Submit(context.Background(), "quiet"))
	assert.Equal(t, []entry{{models.EntryCommand, "> quiet"}}, entries(svc.Transcript()))
}

func TestConsoleSession_Submit_BlankIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConsoleSvc(t, ctrl)

	assert.ErrorIs(t, svc.Submit(context.Background(), "   "), ErrEmptyCommand)
	assert.Empty(t, svc.Transcript())
}

func TestConsoleSession_SubmitInteractive_EchoesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	mockInvoker.EXPECT().RunInteractive(gomock.Any(), "login", []string{"alex", "secret"}).
		Return(models.CommandResult{Success: true, Output: "welcome"})

	require.NoError(t, svc.SubmitInteractive(context.Background(), "login", []string{"alex", " ", "", "secret"}))
	assert.Equal(t, []entry{
		{models.EntryCommand, "> login"},
		{models.EntryStdin, "[input 1] alex"},
		{models.EntryStdin, "[input 2] secret"},
		{models.EntryOutput, "welcome"},
	}, entries(svc.Transcript()))
}

func TestConsoleSession_SubmitInteractive_NoInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	mockInvoker.EXPECT().RunInteractive(gomock.Any(), "cat", []string{}).
		Return(models.CommandResult{Success: true, Output: "command finished"})

	require.NoError(t, svc.SubmitInteractive(context.Background(), "cat", nil))
	assert.Len(t, svc.Transcript(), 2)
}

func TestConsoleSession_RejectsWhileExecuting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	entered := make(chan struct{})
	release := make(chan struct{})

	mockInvoker.EXPECT().RunOnce(gomock.Any(), "sleep 1").DoAndReturn(
		func(context.Context, string) models.CommandResult {
			close(entered)
			<-release
			return models.CommandResult{Success: true, Output: "slept"}
		},
	)

	done := make(chan error, 1)
	go func() { done <- svc.Submit(context.Background(), "sleep 1") }()

	<-entered
	assert.True(t, svc.Executing())
	assert.ErrorIs(t, svc.Submit(context.Background(), "echo again"), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, svc.Transcript(), 2)
}

func TestConsoleSession_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInvoker := newTestConsoleSvc(t, ctrl)
	mockInvoker.EXPECT().RunOnce(gomock.Any(), gomock.Any()).Return(models.CommandResult{Success: true, Output: "x"})

	require.NoError(t, svc.Submit(context.Background(), "echo x"))
	require.NotEmpty(t, svc.Transcript())

	svc.Clear()
	assert.Empty(t, svc.Transcript())
}

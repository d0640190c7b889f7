package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/tonebot/internal/audio"
	"github.com/KirkDiggler/tonebot/internal/common/clock"
	"github.com/KirkDiggler/tonebot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/tonebot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/tonebot/internal/models"
	"github.com/KirkDiggler/tonebot/internal/voice"
	voiceMocks "github.com/KirkDiggler/tonebot/internal/voice/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockBackend *voiceMocks.MockBackend
	mockConn    *voiceMocks.MockConnection
	mockClock   *mocks.MockClock
	mockTimer   *mocks.MockTimer
	mockUUID    *uuidMocks.MockUUID
	svc         *service
	ctx         context.Context

	// Test data
	testTime       time.Time
	testGuildID    string
	testChannelID  string
	testSessionID  string
	testSource     audio.Source
	autoDisconnect time.Duration
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBackend = voiceMocks.NewMockBackend(s.mockCtrl)
	s.mockConn = voiceMocks.NewMockConnection(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockTimer = mocks.NewMockTimer(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testSessionID = "test-session-id"
	s.testSource = &audio.SilenceSource{Duration: time.Second}
	s.autoDisconnect = 10 * time.Second

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Backend:             s.mockBackend,
		DefaultSource:       s.testSource,
		AutoDisconnectAfter: s.autoDisconnect,
		Clock:               s.mockClock,
		UUIDGenerator:       s.mockUUID,
		Logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// join registers a connected session through the mocked backend
func (s *SessionServiceTestSuite) join(guildID, channelID, sessionID string, conn voice.Connection) *models.Session {
	s.mockUUID.EXPECT().NewUUID().Return(sessionID)
	s.mockBackend.EXPECT().Join(gomock.Any(), guildID, channelID).Return(conn, nil)

	out, err := s.svc.Join(s.ctx, &JoinInput{GuildID: guildID, ChannelID: channelID})
	s.Require().NoError(err)
	s.Require().False(out.AlreadyJoined)
	return out.Session
}

// play starts playback and returns the captured auto-disconnect callback
func (s *SessionServiceTestSuite) play(guildID string, conn *voiceMocks.MockConnection) func() {
	var fire func()
	conn.EXPECT().Play(gomock.Any(), s.testSource).Return(nil)
	s.mockClock.EXPECT().AfterFunc(s.autoDisconnect, gomock.Any()).
		DoAndReturn(func(d time.Duration, f func()) clock.Timer {
			fire = f
			return s.mockTimer
		})

	_, err := s.svc.Play(s.ctx, &PlayInput{GuildID: guildID})
	s.Require().NoError(err)
	s.Require().NotNil(fire)
	return fire
}

func (s *SessionServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilBackend)

	_, err = New(&Config{Backend: s.mockBackend, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Backend: s.mockBackend, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	svc, err := New(&Config{Backend: s.mockBackend, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)
	s.Equal(DefaultAutoDisconnectAfter, svc.autoDisconnectAfter)
	s.Equal(DefaultShutdownConcurrency, svc.shutdownConcurrency)
}

func (s *SessionServiceTestSuite) TestJoin_HappyPath() {
	sess := s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)

	s.Equal(&models.Session{
		ID:        s.testSessionID,
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		State:     models.SessionStateConnected,
		JoinedAt:  s.testTime,
	}, sess)

	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(sess, out.Session)
}

func (s *SessionServiceTestSuite) TestJoin_InvalidInput() {
	_, err := s.svc.Join(s.ctx, &JoinInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.svc.Join(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *SessionServiceTestSuite) TestJoin_SameChannelReturnsExisting() {
	first := s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)

	out, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.True(out.AlreadyJoined)
	s.Equal(first, out.Session)
}

func (s *SessionServiceTestSuite) TestJoin_DifferentChannelRejected() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)

	_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: "other-channel-id"})
	s.ErrorIs(err, ErrAlreadyConnected)

	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(s.testChannelID, out.Session.ChannelID)
}

func (s *SessionServiceTestSuite) TestJoin_BackendFailureLeavesNoSession() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockBackend.EXPECT().Join(gomock.Any(), s.testGuildID, s.testChannelID).
		Return(nil, errors.New("voice handshake timed out"))

	_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrJoinFailed)

	_, err = s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)

	// the guild is free for a fresh attempt
	sess := s.join(s.testGuildID, s.testChannelID, "second-session-id", s.mockConn)
	s.Equal("second-session-id", sess.ID)
}

func (s *SessionServiceTestSuite) TestJoin_BackendNotReady() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockBackend.EXPECT().Join(gomock.Any(), s.testGuildID, s.testChannelID).
		Return(nil, fmt.Errorf("dial: %w", voice.ErrNotReady))

	_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrBackendUnavailable)
	s.ErrorIs(err, voice.ErrNotReady)
	s.Empty(s.svc.GetAllSessions(s.ctx))
}

func (s *SessionServiceTestSuite) TestJoin_ConcurrentCallsShareOneConnection() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockBackend.EXPECT().Join(gomock.Any(), s.testGuildID, s.testChannelID).
		DoAndReturn(func(ctx context.Context, guildID, channelID string) (voice.Connection, error) {
			time.Sleep(20 * time.Millisecond)
			return s.mockConn, nil
		}).Times(1)

	const callers = 10
	outputs := make([]*JoinOutput, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
		}(i)
	}
	wg.Wait()

	fresh := 0
	for i := 0; i < callers; i++ {
		s.Require().NoError(errs[i])
		s.Equal(s.testSessionID, outputs[i].Session.ID)
		if !outputs[i].AlreadyJoined {
			fresh++
		}
	}
	s.Equal(1, fresh)
	s.Len(s.svc.GetAllSessions(s.ctx), 1)
}

func (s *SessionServiceTestSuite) TestJoinRemove_ConcurrentKeepsOneSession() {
	var inFlight, maxInFlight atomic.Int32
	track := func() {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
	}

	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID).AnyTimes()
	s.mockBackend.EXPECT().Join(gomock.Any(), s.testGuildID, s.testChannelID).
		DoAndReturn(func(ctx context.Context, guildID, channelID string) (voice.Connection, error) {
			track()
			return s.mockConn, nil
		}).AnyTimes()
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).
		DoAndReturn(func(ctx context.Context, guildID string) error {
			track()
			return nil
		}).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
		}()
	}
	wg.Wait()

	s.LessOrEqual(len(s.svc.GetAllSessions(s.ctx)), 1)
	s.Equal(int32(1), maxInFlight.Load())
	s.Equal(0, s.svc.locks.len())
}

func (s *SessionServiceTestSuite) TestJoin_ReadsDoNotWaitOnConnectingGuild() {
	release := make(chan struct{})
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockBackend.EXPECT().Join(gomock.Any(), s.testGuildID, s.testChannelID).
		DoAndReturn(func(ctx context.Context, guildID, channelID string) (voice.Connection, error) {
			<-release
			return s.mockConn, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
		done <- err
	}()

	s.Eventually(func() bool {
		out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
		return err == nil && out.Session.State == models.SessionStateConnecting
	}, time.Second, 5*time.Millisecond)

	active, err := s.svc.IsActive(s.ctx, &IsActiveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(active.Active)

	// mutations on the same guild wait, bounded by their context
	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()
	_, err = s.svc.Remove(ctx, &RemoveInput{GuildID: s.testGuildID})
	s.ErrorIs(err, context.DeadlineExceeded)

	close(release)
	s.Require().NoError(<-done)

	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(models.SessionStateConnected, out.Session.State)
}

func (s *SessionServiceTestSuite) TestJoin_RefusedAfterShutdown() {
	s.svc.ShutdownAll(s.ctx)

	_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrShuttingDown)
}

func (s *SessionServiceTestSuite) TestJoin_RacingShutdownLeavesNoSession() {
	entered := make(chan struct{})
	resume := make(chan struct{})

	// hold Join after its first draining check and before the insert
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		close(entered)
		<-resume
		return s.testSessionID
	})
	s.mockBackend.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	errCh := make(chan error, 1)
	go func() {
		_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: s.testGuildID, ChannelID: s.testChannelID})
		errCh <- err
	}()

	<-entered
	s.svc.ShutdownAll(s.ctx)
	close(resume)

	s.ErrorIs(<-errCh, ErrShuttingDown)
	s.Empty(s.svc.GetAllSessions(s.ctx))
	s.Equal(0, s.svc.locks.len())
}

func (s *SessionServiceTestSuite) TestPlay_HappyPath() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	s.mockConn.EXPECT().Play(gomock.Any(), s.testSource).Return(nil)
	s.mockClock.EXPECT().AfterFunc(s.autoDisconnect, gomock.Any()).Return(s.mockTimer)

	out, err := s.svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	deadline := s.testTime.Add(s.autoDisconnect)
	s.Equal(models.SessionStatePlaying, out.Session.State)
	s.Equal(&deadline, out.Session.AutoDisconnectAt)
	s.Equal("silence", out.Session.Source)
}

func (s *SessionServiceTestSuite) TestPlay_SessionNotFound() {
	_, err := s.svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestPlay_AlreadyPlaying() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	s.play(s.testGuildID, s.mockConn)

	_, err := s.svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrInvalidSessionState)
}

func (s *SessionServiceTestSuite) TestPlay_SourceFailureKeepsConnection() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	s.mockConn.EXPECT().Play(gomock.Any(), s.testSource).Return(errors.New("ffmpeg not found"))

	_, err := s.svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSourceUnavailable)

	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(models.SessionStateConnected, out.Session.State)
	s.Nil(out.Session.AutoDisconnectAt)
}

func (s *SessionServiceTestSuite) TestPlay_NoSourceConfigured() {
	svc, err := New(&Config{Backend: s.mockBackend, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)

	_, err = svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSourceUnavailable)
}

func (s *SessionServiceTestSuite) TestAutoDisconnect_RemovesSession() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	fire := s.play(s.testGuildID, s.mockConn)

	s.mockTimer.EXPECT().Stop().Return(false)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(nil)

	fire()

	_, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestAutoDisconnect_LateTimerSparesReplacement() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	fire := s.play(s.testGuildID, s.mockConn)

	s.mockTimer.EXPECT().Stop().Return(false)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(nil)
	_, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	replacementConn := voiceMocks.NewMockConnection(s.mockCtrl)
	replacement := s.join(s.testGuildID, s.testChannelID, "replacement-session-id", replacementConn)

	// no backend expectation: the stale callback must not touch the new session
	fire()

	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(replacement, out.Session)
}

func (s *SessionServiceTestSuite) TestAutoDisconnect_AfterManualRemoveIsNoop() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	fire := s.play(s.testGuildID, s.mockConn)

	// the timer was already on its way when the user disconnected
	s.mockTimer.EXPECT().Stop().Return(false)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(nil).Times(1)

	out, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(out.Removed)

	fire()

	s.Empty(s.svc.GetAllSessions(s.ctx))
}

func (s *SessionServiceTestSuite) TestAutoDisconnect_AfterShutdownIsNoop() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	fire := s.play(s.testGuildID, s.mockConn)

	s.mockTimer.EXPECT().Stop().Return(true)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(nil).Times(1)

	s.svc.ShutdownAll(s.ctx)
	s.Empty(s.svc.GetAllSessions(s.ctx))

	fire()
}

func (s *SessionServiceTestSuite) TestRemove_StopsPendingTimer() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	s.play(s.testGuildID, s.mockConn)

	s.mockTimer.EXPECT().Stop().Return(true)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(nil)

	out, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.Empty(s.svc.GetAllSessions(s.ctx))
}

func (s *SessionServiceTestSuite) TestRemove_AbsentSucceeds() {
	out, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(out.Removed)
}

func (s *SessionServiceTestSuite) TestRemove_Twice() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(nil).Times(1)

	first, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(first.Removed)

	second, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(second.Removed)
}

func (s *SessionServiceTestSuite) TestRemove_BackendErrorStillDropsSession() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)
	s.mockBackend.EXPECT().Remove(gomock.Any(), s.testGuildID).Return(voice.ErrConnectionClosed)

	out, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID})
	s.ErrorIs(err, voice.ErrConnectionClosed)
	s.True(out.Removed)

	_, err = s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestRemove_MismatchedSessionID() {
	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)

	out, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID, SessionID: "someone-else"})
	s.Require().NoError(err)
	s.False(out.Removed)
	s.Len(s.svc.GetAllSessions(s.ctx), 1)
}

func (s *SessionServiceTestSuite) TestGetSession_NotFound() {
	_, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestGetAllSessions_SortedCopies() {
	s.join("guild-b", s.testChannelID, "session-b", s.mockConn)
	s.join("guild-a", s.testChannelID, "session-a", voiceMocks.NewMockConnection(s.mockCtrl))

	sessions := s.svc.GetAllSessions(s.ctx)
	s.Require().Len(sessions, 2)
	s.Equal("guild-a", sessions[0].GuildID)
	s.Equal("guild-b", sessions[1].GuildID)

	sessions[0].State = models.SessionStateTerminated

	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{GuildID: "guild-a"})
	s.Require().NoError(err)
	s.Equal(models.SessionStateConnected, out.Session.State)
}

func (s *SessionServiceTestSuite) TestIsActive() {
	_, err := s.svc.IsActive(s.ctx, &IsActiveInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)

	s.join(s.testGuildID, s.testChannelID, s.testSessionID, s.mockConn)

	s.mockConn.EXPECT().Active(gomock.Any()).Return(true, nil)
	out, err := s.svc.IsActive(s.ctx, &IsActiveInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(out.Active)

	s.mockConn.EXPECT().Active(gomock.Any()).Return(false, voice.ErrConnectionClosed)
	_, err = s.svc.IsActive(s.ctx, &IsActiveInput{GuildID: s.testGuildID})
	s.ErrorIs(err, voice.ErrConnectionClosed)
}

func (s *SessionServiceTestSuite) TestShutdownAll_RemovesEverySession() {
	s.join("guild-1", s.testChannelID, "session-1", s.mockConn)
	s.join("guild-2", s.testChannelID, "session-2", voiceMocks.NewMockConnection(s.mockCtrl))

	s.mockBackend.EXPECT().Remove(gomock.Any(), "guild-1").Return(errors.New("gateway closed"))
	s.mockBackend.EXPECT().Remove(gomock.Any(), "guild-2").Return(nil)

	s.svc.ShutdownAll(s.ctx)

	s.Empty(s.svc.GetAllSessions(s.ctx))

	_, err := s.svc.Join(s.ctx, &JoinInput{GuildID: "guild-3", ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrShuttingDown)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

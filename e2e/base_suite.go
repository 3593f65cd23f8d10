package e2e

import (
	"chat-sync/auth"
	"chat-sync/client"
	"chat-sync/infrastructure/blob"
	"chat-sync/infrastructure/docstore"
	"chat-sync/repositories"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const pollInterval = 20 * time.Millisecond

// BaseSessionSuite runs full sessions against an on-disk backend.
// The backend can be closed and reopened to check what survives a restart.
type BaseSessionSuite struct {
	suite.Suite
	Config   Config
	log      *slog.Logger
	dir      string
	db       *badger.DB
	blobs    *blob.LocalStore
	sessions []*client.Session
}

// SetupSuite loads the environment configuration and opens the backend
func (s *BaseSessionSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.log = logs.GetLoggerFromString(s.Config.LogLevel)
	s.dir = s.Config.DataDir
	if s.dir == "" {
		s.dir = s.T().TempDir()
	}
	s.OpenBackend()
}

func (s *BaseSessionSuite) TearDownSuite() {
	s.CloseBackend()
}

// Step prints a colorized header so scenario logs read like a script
func (s *BaseSessionSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *BaseSessionSuite) OpenBackend() {
	db, err := badger.Open(badger.DefaultOptions(filepath.Join(s.dir, "badger")).WithLogger(nil))
	s.Require().NoError(err, "Failed to open badger in "+s.dir)
	blobs, err := blob.NewLocalStore(filepath.Join(s.dir, "blobs"))
	s.Require().NoError(err)
	s.db, s.blobs = db, blobs
}

// CloseBackend stops every running session before closing the database
func (s *BaseSessionSuite) CloseBackend() {
	for _, session := range s.sessions {
		session.Shutdown()
	}
	s.sessions = nil
	if s.db != nil {
		s.Require().NoError(s.db.Close())
		s.db = nil
	}
}

// StartSession plays the role of one device connected to the backend
func (s *BaseSessionSuite) StartSession() *client.Session {
	session := client.Start(context.Background(), client.Dependencies{
		Log:             s.log,
		Store:           docstore.NewStore(s.db, s.log),
		Credentials:     repositories.NewCredentialRepository(s.db),
		Blobs:           s.blobs,
		Tokens:          auth.NewTokenManager(s.Config.JwtSecret, time.Hour),
		BufferSize:      16,
		RestartInterval: 100 * time.Millisecond,
	})
	s.sessions = append(s.sessions, session)
	return session
}

func (s *BaseSessionSuite) WaitFor(condition func() bool, msg string) {
	s.Require().Eventually(condition, s.Config.Timeout, pollInterval, msg)
}

// NextEvent waits for the next one-shot message of session
func (s *BaseSessionSuite) NextEvent(session *client.Session) string {
	var msg string
	s.WaitFor(func() bool {
		m, ok := session.View().LastEvent.Consume()
		msg = m
		return ok
	}, "no event published")
	return msg
}

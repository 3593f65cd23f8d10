package internal

import (
	"fmt"
	"time"
)

const minTokenSecretLength = 16

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	InMemory          bool          `env:"IN_MEMORY,default=false"`
	BlobBasePath      string        `env:"BLOB_BASE_PATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	BufferSize        int           `env:"BUFFER_SIZE,required=true"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	AuthTokenSecret   string        `env:"AUTH_TOKEN_SECRET,required=true"`
	MaxAvatarSize     int64         `env:"MAX_AVATAR_SIZE,default=5242880"`
}

// Validate checks the values go-env can not express with tags.
func (c Config) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE must be positive, got %d", c.BufferSize)
	}
	if c.RestartInterval <= 0 {
		return fmt.Errorf("RESTART_INTERVAL must be positive, got %s", c.RestartInterval)
	}
	if c.AuthTokenDuration <= 0 {
		return fmt.Errorf("AUTH_TOKEN_DURATION must be positive, got %s", c.AuthTokenDuration)
	}
	if len(c.AuthTokenSecret) < minTokenSecretLength {
		return fmt.Errorf("AUTH_TOKEN_SECRET must be at least %d characters", minTokenSecretLength)
	}
	return nil
}

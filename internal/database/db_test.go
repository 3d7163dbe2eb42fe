package database

import (
	"context"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_MySQLDSN(t *testing.T) {
	dsn, err := Config{Host: "db", Port: "3306", User: "forum", Pass: "secret", Name: "forumapi", TimeZone: "Asia/Jakarta"}.DSN()
	require.NoError(t, err)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "forum", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "forumapi", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "Asia/Jakarta", parsed.Loc.String())

	_, err = Config{TimeZone: "Mars/Olympus"}.DSN()
	assert.ErrorContains(t, err, "invalid time zone")
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{
			name: "mysql",
			cfg:  Config{Driver: DriverMySQL, Host: "localhost", Port: "3306", User: "forum", Pass: "secret", Name: "forumapi"},
			want: "forum:secret@tcp(localhost:3306)/forumapi?parseTime=true",
		},
		{
			name: "postgres",
			cfg:  Config{Driver: DriverPostgres, Host: "localhost", Port: "5432", User: "forum", Pass: "secret", Name: "forumapi"},
			want: "host=localhost user=forum password=secret dbname=forumapi port=5432 sslmode=disable TimeZone=UTC",
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "sqlite"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.DSN()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpen_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, Config{
		Driver:        DriverMySQL,
		Host:          "127.0.0.1",
		Port:          "1",
		MaxRetry:      3,
		RetryInterval: time.Hour,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

package config_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/duacyd/analitica/config"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOpenDBUnconfiguredReturnsNil(t *testing.T) {
	t.Parallel()

	db := config.OpenDB(config.DatabaseConfig{}, testLogger())

	assert.Nil(t, db)
}

func TestOpenDBUnreachableStoreFallsBackToDemoMode(t *testing.T) {
	t.Parallel()

	// Port 1 is never listening locally, so the startup ping fails and
	// the portal keeps running against the demo identity.
	db := config.OpenDB(config.DatabaseConfig{
		Host:    "127.0.0.1",
		Port:    "1",
		User:    "analitica",
		Name:    "portal",
		SSLMode: "disable",
	}, testLogger())

	assert.Nil(t, db)
}

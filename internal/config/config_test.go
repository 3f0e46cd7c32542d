// File: internal/config/config_test.go
package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "scrollsnap", cfg.Logger().ServiceName)
	assert.Equal(t, "green", cfg.Logger().Colors.Info)
	assert.True(t, cfg.Browser().Headless)
	assert.Equal(t, ViewportConfig{Width: 1280, Height: 800}, cfg.Browser().Viewport)
	assert.Equal(t, 60*time.Second, cfg.Browser().NavigationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Browser().ScriptTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Browser().PostLoadWait)
	assert.Equal(t, 2.0, cfg.Snap().ScrollFuzz)
	assert.True(t, cfg.Snap().ExcludeOffAxis)
	assert.Equal(t, "smooth", cfg.Snap().Behavior)
}

func TestSetters(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetSnapBehavior("instant")
	cfg.SetSnapExcludeOffAxis(false)

	assert.Equal(t, "instant", cfg.Snap().Behavior)
	assert.False(t, cfg.Snap().ExcludeOffAxis)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("Core Validation", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.NoError(t, cfg.Validate(), "A valid config should not produce a validation error")

		badViewport := *cfg
		badViewport.BrowserCfg.Viewport.Width = 0
		err := badViewport.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "browser.viewport width and height must be positive integers")

		badNav := *cfg
		badNav.BrowserCfg.NavigationTimeout = 0
		err = badNav.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "browser.navigation_timeout must be a positive duration")

		badScript := *cfg
		badScript.BrowserCfg.ScriptTimeout = -time.Second
		assert.Error(t, badScript.Validate())

		badWait := *cfg
		badWait.BrowserCfg.PostLoadWait = -time.Second
		assert.Error(t, badWait.Validate())
	})

	t.Run("Snap Validation", func(t *testing.T) {
		valid := SnapConfig{ScrollFuzz: 2, Behavior: "Smooth"}
		assert.NoError(t, valid.Validate())

		negative := valid
		negative.ScrollFuzz = -1
		err := negative.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "scroll_fuzz cannot be negative")

		unknown := valid
		unknown.Behavior = "teleport"
		err = unknown.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "teleport")
	})
}

// -- Loading Tests --

func TestNewConfigFromViper_YAML(t *testing.T) {
	yamlConfig := []byte(`
logger:
  level: debug
  log_file: ~/logs/scrollsnap.log
browser:
  headless: false
  args: ["disable-dev-shm-usage", "window-size=800,600"]
  viewport:
    width: 390
    height: 844
  navigation_timeout: 15s
snap:
  scroll_fuzz: 0.5
  behavior: instant
`)
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlConfig)))

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger().Level)
	assert.Equal(t, home+"/logs/scrollsnap.log", cfg.Logger().LogFile)
	assert.Equal(t, "console", cfg.Logger().Format, "unset keys keep their defaults")
	assert.False(t, cfg.Browser().Headless)
	assert.Equal(t, []string{"disable-dev-shm-usage", "window-size=800,600"}, cfg.Browser().Args)
	assert.Equal(t, ViewportConfig{Width: 390, Height: 844}, cfg.Browser().Viewport)
	assert.Equal(t, 15*time.Second, cfg.Browser().NavigationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Browser().ScriptTimeout)
	assert.Equal(t, 0.5, cfg.Snap().ScrollFuzz)
	assert.Equal(t, "instant", cfg.Snap().Behavior)
	assert.True(t, cfg.Snap().ExcludeOffAxis)
}

func TestNewConfigFromViper_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("snap.behavior", "bounce")

	_, err := NewConfigFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

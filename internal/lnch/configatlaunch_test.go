//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltm-tools/AssignTopics/internal/mm"
	"github.com/ltm-tools/AssignTopics/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	cfg := BuildDefaultConfig()

	assert.Equal(t, vv.SERVEDFROMHOST, cfg.HostIP)
	assert.Equal(t, vv.SERVEDFROMPORT, cfg.HostPort)
	assert.Equal(t, vv.DEFAULTGOLOGLEVEL, cfg.LogLevel)
	assert.False(t, cfg.Serve)
	assert.False(t, cfg.Chart)
	assert.Empty(t, cfg.ModelFile)
}

func TestParseCommandLineNeedsThreeArguments(t *testing.T) {
	msgr := mm.NewMessageMakerWithDefaults()

	for _, args := range [][]string{
		{},
		{"model.json"},
		{"model.json", "docs.arff"},
		{"-ch", "model.json", "docs.arff"},
	} {
		cfg := BuildDefaultConfig()
		err := ParseCommandLine(cfg, args, msgr)
		assert.Error(t, err, "%v", args)
		// a usage error binds nothing
		assert.Empty(t, cfg.ModelFile)
		assert.Empty(t, cfg.OutputName)
	}
}

func TestParseCommandLineBindsFlagsAndPositionals(t *testing.T) {
	msgr := mm.NewMessageMakerWithDefaults()
	cfg := BuildDefaultConfig()

	err := ParseCommandLine(cfg, []string{"-ch", "-gl", "3", "-sa", "0.0.0.0", "model.json", "docs.arff", "out"}, msgr)
	require.NoError(t, err)

	assert.Equal(t, "model.json", cfg.ModelFile)
	assert.Equal(t, "docs.arff", cfg.DataFile)
	assert.Equal(t, "out", cfg.OutputName)
	assert.True(t, cfg.Chart)
	assert.Equal(t, 3, cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.HostIP)
	assert.False(t, cfg.Serve)
}

func TestUpdateMessageMakerWithConfig(t *testing.T) {
	msgr := mm.NewMessageMakerWithDefaults()
	cfg := BuildDefaultConfig()
	cfg.BlackAndWhite = true
	cfg.LogLevel = 4

	UpdateMessageMakerWithConfig(msgr, cfg)

	assert.True(t, msgr.BW)
	assert.Equal(t, 4, msgr.LLvl)
}

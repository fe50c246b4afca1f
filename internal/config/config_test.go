package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := configPath(t)

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Plugins, cfg.Plugins)
	assert.Equal(t, def.QuestionsPerSet, cfg.QuestionsPerSet)
	assert.Equal(t, def.OptionsPerQuestion, cfg.OptionsPerQuestion)
	assert.Equal(t, def.Syllabus, cfg.Syllabus)
}

func TestLoadMintsAndPersistsProfileID(t *testing.T) {
	path := configPath(t)

	cfg, err := Load(path)
	require.NoError(t, err)
	_, err = uuid.Parse(cfg.ProfileID)
	assert.NoError(t, err, "minted profile id should be a uuid")

	// A second load reads the persisted id back instead of minting anew.
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.ProfileID, again.ProfileID)
}

func TestLoadExistingFile(t *testing.T) {
	path := configPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{
		"plugins": ["reading"],
		"questions_per_set": 5,
		"options_per_question": 3,
		"syllabus": "builtin",
		"profile_id": "abc"
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"reading"}, cfg.Plugins)
	assert.Equal(t, 5, cfg.QuestionsPerSet)
	assert.Equal(t, 3, cfg.OptionsPerQuestion)
	assert.Equal(t, "abc", cfg.ProfileID)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong type", `{"questions_per_set": "ten"}`},
		{"below minimum", `{"options_per_question": 1}`},
		{"unknown key", `{"question_count": 10}`},
		{"empty plugin list", `{"plugins": []}`},
		{"not json", `plugins = reading`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := configPath(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("KANJIDRILL_QUESTIONS_PER_SET", "3")
	t.Setenv("KANJIDRILL_SYLLABUS", "words.json")

	cfg, err := Load(configPath(t))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.QuestionsPerSet)
	assert.Equal(t, "words.json", cfg.Syllabus)
}

func TestDefaultPathPrefersEnv(t *testing.T) {
	t.Setenv("KANJIDRILL_CONFIG", "/tmp/custom.json")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", path)
}

func TestValidate(t *testing.T) {
	valid := Default()
	assert.NoError(t, valid.Validate())

	noPlugins := Default()
	noPlugins.Plugins = nil
	assert.Error(t, noPlugins.Validate())

	fewOptions := Default()
	fewOptions.OptionsPerQuestion = 1
	assert.Error(t, fewOptions.Validate())

	noSyllabus := Default()
	noSyllabus.Syllabus = ""
	assert.Error(t, noSyllabus.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := configPath(t)
	cfg := Default()
	cfg.ProfileID = "p1"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LANGUAGES", "HH_BASE_URL", "HH_AREA",
		"SJ_BASE_URL", "SJ_SECRET", "SJ_TOWN",
		"PAGE_SIZE", "HTTP_TIMEOUT_SEC",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SJ_SECRET", "app-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, DefaultLanguages, cfg.Languages)
	require.Equal(t, "https://api.hh.ru/vacancies", cfg.HeadHunter.BaseURL)
	require.Equal(t, 1, cfg.HeadHunter.Area)
	require.Equal(t, "https://api.superjob.ru/2.0/vacancies/", cfg.SuperJob.BaseURL)
	require.Equal(t, 4, cfg.SuperJob.Town)
	require.Equal(t, "app-secret", cfg.SuperJob.Secret)
	require.Equal(t, 100, cfg.PageSize)
	require.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadRequiresSuperJobSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Secret")
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SJ_SECRET", "app-secret")
	t.Setenv("LANGUAGES", "Go, Rust,,Kotlin ")
	t.Setenv("HH_AREA", "2")
	t.Setenv("SJ_TOWN", "14")
	t.Setenv("PAGE_SIZE", "50")
	t.Setenv("HTTP_TIMEOUT_SEC", "5")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, []string{"Go", "Rust", "Kotlin"}, cfg.Languages)
	require.Equal(t, 2, cfg.HeadHunter.Area)
	require.Equal(t, 14, cfg.SuperJob.Town)
	require.Equal(t, 50, cfg.PageSize)
	require.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SJ_SECRET", "app-secret")
	t.Setenv("HH_AREA", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.HeadHunter.Area)
}

func TestLoadRejectsOversizedPage(t *testing.T) {
	clearEnv(t)
	t.Setenv("SJ_SECRET", "app-secret")
	t.Setenv("PAGE_SIZE", "500")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PageSize")
}
